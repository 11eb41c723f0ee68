// internal/model/persona.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Persona struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID     string             `gorm:"type:text;not null;index" json:"organization_id"`
	Name               string             `gorm:"type:text;not null" json:"name"`
	Nickname           string             `gorm:"type:text;not null" json:"nickname"`
	Quote              string             `gorm:"type:text;not null" json:"quote"`
	Background         string             `gorm:"type:text;not null" json:"background"`
	DemographicProfile DemographicProfile `gorm:"type:jsonb;not null" json:"demographic_profile"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type DemographicProfile struct {
	Age        int    `json:"age" validate:"required,gt=0"`
	Gender     Gender `json:"gender" validate:"required,oneof=male female"`
	Occupation string `json:"occupation" validate:"required"`
	Country    string `json:"country" validate:"required"`
	State      string `json:"state" validate:"required"`
}

// Scan implements the sql.Scanner interface
func (p *DemographicProfile) Scan(value interface{}) error {
	if value == nil {
		*p = DemographicProfile{}
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, p)
	}
	return json.Unmarshal(bytes, p)
}

// Value implements the driver.Valuer interface
func (p DemographicProfile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported driver.Value type %T", value)
	}
}
