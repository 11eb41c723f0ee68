// internal/model/experiment.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Experiment struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID string    `gorm:"type:text;not null;index" json:"organization_id"`
	Owner          string    `gorm:"type:text;not null" json:"owner"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	ProjectID      uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	PersonaIDs     UUIDList  `gorm:"type:jsonb;not null" json:"persona_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UUIDList stores a set of referenced ids as a jsonb array.
type UUIDList []uuid.UUID

// Scan implements the sql.Scanner interface
func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = UUIDList{}
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, l)
	}
	return json.Unmarshal(bytes, l)
}

// Value implements the driver.Valuer interface
func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(UUIDList{})
	}
	return json.Marshal(l)
}

// Contains reports whether id is one of the experiment's participants.
func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
