// internal/model/project.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID string    `gorm:"type:text;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Category       string    `gorm:"type:text;not null" json:"category"`
	Objective      string    `gorm:"type:text;not null" json:"objective"`
	Situation      string    `gorm:"type:text;not null" json:"situation"`
	TargetAudience string    `gorm:"type:text;not null" json:"target_audience"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
