// file: internals/features/participants/services/model/service_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantServiceModel is one billed/case service entry. Independent CRUD;
// the only invariant is that an entry belongs to exactly one participant.
type ParticipantServiceModel struct {
	// PK — the portal calls this entry_id
	ServiceEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:service_entry_id" json:"entry_id"`

	// FK
	ServiceParticipantID uuid.UUID `gorm:"type:uuid;not null;column:service_participant_id;index:idx_service_participant" json:"participant_id"`

	ServiceCode string `gorm:"type:varchar(20);not null;column:service_code" json:"code"`
	ServiceType string `gorm:"type:varchar(60);not null;column:service_type" json:"type"`

	ServiceMinutes int     `gorm:"not null;default:0;column:service_minutes" json:"minutes"`
	ServiceUnits   float64 `gorm:"type:numeric(6,2);not null;default:0;column:service_units" json:"units"`

	// YYYY-MM-DD
	ServiceDate        string  `gorm:"type:varchar(10);not null;column:service_date;index:idx_service_date" json:"service_date"`
	ServicePostingDate *string `gorm:"type:varchar(10);column:service_posting_date" json:"posting_date,omitempty"`

	ServiceNotes *string `gorm:"type:text;column:service_notes" json:"notes,omitempty"`

	// Timestamps
	ServiceCreatedAt time.Time      `gorm:"column:service_created_at;autoCreateTime" json:"created_at"`
	ServiceUpdatedAt time.Time      `gorm:"column:service_updated_at;autoUpdateTime" json:"updated_at"`
	ServiceDeletedAt gorm.DeletedAt `gorm:"column:service_deleted_at;index" json:"deleted_at,omitempty"`
}

func (ParticipantServiceModel) TableName() string {
	return "participant_services"
}
