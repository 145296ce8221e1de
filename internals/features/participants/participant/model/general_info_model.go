// file: internals/features/participants/participant/model/general_info_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ParticipantType string

const (
	TypeParticipant ParticipantType = "Participant"
	TypeCarePartner ParticipantType = "Care Partner"
)

func (t ParticipantType) Valid() bool {
	return t == TypeParticipant || t == TypeCarePartner
}

type ParticipantStatus string

const (
	StatusActive   ParticipantStatus = "Active"
	StatusInactive ParticipantStatus = "Inactive"
)

func (s ParticipantStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type ParticipantGeneralInfoModel struct {
	// PK
	GeneralInfoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:general_info_id" json:"general_info_id"`

	// FK — one record per participant
	GeneralInfoParticipantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:general_info_participant_id" json:"participant_id"`

	GeneralInfoFirstName string `gorm:"type:varchar(80);not null;column:general_info_first_name" json:"first_name"`
	GeneralInfoLastName  string `gorm:"type:varchar(80);not null;column:general_info_last_name" json:"last_name"`

	GeneralInfoType   ParticipantType   `gorm:"type:varchar(16);not null;default:Participant;column:general_info_type" json:"type"`
	GeneralInfoStatus ParticipantStatus `gorm:"type:varchar(12);not null;default:Active;column:general_info_status;index:idx_general_info_status" json:"status"`

	// Contact (nullable)
	GeneralInfoPhone   *string `gorm:"type:varchar(20);column:general_info_phone" json:"phone,omitempty"`
	GeneralInfoEmail   *string `gorm:"type:varchar(120);column:general_info_email" json:"email,omitempty"`
	GeneralInfoAddress *string `gorm:"type:text;column:general_info_address" json:"address,omitempty"`

	// YYYY-MM-DD
	GeneralInfoBirthDate *string `gorm:"type:varchar(10);column:general_info_birth_date" json:"birth_date,omitempty"`

	// Dietary restrictions / allergies for day-program meal planning
	GeneralInfoAllergies pq.StringArray `gorm:"type:text[];column:general_info_allergies" json:"allergies,omitempty"`

	GeneralInfoNotes *string `gorm:"type:text;column:general_info_notes" json:"notes,omitempty"`

	// Timestamps
	GeneralInfoCreatedAt time.Time      `gorm:"column:general_info_created_at;autoCreateTime" json:"created_at"`
	GeneralInfoUpdatedAt time.Time      `gorm:"column:general_info_updated_at;autoUpdateTime" json:"updated_at"`
	GeneralInfoDeletedAt gorm.DeletedAt `gorm:"column:general_info_deleted_at;index" json:"deleted_at,omitempty"`
}

func (ParticipantGeneralInfoModel) TableName() string {
	return "participant_general_info"
}

func (m *ParticipantGeneralInfoModel) FullName() string {
	return strings.TrimSpace(m.GeneralInfoFirstName + " " + m.GeneralInfoLastName)
}
