// file: internals/features/participants/participant/model/participant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	svcModel "careportal_backend/internals/features/participants/services/model"
)

// ParticipantModel is the aggregate root. The id is supplied by the client on
// create (the portal generates it with crypto.randomUUID), so there is no DB
// default here.
type ParticipantModel struct {
	// PK
	ParticipantID uuid.UUID `gorm:"type:uuid;primaryKey;column:participant_id" json:"id"`

	// Nested records
	GeneralInfo  *ParticipantGeneralInfoModel  `gorm:"foreignKey:GeneralInfoParticipantID;references:ParticipantID" json:"participant_general_info,omitempty"`
	Demographics *ParticipantDemographicsModel `gorm:"foreignKey:DemographicsParticipantID;references:ParticipantID" json:"participant_demographics,omitempty"`

	Services []svcModel.ParticipantServiceModel `gorm:"foreignKey:ServiceParticipantID;references:ParticipantID" json:"participant_services,omitempty"`

	CarePartners []CarePartnerLinkModel `gorm:"foreignKey:LinkParticipantID;references:ParticipantID" json:"carepartners,omitempty"`

	// Timestamps
	ParticipantCreatedAt time.Time      `gorm:"column:participant_created_at;autoCreateTime" json:"created_at"`
	ParticipantUpdatedAt time.Time      `gorm:"column:participant_updated_at;autoUpdateTime" json:"updated_at"`
	ParticipantDeletedAt gorm.DeletedAt `gorm:"column:participant_deleted_at;index" json:"deleted_at,omitempty"`
}

func (ParticipantModel) TableName() string {
	return "participants"
}

// FullName composes "First Last" from the nested general info, tolerating a
// missing sub-record the same way the portal's optional chaining did.
func (m *ParticipantModel) FullName() string {
	if m.GeneralInfo == nil {
		return ""
	}
	return m.GeneralInfo.FullName()
}
