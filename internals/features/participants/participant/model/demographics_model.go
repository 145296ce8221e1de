// file: internals/features/participants/participant/model/demographics_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantDemographicsModel is the demographics page's record: a bundle of
// reporting flags plus free-text identity fields, all optional.
type ParticipantDemographicsModel struct {
	// PK
	DemographicsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:demographics_id" json:"demographics_id"`

	// FK — one record per participant
	DemographicsParticipantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:demographics_participant_id" json:"participant_id"`

	DemographicsVeteran    bool `gorm:"not null;default:false;column:demographics_veteran" json:"veteran"`
	DemographicsLivesAlone bool `gorm:"not null;default:false;column:demographics_lives_alone" json:"lives_alone"`
	DemographicsRural      bool `gorm:"not null;default:false;column:demographics_rural" json:"rural"`
	DemographicsLowIncome  bool `gorm:"not null;default:false;column:demographics_low_income" json:"low_income"`
	DemographicsDisability bool `gorm:"not null;default:false;column:demographics_disability" json:"disability"`

	DemographicsGender    *string `gorm:"type:varchar(40);column:demographics_gender" json:"gender,omitempty"`
	DemographicsRace      *string `gorm:"type:varchar(80);column:demographics_race" json:"race,omitempty"`
	DemographicsEthnicity *string `gorm:"type:varchar(80);column:demographics_ethnicity" json:"ethnicity,omitempty"`
	DemographicsLanguage  *string `gorm:"type:varchar(40);column:demographics_language" json:"language,omitempty"`

	DemographicsNotes *string `gorm:"type:text;column:demographics_notes" json:"notes,omitempty"`

	// Timestamps
	DemographicsCreatedAt time.Time      `gorm:"column:demographics_created_at;autoCreateTime" json:"created_at"`
	DemographicsUpdatedAt time.Time      `gorm:"column:demographics_updated_at;autoUpdateTime" json:"updated_at"`
	DemographicsDeletedAt gorm.DeletedAt `gorm:"column:demographics_deleted_at;index" json:"deleted_at,omitempty"`
}

func (ParticipantDemographicsModel) TableName() string {
	return "participant_demographics"
}
