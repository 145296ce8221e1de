// file: internals/features/activities/model/activity_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogModel ties a participant to an activity. Rating runs -3..3
// (enforced at the DTO layer plus a DB CHECK).
type ActivityLogModel struct {
	// PK
	ActivityLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_log_id" json:"id"`

	// FKs — one log per activity per participant
	ActivityLogActivityID    uuid.UUID `gorm:"type:uuid;not null;column:activity_log_activity_id;uniqueIndex:uq_activity_log_pair;index:idx_activity_log_activity" json:"activity_id"`
	ActivityLogParticipantID uuid.UUID `gorm:"type:uuid;not null;column:activity_log_participant_id;uniqueIndex:uq_activity_log_pair;index:idx_activity_log_participant" json:"participant_id"`

	ActivityLogDeclined bool `gorm:"not null;default:false;column:activity_log_declined" json:"declined"`

	ActivityLogRating *int `gorm:"column:activity_log_rating" json:"rating,omitempty"` // DB: CHECK -3..3

	ActivityLogNotes *string `gorm:"type:text;column:activity_log_notes" json:"notes,omitempty"`

	// Timestamps
	ActivityLogCreatedAt time.Time      `gorm:"column:activity_log_created_at;autoCreateTime" json:"created_at"`
	ActivityLogUpdatedAt time.Time      `gorm:"column:activity_log_updated_at;autoUpdateTime" json:"updated_at"`
	ActivityLogDeletedAt gorm.DeletedAt `gorm:"column:activity_log_deleted_at;index" json:"deleted_at,omitempty"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
