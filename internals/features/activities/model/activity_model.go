// file: internals/features/activities/model/activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ActivityModel is one offered activity session with a date/time window.
type ActivityModel struct {
	// PK
	ActivityID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_id" json:"id"`

	ActivityName string `gorm:"type:varchar(120);not null;column:activity_name" json:"name"`

	// YYYY-MM-DD
	ActivityDate string `gorm:"type:varchar(10);not null;column:activity_date;index:idx_activity_date" json:"date"`

	// HH:mm (24-hour)
	ActivityStart *string `gorm:"type:varchar(5);column:activity_start" json:"start,omitempty"`
	ActivityEnd   *string `gorm:"type:varchar(5);column:activity_end" json:"end,omitempty"`

	ActivityLocation *string `gorm:"type:varchar(120);column:activity_location" json:"location,omitempty"`

	ActivityTags pq.StringArray `gorm:"type:text[];column:activity_tags" json:"tags,omitempty"`

	// Timestamps
	ActivityCreatedAt time.Time      `gorm:"column:activity_created_at;autoCreateTime" json:"created_at"`
	ActivityUpdatedAt time.Time      `gorm:"column:activity_updated_at;autoUpdateTime" json:"updated_at"`
	ActivityDeletedAt gorm.DeletedAt `gorm:"column:activity_deleted_at;index" json:"deleted_at,omitempty"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
