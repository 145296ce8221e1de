// file: internals/features/users/auth/model/staff_user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffUserModel struct {
	// PK
	StaffUserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_user_id" json:"id"`

	StaffUserEmail    string `gorm:"type:varchar(120);not null;uniqueIndex;column:staff_user_email" json:"email"`
	StaffUserFullName string `gorm:"type:varchar(120);not null;column:staff_user_full_name" json:"full_name"`

	// bcrypt hash; never serialized
	StaffUserPasswordHash string `gorm:"type:varchar(100);not null;column:staff_user_password_hash" json:"-"`

	StaffUserRole string `gorm:"type:varchar(12);not null;default:staff;column:staff_user_role" json:"role"`

	// Timestamps
	StaffUserCreatedAt time.Time      `gorm:"column:staff_user_created_at;autoCreateTime" json:"created_at"`
	StaffUserUpdatedAt time.Time      `gorm:"column:staff_user_updated_at;autoUpdateTime" json:"updated_at"`
	StaffUserDeletedAt gorm.DeletedAt `gorm:"column:staff_user_deleted_at;index" json:"deleted_at,omitempty"`
}

func (StaffUserModel) TableName() string {
	return "staff_users"
}
