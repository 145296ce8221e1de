// file: internals/features/scheduling/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
)

// AttendanceModel is one concrete check-in/out record for a participant on a
// single date. A row may exist without any schedule entry (walk-in) and a
// schedule entry may have no row (no-show).
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"id"`

	// FK — one row per participant per date
	AttendanceParticipantID uuid.UUID `gorm:"type:uuid;not null;column:attendance_participant_id;uniqueIndex:uq_attendance_participant_date;index:idx_attendance_participant" json:"participant_id"`

	// Calendar date as YYYY-MM-DD; exchanged verbatim with the SPA
	AttendanceDate string `gorm:"type:varchar(10);not null;column:attendance_date;uniqueIndex:uq_attendance_participant_date;index:idx_attendance_date" json:"date"`

	// Session is set for walk-ins added from the dashboard; scheduled rows
	// may leave it empty because the template already carries the window.
	AttendanceSession *schedModel.Session `gorm:"type:varchar(4);column:attendance_session" json:"session,omitempty"`

	// Times as HH:mm (24-hour)
	AttendanceIn  *string `gorm:"type:varchar(5);column:attendance_in" json:"in,omitempty"`
	AttendanceOut *string `gorm:"type:varchar(5);column:attendance_out" json:"out,omitempty"`

	// One-letter attendance code
	AttendanceCode *string `gorm:"type:varchar(1);column:attendance_code" json:"code,omitempty"`

	// Timestamps
	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;autoUpdateTime" json:"updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

// SessionOrEmpty unwraps the nullable session column.
func (m *AttendanceModel) SessionOrEmpty() schedModel.Session {
	if m.AttendanceSession == nil {
		return ""
	}
	return *m.AttendanceSession
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (m *AttendanceModel) InOrEmpty() string   { return strOrEmpty(m.AttendanceIn) }
func (m *AttendanceModel) OutOrEmpty() string  { return strOrEmpty(m.AttendanceOut) }
func (m *AttendanceModel) CodeOrEmpty() string { return strOrEmpty(m.AttendanceCode) }
