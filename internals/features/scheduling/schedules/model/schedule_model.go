// file: internals/features/scheduling/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===============================
   Closed enums
=================================*/

// Session is one of the three daily attendance windows.
type Session string

const (
	SessionAM   Session = "AM"
	SessionPM   Session = "PM"
	SessionFull Session = "Full"
)

func (s Session) Valid() bool {
	switch s {
	case SessionAM, SessionPM, SessionFull:
		return true
	}
	return false
}

// ParseSession returns the session for a raw string, false when unknown.
func ParseSession(raw string) (Session, bool) {
	s := Session(raw)
	return s, s.Valid()
}

// Weekday covers the program's operating days only (no weekend sessions).
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// WeekdayOrder is the fixed display/iteration order. Never iterate the
// WeekSchedule map directly: map order is not the contract, this slice is.
var WeekdayOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Toileting is the bathroom-assistance instruction carried on a schedule row.
type Toileting string

const (
	ToiletingRemind Toileting = "Remind"
	ToiletingAssist Toileting = "Assist"
	ToiletingRA     Toileting = "R/A"
	ToiletingNone   Toileting = "None"
)

func (t Toileting) Valid() bool {
	switch t {
	case ToiletingRemind, ToiletingAssist, ToiletingRA, ToiletingNone:
		return true
	}
	return false
}

// MonthOrder is the canonical month-name order used when ranking schedule
// rows by recency (never lexical).
var MonthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex returns the 0-based canonical position, -1 for unknown names.
func MonthIndex(month string) int {
	for i, m := range MonthOrder {
		if m == month {
			return i
		}
	}
	return -1
}

/* ===============================
   Week schedule (JSONB payload)
=================================*/

// DaySlot is one weekday's entry in the recurring template.
type DaySlot struct {
	Active bool    `json:"active"`
	Time   Session `json:"time"`
}

// WeekSchedule maps weekday name → slot. Stored as JSONB.
type WeekSchedule map[Weekday]DaySlot

// SlotFor returns the slot for a weekday plus whether it exists.
func (w WeekSchedule) SlotFor(day Weekday) (DaySlot, bool) {
	if w == nil {
		return DaySlot{}, false
	}
	slot, ok := w[day]
	return slot, ok
}

// ActiveOn reports whether the template has an active slot for day matching
// the requested session. The match is exact: "Full" never satisfies AM or PM.
func (w WeekSchedule) ActiveOn(day Weekday, session Session) bool {
	slot, ok := w.SlotFor(day)
	return ok && slot.Active && slot.Time == session
}

/* ===============================
   Model
=================================*/

type ScheduleModel struct {
	// PK
	ScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"id"`

	// FK — one row per participant per month/year
	ScheduleParticipantID uuid.UUID `gorm:"type:uuid;not null;column:schedule_participant_id;uniqueIndex:uq_schedule_participant_month_year;index:idx_schedule_participant" json:"participant_id"`

	ScheduleMonth string `gorm:"type:varchar(12);not null;column:schedule_month;uniqueIndex:uq_schedule_participant_month_year" json:"month"`
	ScheduleYear  int    `gorm:"not null;column:schedule_year;uniqueIndex:uq_schedule_participant_month_year" json:"year"`

	// Weekday → {active, time} template
	ScheduleDays datatypes.JSONType[WeekSchedule] `gorm:"type:jsonb;column:schedule_days" json:"schedule"`

	ScheduleToileting Toileting `gorm:"type:varchar(8);not null;default:None;column:schedule_toileting" json:"toileting"`

	// Timestamps
	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;autoCreateTime" json:"created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;autoUpdateTime" json:"updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

// Week returns the decoded weekday map (nil-safe).
func (m *ScheduleModel) Week() WeekSchedule {
	return m.ScheduleDays.Data()
}
