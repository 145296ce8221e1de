// file: internals/features/scheduling/dashboard/service/roster.go
package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	partModel "careportal_backend/internals/features/participants/participant/model"
	attModel "careportal_backend/internals/features/scheduling/attendance/model"
	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
)

// RosterDay pins "today" for one resolver call: calendar date, weekday name,
// month name, and year, all derived once so a call near midnight stays
// self-consistent.
type RosterDay struct {
	Date    string
	Weekday schedModel.Weekday
	Month   string
	Year    int
}

// Today derives the roster day from the local clock.
func Today() RosterDay {
	now := time.Now()
	return RosterDay{
		Date:    now.Format(DateLayout),
		Weekday: schedModel.Weekday(now.Weekday().String()),
		Month:   now.Month().String(),
		Year:    now.Year(),
	}
}

// RosterRow is one line of a session's attendance table. ID is the attendance
// row id when one exists; otherwise the synthetic "{participant_id}-{session}"
// placeholder the portal uses for not-yet-saved rows.
type RosterRow struct {
	ID            string             `json:"id"`
	ParticipantID uuid.UUID          `json:"participant_id"`
	Name          string             `json:"name"`
	Toileting     string             `json:"toileting"`
	In            string             `json:"in"`
	Out           string             `json:"out"`
	Code          string             `json:"code"`
	AttendanceID  *uuid.UUID         `json:"attendance_id,omitempty"`
	Session       schedModel.Session `json:"session"`
	WalkIn        bool               `json:"walk_in"`
}

func participantByID(participants []partModel.ParticipantModel, id uuid.UUID) *partModel.ParticipantModel {
	for i := range participants {
		if participants[i].ParticipantID == id {
			return &participants[i]
		}
	}
	return nil
}

func attendanceFor(attendance []attModel.AttendanceModel, participantID uuid.UUID, date string) *attModel.AttendanceModel {
	for i := range attendance {
		if attendance[i].AttendanceParticipantID == participantID && attendance[i].AttendanceDate == date {
			return &attendance[i]
		}
	}
	return nil
}

// SessionRoster resolves who is expected for one session on the given day:
// every schedule row for the day's month/year whose weekday slot is active
// and whose time matches the session exactly ("Full" never satisfies AM or
// PM), joined with that day's attendance; then any walk-ins — attendance rows
// for the day tagged with this session whose participant is not already
// listed. Scheduled rows come first, walk-ins after, in input order; no other
// sorting is applied.
func SessionRoster(
	session schedModel.Session,
	day RosterDay,
	participants []partModel.ParticipantModel,
	schedules []schedModel.ScheduleModel,
	attendance []attModel.AttendanceModel,
) []RosterRow {
	rows := make([]RosterRow, 0, 16)
	scheduledIDs := make(map[uuid.UUID]struct{})

	for i := range schedules {
		sched := &schedules[i]
		if sched.ScheduleMonth != day.Month || sched.ScheduleYear != day.Year {
			continue
		}
		if !sched.Week().ActiveOn(day.Weekday, session) {
			continue
		}

		pid := sched.ScheduleParticipantID
		scheduledIDs[pid] = struct{}{}

		row := RosterRow{
			ID:            pid.String() + "-" + string(session),
			ParticipantID: pid,
			Toileting:     string(sched.ScheduleToileting),
			Session:       session,
		}
		if p := participantByID(participants, pid); p != nil {
			row.Name = p.FullName()
		}
		if att := attendanceFor(attendance, pid, day.Date); att != nil {
			row.ID = att.AttendanceID.String()
			id := att.AttendanceID
			row.AttendanceID = &id
			row.In = att.InOrEmpty()
			row.Out = att.OutOrEmpty()
			row.Code = att.CodeOrEmpty()
		}
		rows = append(rows, row)
	}

	// Walk-ins: attendance rows for the day, tagged with this session, whose
	// participant was not scheduled above. Their toileting instruction comes
	// from schedule history since no current template exists.
	for i := range attendance {
		att := &attendance[i]
		if att.AttendanceDate != day.Date {
			continue
		}
		if _, ok := scheduledIDs[att.AttendanceParticipantID]; ok {
			continue
		}
		if att.SessionOrEmpty() != session {
			continue
		}

		id := att.AttendanceID
		row := RosterRow{
			ID:            att.AttendanceID.String(),
			ParticipantID: att.AttendanceParticipantID,
			Toileting:     MostRecentToileting(att.AttendanceParticipantID, schedules),
			In:            att.InOrEmpty(),
			Out:           att.OutOrEmpty(),
			Code:          att.CodeOrEmpty(),
			AttendanceID:  &id,
			Session:       session,
			WalkIn:        true,
		}
		if p := participantByID(participants, att.AttendanceParticipantID); p != nil {
			row.Name = p.FullName()
		}
		rows = append(rows, row)
	}

	return rows
}

// MostRecentToileting returns the toileting instruction from the
// participant's newest schedule row, ranking by year, then by canonical month
// order (January..December, never lexical). Rows sharing a month/year are
// broken by updated_at, newest first, so the last write wins. Empty string
// when the participant has no schedule history.
func MostRecentToileting(participantID uuid.UUID, schedules []schedModel.ScheduleModel) string {
	mine := make([]schedModel.ScheduleModel, 0, 4)
	for i := range schedules {
		if schedules[i].ScheduleParticipantID == participantID {
			mine = append(mine, schedules[i])
		}
	}
	if len(mine) == 0 {
		return ""
	}
	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].ScheduleYear != mine[j].ScheduleYear {
			return mine[i].ScheduleYear > mine[j].ScheduleYear
		}
		mi := schedModel.MonthIndex(mine[i].ScheduleMonth)
		mj := schedModel.MonthIndex(mine[j].ScheduleMonth)
		if mi != mj {
			return mi > mj
		}
		return mine[i].ScheduleUpdatedAt.After(mine[j].ScheduleUpdatedAt)
	})
	return string(mine[0].ScheduleToileting)
}

// UnscheduledCandidates lists participants who could be added as walk-ins
// for a session: not scheduled for it today and absent from today's
// attendance log entirely (any session — broader than the roster's own
// exclusion), filtered by a case-insensitive substring match on the composed
// "First Last" name.
func UnscheduledCandidates(
	session schedModel.Session,
	day RosterDay,
	participants []partModel.ParticipantModel,
	schedules []schedModel.ScheduleModel,
	attendance []attModel.AttendanceModel,
	search string,
) []partModel.ParticipantModel {
	scheduledIDs := make(map[uuid.UUID]struct{})
	for i := range schedules {
		sched := &schedules[i]
		if sched.ScheduleMonth != day.Month || sched.ScheduleYear != day.Year {
			continue
		}
		if sched.Week().ActiveOn(day.Weekday, session) {
			scheduledIDs[sched.ScheduleParticipantID] = struct{}{}
		}
	}

	attendedIDs := make(map[uuid.UUID]struct{})
	for i := range attendance {
		if attendance[i].AttendanceDate == day.Date {
			attendedIDs[attendance[i].AttendanceParticipantID] = struct{}{}
		}
	}

	needle := strings.ToLower(search)
	out := make([]partModel.ParticipantModel, 0, 8)
	for i := range participants {
		p := &participants[i]
		if _, ok := scheduledIDs[p.ParticipantID]; ok {
			continue
		}
		if _, ok := attendedIDs[p.ParticipantID]; ok {
			continue
		}
		if !strings.Contains(strings.ToLower(p.FullName()), needle) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// ApplyAttendanceUpsert reconciles a saved attendance row into a cached row
// set: a row with the same id is replaced in place, preserving the order of
// everything else; otherwise the saved row is appended.
func ApplyAttendanceUpsert(rows []attModel.AttendanceModel, saved attModel.AttendanceModel) []attModel.AttendanceModel {
	for i := range rows {
		if rows[i].AttendanceID == saved.AttendanceID {
			rows[i] = saved
			return rows
		}
	}
	return append(rows, saved)
}
