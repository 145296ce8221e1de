package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	partModel "careportal_backend/internals/features/participants/participant/model"
	attModel "careportal_backend/internals/features/scheduling/attendance/model"
	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
)

var monday = RosterDay{
	Date:    "2025-03-03",
	Weekday: schedModel.Monday,
	Month:   "March",
	Year:    2025,
}

func newParticipant(first, last string) partModel.ParticipantModel {
	id := uuid.New()
	return partModel.ParticipantModel{
		ParticipantID: id,
		GeneralInfo: &partModel.ParticipantGeneralInfoModel{
			GeneralInfoParticipantID: id,
			GeneralInfoFirstName:     first,
			GeneralInfoLastName:      last,
		},
	}
}

func newSchedule(pid uuid.UUID, month string, year int, week schedModel.WeekSchedule, toileting schedModel.Toileting) schedModel.ScheduleModel {
	return schedModel.ScheduleModel{
		ScheduleID:            uuid.New(),
		ScheduleParticipantID: pid,
		ScheduleMonth:         month,
		ScheduleYear:          year,
		ScheduleDays:          datatypes.NewJSONType(week),
		ScheduleToileting:     toileting,
	}
}

func strPtr(s string) *string { return &s }

func sessPtr(s schedModel.Session) *schedModel.Session { return &s }

func TestSessionRosterScheduledNoAttendance(t *testing.T) {
	p := newParticipant("Ada", "Lovelace")
	sched := newSchedule(p.ParticipantID, "March", 2025, schedModel.WeekSchedule{
		schedModel.Monday: {Active: true, Time: schedModel.SessionAM},
	}, schedModel.ToiletingRemind)

	rows := SessionRoster(schedModel.SessionAM, monday,
		[]partModel.ParticipantModel{p},
		[]schedModel.ScheduleModel{sched},
		nil)

	if len(rows) != 1 {
		t.Fatalf("AM roster has %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Name != "Ada Lovelace" {
		t.Errorf("name = %q, want %q", row.Name, "Ada Lovelace")
	}
	if row.In != "" || row.Out != "" || row.Code != "" {
		t.Errorf("expected blank in/out/code, got %q/%q/%q", row.In, row.Out, row.Code)
	}
	wantID := p.ParticipantID.String() + "-AM"
	if row.ID != wantID {
		t.Errorf("placeholder id = %q, want %q", row.ID, wantID)
	}
	if row.AttendanceID != nil {
		t.Errorf("attendance id should be nil before any save")
	}

	// The same participant must not appear for PM.
	pmRows := SessionRoster(schedModel.SessionPM, monday,
		[]partModel.ParticipantModel{p},
		[]schedModel.ScheduleModel{sched},
		nil)
	if len(pmRows) != 0 {
		t.Fatalf("PM roster has %d rows, want 0", len(pmRows))
	}
}

func TestSessionRosterFullIsExactMatch(t *testing.T) {
	p := newParticipant("Grace", "Hopper")
	sched := newSchedule(p.ParticipantID, "March", 2025, schedModel.WeekSchedule{
		schedModel.Monday: {Active: true, Time: schedModel.SessionFull},
	}, schedModel.ToiletingNone)

	for _, session := range []schedModel.Session{schedModel.SessionAM, schedModel.SessionPM} {
		rows := SessionRoster(session, monday,
			[]partModel.ParticipantModel{p},
			[]schedModel.ScheduleModel{sched},
			nil)
		if len(rows) != 0 {
			t.Errorf("Full-day schedule leaked into %s roster", session)
		}
	}
	rows := SessionRoster(schedModel.SessionFull, monday,
		[]partModel.ParticipantModel{p},
		[]schedModel.ScheduleModel{sched},
		nil)
	if len(rows) != 1 {
		t.Fatalf("Full roster has %d rows, want 1", len(rows))
	}
}

func TestSessionRosterReflectsAttendance(t *testing.T) {
	p := newParticipant("Ada", "Lovelace")
	sched := newSchedule(p.ParticipantID, "March", 2025, schedModel.WeekSchedule{
		schedModel.Monday: {Active: true, Time: schedModel.SessionAM},
	}, schedModel.ToiletingRemind)
	att := attModel.AttendanceModel{
		AttendanceID:            uuid.New(),
		AttendanceParticipantID: p.ParticipantID,
		AttendanceDate:          monday.Date,
		AttendanceIn:            strPtr("09:00"),
		AttendanceCode:          strPtr("A"),
	}

	rows := SessionRoster(schedModel.SessionAM, monday,
		[]partModel.ParticipantModel{p},
		[]schedModel.ScheduleModel{sched},
		[]attModel.AttendanceModel{att})

	if len(rows) != 1 {
		t.Fatalf("roster has %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.In != "09:00" || row.Code != "A" {
		t.Errorf("in/code = %q/%q, want 09:00/A", row.In, row.Code)
	}
	if row.ID != att.AttendanceID.String() {
		t.Errorf("row id = %q, want attendance id %q", row.ID, att.AttendanceID)
	}
	if row.AttendanceID == nil || *row.AttendanceID != att.AttendanceID {
		t.Errorf("attendance id not carried on the row")
	}
	if row.WalkIn {
		t.Errorf("scheduled row marked as walk-in")
	}
}

func TestSessionRosterWalkInTrailsScheduled(t *testing.T) {
	scheduled := newParticipant("Ada", "Lovelace")
	walkIn := newParticipant("Mary", "Shelley")

	schedules := []schedModel.ScheduleModel{
		newSchedule(scheduled.ParticipantID, "March", 2025, schedModel.WeekSchedule{
			schedModel.Monday: {Active: true, Time: schedModel.SessionPM},
		}, schedModel.ToiletingAssist),
		// historical row for the walk-in, no current-month template
		newSchedule(walkIn.ParticipantID, "January", 2025, schedModel.WeekSchedule{
			schedModel.Monday: {Active: true, Time: schedModel.SessionAM},
		}, schedModel.ToiletingRemind),
	}
	attendance := []attModel.AttendanceModel{
		{
			AttendanceID:            uuid.New(),
			AttendanceParticipantID: walkIn.ParticipantID,
			AttendanceDate:          monday.Date,
			AttendanceSession:       sessPtr(schedModel.SessionPM),
		},
	}

	rows := SessionRoster(schedModel.SessionPM, monday,
		[]partModel.ParticipantModel{scheduled, walkIn},
		schedules, attendance)

	if len(rows) != 2 {
		t.Fatalf("PM roster has %d rows, want 2", len(rows))
	}
	if rows[0].ParticipantID != scheduled.ParticipantID {
		t.Errorf("scheduled row should come first")
	}
	last := rows[1]
	if last.ParticipantID != walkIn.ParticipantID || !last.WalkIn {
		t.Fatalf("trailing row should be the walk-in")
	}
	// Walk-in toileting comes from history, not from a (nonexistent) template.
	if last.Toileting != "Remind" {
		t.Errorf("walk-in toileting = %q, want %q from history", last.Toileting, "Remind")
	}
}

func TestSessionRosterWalkInSessionMustMatch(t *testing.T) {
	walkIn := newParticipant("Mary", "Shelley")
	attendance := []attModel.AttendanceModel{
		{
			AttendanceID:            uuid.New(),
			AttendanceParticipantID: walkIn.ParticipantID,
			AttendanceDate:          monday.Date,
			AttendanceSession:       sessPtr(schedModel.SessionAM),
		},
	}
	rows := SessionRoster(schedModel.SessionPM, monday,
		[]partModel.ParticipantModel{walkIn}, nil, attendance)
	if len(rows) != 0 {
		t.Fatalf("AM walk-in leaked into PM roster")
	}
}

func TestMostRecentToiletingYearBeatsMonth(t *testing.T) {
	pid := uuid.New()
	schedules := []schedModel.ScheduleModel{
		newSchedule(pid, "March", 2024, schedModel.WeekSchedule{}, schedModel.ToiletingAssist),
		newSchedule(pid, "January", 2025, schedModel.WeekSchedule{}, schedModel.ToiletingRemind),
	}
	if got := MostRecentToileting(pid, schedules); got != "Remind" {
		t.Fatalf("MostRecentToileting = %q, want January-2025 value %q", got, "Remind")
	}
}

func TestMostRecentToiletingMonthOrderIsCanonical(t *testing.T) {
	pid := uuid.New()
	// Lexically "April" < "February", canonically February < April.
	schedules := []schedModel.ScheduleModel{
		newSchedule(pid, "February", 2025, schedModel.WeekSchedule{}, schedModel.ToiletingAssist),
		newSchedule(pid, "April", 2025, schedModel.WeekSchedule{}, schedModel.ToiletingRemind),
	}
	if got := MostRecentToileting(pid, schedules); got != "Remind" {
		t.Fatalf("MostRecentToileting = %q, want April value %q", got, "Remind")
	}
}

func TestMostRecentToiletingTieBreakLastWrite(t *testing.T) {
	pid := uuid.New()
	older := newSchedule(pid, "March", 2025, schedModel.WeekSchedule{}, schedModel.ToiletingAssist)
	older.ScheduleUpdatedAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := newSchedule(pid, "March", 2025, schedModel.WeekSchedule{}, schedModel.ToiletingRemind)
	newer.ScheduleUpdatedAt = time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	schedules := []schedModel.ScheduleModel{older, newer}
	if got := MostRecentToileting(pid, schedules); got != "Remind" {
		t.Fatalf("tie-break = %q, want last-written %q", got, "Remind")
	}
}

func TestMostRecentToiletingNoHistory(t *testing.T) {
	if got := MostRecentToileting(uuid.New(), nil); got != "" {
		t.Fatalf("MostRecentToileting with no rows = %q, want empty", got)
	}
}

func TestUnscheduledCandidatesExclusionsAndSearch(t *testing.T) {
	scheduled := newParticipant("Ada", "Lovelace")
	attendedOther := newParticipant("Grace", "Hopper") // attended a different session
	free := newParticipant("Mary", "Shelley")

	schedules := []schedModel.ScheduleModel{
		newSchedule(scheduled.ParticipantID, "March", 2025, schedModel.WeekSchedule{
			schedModel.Monday: {Active: true, Time: schedModel.SessionAM},
		}, schedModel.ToiletingNone),
	}
	attendance := []attModel.AttendanceModel{
		{
			AttendanceID:            uuid.New(),
			AttendanceParticipantID: attendedOther.ParticipantID,
			AttendanceDate:          monday.Date,
			AttendanceSession:       sessPtr(schedModel.SessionPM),
		},
	}
	all := []partModel.ParticipantModel{scheduled, attendedOther, free}

	got := UnscheduledCandidates(schedModel.SessionAM, monday, all, schedules, attendance, "")
	if len(got) != 1 || got[0].ParticipantID != free.ParticipantID {
		t.Fatalf("candidates = %d rows, want only the free participant", len(got))
	}

	// Case-insensitive substring on first or last name.
	if got := UnscheduledCandidates(schedModel.SessionAM, monday, all, schedules, attendance, "shel"); len(got) != 1 {
		t.Errorf("last-name substring search missed")
	}
	if got := UnscheduledCandidates(schedModel.SessionAM, monday, all, schedules, attendance, "MARY"); len(got) != 1 {
		t.Errorf("search should be case-insensitive")
	}
	if got := UnscheduledCandidates(schedModel.SessionAM, monday, all, schedules, attendance, "zzz"); len(got) != 0 {
		t.Errorf("non-matching search should return nothing")
	}
}

func TestApplyAttendanceUpsert(t *testing.T) {
	a := attModel.AttendanceModel{AttendanceID: uuid.New(), AttendanceDate: "2025-03-03"}
	b := attModel.AttendanceModel{AttendanceID: uuid.New(), AttendanceDate: "2025-03-03"}
	c := attModel.AttendanceModel{AttendanceID: uuid.New(), AttendanceDate: "2025-03-03"}
	rows := []attModel.AttendanceModel{a, b, c}

	// Unknown id appends.
	fresh := attModel.AttendanceModel{AttendanceID: uuid.New(), AttendanceDate: "2025-03-03"}
	rows = ApplyAttendanceUpsert(rows, fresh)
	if len(rows) != 4 || rows[3].AttendanceID != fresh.AttendanceID {
		t.Fatalf("new row should be appended")
	}

	// Known id replaces in place, order untouched.
	edited := b
	edited.AttendanceIn = strPtr("10:30")
	rows = ApplyAttendanceUpsert(rows, edited)
	if len(rows) != 4 {
		t.Fatalf("replace grew the slice")
	}
	if rows[1].AttendanceID != b.AttendanceID || rows[1].InOrEmpty() != "10:30" {
		t.Errorf("edited row not replaced in place")
	}
	if rows[0].AttendanceID != a.AttendanceID || rows[2].AttendanceID != c.AttendanceID {
		t.Errorf("sibling order disturbed")
	}
}
