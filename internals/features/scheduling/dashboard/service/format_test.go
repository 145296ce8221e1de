package service

import (
	"testing"

	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
)

func TestFormatScheduleFixedWeekdayOrder(t *testing.T) {
	// Map iteration order is random in Go; the output order must not be.
	week := schedModel.WeekSchedule{
		schedModel.Friday:    {Active: true, Time: schedModel.SessionPM},
		schedModel.Monday:    {Active: true, Time: schedModel.SessionAM},
		schedModel.Thursday:  {Active: true, Time: schedModel.SessionFull},
		schedModel.Wednesday: {Active: false, Time: schedModel.SessionAM},
	}
	got := FormatSchedule(week)
	want := "Mon (AM), Thur (Full), Fri (PM)"
	if got != want {
		t.Fatalf("FormatSchedule = %q, want %q", got, want)
	}
}

func TestFormatScheduleThursdayAbbreviation(t *testing.T) {
	week := schedModel.WeekSchedule{
		schedModel.Thursday: {Active: true, Time: schedModel.SessionAM},
	}
	if got := FormatSchedule(week); got != "Thur (AM)" {
		t.Fatalf("Thursday abbreviation = %q, want %q", got, "Thur (AM)")
	}
}

func TestFormatScheduleEmpty(t *testing.T) {
	if got := FormatSchedule(nil); got != "" {
		t.Fatalf("FormatSchedule(nil) = %q, want empty", got)
	}
	week := schedModel.WeekSchedule{
		schedModel.Monday: {Active: false, Time: schedModel.SessionAM},
	}
	if got := FormatSchedule(week); got != "" {
		t.Fatalf("FormatSchedule(all inactive) = %q, want empty", got)
	}
}

func TestFormatToileting(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Remind", "R"},
		{"Assist", "A"},
		{"R/A", "R/A"},
		{"", ""},
		{"None", ""},
		{"Other", "Other"},
	}
	for _, tc := range cases {
		if got := FormatToileting(tc.in); got != tc.want {
			t.Errorf("FormatToileting(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTime12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:15", "12:15 AM"},
		{"13:05", "01:05 PM"},
		{"12:00", "12:00 PM"},
		{"09:30", "09:30 AM"},
		{"23:59", "11:59 PM"},
		{"08:15:30", "08:15 AM"},
		{"", ""},
		{"junk", "junk"},
		{"ab:cd", "ab:cd"},
	}
	for _, tc := range cases {
		if got := FormatTime12Hour(tc.in); got != tc.want {
			t.Errorf("FormatTime12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
