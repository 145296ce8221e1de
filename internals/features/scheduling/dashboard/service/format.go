// file: internals/features/scheduling/dashboard/service/format.go
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
)

const DateLayout = "2006-01-02"

// TodayDateString returns today's date as YYYY-MM-DD.
func TodayDateString() string {
	return time.Now().Format(DateLayout)
}

// FormatSchedule renders a weekly template as a human string, always in
// Monday–Friday order regardless of map iteration order. Day names are cut to
// three letters except Thursday, which is "Thur" (house style on the printed
// rosters, not a typo).
func FormatSchedule(week schedModel.WeekSchedule) string {
	if week == nil {
		return ""
	}
	parts := make([]string, 0, len(schedModel.WeekdayOrder))
	for _, day := range schedModel.WeekdayOrder {
		slot, ok := week.SlotFor(day)
		if !ok || !slot.Active {
			continue
		}
		short := string(day)[:3]
		if short == "Thu" {
			short = "Thur"
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", short, slot.Time))
	}
	return strings.Join(parts, ", ")
}

// FormatToileting maps a toileting instruction to its 1-2 character roster
// code. Unknown non-empty values pass through unchanged.
func FormatToileting(val string) string {
	switch val {
	case "", string(schedModel.ToiletingNone):
		return ""
	case string(schedModel.ToiletingRemind):
		return "R"
	case string(schedModel.ToiletingAssist):
		return "A"
	case string(schedModel.ToiletingRA):
		return "R/A"
	default:
		return val
	}
}

// FormatTime12Hour converts "HH:mm" (or "HH:mm:ss") to "hh:mm AM/PM".
// Empty input yields empty output; unparseable input is returned verbatim.
func FormatTime12Hour(timeStr string) string {
	if timeStr == "" {
		return ""
	}
	fields := strings.Split(timeStr, ":")
	if len(fields) < 2 {
		return timeStr
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return timeStr
	}
	minute := fields[1]
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%s %s", hour, minute, ampm)
}
