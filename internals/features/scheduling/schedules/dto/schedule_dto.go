// file: internals/features/scheduling/schedules/dto/schedule_dto.go
package dto

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
)

// UpsertScheduleRequest is the POST /schedule/schedule/:participant_id body.
type UpsertScheduleRequest struct {
	Month     string                  `json:"month" validate:"required"`
	Year      int                     `json:"year" validate:"required,gte=2000,lte=2100"`
	Schedule  schedModel.WeekSchedule `json:"schedule" validate:"required"`
	Toileting schedModel.Toileting    `json:"toileting"`
}

// Normalize checks the parts validator tags cannot express: canonical month
// name, valid weekday keys, valid session per slot. Defaults toileting to
// None when omitted.
func (r *UpsertScheduleRequest) Normalize() error {
	if schedModel.MonthIndex(r.Month) < 0 {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown month %q", r.Month))
	}
	for day, slot := range r.Schedule {
		valid := false
		for _, d := range schedModel.WeekdayOrder {
			if day == d {
				valid = true
				break
			}
		}
		if !valid {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown weekday %q", day))
		}
		if !slot.Time.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid session %q for %s", slot.Time, day))
		}
	}
	if r.Toileting == "" {
		r.Toileting = schedModel.ToiletingNone
	}
	if !r.Toileting.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid toileting value %q", r.Toileting))
	}
	return nil
}
