// file: internals/features/scheduling/attendance/dto/attendance_dto.go
package dto

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
)

const dateLayout = "2006-01-02"

var timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// UpsertAttendanceRequest is the POST /schedule/attendance body. ID may be a
// real attendance uuid, the portal's synthetic "{participant_id}-{session}"
// placeholder, or absent — anything that is not a uuid means create.
type UpsertAttendanceRequest struct {
	ID            *string             `json:"id"`
	ParticipantID uuid.UUID           `json:"participant_id" validate:"required"`
	Date          string              `json:"date" validate:"required"`
	In            *string             `json:"in"`
	Out           *string             `json:"out"`
	Code          *string             `json:"code"`
	Session       *schedModel.Session `json:"session"`
}

// RowID returns the parsed attendance id, or uuid.Nil for the create path.
func (r *UpsertAttendanceRequest) RowID() uuid.UUID {
	if r.ID == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(*r.ID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Normalize validates the formats the tags cannot: YYYY-MM-DD date, HH:mm
// times, one-letter code, known session. Empty strings are treated as unset.
func (r *UpsertAttendanceRequest) Normalize() error {
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	r.In = normalizeTime(r.In)
	r.Out = normalizeTime(r.Out)
	if r.In != nil && !timeRe.MatchString(*r.In) {
		return fiber.NewError(fiber.StatusBadRequest, "in must be HH:mm")
	}
	if r.Out != nil && !timeRe.MatchString(*r.Out) {
		return fiber.NewError(fiber.StatusBadRequest, "out must be HH:mm")
	}
	if r.Code != nil && *r.Code == "" {
		r.Code = nil
	}
	if r.Code != nil && len(*r.Code) != 1 {
		return fiber.NewError(fiber.StatusBadRequest, "code must be a single letter")
	}
	if r.Session != nil && *r.Session == "" {
		r.Session = nil
	}
	if r.Session != nil && !r.Session.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid session %q", *r.Session))
	}
	return nil
}

func normalizeTime(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// AddWalkInRequest is the dashboard's add-unscheduled-participant payload.
type AddWalkInRequest struct {
	ParticipantID uuid.UUID          `json:"participant_id" validate:"required"`
	Session       schedModel.Session `json:"session" validate:"required"`
}
