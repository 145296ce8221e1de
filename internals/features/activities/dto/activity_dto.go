// file: internals/features/activities/dto/activity_dto.go
package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	actModel "careportal_backend/internals/features/activities/model"
	rosterSvc "careportal_backend/internals/features/scheduling/dashboard/service"
)

var hhmmRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type CreateActivityRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Date string `json:"date" validate:"required"`

	Start *string `json:"start"`
	End   *string `json:"end"`

	Location *string  `json:"location" validate:"omitempty,max=120"`
	Tags     []string `json:"tags"`
}

func (r *CreateActivityRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	if _, err := time.Parse(rosterSvc.DateLayout, r.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	for _, t := range []*string{r.Start, r.End} {
		if t != nil && *t != "" && !hhmmRe.MatchString(*t) {
			return fiber.NewError(fiber.StatusBadRequest, "start/end must be HH:mm")
		}
	}
	return nil
}

func (r *CreateActivityRequest) ToModel() actModel.ActivityModel {
	return actModel.ActivityModel{
		ActivityName:     r.Name,
		ActivityDate:     r.Date,
		ActivityStart:    r.Start,
		ActivityEnd:      r.End,
		ActivityLocation: r.Location,
		ActivityTags:     r.Tags,
	}
}

// UpsertActivityLogRequest records one participant's outcome for an activity.
// Keyed (activity, participant); posting twice edits.
type UpsertActivityLogRequest struct {
	ParticipantID uuid.UUID `json:"participant_id" validate:"required"`

	Declined bool    `json:"declined"`
	Rating   *int    `json:"rating" validate:"omitempty,gte=-3,lte=3"`
	Notes    *string `json:"notes"`
}

func (r *UpsertActivityLogRequest) ApplyTo(m *actModel.ActivityLogModel, activityID uuid.UUID) {
	m.ActivityLogActivityID = activityID
	m.ActivityLogParticipantID = r.ParticipantID
	m.ActivityLogDeclined = r.Declined
	m.ActivityLogRating = r.Rating
	m.ActivityLogNotes = r.Notes
}
