// file: internals/features/participants/services/dto/service_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	svcModel "careportal_backend/internals/features/participants/services/model"
	rosterSvc "careportal_backend/internals/features/scheduling/dashboard/service"
)

// ServiceEntryUpsert is the single-entry payload wrapped under
// participant_services by the portal's CaseServices page.
type ServiceEntryUpsert struct {
	EntryID *string `json:"entry_id"`

	Code string `json:"code" validate:"required,max=20"`
	Type string `json:"type" validate:"required,max=60"`

	Minutes int     `json:"minutes" validate:"gte=0"`
	Units   float64 `json:"units" validate:"gte=0"`

	ServiceDate string  `json:"service_date" validate:"required"`
	PostingDate *string `json:"posting_date"`

	Notes *string `json:"notes"`
}

type UpsertServiceRequest struct {
	ParticipantServices ServiceEntryUpsert `json:"participant_services" validate:"required"`
}

// EntryUUID parses entry_id; uuid.Nil means a new entry.
func (r *ServiceEntryUpsert) EntryUUID() uuid.UUID {
	if r.EntryID == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*r.EntryID))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (r *ServiceEntryUpsert) Normalize() error {
	r.Code = strings.TrimSpace(r.Code)
	r.Type = strings.TrimSpace(r.Type)

	if _, err := time.Parse(rosterSvc.DateLayout, r.ServiceDate); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "service_date must be YYYY-MM-DD")
	}
	if r.PostingDate != nil && *r.PostingDate != "" {
		if _, err := time.Parse(rosterSvc.DateLayout, *r.PostingDate); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "posting_date must be YYYY-MM-DD")
		}
	}
	return nil
}

func (r *ServiceEntryUpsert) ApplyTo(m *svcModel.ParticipantServiceModel, participantID uuid.UUID) {
	m.ServiceParticipantID = participantID
	m.ServiceCode = r.Code
	m.ServiceType = r.Type
	m.ServiceMinutes = r.Minutes
	m.ServiceUnits = r.Units
	m.ServiceDate = r.ServiceDate
	m.ServicePostingDate = r.PostingDate
	m.ServiceNotes = r.Notes
}
