// file: internals/features/scheduling/dashboard/dto/dashboard_dto.go
package dto

import (
	"github.com/google/uuid"

	partModel "careportal_backend/internals/features/participants/participant/model"
)

// CandidateResponse is one entry in the add-unscheduled-participant search
// results: just enough to render the picker.
type CandidateResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewCandidateResponses(participants []partModel.ParticipantModel) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(participants))
	for i := range participants {
		out = append(out, CandidateResponse{
			ID:   participants[i].ParticipantID,
			Name: participants[i].FullName(),
		})
	}
	return out
}
