// file: internals/features/participants/participant/dto/participant_dto.go
package dto

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	partModel "careportal_backend/internals/features/participants/participant/model"
)

// GeneralInfoUpsert replaces the participant_general_info record wholesale;
// the portal's pages always send the full record back.
type GeneralInfoUpsert struct {
	FirstName string   `json:"first_name" validate:"required,max=80"`
	LastName  string   `json:"last_name" validate:"required,max=80"`
	Type      string   `json:"type"`
	Status    string   `json:"status"`
	Phone     *string  `json:"phone"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Address   *string  `json:"address"`
	BirthDate *string  `json:"birth_date"`
	Allergies []string `json:"allergies"`
	Notes     *string  `json:"notes"`
}

func (r *GeneralInfoUpsert) Normalize() error {
	if r.Type == "" {
		r.Type = string(partModel.TypeParticipant)
	}
	if !partModel.ParticipantType(r.Type).Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "type must be Participant or Care Partner")
	}
	if r.Status == "" {
		r.Status = string(partModel.StatusActive)
	}
	if !partModel.ParticipantStatus(r.Status).Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "status must be Active or Inactive")
	}
	return nil
}

// ApplyTo writes the request onto the model (create and update share this).
func (r *GeneralInfoUpsert) ApplyTo(m *partModel.ParticipantGeneralInfoModel, participantID uuid.UUID) {
	m.GeneralInfoParticipantID = participantID
	m.GeneralInfoFirstName = r.FirstName
	m.GeneralInfoLastName = r.LastName
	m.GeneralInfoType = partModel.ParticipantType(r.Type)
	m.GeneralInfoStatus = partModel.ParticipantStatus(r.Status)
	m.GeneralInfoPhone = r.Phone
	m.GeneralInfoEmail = r.Email
	m.GeneralInfoAddress = r.Address
	m.GeneralInfoBirthDate = r.BirthDate
	m.GeneralInfoAllergies = pq.StringArray(r.Allergies)
	m.GeneralInfoNotes = r.Notes
}

// DemographicsUpsert replaces the demographics record wholesale.
type DemographicsUpsert struct {
	Veteran    bool    `json:"veteran"`
	LivesAlone bool    `json:"lives_alone"`
	Rural      bool    `json:"rural"`
	LowIncome  bool    `json:"low_income"`
	Disability bool    `json:"disability"`
	Gender     *string `json:"gender"`
	Race       *string `json:"race"`
	Ethnicity  *string `json:"ethnicity"`
	Language   *string `json:"language"`
	Notes      *string `json:"notes"`
}

func (r *DemographicsUpsert) ApplyTo(m *partModel.ParticipantDemographicsModel, participantID uuid.UUID) {
	m.DemographicsParticipantID = participantID
	m.DemographicsVeteran = r.Veteran
	m.DemographicsLivesAlone = r.LivesAlone
	m.DemographicsRural = r.Rural
	m.DemographicsLowIncome = r.LowIncome
	m.DemographicsDisability = r.Disability
	m.DemographicsGender = r.Gender
	m.DemographicsRace = r.Race
	m.DemographicsEthnicity = r.Ethnicity
	m.DemographicsLanguage = r.Language
	m.DemographicsNotes = r.Notes
}

// UpsertParticipantRequest is the PUT /participants/:id body. Only the
// sub-records present in the payload are touched — each page PUTs just the
// record it owns.
type UpsertParticipantRequest struct {
	GeneralInfo  *GeneralInfoUpsert  `json:"participant_general_info" validate:"omitempty"`
	Demographics *DemographicsUpsert `json:"participant_demographics" validate:"omitempty"`
}

// LinkCarePartnerRequest attaches a care partner to a participant.
type LinkCarePartnerRequest struct {
	CarePartnerID uuid.UUID `json:"care_partner_id" validate:"required"`
	Relationship  *string   `json:"relationship"`
}
