// file: internals/features/participants/participant/controller/care_partner_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	partDTO "careportal_backend/internals/features/participants/participant/dto"
	partModel "careportal_backend/internals/features/participants/participant/model"
	helper "careportal_backend/internals/helpers"
)

// POST /api/participants/:id/carepartners
// Links a care partner to a participant. The pair is unique; re-linking an
// existing pair answers 409.
func (ctl *ParticipantController) LinkCarePartner(c *fiber.Ctx) error {
	pid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}

	var req partDTO.LinkCarePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	cpID := req.CarePartnerID
	if cpID == pid {
		return helper.JsonError(c, fiber.StatusBadRequest, "participant cannot be their own care partner")
	}

	// Both ends must exist and the care-partner end must actually be one.
	var cpInfo partModel.ParticipantGeneralInfoModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&cpInfo, "general_info_participant_id = ?", cpID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "care partner not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if cpInfo.GeneralInfoType != partModel.TypeCarePartner {
		return helper.JsonError(c, fiber.StatusBadRequest, "linked record is not a care partner")
	}

	link := partModel.CarePartnerLinkModel{
		LinkParticipantID: pid,
		LinkCarePartnerID: cpID,
		LinkRelationship:  req.Relationship,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&link).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "care partner already linked")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).
		Preload("CarePartner").
		Preload("CarePartner.GeneralInfo").
		First(&link, "link_id = ?", link.LinkID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "care partner linked", link)
}

// DELETE /api/participants/:id/carepartners/:link_id
func (ctl *ParticipantController) UnlinkCarePartner(c *fiber.Ctx) error {
	pid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}
	linkID, err := uuid.Parse(c.Params("link_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid link id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&partModel.CarePartnerLinkModel{}, "link_id = ? AND link_participant_id = ?", linkID, pid)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "link not found")
	}
	return helper.JsonDeleted(c, "care partner unlinked", fiber.Map{"link_id": linkID})
}
