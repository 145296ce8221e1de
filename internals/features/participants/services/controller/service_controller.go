// file: internals/features/participants/services/controller/service_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	partModel "careportal_backend/internals/features/participants/participant/model"
	svcDTO "careportal_backend/internals/features/participants/services/dto"
	svcModel "careportal_backend/internals/features/participants/services/model"
	helper "careportal_backend/internals/helpers"
)

type ServiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// PUT /api/participants/participant_services/:participant_id
// Upserts one entry. An entry_id that parses to an existing row edits that row;
// anything else creates.
func (ctl *ServiceController) Upsert(c *fiber.Ctx) error {
	pid, err := uuid.Parse(c.Params("participant_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}

	var req svcDTO.UpsertServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	entry := &req.ParticipantServices
	if err := entry.Normalize(); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).
		Select("participant_id").
		First(&partModel.ParticipantModel{}, "participant_id = ?", pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "participant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var row svcModel.ParticipantServiceModel
	created := false
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if entryID := entry.EntryUUID(); entryID != uuid.Nil {
			err := tx.First(&row, "service_entry_id = ? AND service_participant_id = ?", entryID, pid).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				// stale id from the client, fall through to create
			case err != nil:
				return err
			default:
				entry.ApplyTo(&row, pid)
				return tx.Save(&row).Error
			}
		}

		row = svcModel.ParticipantServiceModel{}
		entry.ApplyTo(&row, pid)
		created = true
		return tx.Create(&row).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if created {
		return helper.JsonCreated(c, "service entry created", row)
	}
	return helper.JsonUpdated(c, "service entry updated", row)
}

// DELETE /api/participants/participant_services/:participant_id?entry_id=
func (ctl *ServiceController) Delete(c *fiber.Ctx) error {
	pid, err := uuid.Parse(c.Params("participant_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}
	entryID, err := uuid.Parse(c.Query("entry_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "entry_id query param is required")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&svcModel.ParticipantServiceModel{},
			"service_entry_id = ? AND service_participant_id = ?", entryID, pid)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "service entry not found")
	}
	return helper.JsonDeleted(c, "service entry deleted", fiber.Map{"entry_id": entryID})
}
