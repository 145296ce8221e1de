// file: internals/features/activities/controller/activity_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	actDTO "careportal_backend/internals/features/activities/dto"
	actModel "careportal_backend/internals/features/activities/model"
	helper "careportal_backend/internals/helpers"
)

type ActivityController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/activities
// Newest first; optional ?date= and ?tag= filters.
func (ctl *ActivityController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&actModel.ActivityModel{})

	if date := strings.TrimSpace(c.Query("date")); date != "" {
		tx = tx.Where("activity_date = ?", date)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		tx = tx.Where("? = ANY(activity_tags)", tag)
	}

	var rows []actModel.ActivityModel
	if err := tx.Order("activity_date DESC, activity_start DESC NULLS LAST").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/activities/:id
func (ctl *ActivityController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid activity id")
	}

	var row actModel.ActivityModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "activity not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", row)
}

// POST /api/activities
func (ctl *ActivityController) Create(c *fiber.Ctx) error {
	var req actDTO.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := req.Normalize(); err != nil {
		return helper.FromFiberError(c, err)
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "activity created", row)
}

// DELETE /api/activities/:id
// Soft-deletes the activity and its logs together.
func (ctl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid activity id")
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&actModel.ActivityModel{}, "activity_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "activity not found")
		}
		return tx.Delete(&actModel.ActivityLogModel{}, "activity_log_activity_id = ?", id).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "activity deleted", fiber.Map{"id": id})
}
