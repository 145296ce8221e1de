// file: internals/features/scheduling/schedules/controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	schedDTO "careportal_backend/internals/features/scheduling/schedules/dto"
	schedModel "careportal_backend/internals/features/scheduling/schedules/model"
	helper "careportal_backend/internals/helpers"
)

type ScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/schedule/schedules
// The dashboard joins the whole table client-side, so no pagination here;
// optional participant_id narrows to one participant's history.
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&schedModel.ScheduleModel{})

	if pidStr := c.Query("participant_id"); pidStr != "" {
		pid, err := uuid.Parse(pidStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant_id")
		}
		tx = tx.Where("schedule_participant_id = ?", pid)
	}
	if month := c.Query("month"); month != "" {
		tx = tx.Where("schedule_month = ?", month)
	}
	if year := c.QueryInt("year"); year != 0 {
		tx = tx.Where("schedule_year = ?", year)
	}

	var rows []schedModel.ScheduleModel
	if err := tx.Order("schedule_year DESC, schedule_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/schedule/schedule/:participant_id
// Upsert of the (participant, month, year) template row; the unique index
// guarantees at most one row per key.
func (ctl *ScheduleController) UpsertForParticipant(c *fiber.Ctx) error {
	pid, err := uuid.Parse(c.Params("participant_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}

	var req schedDTO.UpsertScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := req.Normalize(); err != nil {
		return helper.FromFiberError(c, err)
	}

	var row schedModel.ScheduleModel
	created := false
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("schedule_participant_id = ? AND schedule_month = ? AND schedule_year = ?", pid, req.Month, req.Year).
			First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = schedModel.ScheduleModel{
				ScheduleParticipantID: pid,
				ScheduleMonth:         req.Month,
				ScheduleYear:          req.Year,
				ScheduleDays:          datatypes.NewJSONType(req.Schedule),
				ScheduleToileting:     req.Toileting,
			}
			if err := tx.Create(&row).Error; err != nil {
				if helper.IsDuplicateKey(err) {
					return fiber.NewError(fiber.StatusConflict, "schedule already exists for this month")
				}
				return err
			}
			created = true
			return nil
		case err != nil:
			return err
		default:
			row.ScheduleDays = datatypes.NewJSONType(req.Schedule)
			row.ScheduleToileting = req.Toileting
			return tx.Save(&row).Error
		}
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if created {
		return helper.JsonCreated(c, "schedule created", row)
	}
	return helper.JsonUpdated(c, "schedule updated", row)
}
