// file: internals/features/activities/controller/activity_log_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	actDTO "careportal_backend/internals/features/activities/dto"
	actModel "careportal_backend/internals/features/activities/model"
	helper "careportal_backend/internals/helpers"
)

// GET /api/activities/:id/logs
func (ctl *ActivityController) ListLogs(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid activity id")
	}

	var rows []actModel.ActivityLogModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("activity_log_activity_id = ?", id).
		Order("activity_log_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/activities/:id/logs
// Upsert keyed (activity, participant): posting again edits the existing log.
func (ctl *ActivityController) UpsertLog(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid activity id")
	}

	var req actDTO.UpsertActivityLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).
		Select("activity_id").
		First(&actModel.ActivityModel{}, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "activity not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var row actModel.ActivityLogModel
	created := false
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&row,
			"activity_log_activity_id = ? AND activity_log_participant_id = ?",
			id, req.ParticipantID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			req.ApplyTo(&row, id)
			created = true
			return tx.Create(&row).Error
		case err != nil:
			return err
		}
		req.ApplyTo(&row, id)
		return tx.Save(&row).Error
	})
	if err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "log already exists for this participant")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if created {
		return helper.JsonCreated(c, "activity log created", row)
	}
	return helper.JsonUpdated(c, "activity log updated", row)
}

// DELETE /api/activities/:id/logs/:log_id
func (ctl *ActivityController) DeleteLog(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid activity id")
	}
	logID, err := uuid.Parse(c.Params("log_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid log id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&actModel.ActivityLogModel{},
			"activity_log_id = ? AND activity_log_activity_id = ?", logID, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "activity log not found")
	}
	return helper.JsonDeleted(c, "activity log deleted", fiber.Map{"log_id": logID})
}

// GET /api/participants/:id/activity-logs
// One participant's full activity history, newest activity first.
func (ctl *ActivityController) ListByParticipant(c *fiber.Ctx) error {
	pid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}

	type logWithActivity struct {
		actModel.ActivityLogModel
		ActivityName  string  `gorm:"column:activity_name" json:"activity_name"`
		ActivityDate  string  `gorm:"column:activity_date" json:"activity_date"`
		ActivityStart *string `gorm:"column:activity_start" json:"activity_start,omitempty"`
	}

	var rows []logWithActivity
	if err := ctl.DB.WithContext(c.Context()).
		Model(&actModel.ActivityLogModel{}).
		Select("activity_logs.*, a.activity_name, a.activity_date, a.activity_start").
		Joins("JOIN activities a ON a.activity_id = activity_logs.activity_log_activity_id AND a.activity_deleted_at IS NULL").
		Where("activity_log_participant_id = ?", pid).
		Order("a.activity_date DESC, a.activity_start DESC NULLS LAST").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}
