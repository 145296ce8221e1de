// file: internals/features/participants/participant/controller/participant_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	partDTO "careportal_backend/internals/features/participants/participant/dto"
	partModel "careportal_backend/internals/features/participants/participant/model"
	helper "careportal_backend/internals/helpers"
)

type ParticipantController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewParticipantController(db *gorm.DB) *ParticipantController {
	return &ParticipantController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *ParticipantController) preloadAggregate(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("GeneralInfo").
		Preload("Demographics").
		Preload("Services").
		Preload("CarePartners").
		Preload("CarePartners.CarePartner").
		Preload("CarePartners.CarePartner.GeneralInfo")
}

// GET /api/participants
// Server-side versions of the ManageRecords page's search/filter/sort:
// ?search= (substring on first or last name, case-insensitive), ?status=,
// ?carepartner_id=, ?sort=last_name|active.
func (ctl *ParticipantController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&partModel.ParticipantModel{}).
		Joins("JOIN participant_general_info gi ON gi.general_info_participant_id = participants.participant_id AND gi.general_info_deleted_at IS NULL")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		tx = tx.Where(
			"LOWER(gi.general_info_first_name) LIKE ? OR LOWER(gi.general_info_last_name) LIKE ?",
			needle, needle,
		)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !partModel.ParticipantStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status must be Active or Inactive")
		}
		tx = tx.Where("gi.general_info_status = ?", status)
	}
	if ptype := strings.TrimSpace(c.Query("type")); ptype != "" {
		if !partModel.ParticipantType(ptype).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "type must be Participant or Care Partner")
		}
		tx = tx.Where("gi.general_info_type = ?", ptype)
	}
	if cpStr := strings.TrimSpace(c.Query("carepartner_id")); cpStr != "" {
		cpID, err := uuid.Parse(cpStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid carepartner_id")
		}
		tx = tx.Where(
			"EXISTS (SELECT 1 FROM participant_care_partners l WHERE l.link_participant_id = participants.participant_id AND l.link_care_partner_id = ? AND l.link_deleted_at IS NULL)",
			cpID,
		)
	}

	switch c.Query("sort", "last_name") {
	case "active":
		// Active first, then alphabetical by last name.
		tx = tx.Order("CASE WHEN gi.general_info_status = 'Active' THEN 0 ELSE 1 END, LOWER(gi.general_info_last_name) ASC")
	case "first_name":
		tx = tx.Order("LOWER(gi.general_info_first_name) ASC")
	default:
		tx = tx.Order("LOWER(gi.general_info_last_name) ASC")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// ManageRecords loads everything by default; ?page/?per_page narrow it.
	paging := helper.ResolvePaging(c, int(total), 0)

	var rows []partModel.ParticipantModel
	if err := ctl.preloadAggregate(tx).
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/participants/:id
func (ctl *ParticipantController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}

	var row partModel.ParticipantModel
	if err := ctl.preloadAggregate(ctl.DB.WithContext(c.Context())).
		First(&row, "participant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "participant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", row)
}

// PUT /api/participants/:id
// Upsert: the portal generates the uuid on create and PUTs page-sized slices
// of the aggregate afterward. Sub-records absent from the payload are left
// alone.
func (ctl *ParticipantController) Upsert(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}

	var req partDTO.UpsertParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.GeneralInfo != nil {
		if err := req.GeneralInfo.Normalize(); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	created := false
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var root partModel.ParticipantModel
		err := tx.First(&root, "participant_id = ?", id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if req.GeneralInfo == nil {
				return fiber.NewError(fiber.StatusBadRequest, "participant_general_info is required on create")
			}
			root = partModel.ParticipantModel{ParticipantID: id}
			if err := tx.Create(&root).Error; err != nil {
				return err
			}
			created = true
		case err != nil:
			return err
		}

		if req.GeneralInfo != nil {
			var info partModel.ParticipantGeneralInfoModel
			err := tx.First(&info, "general_info_participant_id = ?", id).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			req.GeneralInfo.ApplyTo(&info, id)
			if err := tx.Save(&info).Error; err != nil {
				return err
			}
		}

		if req.Demographics != nil {
			var demo partModel.ParticipantDemographicsModel
			err := tx.First(&demo, "demographics_participant_id = ?", id).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			req.Demographics.ApplyTo(&demo, id)
			if err := tx.Save(&demo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row partModel.ParticipantModel
	if err := ctl.preloadAggregate(ctl.DB.WithContext(c.Context())).
		First(&row, "participant_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if created {
		return helper.JsonCreated(c, "participant created", row)
	}
	return helper.JsonUpdated(c, "participant updated", row)
}

// DELETE /api/participants/:id
// Soft-deletes the aggregate: root plus its sub-records and links.
func (ctl *ParticipantController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid participant id")
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&partModel.ParticipantModel{}, "participant_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "participant not found")
		}
		if err := tx.Delete(&partModel.ParticipantGeneralInfoModel{}, "general_info_participant_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&partModel.ParticipantDemographicsModel{}, "demographics_participant_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&partModel.CarePartnerLinkModel{},
			"link_participant_id = ? OR link_care_partner_id = ?", id, id).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "participant deleted", fiber.Map{"id": id})
}
