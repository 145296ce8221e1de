// file: internals/features/scheduling/attendance/controller/attendance_export_controller.go
package controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	partModel "careportal_backend/internals/features/participants/participant/model"
	attModel "careportal_backend/internals/features/scheduling/attendance/model"
	rosterSvc "careportal_backend/internals/features/scheduling/dashboard/service"
	helper "careportal_backend/internals/helpers"
)

// GET /api/schedule/attendance/export?start=YYYY-MM-DD&end=YYYY-MM-DD
// Attendance report for a date range as a CSV download, names joined in and
// times rendered in 12-hour form like the printed roster.
func (ctl *AttendanceController) Export(c *fiber.Ctx) error {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "start and end are required (YYYY-MM-DD)")
	}
	for _, d := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("invalid date %q", d))
		}
	}
	if end < start {
		return helper.JsonError(c, fiber.StatusBadRequest, "end must not precede start")
	}

	var rows []attModel.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_date >= ? AND attendance_date <= ?", start, end).
		Order("attendance_date ASC, attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// One name lookup pass instead of a query per row.
	pids := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]struct{}, len(rows))
	for i := range rows {
		pid := rows[i].AttendanceParticipantID
		if _, ok := seen[pid]; !ok {
			seen[pid] = struct{}{}
			pids = append(pids, pid)
		}
	}
	names := make(map[uuid.UUID][2]string, len(pids))
	if len(pids) > 0 {
		var infos []partModel.ParticipantGeneralInfoModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("general_info_participant_id IN ?", pids).
			Find(&infos).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for i := range infos {
			names[infos[i].GeneralInfoParticipantID] = [2]string{
				infos[i].GeneralInfoFirstName,
				infos[i].GeneralInfoLastName,
			}
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Date", "First Name", "Last Name", "Session", "In", "Out", "Code"})
	for i := range rows {
		row := &rows[i]
		name := names[row.AttendanceParticipantID]
		record := []string{
			row.AttendanceDate,
			name[0],
			name[1],
			string(row.SessionOrEmpty()),
			rosterSvc.FormatTime12Hour(row.InOrEmpty()),
			rosterSvc.FormatTime12Hour(row.OutOrEmpty()),
			row.CodeOrEmpty(),
		}
		if err := w.Write(record); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="attendance_%s_%s.csv"`, start, end))
	return c.Send(buf.Bytes())
}
