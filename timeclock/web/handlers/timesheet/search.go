package timesheet

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shiftclock.app/shiftclock/core/models"
	tc "shiftclock.app/shiftclock/timeclock/core"
	web "shiftclock.app/shiftclock/web/common"
)

func (ep *Endpoint) Search(c *gin.Context) {
	var dto SearchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	limit := 100
	offset := 0
	if val, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = val
	}
	if val, err := strconv.Atoi(c.Query("offset")); err == nil {
		offset = val
	}

	params := tc.SearchParams{
		StartDate: dto.StartDate.Time,
		EndDate:   dto.EndDate.Time,
		UserIDs:   dto.Users,
		Jobsites:  dto.Jobsites,
	}
	for _, s := range dto.Statuses {
		params.Statuses = append(params.Statuses, models.TimeSheetStatus(s))
	}

	sheets, total, err := tc.SearchTimesheets(ep.db, params, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(sheets, total))
}

// Export streams approved sheets in the range as an xlsx workbook.
func (ep *Endpoint) Export(c *gin.Context) {
	var dto ExportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	f, err := tc.ExportTimesheets(ep.db, dto.StartDate.Time, dto.EndDate.Time)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := "timesheets_" + dto.StartDate.Format("2006-01-02") + "_" + dto.EndDate.Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("Something went wrong, please try again"))
	}
}
