package timesheet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tc "shiftclock.app/shiftclock/timeclock/core"
	web "shiftclock.app/shiftclock/web/common"
)

// Create clocks the caller in. Admins may pass userId to enter a sheet on a
// worker's behalf, which starts it at PENDING instead of DRAFT.
func (ep *Endpoint) Create(c *gin.Context) {
	var dto CreateTimesheetDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ts, err := tc.CreateTimesheet(ep.db, dto.toInput(currentUserID(c)))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, web.NewSuccessResponse(ts))
}

// Switch closes the previous sheet and opens the next in one transaction.
func (ep *Endpoint) Switch(c *gin.Context) {
	var dto SwitchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	result, err := tc.SwitchJobs(ep.db, dto.PreviousID,
		dto.Next.toInput(currentUserID(c)), dto.ClockOut.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(result))
}
