package timesheet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tc "shiftclock.app/shiftclock/timeclock/core"
	web "shiftclock.app/shiftclock/web/common"
)

func (ep *Endpoint) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var dto UpdateTimesheetDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	result, err := tc.UpdateTimesheet(ep.db, id, currentUserID(c), dto.toInput(), dto.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(result))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := tc.DeleteTimesheet(ep.db, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}

func (ep *Endpoint) Approve(c *gin.Context) {
	var dto ApproveBatchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	result, err := tc.ApproveBatch(ep.db, dto.UserID, dto.IDs, dto.Comment, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(result))
}
