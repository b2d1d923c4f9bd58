package timesheet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tc "shiftclock.app/shiftclock/timeclock/core"
	web "shiftclock.app/shiftclock/web/common"
)

func (ep *Endpoint) ClockOut(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var dto ClockOutDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	ts, err := tc.ClockOut(ep.db, id, dto.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(ts))
}

// Settle promotes a closed-but-DRAFT sheet to PENDING. Called by clients on
// reconnect to heal sheets whose clock-out was interrupted; idempotent.
func (ep *Endpoint) Settle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ts, err := tc.ForceSettle(ep.db, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(ts))
}
