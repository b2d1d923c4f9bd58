package timesheet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	tc "shiftclock.app/shiftclock/timeclock/core"
	web "shiftclock.app/shiftclock/web/common"
)

func (ep *Endpoint) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ts, err := tc.GetTimesheetDetail(ep.db, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(ts))
}

// Active answers "am I clocked in": the open sheet's id, or null.
func (ep *Endpoint) Active(c *gin.Context) {
	id, err := tc.GetActiveTimesheet(ep.db, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"timesheetId": id}))
}

func (ep *Endpoint) Recent(c *gin.Context) {
	ts, err := tc.GetRecentTimesheet(ep.db, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(ts))
}

func (ep *Endpoint) Banner(c *gin.Context) {
	banner, err := tc.GetBannerData(ep.db, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(banner))
}

func (ep *Endpoint) DashboardLogs(c *gin.Context) {
	logs, err := tc.GetDashboardLogs(ep.db, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(logs))
}

func (ep *Endpoint) ClockOutDetails(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("invalid date format"))
			return
		}
		day = parsed
	}

	details, err := tc.GetClockOutDetails(ep.db, currentUserID(c), day)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(details))
}

// History returns the sheet's audit trail, newest entry first.
func (ep *Endpoint) History(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entries, err := tc.ChangeHistory(ep.db, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(entries))
}
