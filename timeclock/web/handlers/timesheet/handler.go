package timesheet

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shiftclock.app/shiftclock/infrastructure/filesystem"
	tc "shiftclock.app/shiftclock/timeclock/core"
	web "shiftclock.app/shiftclock/web/common"
	"shiftclock.app/shiftclock/web/middlewares"
)

type Endpoint struct {
	db         *gorm.DB
	signatures *filesystem.SignatureStore
}

func Register(r *gin.RouterGroup, db *gorm.DB, signatures *filesystem.SignatureStore) {
	endpoint := &Endpoint{db: db, signatures: signatures}

	r.POST("/timesheets", endpoint.Create)
	r.POST("/timesheets/switch", endpoint.Switch)
	r.POST("/timesheets/:id/clock-out", endpoint.ClockOut)
	r.POST("/timesheets/:id/settle", endpoint.Settle)
	r.PUT("/timesheets/:id", endpoint.Update)
	r.DELETE("/timesheets/:id", endpoint.Delete)
	r.POST("/timesheets/approve", endpoint.Approve)

	r.GET("/timesheets/active", endpoint.Active)
	r.GET("/timesheets/recent", endpoint.Recent)
	r.GET("/timesheets/banner", endpoint.Banner)
	r.GET("/timesheets/dashboard-logs", endpoint.DashboardLogs)
	r.GET("/timesheets/clock-out-details", endpoint.ClockOutDetails)
	r.GET("/timesheets/:id", endpoint.Get)
	r.GET("/timesheets/:id/history", endpoint.History)
	r.POST("/timesheets/search", endpoint.Search)
	r.POST("/timesheets/export", endpoint.Export)

	r.GET("/signature", endpoint.GetSignature)
	r.PUT("/signature", endpoint.PutSignature)
}

// respondError maps the engine's error taxonomy onto HTTP. Infrastructure
// failures stay generic so driver details never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case tc.IsValidation(err):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
	case tc.IsNotFound(err):
		c.JSON(http.StatusNotFound, web.NewErrorResponse(err.Error()))
	case tc.IsInvalidState(err):
		c.JSON(http.StatusConflict, web.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("Something went wrong, please try again"))
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middlewares.ContextUserID)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return uint(id), true
}
