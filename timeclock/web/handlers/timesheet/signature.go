package timesheet

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shiftclock.app/shiftclock/core/models"
	web "shiftclock.app/shiftclock/web/common"
)

// GetSignature streams the caller's stored signature image.
func (ep *Endpoint) GetSignature(c *gin.Context) {
	if ep.signatures == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("signature storage not configured"))
		return
	}

	var user models.User
	if err := ep.db.First(&user, "id = ?", currentUserID(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("user not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("Something went wrong, please try again"))
		return
	}
	if user.SignatureKey == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("no signature on file"))
		return
	}

	c.Header("Content-Type", "image/png")
	if err := ep.signatures.Read(c.Request.Context(), *user.SignatureKey, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("Something went wrong, please try again"))
	}
}

// PutSignature uploads a new signature image and records its key on the user.
func (ep *Endpoint) PutSignature(c *gin.Context) {
	if ep.signatures == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("signature storage not configured"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("empty signature image"))
		return
	}

	userID := currentUserID(c)
	key := "signatures/" + userID + ".png"
	if err := ep.signatures.Write(c.Request.Context(), key, data); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("Something went wrong, please try again"))
		return
	}

	if err := ep.db.Model(&models.User{}).Where("id = ?", userID).
		Update("signature_key", key).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("Something went wrong, please try again"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"signatureKey": key}))
}
