// controllers/sms.go
package controllers

import (
	"net/http"

	"uplift-backend/services"
	"uplift-backend/utils"

	"github.com/gin-gonic/gin"
)

// TestSMSRequest defines the expected JSON structure
type TestSMSRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SMSController exposes a direct-send endpoint for development use.
type SMSController struct {
	Sender services.MessageSender
}

// TestSMS sends a one-off SMS, bypassing scheduling and generation
func (sc *SMSController) TestSMS(c *gin.Context) {
	var input TestSMSRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	sid, err := sc.Sender.Send(utils.FormatPhone(input.Phone), input.Message)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send SMS: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SMS sent successfully", "sid": sid})
}
