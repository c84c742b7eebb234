// controllers/webhook.go
package controllers

import (
	"net/http"
	"os"
	"strings"

	"uplift-backend/services"
	"uplift-backend/utils"

	"github.com/gin-gonic/gin"
	twilioClient "github.com/twilio/twilio-go/client"
	"github.com/twilio/twilio-go/twiml"
)

const genericReply = "Thanks for your message! I'm here to support your health journey. 💪"

type WebhookController struct {
	Replies   *services.ReplyService
	Validator *twilioClient.RequestValidator // nil disables signature checks
}

// HandleTwilioReply answers an inbound SMS posted by Twilio. The response is
// always a TwiML message: Twilio must never see an error from this endpoint.
func (wc *WebhookController) HandleTwilioReply(c *gin.Context) {
	if wc.Validator != nil && !wc.validSignature(c) {
		utils.RespondWithError(c, http.StatusForbidden, "Invalid Twilio signature")
		return
	}

	from := c.PostForm("From")
	body := strings.TrimSpace(c.PostForm("Body"))

	response := wc.Replies.HandleInbound(from, body)
	if response == "" {
		response = genericReply
	}

	xml, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: response},
	})
	if err != nil {
		// Last resort so the caller still gets a well-formed reply.
		xml = `<?xml version="1.0" encoding="UTF-8"?><Response><Message>` +
			genericReply + `</Message></Response>`
	}

	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, xml)
}

func (wc *WebhookController) validSignature(c *gin.Context) bool {
	if err := c.Request.ParseForm(); err != nil {
		return false
	}
	params := make(map[string]string, len(c.Request.PostForm))
	for key := range c.Request.PostForm {
		params[key] = c.Request.PostForm.Get(key)
	}

	url := os.Getenv("PUBLIC_BASE_URL") + c.Request.URL.RequestURI()
	return wc.Validator.Validate(url, params, c.GetHeader("X-Twilio-Signature"))
}

// WebhookTest confirms the webhook route is reachable
func (wc *WebhookController) WebhookTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Twilio webhook is working!", "status": "active"})
}
