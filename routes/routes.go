package routes

import (
	"uplift-backend/config"
	"uplift-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers bundles the handler sets wired into the router.
type Controllers struct {
	Schedules *controllers.ScheduleController
	Webhooks  *controllers.WebhookController
	SMS       *controllers.SMSController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", controllers.HealthCheck)

	r.POST("/schedule", ctrl.Schedules.CreateSchedule)
	r.DELETE("/schedule/:id", ctrl.Schedules.CancelSchedule)
	r.GET("/schedules/:phone", ctrl.Schedules.ListSchedules)

	r.POST("/test-sms", ctrl.SMS.TestSMS)

	webhooks := r.Group("/webhook")
	{
		webhooks.POST("/twilio-reply", ctrl.Webhooks.HandleTwilioReply)
		webhooks.GET("/webhook-test", ctrl.Webhooks.WebhookTest)
	}

	return r
}
