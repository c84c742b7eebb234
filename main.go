package main

import (
	"fmt"
	"log"
	"os"

	"uplift-backend/config"
	"uplift-backend/controllers"
	"uplift-backend/models"
	"uplift-backend/routes"
	"uplift-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	twilioClient "github.com/twilio/twilio-go/client"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Schedule{},
		&models.MessageLog{},
		&models.ReplyLog{},
	)
}

func main() {
	content := services.NewGPTClient()
	sender := services.NewTwilioSender()

	pipeline := services.NewDeliveryPipeline(config.DB, content, sender)
	scheduler := services.NewCronScheduler(pipeline)

	scheduleSvc := services.NewScheduleService(config.DB, scheduler)
	replySvc := services.NewReplyService(config.DB, content)

	// The cron registry is empty after every restart; re-register active
	// schedules before accepting traffic.
	if err := scheduleSvc.RebuildTriggers(); err != nil {
		log.Printf("Trigger rebuild failed: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	webhooks := &controllers.WebhookController{Replies: replySvc}
	if token := os.Getenv("TWILIO_AUTH_TOKEN"); token != "" && os.Getenv("TWILIO_VALIDATE_WEBHOOK") == "true" {
		v := twilioClient.NewRequestValidator(token)
		webhooks.Validator = &v
	}

	r := routes.SetupRouter(routes.Controllers{
		Schedules: &controllers.ScheduleController{Schedules: scheduleSvc},
		Webhooks:  webhooks,
		SMS:       &controllers.SMSController{Sender: sender},
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
