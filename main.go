package main

import (
	"context"
	"fmt"
	"highrange-backend/controller"
	"highrange-backend/models"
	"highrange-backend/services"
	"highrange-backend/utils"
	"highrange-backend/utils/logger"
	"highrange-backend/worker"
	"log"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title Highrange Coffee Exports API
// @version 1.0
// @description Inbound enquiry pipeline for Highrange Coffee Exports: general
// @description enquiries, supplier registrations and bulk trade enquiries are
// @description validated, gated by reCAPTCHA and forwarded by email to the
// @description operations team, with an acknowledgment copy to the submitter.
// @description
// @description When mail credentials are absent the pipeline runs in dry-run
// @description mode and composed messages are logged instead of sent (the
// @description trade endpoint rejects this and reports a configuration error).

// @contact.name Highrange Coffee Exports
// @contact.url https://highrangecoffee.in
// @contact.email info@highrangecoffee.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1
func main() {
	Init()
	fmt.Println("Config Loaded ::", utils.PrintPrettyJSON(config.Redacted()))

	ctx := context.Background()

	r := gin.New()
	metrics := services.NewMetrics()
	c := controller.NewController(ctx, config, metrics, logger.NewLogger(config.LogLevel, config.LogFormat))

	// Start server (this is blocking)
	go c.RegisterRoutes(ctx, config, r, config.BasePath)

	digest, err := worker.NewService(config, metrics, logger.NewLogger(config.LogLevel, config.LogFormat))
	if err != nil {
		log.Fatalf("Failed to create stats digest worker: %v", err)
	}

	if err := digest.StartInBackground(); err != nil {
		log.Fatalf("Failed to start stats digest worker: %v", err)
	}

	// Keep main goroutine alive
	select {}
}
