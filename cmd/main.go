package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"connect-skills/infrastructure"
	"connect-skills/interfaces"
)

func main() {
	// Load .env
	_ = godotenv.Load()

	// Connect DB
	db := infrastructure.NewMySQLConnection()

	// Connect RabbitMQ
	rmq := infrastructure.NewRabbitMQ()

	// Init scoring client
	scorer := infrastructure.NewScoringClient()

	// Mail worker consumer → drains the notification queue in background.
	// Errors are logged here and never reach the request path.
	mailer := infrastructure.NewMailer()
	rmq.ConsumeNotifications(func(n infrastructure.Notification) error {
		logrus.WithFields(logrus.Fields{
			"email": n.CandidatoEmail,
			"vaga":  n.VagaTitulo,
		}).Info("📥 Worker processing notification")
		return mailer.SendEvaluationResult(n)
	})

	// Setup Gin router
	router := gin.Default()
	interfaces.NewHTTPHandler(router, db, scorer, rmq)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("🚀 Server running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal(err)
	}
}
