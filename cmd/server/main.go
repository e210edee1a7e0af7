package main

import (
	"log"

	"project-management-api/internal/cache"
	"project-management-api/internal/config"
	"project-management-api/internal/database"
	"project-management-api/internal/handlers"
	"project-management-api/internal/mailer"
	"project-management-api/internal/notify"
	"project-management-api/internal/realtime"
	"project-management-api/internal/routes"
)

func main() {
	cfg := config.Load()

	// Init database
	database.InitDB(cfg.DBPath)

	// Wire the side-effect pipeline: listing cache, async mailer,
	// websocket hub, notification emitter.
	listings := cache.NewListings()
	mail := mailer.New(mailer.NewSender(cfg))
	hub := realtime.NewHub()
	notifier := notify.New(database.GetDB(), mail, hub)

	h := handlers.New(database.GetDB(), listings, notifier, hub)
	ginRoutes := routes.SetupRoutes(h)

	addr := ":" + cfg.ServerPort
	log.Printf("Server starting on port %s", addr)
	log.Println("API endpoints:")
	log.Println("  POST   /api/token")
	log.Println("  POST   /api/token/refresh")
	log.Println("  GET/POST/PUT/DELETE /api/projects")
	log.Println("  GET/POST/PUT/DELETE /api/tasks")
	log.Println("  GET/POST/PUT/DELETE /api/milestones")
	log.Println("  PUT    /api/assign-task")
	log.Println("  GET    /api/notifications")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
