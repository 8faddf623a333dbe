package main

import (
	"context"
	"log"
	"net/http"

	"food-delivery-client/api"
	"food-delivery-client/config"
	"food-delivery-client/handlers"
	"food-delivery-client/routes"
	"food-delivery-client/session"
	"food-delivery-client/storage"
	"food-delivery-client/web"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.InitStore(cfg.StorePath)
	if err != nil {
		log.Fatal("Failed to open client store:", err)
	}
	store := storage.NewGormStore(db)

	client := api.NewClient(cfg.APIBaseURL, &http.Client{}, store)
	mgr := session.NewManager(store, client)
	if _, err := mgr.Restore(context.Background()); err != nil {
		log.Printf("⚠️ Could not restore session: %v", err)
	}

	cookies := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	// Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	h := handlers.New(mgr, client, cookies)
	routes.SetupRoutes(r, h, mgr, client.BaseURL())

	log.Printf("🚀 Client running on http://localhost%s (backend %s)", cfg.ListenAddr, client.BaseURL())
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
