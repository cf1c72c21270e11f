package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chedan888/BBQ/internal/config"
	"github.com/chedan888/BBQ/internal/kiosk"
	"github.com/chedan888/BBQ/internal/kv"
	"github.com/chedan888/BBQ/internal/menu"
	"github.com/chedan888/BBQ/internal/menuimport"
	"github.com/chedan888/BBQ/internal/middleware"
	"github.com/chedan888/BBQ/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg := config.Load()

	// ───────────────────────── BLOB STORE ─────────────────────────
	blobs, err := kv.OpenSQLiteStore(cfg.DataPath)
	if err != nil {
		log.Fatal("❌ Blob store init failed:", err)
	}
	defer blobs.Close()

	menuStore := menu.NewStore(menu.NewKVRepository(blobs))
	menuStore.Load(context.Background())

	// ───────────────────────── IMPORT COLLABORATOR ─────────────────────────
	var archive menuimport.Archive
	if cfg.R2Configured() {
		r2, err := storage.NewR2Client(context.Background(), storage.R2Config{
			Endpoint:      cfg.R2Endpoint,
			AccessKey:     cfg.R2AccessKey,
			SecretKey:     cfg.R2SecretKey,
			Bucket:        cfg.R2Bucket,
			PublicBaseURL: cfg.R2PublicBaseURL,
		})
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archive = r2
	} else {
		archive = storage.NewLocalDir(cfg.UploadDir)
	}

	var importClient menuimport.Client
	if cfg.GeminiConfigured() {
		importClient = menuimport.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	importer := menuimport.NewService(importClient, archive)

	// ───────────────────────── SESSION ─────────────────────────
	session := kiosk.NewSession(menuStore, importer, cfg.AdminPIN)

	handler := kiosk.NewHandler(session)
	adminHandler := kiosk.NewAdminHandler(session)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	r.GET("/menu", handler.GetMenu)
	r.GET("/session", handler.GetState)
	r.POST("/cart/items/:id", handler.UpdateCart)

	// ───────────────────────── BILL ROUTES ─────────────────────────
	r.POST("/checkout", handler.Checkout)
	r.POST("/bill/back", handler.BackToCatalog)
	r.GET("/bill", handler.GetBill)
	r.GET("/bill/export", handler.ExportBill)
	r.PUT("/bill/spice", handler.SetSpice)

	// ───────────────────────── ADMIN GATE ─────────────────────────
	r.POST("/admin/login", handler.AdminLogin)
	r.POST("/admin/logout", handler.AdminLogout)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdminView(session))
	{
		admin.POST("/items", adminHandler.AddItem)
		admin.DELETE("/items/:id", adminHandler.DeleteItem)

		admin.POST("/menu/import", adminHandler.ImportMenu)
		admin.POST("/menu/import/:id/confirm", adminHandler.ConfirmImport)
		admin.DELETE("/menu/import/:id", adminHandler.DiscardImport)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🍢 Kiosk API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
