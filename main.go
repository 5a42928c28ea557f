package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bandserver/api"
	"bandserver/config"
	"bandserver/db"
	"bandserver/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Bandserver API
// @version         1.0.0

// @description     ## Bandserver API
// @description
// @description     Content server for a band's promo site and its admin panel. All content (catalog,
// @description     podcasts, gallery, merch, fan wall) and every settings singleton live in a single
// @description     JSON store persisted to disk.
// @description
// @description     Routes fall into three groups:
// @description     *   `/site/*` — public, read-mostly. Only active content and approved comments are served.
// @description     *   `/admin/*` — the CMS, behind bearer-token auth.
// @description     *   `/auth/*` — login and credential management.
// @description
// @description     **Content search (`/admin/search`):**
// @description     Filter any collection with repeated `query` parameters alternating conditions and
// @description     logical operators. A condition is `path operator value`:
// @description     *   `path`: a field path into the entity's JSON form (e.g. `title`, `albumId`).
// @description     *   `operator`: `equals`, `notequals`, `contains`, `startswith`, `endswith`,
// @description         `greaterthan`, `lessthan`, `greaterthanorequals`, `lessthanorequals`.
// @description         String operators accept an `-insensitive` suffix (e.g. `contains-insensitive`).
// @description     *   `value`: strings in double quotes, numbers, booleans and `null` bare.
// @description
// @description     Example: `?collection=albums&query=genre equals "electronic"&query=and&query=isActive equals true`

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.jwt BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("CRITICAL: Failed to load configuration: %v", err)
	}

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("CRITICAL: Failed to initialize content store: %v", err)
	}

	router := buildRouter(database, cfg)

	// Flush any pending store write on SIGINT/SIGTERM.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Printf("INFO: Shutting down...")
		if err := database.Close(); err != nil {
			log.Printf("ERROR: Store flush on shutdown failed: %v", err)
		}
		os.Exit(0)
	}()

	listenAddr := fmt.Sprintf("%s:%s", cfg.ListenAddress, cfg.ListenPort)
	log.Printf("INFO: Starting server on %s", listenAddr)

	server := &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("CRITICAL: Server failed to start: %v", err)
	}
}

// buildRouter wires every route group. Split out of main so the integration
// tests can run the full stack against httptest.
func buildRouter(database *db.Database, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// --- Auth Routes ---
	authMiddleware := utils.AuthMiddleware(cfg)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", func(c *gin.Context) {
			api.LoginHandler(c, database, cfg)
		})
		authGroup.POST("/logout", authMiddleware, func(c *gin.Context) {
			api.LogoutHandler(c, database, cfg)
		})
		authGroup.PUT("/password", authMiddleware, func(c *gin.Context) {
			api.ChangePasswordHandler(c, database, cfg)
		})
		authGroup.PUT("/credentials", authMiddleware, func(c *gin.Context) {
			api.UpdateCredentialsHandler(c, database, cfg)
		})
	}

	// --- Admin Routes (CMS) ---
	adminGroup := router.Group("/admin")
	adminGroup.Use(authMiddleware)
	{
		adminGroup.POST("/albums", func(c *gin.Context) { api.CreateAlbumHandler(c, database, cfg) })
		adminGroup.GET("/albums", func(c *gin.Context) { api.ListAlbumsHandler(c, database, cfg) })
		adminGroup.GET("/albums/:id", func(c *gin.Context) { api.GetAlbumHandler(c, database, cfg) })
		adminGroup.PUT("/albums/:id", func(c *gin.Context) { api.UpdateAlbumHandler(c, database, cfg) })
		adminGroup.DELETE("/albums/:id", func(c *gin.Context) { api.DeleteAlbumHandler(c, database, cfg) })

		adminGroup.POST("/songs", func(c *gin.Context) { api.CreateSongHandler(c, database, cfg) })
		adminGroup.GET("/songs", func(c *gin.Context) { api.ListSongsHandler(c, database, cfg) })
		adminGroup.GET("/songs/:id", func(c *gin.Context) { api.GetSongHandler(c, database, cfg) })
		adminGroup.PUT("/songs/:id", func(c *gin.Context) { api.UpdateSongHandler(c, database, cfg) })
		adminGroup.DELETE("/songs/:id", func(c *gin.Context) { api.DeleteSongHandler(c, database, cfg) })

		adminGroup.POST("/podcasts", func(c *gin.Context) { api.CreatePodcastHandler(c, database, cfg) })
		adminGroup.GET("/podcasts", func(c *gin.Context) { api.ListPodcastsHandler(c, database, cfg) })
		adminGroup.PUT("/podcasts/:id", func(c *gin.Context) { api.UpdatePodcastHandler(c, database, cfg) })
		adminGroup.DELETE("/podcasts/:id", func(c *gin.Context) { api.DeletePodcastHandler(c, database, cfg) })

		adminGroup.POST("/media", func(c *gin.Context) { api.CreateMediaHandler(c, database, cfg) })
		adminGroup.GET("/media", func(c *gin.Context) { api.ListMediaHandler(c, database, cfg) })
		adminGroup.PUT("/media/:id", func(c *gin.Context) { api.UpdateMediaHandler(c, database, cfg) })
		adminGroup.DELETE("/media/:id", func(c *gin.Context) { api.DeleteMediaHandler(c, database, cfg) })

		adminGroup.POST("/products", func(c *gin.Context) { api.CreateProductHandler(c, database, cfg) })
		adminGroup.GET("/products", func(c *gin.Context) { api.ListProductsHandler(c, database, cfg) })
		adminGroup.GET("/products/:id", func(c *gin.Context) { api.GetProductHandler(c, database, cfg) })
		adminGroup.PUT("/products/:id", func(c *gin.Context) { api.UpdateProductHandler(c, database, cfg) })
		adminGroup.DELETE("/products/:id", func(c *gin.Context) { api.DeleteProductHandler(c, database, cfg) })

		adminGroup.PUT("/uploads", func(c *gin.Context) { api.PutUploadHandler(c, database, cfg) })
		adminGroup.GET("/uploads", func(c *gin.Context) { api.ListUploadsHandler(c, database, cfg) })
		adminGroup.DELETE("/uploads/:id", func(c *gin.Context) { api.DeleteUploadHandler(c, database, cfg) })

		adminGroup.GET("/comments", func(c *gin.Context) { api.ListCommentsHandler(c, database, cfg) })
		adminGroup.PUT("/comments/:id/approve", func(c *gin.Context) { api.ApproveCommentHandler(c, database, cfg) })
		adminGroup.PUT("/comments/:id/reject", func(c *gin.Context) { api.RejectCommentHandler(c, database, cfg) })
		adminGroup.DELETE("/comments/:id", func(c *gin.Context) { api.DeleteCommentHandler(c, database, cfg) })

		adminGroup.GET("/search", func(c *gin.Context) { api.SearchHandler(c, database, cfg) })

		settingsGroup := adminGroup.Group("/settings")
		{
			settingsGroup.GET("/band", func(c *gin.Context) { api.GetBandProfileHandler(c, database, cfg) })
			settingsGroup.PUT("/band", func(c *gin.Context) { api.UpdateBandProfileHandler(c, database, cfg) })
			settingsGroup.GET("/theme", func(c *gin.Context) { api.GetThemeHandler(c, database, cfg) })
			settingsGroup.PUT("/theme", func(c *gin.Context) { api.UpdateThemeHandler(c, database, cfg) })
			settingsGroup.GET("/footer", func(c *gin.Context) { api.GetFooterHandler(c, database, cfg) })
			settingsGroup.PUT("/footer", func(c *gin.Context) { api.UpdateFooterHandler(c, database, cfg) })
			settingsGroup.GET("/seo", func(c *gin.Context) { api.GetSeoHandler(c, database, cfg) })
			settingsGroup.PUT("/seo", func(c *gin.Context) { api.UpdateSeoHandler(c, database, cfg) })
			settingsGroup.GET("/system", func(c *gin.Context) { api.GetSystemConfigHandler(c, database, cfg) })
			settingsGroup.PUT("/system", func(c *gin.Context) { api.UpdateSystemConfigHandler(c, database, cfg) })
			settingsGroup.GET("/translations", func(c *gin.Context) { api.GetTranslationsHandler(c, database, cfg) })
			settingsGroup.PUT("/translations", func(c *gin.Context) { api.UpdateTranslationsHandler(c, database, cfg) })
			settingsGroup.GET("/language", func(c *gin.Context) { api.GetLanguageHandler(c, database, cfg) })
			settingsGroup.PUT("/language", func(c *gin.Context) { api.SetLanguageHandler(c, database, cfg) })
		}
	}

	// --- Public Site Routes ---
	siteGroup := router.Group("/site")
	{
		siteGroup.GET("/content", func(c *gin.Context) { api.SiteContentHandler(c, database, cfg) })
		siteGroup.GET("/albums", func(c *gin.Context) { api.SiteAlbumsHandler(c, database, cfg) })
		siteGroup.GET("/albums/:id/songs", func(c *gin.Context) { api.SiteSongsHandler(c, database, cfg) })
		siteGroup.GET("/podcasts", func(c *gin.Context) { api.SitePodcastsHandler(c, database, cfg) })
		siteGroup.GET("/media", func(c *gin.Context) { api.SiteMediaHandler(c, database, cfg) })
		siteGroup.GET("/products", func(c *gin.Context) { api.SiteProductsHandler(c, database, cfg) })
		siteGroup.GET("/comments", func(c *gin.Context) { api.SiteCommentsHandler(c, database, cfg) })
		siteGroup.POST("/comments", func(c *gin.Context) { api.PostCommentHandler(c, database, cfg) })
		siteGroup.PUT("/comments/:id/like", func(c *gin.Context) { api.LikeCommentHandler(c, database, cfg) })
	}

	// --- Swagger Route ---
	// swagger.json is generated into ./docs and served statically; the UI
	// lives on a separate path to avoid a route conflict.
	router.StaticFS("/docs", http.Dir("docs"))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/swagger.json")))

	return router
}
