package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/philjones21/MyHomePageApp/internal/config"
	"github.com/philjones21/MyHomePageApp/internal/domain"
	"github.com/philjones21/MyHomePageApp/internal/handler"
	"github.com/philjones21/MyHomePageApp/internal/repository"
	"github.com/philjones21/MyHomePageApp/internal/sanitize"
	"github.com/philjones21/MyHomePageApp/internal/service"
	"github.com/philjones21/MyHomePageApp/internal/storage"
)

func main() {
	conf := config.Load()

	if err := os.MkdirAll(filepath.Dir(conf.DatabasePath), 0o755); err != nil {
		log.Fatalf("failed to create database dir: %v", err)
	}
	db, err := gorm.Open(sqlite.Open(conf.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.PhotoAlbum{}, &domain.Photo{}, &domain.BlogEntry{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	images, err := storage.NewImageRepository(conf.ImageRepositoryDir)
	if err != nil {
		log.Fatalf("failed to initialize image repository: %v", err)
	}

	sanitizer := sanitize.New(sanitize.DefaultBlacklist)

	userRepo := repository.NewUserRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	authService := service.NewAuthService(userRepo, config.MaxLoginAttempts)
	albumService := service.NewAlbumService(albumRepo, images, sanitizer)
	blogService := service.NewBlogService(blogRepo)
	photoService := service.NewPhotoService(albumRepo, images, sanitizer)

	authHandler := handler.NewAuthHandler(authService, conf.AllowNewUsers)
	albumHandler := handler.NewAlbumHandler(albumService)
	blogHandler := handler.NewBlogHandler(blogService)
	photoHandler := handler.NewPhotoHandler(photoService, images)

	r := gin.Default()

	// server-side session records; the cookie carries only the session id
	store := memstore.NewStore([]byte(conf.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   conf.SessionTimeoutMinutes * 60,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	r.Use(sessions.Sessions("sessionId", store))

	r.GET("/photoalbums", albumHandler.List)
	r.GET("/photoalbums/:id", albumHandler.Get)
	r.GET("/blogs", blogHandler.List)
	r.GET("/albumid/:id/photofilename/:filename", photoHandler.Serve)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	authorized := r.Group("/", handler.RequireLogin())
	authorized.POST("/photoalbums", albumHandler.Create)
	authorized.DELETE("/photoalbums/:id", albumHandler.Delete)
	authorized.DELETE("/photoalbums/:id/photos/:filename", albumHandler.DeletePhoto)
	authorized.POST("/photos", photoHandler.Upload)
	authorized.POST("/blog", blogHandler.Create)
	authorized.DELETE("/blog/:id", blogHandler.Delete)

	if err := r.Run(":" + conf.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
