package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salvarez-dev/eshop-api/config"
	"github.com/salvarez-dev/eshop-api/middleware"
	"github.com/salvarez-dev/eshop-api/models"
	"github.com/salvarez-dev/eshop-api/repository"
	"github.com/salvarez-dev/eshop-api/routes"
	"github.com/salvarez-dev/eshop-api/services"
	"github.com/salvarez-dev/eshop-api/upload"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db := openDatabase(cfg, logger)
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.AuthRequired(cfg.JWTSecret, middleware.DefaultExemptions(cfg.APIRoot, cfg.PublicUploadPath)))

	r.Static(cfg.PublicUploadPath, cfg.UploadDir)

	routes.SetupRoutes(r, cfg.APIRoot, routes.Deps{
		Products:   repository.NewProductStore(db),
		Categories: repository.NewCategoryStore(db),
		Users:      repository.NewUserStore(db),
		Orders:     services.NewOrderService(repository.NewOrderStore(db), logger),
		Uploads:    upload.NewSaver(cfg.UploadDir, cfg.PublicUploadPath),
		JWTSecret:  cfg.JWTSecret,
	})

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("apiRoot", cfg.APIRoot))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func openDatabase(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	return db
}
