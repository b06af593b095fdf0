package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/elbarryamine/atikia-plugin-server/internal/app"
	"github.com/elbarryamine/atikia-plugin-server/internal/config"
	"github.com/elbarryamine/atikia-plugin-server/internal/controllers"
	"github.com/elbarryamine/atikia-plugin-server/internal/middleware"
	"github.com/elbarryamine/atikia-plugin-server/internal/repositories"
	"github.com/elbarryamine/atikia-plugin-server/internal/routes"
	"github.com/elbarryamine/atikia-plugin-server/internal/services"
	"github.com/elbarryamine/atikia-plugin-server/internal/storage"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (DB pool)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize app")
	}
	defer application.Close()

	// 3) Blob storage
	blob, err := storage.NewS3Client(context.Background(), storage.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize blob storage client")
	}

	// 4) Repositories
	propRepo := repositories.NewPropertyRepository(application.DB)
	addrRepo := repositories.NewGoogleAddressRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)
	keyRepo := repositories.NewPluginAPIKeyRepository(application.DB)

	// 5) Services
	storageSvc := services.NewStorageService(blob)
	ingestSvc := services.NewPropertyIngestService(propRepo, addrRepo, storageSvc)
	userSvc := services.NewUserService(userRepo)

	// 6) Controllers
	healthCtrl := controllers.NewHealthController(application)
	propertiesCtrl := controllers.NewPropertiesController(ingestSvc)
	uploadCtrl := controllers.NewUploadController(storageSvc)
	userCtrl := controllers.NewUserController(userSvc)

	// 7) Router
	router := mux.NewRouter()
	router.Use(middleware.Recovery)
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(middleware.APIKeyAuth(keyRepo))
	api.HandleFunc(routes.PropertiesBulk, propertiesCtrl.BulkCreateHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.FileTemp, uploadCtrl.UploadTempHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.Me, userCtrl.MeHandler).Methods(http.MethodGet)

	// 8) CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
