package routes

import (
	_ "chantierplus/docs"
	"chantierplus/internal/adapter/http/handlers"
	"chantierplus/internal/adapter/persistence/repository"
	"chantierplus/internal/infrastructure/config"
	"chantierplus/internal/infrastructure/database"
	"chantierplus/internal/infrastructure/notification"
	"chantierplus/internal/infrastructure/storage"
	"chantierplus/internal/infrastructure/transcription"
	"chantierplus/internal/usecase"
	"chantierplus/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 30 * time.Second

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	dispatcher := getRoutes(router, cfg)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[server] listening port=%s notify_mode=%s", cfg.Port, cfg.Notify.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] shutdown error: %v", err)
	}
	dispatcher.Wait()
	log.Printf("[server] stopped")
}

func getRoutes(router *gin.Engine, cfg config.Config) *usecase.NotificationDispatcher {
	clients := database.ConnectAWS(cfg.AWS)

	avenantRepo := repository.NewAvenantDynamoRepository(clients.DynamoDB, cfg.AWS.AvenantsTable)

	var transcriber interfaces.ITranscriber = transcription.MockTranscriber{}
	if !cfg.TranscriptionMocked() {
		transcriber = transcription.NewOpenAITranscriber(cfg.Transcribe.APIKey, cfg.Transcribe.BaseURL, cfg.Transcribe.Model)
	} else {
		log.Printf("[transcription] mock mode enabled")
	}

	var photos interfaces.IPhotoStorage = storage.MockPhotoStorage{}
	if !cfg.Storage.Mock {
		photos = storage.NewS3PhotoStorage(clients.S3, cfg.Storage.PhotosBucket)
	} else {
		log.Printf("[storage] mock mode enabled")
	}

	var notifier interfaces.INotifier = notification.MockNotifier{}
	if !cfg.Notify.Mock {
		notifier = notification.NewSESNotifier(clients.SES, cfg.Notify.FromEmail, cfg.Notify.FromName)
	} else {
		log.Printf("[notification] mock mode enabled")
	}

	dispatcher := usecase.NewNotificationDispatcher(notifier, avenantRepo, cfg.Notify.Recipients)
	composeUseCase := usecase.NewComposeAvenantUseCase(avenantRepo, transcriber, photos, dispatcher, usecase.ComposeConfig{
		MaxPhotoBytes: cfg.Storage.MaxPhotoBytes,
		DraftIdleTTL:  cfg.DraftIdleTTL,
		AutoNotify:    cfg.AutoNotify(),
	})
	avenantUseCase := usecase.NewAvenantUseCase(avenantRepo, dispatcher)

	composeHandler := handlers.NewComposeHandler(composeUseCase)
	avenantHandler := handlers.NewAvenantHandler(avenantUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAvenantRoutes(v1, composeHandler, avenantHandler)
	return dispatcher
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
