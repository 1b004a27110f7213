package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jandarpan/backend/internal/api/handler"
	"jandarpan/backend/internal/grievance"
	"jandarpan/backend/internal/notify"
	"jandarpan/backend/internal/storage"
	"jandarpan/backend/pkg/logger"
)

func setupDependencies(zapLogger *zap.Logger) (*storage.Service, notify.Notifier) {
	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "grievances.json"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	s := storage.NewStorageService(dataFile, uploadDir)

	var notifier notify.Notifier = notify.NoopNotifier{}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_ADMIN_CHAT_ID"), 10, 64)
		if err != nil {
			zapLogger.Fatal("TELEGRAM_ADMIN_CHAT_ID must be set with TELEGRAM_BOT_TOKEN", zap.Error(err))
		}
		tg, err := notify.NewTelegramNotifier(token, chatID)
		if err != nil {
			zapLogger.Fatal("Failed to start Telegram notifier", zap.Error(err))
		}
		zapLogger.Info("Telegram escalation alerts enabled", zap.Int64("chat_id", chatID))
		notifier = tg
	}

	zapLogger.Info("Storage configured",
		zap.String("data_file", dataFile),
		zap.String("upload_dir", uploadDir))
	return s, notifier
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	zapLogger, err := logger.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	store, notifier := setupDependencies(zapLogger)
	svc := grievance.NewService(store, notifier, zapLogger)

	r := gin.Default()
	h := handler.NewHandler(svc, zapLogger)

	r.POST("/grievances", h.SubmitGrievance)
	r.GET("/grievances", h.GetDashboard)
	r.GET("/grievances/track", h.TrackGrievances)
	r.PATCH("/grievances/:id/status", h.UpdateStatus)
	r.POST("/feedback", h.SubmitFeedback)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	zapLogger.Info("Starting Jan Darpan backend", zap.String("port", port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
