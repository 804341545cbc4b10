package cmd

import (
	"context"
	"deepdetect/internal/classifier"
	"deepdetect/internal/config"
	"deepdetect/internal/core"
	"deepdetect/internal/db"
	"deepdetect/internal/http/handler"
	"deepdetect/internal/http/handler/middleware"
	"deepdetect/internal/http/payload"
	"deepdetect/internal/http/server"
	"deepdetect/internal/mailer"
	"deepdetect/internal/repository"
	"deepdetect/internal/storage"
	"deepdetect/pkg/jwt"
	"deepdetect/pkg/log"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

const (
	metricsRoute = "GET /metrics"
	writeSlack   = 30 * time.Second
)

func Start() error {
	logger := log.NewZapLogger("deepdetect", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger("deepdetect", log.ParseLevel(config.LogLevel))

	dbConn, err := db.NewGormDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// mail
	smtpClient, err := mailer.NewSMTPClient(config.Mail)
	if err != nil {
		logger.Errorw("failed to create smtp client", "error", err)
		return err
	}
	mailService := mailer.NewMailer(smtpClient, config.Mail.Username)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// classifier
	classifierClient := classifier.NewClient(config.Classifier.URL, config.Classifier.Timeout, registry)
	downloader := classifier.NewDownloader(config.Classifier.DownloadTimeout, config.Classifier.MaxUploadBytes)

	// image archive
	var archive core.ImageArchive
	if config.S3.Enabled() {
		s3Archive, err := storage.NewS3ArchiveFromConfig(context.Background(), config.S3)
		if err != nil {
			logger.Errorw("failed to create image archive", "error", err)
			return err
		}
		archive = s3Archive
		logger.Infow("image archive enabled", "bucket", config.S3.Bucket)
	}

	// deepdetect
	deepDetect := core.NewDeepDetect(
		logger,
		repo,
		jwtService,
		mailService,
		classifierClient,
		downloader,
		archive,
		core.Settings{
			ResetLinkBase: config.Mail.ResetLinkBase,
			UploadDir:     config.Classifier.UploadDir,
		})

	// handler
	ddHandler := handler.NewDeepDetectHandler(
		logger,
		payload.Decoder{},
		deepDetect,
		config.Classifier.MaxUploadBytes)

	// register routes
	mux := http.NewServeMux()
	ddHandler.RegisterRoutes(mux)
	mux.Handle(metricsRoute, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// middleware
	hdlr := middleware.NewMetricsMiddleware(registry).Metrics(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware(config.CORSOrigins).CORS(hdlr)

	writeTimeout := config.Classifier.Timeout + config.Classifier.DownloadTimeout + writeSlack
	srv := server.NewHTTP(logger, hdlr, config.Port, writeTimeout)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
