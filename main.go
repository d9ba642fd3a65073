package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"proof-verification-service/handlers"
	"proof-verification-service/prover"
	"proof-verification-service/service"
)

func main() {
	config := LoadConfig()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := os.MkdirAll(filepath.Dir(config.DBPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("cannot create data directory")
	}
	storage, err := service.NewStorage(config.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}
	defer storage.Close()

	var p prover.Prover
	var v prover.Verifier
	var image prover.ImageID

	if config.ProverURL != "" {
		client := prover.NewClient(config.ProverURL, config.ProverTimeout)
		p, v = client, client
		image, err = prover.ParseImageID(config.ImageID)
		if err != nil {
			log.Fatal().Err(err).Msg("remote prover requires a valid IMAGE_ID")
		}
		log.Info().Str("url", config.ProverURL).Msg("using remote proving runtime")
	} else {
		local := prover.NewLocal()
		p, v = local, local
		image = prover.LocalImageID
		log.Warn().Msg("no PROVER_URL set, using in-process dev prover")
	}

	svc := service.New(storage, p, v, image, log)
	h := handlers.NewHandler(svc, log)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", h.Health)
	router.POST("/verify", h.VerifyBatch)
	router.POST("/attest", h.Attest)
	router.POST("/attest-sbom", h.AttestSBOM)
	router.POST("/verify-receipt", h.VerifyReceipt)
	router.GET("/attestations/:id", h.GetAttestation)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	go func() {
		log.Info().Int("port", config.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("bye")
}
