package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/ujjol1234/Scale-Sense-AI-Model/internal/api"
	"github.com/ujjol1234/Scale-Sense-AI-Model/internal/config"
	"github.com/ujjol1234/Scale-Sense-AI-Model/internal/domain"
	"github.com/ujjol1234/Scale-Sense-AI-Model/internal/model"
	httptransport "github.com/ujjol1234/Scale-Sense-AI-Model/internal/transport/http"
)

func main() {
	cfg := config.Load()

	predictor := buildPredictor(cfg)
	service := domain.NewService(predictor)
	handler := api.NewHandler(service)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	corsLayer := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := httptransport.NewServer(
		httptransport.DefaultServerConfig(cfg.HTTPAddress, cfg.ShutdownTimeout),
		api.RequestLogger(corsLayer.Handler(router)),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("scale-sense-api listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

// buildPredictor selects the predictor at startup. Any failure to produce the
// linear model falls back to the heuristic so the process always serves.
func buildPredictor(cfg config.Config) domain.Predictor {
	if cfg.ModelPath == "" {
		log.Printf("MODEL_PATH not set, using heuristic predictor")
		return model.NewHeuristic()
	}

	m, err := model.LoadFromFile(cfg.ModelPath)
	if err != nil {
		log.Printf("failed to load model weights, using heuristic predictor (reason: %v)", err)
		return model.NewHeuristic()
	}

	log.Printf("using linear model weights from %s", cfg.ModelPath)
	return m
}
