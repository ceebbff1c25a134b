package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"revim/internal/cache"
	"revim/internal/config"
	"revim/internal/engine"
	"revim/internal/repository"
	"revim/internal/schema"
	"revim/internal/service"
	"revim/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	questionnaire, err := schema.Load(cfg.SchemaPath)
	if err != nil {
		log.Fatal("Failed to load schema:", err)
	}
	log.Printf("Questionnaire %s: %d categories", questionnaire.Version, len(questionnaire.Categories))

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	snapshotRepo := repository.NewSnapshotRepository(mongoClient)
	assessmentRepo := repository.NewAssessmentRepository(mongoClient)
	resultCache := cache.NewResultCache(rdb)

	eng := engine.New(engine.DefaultConfig())
	assessmentSvc := service.NewAssessmentService(eng, questionnaire, assessmentRepo, resultCache)
	snapshotSvc := service.NewSnapshotService(snapshotRepo, resultCache, questionnaire.Version)

	container := &rest.Container{
		AssessmentService: assessmentSvc,
		SnapshotService:   snapshotSvc,
	}
	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/assessments")
		log.Println("  GET  /v1/assessments/{id}")
		log.Println("  GET  /v1/schema")
		log.Println("  POST/GET /v1/snapshots")
		log.Println("  GET/DELETE /v1/snapshots/{id}")
		log.Println("  POST /v1/snapshots/{id}/assessment")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
