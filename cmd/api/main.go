package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	"revana/cache"
	"revana/cmd/api/auth"
	"revana/cmd/api/clients/amazonclient"
	"revana/cmd/api/clients/sentimentclient"
	"revana/cmd/api/clients/youtubeclient"
	"revana/cmd/api/dto"
	"revana/cmd/api/router"
	"revana/cmd/api/services"
	"revana/internal/logger"
	"revana/config"
	"revana/db"
	"revana/eventbus"
	"revana/repositories"
	"revana/summarizer"

	_ "revana/docs" // swag will generate this package
)

// @title           Revana API
// @version         1.0
// @description     Sentiment analysis over video comments and product reviews
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatalf("mongo init failed: %v", err)
	}

	bus, err := eventbus.FromBrokers(cfg.Kafka.Brokers)
	if err != nil {
		log.Fatalf("event bus init failed: %v", err)
	}
	defer bus.Close()

	ytClient, err := youtubeclient.New(cfg.YouTube)
	if err != nil {
		log.Fatalf("youtube client init failed: %v", err)
	}
	amzClient, err := amazonclient.New(cfg.Amazon)
	if err != nil {
		log.Fatalf("amazon client init failed: %v", err)
	}
	classifier := sentimentclient.New(cfg.Sentiment)

	completer, err := summarizer.NewCompleterFromConfig(cfg.Completion)
	if err != nil {
		log.Fatalf("completion provider init failed: %v", err)
	}
	gen := summarizer.New(completer)

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatalf("jwt init failed: %v", err)
	}

	database := db.Database()
	videoRepo := repositories.NewVideoRepository(database)
	productRepo := repositories.NewProductRepository(database)
	userRepo := repositories.NewUserRepository(database)

	analyses := cache.New[dto.AnalysisResponseDTO](cfg.Cache.TTL.Std())
	searches := cache.New[[]dto.SearchResultDTO](cfg.Cache.TTL.Std())

	deps := router.Deps{
		Videos:     services.NewVideoService(ytClient, videoRepo, userRepo, classifier, gen, analyses, searches, bus),
		Products:   services.NewProductService(amzClient, productRepo, userRepo, classifier, gen, analyses, bus),
		Users:      services.NewUserService(userRepo, jwtManager),
		JWT:        jwtManager,
		Classifier: classifier,
	}

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}).Handler(router.New(deps))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.InfoWithFields("api listening", logger.Fields{"addr": addr})
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server exited: %v", err)
	}
}
