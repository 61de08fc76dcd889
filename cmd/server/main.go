package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/merchant-offers-dashboard/internal/config"
	"github.com/iliyamo/merchant-offers-dashboard/internal/database"
	"github.com/iliyamo/merchant-offers-dashboard/internal/handler"
	"github.com/iliyamo/merchant-offers-dashboard/internal/queue"
	"github.com/iliyamo/merchant-offers-dashboard/internal/repository"
	"github.com/iliyamo/merchant-offers-dashboard/internal/router"
	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Redis backs rate limiting and the public response cache; both
	// degrade to pass-through when it is unavailable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and response cache disabled")
	}

	users := repository.NewUserRepo(db)
	admins := repository.NewAdminRepo(db)
	merchants := repository.NewMerchantRepo(db)
	offers := repository.NewOfferRepo(db)
	tokens := repository.NewTokenRepo(db)

	resolver := service.NewRoleResolver(admins, merchants)
	offerSvc := service.NewOfferService(offers, merchants, queue.PublishOfferStatusChanged)
	merchantSvc := service.NewMerchantService(users, merchants, cfg.BcryptCost)

	// Background consumer that appends status change events to the
	// audit log. Reconnects on broker failure.
	go queue.StartOfferStatusConsumer()

	e := echo.New()
	e.Validator = handler.NewValidator()

	authH := handler.NewAuthHandler(cfg, users, tokens, resolver)
	publicH := handler.NewPublicOfferHandler(offerSvc)
	adminOffersH := handler.NewAdminOfferHandler(offerSvc)
	adminMerchantsH := handler.NewAdminMerchantHandler(merchantSvc)
	merchantOffersH := handler.NewMerchantOfferHandler(offerSvc)
	merchantProfileH := handler.NewMerchantProfileHandler(merchantSvc)

	router.RegisterRoutes(e, publicH, config.LoadCacheConfig(), rdb)
	router.RegisterAuth(e, authH, resolver, cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)
	router.RegisterAdmin(e, adminOffersH, adminMerchantsH, resolver, cfg.JWTSecret)
	router.RegisterMerchant(e, merchantOffersH, merchantProfileH, resolver, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
