package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpapi "github.com/critter-exchange/critter-exchange/internal/api/http"
	"github.com/critter-exchange/critter-exchange/internal/application/account"
	"github.com/critter-exchange/critter-exchange/internal/application/auth"
	"github.com/critter-exchange/critter-exchange/internal/application/friend"
	"github.com/critter-exchange/critter-exchange/internal/application/item"
	"github.com/critter-exchange/critter-exchange/internal/application/trade"
	"github.com/critter-exchange/critter-exchange/internal/config"
	"github.com/critter-exchange/critter-exchange/internal/infrastructure/postgres"
	"github.com/critter-exchange/critter-exchange/internal/infrastructure/sse"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, "internal/migrations"); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// repositories
	accountRepo := postgres.NewAccountRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	friendRepo := postgres.NewFriendRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	tradeRepo := postgres.NewTradeRepository(pool)

	// infrastructure
	sseHub := sse.NewHub()

	// services
	authSvc := auth.NewService(accountRepo, sessionRepo, []byte(cfg.JWTSecret), cfg.SessionTTL, logger)
	accountSvc := account.NewService(accountRepo, logger)
	friendSvc := friend.NewService(friendRepo, accountRepo, itemRepo, catalogRepo, logger)
	itemSvc := item.NewService(itemRepo, catalogRepo, logger)

	policy, err := trade.NewProposalPolicy(cfg.TradeProposalPolicy)
	if err != nil {
		log.Fatalf("proposal policy error: %v", err)
	}
	tradeSvc := trade.NewService(tradeRepo, itemRepo, accountRepo, catalogRepo, sseHub, cfg.SettlementRecoveryWindow, logger)

	// repair interrupted settlements before serving traffic
	if err := tradeSvc.RecoverSettlements(ctx); err != nil {
		logger.Error().Err(err).Msg("settlement recovery failed at startup")
	}

	// API server
	apiServer := httpapi.NewServer(authSvc, accountSvc, friendSvc, itemSvc, tradeSvc, policy, sseHub, cfg.SessionCookieName, cfg.SessionCookieSecure)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// background loops
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := sessionRepo.DeleteExpired(context.Background()); err == nil && n > 0 {
				logger.Info().Int("count", n).Msg("expired sessions reaped")
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := tradeSvc.RecoverSettlements(context.Background()); err != nil {
				logger.Error().Err(err).Msg("periodic settlement recovery failed")
			}
		}
	}()

	// start server
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
	sseHub.Stop()
}
