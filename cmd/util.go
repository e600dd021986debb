package cmd

import (
	"cryptodashboard/api"
	"cryptodashboard/internal"
	"cryptodashboard/internal/repository"
	"cryptodashboard/internal/service"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

const refreshInterval = 60 * time.Second

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	if err := handler.Db.Close(); err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.GptApiKey)
	if err != nil {
		return nil, err
	}

	// The ledger lives in Supabase Postgres by default. A csv export path
	// in the secrets switches the whole pipeline to file-backed mode,
	// mainly for local development without db credentials.
	var dbConn *sql.DB
	var ledgerRepository repository.LedgerRepository
	if secrets.LedgerCsvPath != "" {
		ledgerRepository = repository.NewCsvLedgerRepository(secrets.LedgerCsvPath)
	} else {
		dbConn, err = sql.Open("postgres", secrets.Supabase.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		ledgerRepository = repository.NewLedgerRepository(dbConn)
	}

	coinCapRepository := repository.NewCoinCapRepository(secrets.CoinCapBaseUrl)
	coinMapping := service.NewCoinMappingService()

	portfolioService := service.NewPortfolioService(ledgerRepository, coinCapRepository, coinMapping)
	chatService := service.NewChatService(ledgerRepository, coinCapRepository, gptRepository, portfolioService)
	refreshService := service.NewRefreshService(portfolioService, refreshInterval)

	apiHandler := &api.ApiHandler{
		Db:                dbConn,
		LedgerRepository:  ledgerRepository,
		CoinCapRepository: coinCapRepository,
		CoinMapping:       coinMapping,
		PortfolioService:  portfolioService,
		ChatService:       chatService,
		RefreshService:    refreshService,
		JwtSecret:         secrets.JwtSecret,
	}

	return apiHandler, nil
}
