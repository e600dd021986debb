package service

import (
	"context"
	"cryptodashboard/internal/domain"
	"cryptodashboard/internal/logger"
	"cryptodashboard/internal/repository"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// PortfolioService derives portfolio state from the raw transaction ledger:
// net token balances, current valuations, totals, and the normalized
// distribution. Everything is recomputed from scratch on each call - derived
// state is never persisted or incrementally updated.
type PortfolioService interface {
	ComputeNetPositions(transactions []domain.Transaction) map[string]decimal.Decimal
	ComputeValuations(ctx context.Context, positions map[string]decimal.Decimal, transactions []domain.Transaction) map[string]domain.ValuationEntry
	Summarize(transactions []domain.Transaction, valuations map[string]domain.ValuationEntry) domain.PortfolioSummary
	Distribute(valuations map[string]domain.ValuationEntry) []domain.DistributionEntry
	Snapshot(ctx context.Context) (*domain.PortfolioSnapshot, error)
}

type portfolioServiceHandler struct {
	LedgerRepository  repository.LedgerRepository
	CoinCapRepository repository.CoinCapRepository
	CoinMapping       *CoinMappingService
}

func NewPortfolioService(
	ledgerRepository repository.LedgerRepository,
	coinCapRepository repository.CoinCapRepository,
	coinMapping *CoinMappingService,
) PortfolioService {
	return portfolioServiceHandler{
		LedgerRepository:  ledgerRepository,
		CoinCapRepository: coinCapRepository,
		CoinMapping:       coinMapping,
	}
}

// ComputeNetPositions folds the ledger into per-coin signed token balances.
// Buys and swap buys add, sells and swap sells subtract the magnitude. Rows
// are processed in ledger order, though the final sums are order-independent.
func (h portfolioServiceHandler) ComputeNetPositions(transactions []domain.Transaction) map[string]decimal.Decimal {
	positions := map[string]decimal.Decimal{}
	for _, tx := range transactions {
		balance, ok := positions[tx.CoinName]
		if !ok {
			balance = decimal.Zero
		}
		switch {
		case tx.AcquisitionType.IsInflow():
			balance = balance.Add(tx.TokenAmount)
		case tx.AcquisitionType.IsOutflow():
			balance = balance.Sub(tx.TokenAmount.Abs())
		}
		positions[tx.CoinName] = balance
	}
	return positions
}

// ComputeValuations resolves a current unit price for every coin with a
// strictly positive balance and multiplies it out. Per-coin feed lookups run
// concurrently; a failure for one coin degrades that coin to fallback pricing
// and never aborts the rest.
func (h portfolioServiceHandler) ComputeValuations(
	ctx context.Context,
	positions map[string]decimal.Decimal,
	transactions []domain.Transaction,
) map[string]domain.ValuationEntry {
	valuations := map[string]domain.ValuationEntry{}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for coinName, netBalance := range positions {
		if !netBalance.IsPositive() {
			continue
		}

		wg.Add(1)
		go func(coinName string, netBalance decimal.Decimal) {
			defer wg.Done()
			price, source := h.resolveCurrentPrice(ctx, coinName, transactions)

			mu.Lock()
			defer mu.Unlock()
			valuations[coinName] = domain.ValuationEntry{
				CoinName:     coinName,
				NetBalance:   netBalance,
				CurrentPrice: price,
				CurrentValue: netBalance.Mul(price),
				PriceSource:  source,
			}
		}(coinName, netBalance)
	}
	wg.Wait()

	return valuations
}

// resolveCurrentPrice applies the pricing precedence: fixed override, then
// the feed for listed assets, then the price recorded on the coin's most
// recent transaction.
func (h portfolioServiceHandler) resolveCurrentPrice(
	ctx context.Context,
	coinName string,
	transactions []domain.Transaction,
) (decimal.Decimal, domain.PriceSource) {
	log := logger.FromContext(ctx)

	if price, ok := h.CoinMapping.FixedOverridePrice(coinName); ok {
		return price, domain.PriceSourceFixedOverride
	}

	feedID := h.CoinMapping.ResolveFeedID(coinName)
	if !h.CoinMapping.HasFeedListing(feedID) {
		return lastTransactionPrice(coinName, transactions), domain.PriceSourceLastTransaction
	}

	asset, err := h.CoinCapRepository.GetAsset(ctx, feedID)
	if err != nil {
		log.Warnf("price lookup for %s (%s) failed, using last transaction price: %s", coinName, feedID, err.Error())
		return lastTransactionPrice(coinName, transactions), domain.PriceSourceLastTransaction
	}
	if asset == nil {
		log.Warnf("%s (%s) not found on feed, using last transaction price", coinName, feedID)
		return lastTransactionPrice(coinName, transactions), domain.PriceSourceLastTransaction
	}

	price, err := asset.Price()
	if err != nil {
		log.Warnf("unparsable feed price %q for %s, using last transaction price", asset.PriceUsd, coinName)
		return lastTransactionPrice(coinName, transactions), domain.PriceSourceLastTransaction
	}

	return price, domain.PriceSourceFeed
}

// lastTransactionPrice returns the recorded unit price of the coin's most
// recent transaction. Ties on the date break by ledger order, oldest first,
// so the result is deterministic.
func lastTransactionPrice(coinName string, transactions []domain.Transaction) decimal.Decimal {
	coinTransactions := []domain.Transaction{}
	for _, tx := range transactions {
		if tx.CoinName == coinName {
			coinTransactions = append(coinTransactions, tx)
		}
	}
	if len(coinTransactions) == 0 {
		return decimal.Zero
	}

	sort.SliceStable(coinTransactions, func(i, j int) bool {
		if !coinTransactions[i].TransactionDate.Equal(coinTransactions[j].TransactionDate) {
			return coinTransactions[i].TransactionDate.After(coinTransactions[j].TransactionDate)
		}
		return coinTransactions[i].LedgerOrder < coinTransactions[j].LedgerOrder
	})

	return coinTransactions[0].UnitPriceAtTime()
}

// Summarize aggregates totals. totalAllocated sums the USD amount of every
// transaction, which is how the dashboard has always reported it. When
// nothing has been allocated the percentage change is 0 rather than a
// division by zero.
func (h portfolioServiceHandler) Summarize(
	transactions []domain.Transaction,
	valuations map[string]domain.ValuationEntry,
) domain.PortfolioSummary {
	totalAllocated := decimal.Zero
	for _, tx := range transactions {
		totalAllocated = totalAllocated.Add(tx.UsdAmount)
	}

	currentValue := decimal.Zero
	for _, valuation := range valuations {
		currentValue = currentValue.Add(valuation.CurrentValue)
	}

	percentageChange := decimal.Zero
	if !totalAllocated.IsZero() {
		percentageChange = currentValue.Sub(totalAllocated).Div(totalAllocated).Mul(oneHundred)
	}

	return domain.PortfolioSummary{
		TotalAllocated:   totalAllocated,
		CurrentValue:     currentValue,
		PercentageChange: percentageChange,
	}
}

// Distribute normalizes valuations into per-coin shares of total value,
// sorted largest first. Percentages are rounded to two decimal places; ties
// on value break by coin name so output order is stable.
func (h portfolioServiceHandler) Distribute(valuations map[string]domain.ValuationEntry) []domain.DistributionEntry {
	total := decimal.Zero
	included := []domain.ValuationEntry{}
	for _, valuation := range valuations {
		if valuation.CurrentValue.IsPositive() {
			included = append(included, valuation)
			total = total.Add(valuation.CurrentValue)
		}
	}
	if total.IsZero() {
		return []domain.DistributionEntry{}
	}

	entries := make([]domain.DistributionEntry, 0, len(included))
	for _, valuation := range included {
		entries = append(entries, domain.DistributionEntry{
			CoinName:   valuation.CoinName,
			Value:      valuation.CurrentValue,
			Percentage: valuation.CurrentValue.Div(total).Mul(oneHundred).Round(2),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Value.Equal(entries[j].Value) {
			return entries[i].Value.GreaterThan(entries[j].Value)
		}
		return entries[i].CoinName < entries[j].CoinName
	})

	return entries
}

// Snapshot runs the full pipeline: ledger fetch, aggregation, valuation,
// summary, distribution. A ledger failure is fatal to the snapshot - callers
// surface an explicit error state rather than stale or partial results.
func (h portfolioServiceHandler) Snapshot(ctx context.Context) (*domain.PortfolioSnapshot, error) {
	transactions, err := h.LedgerRepository.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger: %w", err)
	}

	positions := h.ComputeNetPositions(transactions)
	valuations := h.ComputeValuations(ctx, positions, transactions)

	return &domain.PortfolioSnapshot{
		RefreshID:    uuid.New(),
		ComputedAt:   time.Now().UTC(),
		Transactions: transactions,
		Valuations:   valuations,
		Summary:      h.Summarize(transactions, valuations),
		Distribution: h.Distribute(valuations),
	}, nil
}
