package service

import (
	"context"
	"cryptodashboard/internal/domain"
	"cryptodashboard/internal/logger"
	"cryptodashboard/internal/repository"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const maxHistoryMessages = 5
const marketContextSize = 20

var chartRequestRegex = regexp.MustCompile(`show (?:me )?(?:the )?(?:chart|graph|price) (?:for |of )?(\w+)`)

// ChatService forwards a user message to the language model together with a
// snapshot of current market data and portfolio analysis. The model never
// gets live query access - only the serialized snapshot in the system
// message.
type ChatService interface {
	SendMessage(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatResponse, error)
}

type chatServiceHandler struct {
	LedgerRepository  repository.LedgerRepository
	CoinCapRepository repository.CoinCapRepository
	GptRepository     repository.GptRepository
	PortfolioService  PortfolioService
}

func NewChatService(
	ledgerRepository repository.LedgerRepository,
	coinCapRepository repository.CoinCapRepository,
	gptRepository repository.GptRepository,
	portfolioService PortfolioService,
) ChatService {
	return chatServiceHandler{
		LedgerRepository:  ledgerRepository,
		CoinCapRepository: coinCapRepository,
		GptRepository:     gptRepository,
		PortfolioService:  portfolioService,
	}
}

type marketContextEntry struct {
	Rank      string `json:"rank"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Price     string `json:"price"`
	Change24h string `json:"change24h"`
	MarketCap string `json:"marketCap"`
}

type coinAnalysis struct {
	TotalTokens       decimal.Decimal `json:"totalTokens"`
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	AverageEntryPrice decimal.Decimal `json:"averageEntryPrice"`
	CurrentPrice      decimal.Decimal `json:"currentPrice"`
	CurrentValue      decimal.Decimal `json:"currentValue"`
	TransactionCount  int             `json:"transactionCount"`
}

func (h chatServiceHandler) SendMessage(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatResponse, error) {
	log := logger.FromContext(ctx)

	transactions, err := h.LedgerRepository.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger for chat context: %w", err)
	}

	assets, err := h.CoinCapRepository.ListTopAssets(ctx, 100)
	if err != nil {
		// the assistant can still answer portfolio questions without
		// market data
		log.Warnf("failed to fetch market data for chat context: %s", err.Error())
		assets = []domain.Asset{}
	}

	positions := h.PortfolioService.ComputeNetPositions(transactions)
	valuations := h.PortfolioService.ComputeValuations(ctx, positions, transactions)
	summary := h.PortfolioService.Summarize(transactions, valuations)
	analysis := buildCoinAnalysis(transactions, valuations)

	chart := h.resolveChartRequest(ctx, message, assets)

	systemContext, err := buildSystemContext(assets, analysis, summary, transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to build chat context: %w", err)
	}

	messages := []domain.ChatMessage{{Role: "system", Content: systemContext}}
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	messages = append(messages, history...)
	messages = append(messages, domain.ChatMessage{Role: "user", Content: message})

	reply, err := h.GptRepository.ChatCompletion(ctx, messages)
	if err != nil {
		return nil, err
	}

	return &domain.ChatResponse{
		Message: reply,
		Chart:   chart,
	}, nil
}

// resolveChartRequest checks for a "show me the chart for X" intent and, on a
// match against a known symbol, attaches that asset's price history. Chart
// failures only cost the attachment, never the reply.
func (h chatServiceHandler) resolveChartRequest(ctx context.Context, message string, assets []domain.Asset) *domain.ChartData {
	symbol, ok := chartRequestSymbol(message)
	if !ok {
		return nil
	}

	log := logger.FromContext(ctx)
	for _, asset := range assets {
		if !strings.EqualFold(asset.Symbol, symbol) {
			continue
		}
		history, err := h.CoinCapRepository.GetAssetHistory(ctx, asset.ID, "h1")
		if err != nil {
			log.Warnf("failed to fetch chart history for %s: %s", asset.ID, err.Error())
			return nil
		}
		return &domain.ChartData{
			Title: fmt.Sprintf("%s (%s) Price Chart", asset.Name, asset.Symbol),
			Type:  "line",
			Data:  history,
		}
	}

	return nil
}

func chartRequestSymbol(message string) (string, bool) {
	match := chartRequestRegex.FindStringSubmatch(strings.ToLower(message))
	if match == nil {
		return "", false
	}
	return strings.ToUpper(match[1]), true
}

// buildCoinAnalysis computes the per-coin detail embedded in the system
// message: holdings, capital in, average entry, and current worth where the
// valuation engine produced one.
func buildCoinAnalysis(transactions []domain.Transaction, valuations map[string]domain.ValuationEntry) map[string]coinAnalysis {
	analysis := map[string]coinAnalysis{}
	for _, tx := range transactions {
		coin := analysis[tx.CoinName]
		coin.TransactionCount++
		if tx.AcquisitionType.IsInflow() {
			coin.TotalTokens = coin.TotalTokens.Add(tx.TokenAmount)
			coin.TotalInvested = coin.TotalInvested.Add(tx.UsdAmount)
		} else if tx.AcquisitionType.IsOutflow() {
			coin.TotalTokens = coin.TotalTokens.Sub(tx.TokenAmount.Abs())
		}
		analysis[tx.CoinName] = coin
	}

	for coinName, coin := range analysis {
		if coin.TotalTokens.IsPositive() {
			coin.AverageEntryPrice = coin.TotalInvested.Div(coin.TotalTokens)
		}
		if valuation, ok := valuations[coinName]; ok {
			coin.CurrentPrice = valuation.CurrentPrice
			coin.CurrentValue = valuation.CurrentValue
		}
		analysis[coinName] = coin
	}

	return analysis
}

// marketBreadth summarizes the 24h change distribution across the top
// assets, giving the model a sense of overall market direction.
func marketBreadth(assets []domain.Asset) (mean, stdev float64) {
	changes := []float64{}
	for _, asset := range assets {
		change, err := strconv.ParseFloat(asset.ChangePercent24Hr, 64)
		if err != nil {
			continue
		}
		changes = append(changes, change)
	}
	if len(changes) == 0 {
		return 0, 0
	}

	mean, _ = stats.Mean(changes)
	if len(changes) > 1 {
		stdev, _ = stats.StandardDeviationSample(changes)
	}
	return mean, stdev
}

func buildSystemContext(
	assets []domain.Asset,
	analysis map[string]coinAnalysis,
	summary domain.PortfolioSummary,
	transactions []domain.Transaction,
) (string, error) {
	marketContext := []marketContextEntry{}
	for i, asset := range assets {
		if i >= marketContextSize {
			break
		}
		marketContext = append(marketContext, marketContextEntry{
			Rank:      asset.Rank,
			Name:      asset.Name,
			Symbol:    asset.Symbol,
			Price:     asset.PriceUsd,
			Change24h: asset.ChangePercent24Hr,
			MarketCap: asset.MarketCapUsd,
		})
	}

	marketJson, err := json.MarshalIndent(marketContext, "", "  ")
	if err != nil {
		return "", err
	}
	analysisJson, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}

	recentTransactions := transactions
	if len(recentTransactions) > 5 {
		recentTransactions = recentTransactions[:5]
	}
	transactionsJson, err := json.MarshalIndent(recentTransactions, "", "  ")
	if err != nil {
		return "", err
	}

	breadthMean, breadthStdev := marketBreadth(assets)

	return fmt.Sprintf(`You are a helpful cryptocurrency assistant with access to both market data and detailed portfolio analysis.

Current market data for top cryptocurrencies:
%s

Market breadth: average 24h change across tracked assets is %.2f%% (stdev %.2f).

Portfolio Performance:
- Total Allocated: $%s
- Current Portfolio Value: $%s
- Overall Return: %s%%

Detailed Portfolio Analysis:
%s

Transaction History Summary:
%s

When asked about specific cryptocurrencies or portfolio analysis:
1. Provide information from current market data
2. Include relevant transaction history insights
3. Format numbers clearly and include rank, price, 24h change, and market cap when available
4. If asked about portfolio performance, provide detailed analysis including current value vs allocated capital, individual coin performance, and average entry prices vs current prices
5. If asked to show a chart, one will be displayed automatically - acknowledge this in your response`,
		string(marketJson),
		breadthMean,
		breadthStdev,
		summary.TotalAllocated.StringFixed(2),
		summary.CurrentValue.StringFixed(2),
		summary.PercentageChange.StringFixed(2),
		string(analysisJson),
		string(transactionsJson),
	), nil
}
