package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
)

// The statistics below use the purchase price as the current unit price:
// no live market feed is consulted, so a position's current value equals
// its cost basis. The profit/loss formulas stay generic so a real price
// source can be substituted later.

var hundred = decimal.NewFromInt(100)

// PortfolioValueStats is the response of the portfolio value endpoint.
type PortfolioValueStats struct {
	TotalValue           string `json:"totalValue"`
	TotalInvested        string `json:"totalInvested"`
	ProfitLoss           string `json:"profitLoss"`
	ProfitLossPercentage string `json:"profitLossPercentage"`
	Currency             string `json:"currency"`
}

// SymbolSummary aggregates all positions sharing one symbol.
type SymbolSummary struct {
	Symbol               string `json:"symbol"`
	Name                 string `json:"name"`
	TotalQuantity        string `json:"totalQuantity"`
	TotalInvested        string `json:"totalInvested"`
	CurrentValue         string `json:"currentValue"`
	Count                int    `json:"count"`
	ProfitLoss           string `json:"profitLoss"`
	ProfitLossPercentage string `json:"profitLossPercentage"`
	PortfolioPercentage  string `json:"portfolioPercentage"`
}

// PortfolioSummaryStats is the response of the portfolio summary endpoint.
type PortfolioSummaryStats struct {
	Summary                   []SymbolSummary `json:"summary"`
	TotalAssets               int             `json:"totalAssets"`
	UniqueCryptos             int             `json:"uniqueCryptos"`
	TotalValue                string          `json:"totalValue"`
	TotalInvested             string          `json:"totalInvested"`
	TotalProfitLoss           string          `json:"totalProfitLoss"`
	TotalProfitLossPercentage string          `json:"totalProfitLossPercentage"`
}

// HistoryEntry is one purchase in the chronological accumulation.
type HistoryEntry struct {
	Date               string `json:"date"`
	Symbol             string `json:"symbol"`
	Name               string `json:"name"`
	Quantity           string `json:"quantity"`
	PurchasePrice      string `json:"purchasePrice"`
	Invested           string `json:"invested"`
	CumulativeInvested string `json:"cumulativeInvested"`
	CumulativeValue    string `json:"cumulativeValue"`
}

// PortfolioHistoryStats is the response of the portfolio history endpoint.
type PortfolioHistoryStats struct {
	History      []HistoryEntry `json:"history"`
	TotalEntries int            `json:"totalEntries"`
}

// DistributionEntry is one symbol's share of the total portfolio value.
type DistributionEntry struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	Percentage string `json:"percentage"`
}

// PortfolioDistributionStats is the response of the distribution endpoint.
type PortfolioDistributionStats struct {
	Distribution []DistributionEntry `json:"distribution"`
	TotalValue   string              `json:"totalValue"`
}

// statsService loads a user's assets and delegates to the pure computations.
type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB) StatsServicer {
	return &statsService{db: db}
}

func (s *statsService) loadAssets(userID uint) ([]models.CryptoAsset, error) {
	var assets []models.CryptoAsset
	if err := s.db.Where("user_id = ?", userID).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// PortfolioValue returns the total valuation of the user's portfolio.
func (s *statsService) PortfolioValue(userID uint) (*PortfolioValueStats, error) {
	assets, err := s.loadAssets(userID)
	if err != nil {
		return nil, err
	}
	stats := ComputePortfolioValue(assets)
	return &stats, nil
}

// PortfolioSummary returns per-symbol aggregates plus overall totals.
func (s *statsService) PortfolioSummary(userID uint) (*PortfolioSummaryStats, error) {
	assets, err := s.loadAssets(userID)
	if err != nil {
		return nil, err
	}
	stats := ComputePortfolioSummary(assets)
	return &stats, nil
}

// PortfolioHistory returns the chronological accumulation of the portfolio.
func (s *statsService) PortfolioHistory(userID uint) (*PortfolioHistoryStats, error) {
	assets, err := s.loadAssets(userID)
	if err != nil {
		return nil, err
	}
	stats := ComputePortfolioHistory(assets)
	return &stats, nil
}

// PortfolioDistribution returns each symbol's share of the total value.
func (s *statsService) PortfolioDistribution(userID uint) (*PortfolioDistributionStats, error) {
	assets, err := s.loadAssets(userID)
	if err != nil {
		return nil, err
	}
	stats := ComputePortfolioDistribution(assets)
	return &stats, nil
}

// ComputePortfolioValue folds the asset list into total invested, total
// value, and the derived profit/loss figures. Pure: no side effects.
func ComputePortfolioValue(assets []models.CryptoAsset) PortfolioValueStats {
	totalInvested := decimal.Zero
	totalValue := decimal.Zero

	for i := range assets {
		invested := assets[i].Invested()
		totalInvested = totalInvested.Add(invested)
		totalValue = totalValue.Add(invested)
	}

	profitLoss := totalValue.Sub(totalInvested)

	return PortfolioValueStats{
		TotalValue:           totalValue.StringFixed(2),
		TotalInvested:        totalInvested.StringFixed(2),
		ProfitLoss:           profitLoss.StringFixed(2),
		ProfitLossPercentage: percentage(profitLoss, totalInvested),
		Currency:             "USD",
	}
}

// summaryGroup accumulates one symbol's positions at full precision.
type summaryGroup struct {
	symbol   string
	name     string
	quantity decimal.Decimal
	invested decimal.Decimal
	value    decimal.Decimal
	count    int
}

// ComputePortfolioSummary groups assets by symbol and derives per-group and
// overall totals. Groups keep first-seen order; a group's display name is
// taken from its first asset.
func ComputePortfolioSummary(assets []models.CryptoAsset) PortfolioSummaryStats {
	groups := make(map[string]*summaryGroup)
	var order []string
	totalInvested := decimal.Zero
	totalValue := decimal.Zero

	for i := range assets {
		asset := &assets[i]
		invested := asset.Invested()

		group, ok := groups[asset.Symbol]
		if !ok {
			group = &summaryGroup{symbol: asset.Symbol, name: asset.Name}
			groups[asset.Symbol] = group
			order = append(order, asset.Symbol)
		}

		group.quantity = group.quantity.Add(asset.Quantity)
		group.invested = group.invested.Add(invested)
		group.value = group.value.Add(invested)
		group.count++

		totalInvested = totalInvested.Add(invested)
		totalValue = totalValue.Add(invested)
	}

	summary := make([]SymbolSummary, 0, len(order))
	for _, symbol := range order {
		group := groups[symbol]
		profitLoss := group.value.Sub(group.invested)
		summary = append(summary, SymbolSummary{
			Symbol:               group.symbol,
			Name:                 group.name,
			TotalQuantity:        group.quantity.String(),
			TotalInvested:        group.invested.StringFixed(2),
			CurrentValue:         group.value.StringFixed(2),
			Count:                group.count,
			ProfitLoss:           profitLoss.StringFixed(2),
			ProfitLossPercentage: percentage(profitLoss, group.invested),
			PortfolioPercentage:  percentage(group.value, totalValue),
		})
	}

	totalProfitLoss := totalValue.Sub(totalInvested)

	return PortfolioSummaryStats{
		Summary:                   summary,
		TotalAssets:               len(assets),
		UniqueCryptos:             len(summary),
		TotalValue:                totalValue.StringFixed(2),
		TotalInvested:             totalInvested.StringFixed(2),
		TotalProfitLoss:           totalProfitLoss.StringFixed(2),
		TotalProfitLossPercentage: percentage(totalProfitLoss, totalInvested),
	}
}

// ComputePortfolioHistory orders assets by purchase date ascending and folds
// running invested/value totals over the sequence. The cumulative fold is
// user-scoped, not per symbol.
func ComputePortfolioHistory(assets []models.CryptoAsset) PortfolioHistoryStats {
	ordered := make([]models.CryptoAsset, len(assets))
	copy(ordered, assets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PurchaseDate.Before(ordered[j].PurchaseDate)
	})

	history := make([]HistoryEntry, 0, len(ordered))
	cumulativeInvested := decimal.Zero
	cumulativeValue := decimal.Zero

	for i := range ordered {
		asset := &ordered[i]
		invested := asset.Invested()
		cumulativeInvested = cumulativeInvested.Add(invested)
		cumulativeValue = cumulativeValue.Add(invested)

		history = append(history, HistoryEntry{
			Date:               asset.PurchaseDate.Format("2006-01-02"),
			Symbol:             asset.Symbol,
			Name:               asset.Name,
			Quantity:           asset.Quantity.String(),
			PurchasePrice:      asset.PurchasePrice.StringFixed(2),
			Invested:           invested.StringFixed(2),
			CumulativeInvested: cumulativeInvested.StringFixed(2),
			CumulativeValue:    cumulativeValue.StringFixed(2),
		})
	}

	return PortfolioHistoryStats{
		History:      history,
		TotalEntries: len(history),
	}
}

// distributionGroup accumulates one symbol's value at full precision.
type distributionGroup struct {
	symbol string
	name   string
	value  decimal.Decimal
}

// ComputePortfolioDistribution groups assets by symbol, computes each group's
// share of the total value, and sorts groups by value descending. The sort
// compares the unrounded decimals, not the formatted strings.
func ComputePortfolioDistribution(assets []models.CryptoAsset) PortfolioDistributionStats {
	groups := make(map[string]*distributionGroup)
	var order []string
	totalValue := decimal.Zero

	for i := range assets {
		asset := &assets[i]
		value := asset.Invested()

		group, ok := groups[asset.Symbol]
		if !ok {
			group = &distributionGroup{symbol: asset.Symbol, name: asset.Name}
			groups[asset.Symbol] = group
			order = append(order, asset.Symbol)
		}
		group.value = group.value.Add(value)
		totalValue = totalValue.Add(value)
	}

	ordered := make([]*distributionGroup, 0, len(order))
	for _, symbol := range order {
		ordered = append(ordered, groups[symbol])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].value.GreaterThan(ordered[j].value)
	})

	distribution := make([]DistributionEntry, 0, len(ordered))
	for _, group := range ordered {
		distribution = append(distribution, DistributionEntry{
			Symbol:     group.symbol,
			Name:       group.name,
			Value:      group.value.StringFixed(2),
			Percentage: percentage(group.value, totalValue),
		})
	}

	return PortfolioDistributionStats{
		Distribution: distribution,
		TotalValue:   totalValue.StringFixed(2),
	}
}

// percentage renders part/whole as a fixed two-decimal percentage string,
// or "0.00" when the denominator is not positive.
func percentage(part, whole decimal.Decimal) string {
	if !whole.IsPositive() {
		return "0.00"
	}
	return part.Div(whole).Mul(hundred).StringFixed(2)
}
