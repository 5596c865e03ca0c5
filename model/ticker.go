package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TickerVolume 行情成交量信息
type TickerVolume struct {
	// Converted 市场货币计的成交量
	Converted decimal.Decimal `json:"converted"`
	// InBase 折算为计价货币的成交量（Converted × Last）
	InBase decimal.Decimal `json:"in_base"`
	// MarketCurrency 市场货币
	MarketCurrency string `json:"market_currency,omitempty"`
	// BaseCurrency 计价货币
	BaseCurrency string `json:"base_currency,omitempty"`
	// Timestamp 本地观测时间（交易所行情不携带时间戳）
	Timestamp time.Time `json:"timestamp"`
}

// Ticker 行情信息
type Ticker struct {
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Bid 买一价
	Bid decimal.Decimal `json:"bid"`
	// Ask 卖一价
	Ask decimal.Decimal `json:"ask"`
	// Last 最新价
	Last decimal.Decimal `json:"last"`
	// Volume 成交量信息
	Volume TickerVolume `json:"volume"`
}

// Tickers 行情信息数组
type Tickers []*Ticker
