package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeSide 成交方向
type TradeSide string

const (
	// TradeSideBuy 买入
	TradeSideBuy TradeSide = "buy"
	// TradeSideSell 卖出
	TradeSideSell TradeSide = "sell"
	// TradeSideUnspecified 未知方向（交易所返回了枚举之外的值）
	TradeSideUnspecified TradeSide = "unspecified"
)

// Trade 成交记录
type Trade struct {
	// ID 交易所分配的成交ID（同一交易所内单调，跨交易所不唯一）
	ID string `json:"id"`
	// OrderID 订单ID（公共成交流中为空）
	OrderID string `json:"order_id,omitempty"`
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Side 成交方向
	Side TradeSide `json:"side"`
	// Price 成交价格
	Price decimal.Decimal `json:"price"`
	// Amount 成交数量
	Amount decimal.Decimal `json:"amount"`
	// Fee 手续费
	Fee decimal.Decimal `json:"fee"`
	// Timestamp 成交时间（已从交易所的时间戳单位转换为绝对时间）
	Timestamp time.Time `json:"timestamp"`
}

// IsBuy 是否为买入成交
func (t *Trade) IsBuy() bool {
	return t.Side == TradeSideBuy
}
