package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide 订单方向
type OrderSide string

const (
	// OrderSideBuy 买入
	OrderSideBuy OrderSide = "buy"
	// OrderSideSell 卖出
	OrderSideSell OrderSide = "sell"
)

// OrderType 订单类型
type OrderType string

const (
	// OrderTypeMarket 市价单
	OrderTypeMarket OrderType = "market"
	// OrderTypeLimit 限价单
	OrderTypeLimit OrderType = "limit"
)

// OrderStatus 订单状态
//
// 生命周期：Pending -> {Open, Filled, PartiallyFilled, Canceled, Rejected}；
// Open -> {PartiallyFilled, Filled, Canceled}；
// PartiallyFilled -> {Filled, Canceled}。
// Filled、Canceled、Rejected 为终态。
type OrderStatus string

const (
	// OrderStatusPending 已提交，交易所尚未确认成交状态
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusOpen 未成交订单
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusPartiallyFilled 部分成交订单
	OrderStatusPartiallyFilled OrderStatus = "partially_filled"
	// OrderStatusFilled 已成交订单
	OrderStatusFilled OrderStatus = "filled"
	// OrderStatusCanceled 已取消订单
	OrderStatusCanceled OrderStatus = "canceled"
	// OrderStatusRejected 已拒绝订单
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusUnspecified 未知状态（交易所返回了枚举之外的值）
	OrderStatusUnspecified OrderStatus = "unspecified"
)

// IsTerminal 是否为终态
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFilled || s == OrderStatusCanceled || s == OrderStatusRejected
}

// Order 订单信息
type Order struct {
	// ID 订单ID
	ID string `json:"id"`
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Type 订单类型
	Type OrderType `json:"type"`
	// Side 订单方向
	Side OrderSide `json:"side"`
	// Price 委托价格
	Price decimal.Decimal `json:"price"`
	// Amount 委托数量
	Amount decimal.Decimal `json:"amount"`
	// Filled 已成交数量（委托数量减剩余数量，下限截断为 0）
	Filled decimal.Decimal `json:"filled"`
	// Remaining 未成交数量
	Remaining decimal.Decimal `json:"remaining"`
	// Fee 手续费
	Fee decimal.Decimal `json:"fee"`
	// Status 订单状态
	Status OrderStatus `json:"status"`
	// Timestamp 下单时间
	Timestamp time.Time `json:"timestamp"`
}
