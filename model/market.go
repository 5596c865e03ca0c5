package model

import "github.com/shopspring/decimal"

// Market 市场信息
type Market struct {
	// ID 交易所原始交易对格式
	ID string `json:"id"`
	// Symbol 标准化交易对
	Symbol string `json:"symbol"`
	// MinAmount 最小下单数量
	MinAmount decimal.Decimal `json:"min_amount"`
	// PriceStep 价格步长（由小数位数推导：10^-priceScale）
	PriceStep decimal.Decimal `json:"price_step"`
	// Active 是否可交易
	Active bool `json:"active"`
}

// Currency 币种信息
type Currency struct {
	// Code 币种代码，如 "BTC"
	Code string `json:"code"`
	// Name 币种名称
	Name string `json:"name,omitempty"`
	// Active 钱包是否可用（充提正常）
	Active bool `json:"active"`
}
