package cexlink

import "github.com/openexch/cexlink/exchange"

// 根包重新导出 exchange 包的哨兵错误，方便调用方统一判断
var (
	// ErrExchangeNotSupported 不支持的交易所
	ErrExchangeNotSupported = exchange.ErrExchangeNotSupported
	// ErrNotSupported 交易所不支持该操作
	ErrNotSupported = exchange.ErrNotSupported
	// ErrAuthenticationRequired 需要认证
	ErrAuthenticationRequired = exchange.ErrAuthenticationRequired
	// ErrInvalidSymbol 无效的交易对
	ErrInvalidSymbol = exchange.ErrInvalidSymbol
	// ErrInvalidAmount 无效的数量
	ErrInvalidAmount = exchange.ErrInvalidAmount
	// ErrPriceRequired 限价单缺少价格
	ErrPriceRequired = exchange.ErrPriceRequired
	// ErrOrderNotFound 订单未找到
	ErrOrderNotFound = exchange.ErrOrderNotFound
)
