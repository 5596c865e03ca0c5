package exchange

import "errors"

var (
	// ErrExchangeNotSupported 不支持的交易所
	ErrExchangeNotSupported = errors.New("exchange not supported")
	// ErrNotSupported 交易所不支持该操作（能力缺口，显式报错而不是静默返回空数据）
	ErrNotSupported = errors.New("operation not supported by exchange")
	// ErrAuthenticationRequired 需要认证（私有接口缺少 API 密钥时在发起请求前返回）
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrInvalidSymbol 无效的交易对
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidAmount 无效的数量
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrPriceRequired 限价单缺少价格
	ErrPriceRequired = errors.New("price required for limit order")
	// ErrOrderNotFound 订单未找到
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidAddress 无效的提现地址
	ErrInvalidAddress = errors.New("invalid withdrawal address")
)
