package livecoin

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openexch/cexlink/common"
	"github.com/openexch/cexlink/model"
	"github.com/openexch/cexlink/types"
)

// 每个实体一个纯转换函数：输入单个响应节点，输出标准化实体或该条
// 记录的映射错误。批量端点在外层逐条调用，坏记录跳过，不中断整批。

// mapTicker 转换行情数据
//
// 行情响应不携带时间戳，观测时间由调用方用本地时钟提供。
// BestBid/BestAsk/Last/Volume 直接取自响应；折算成交量为
// volume × last。交易对缺腿时货币归属无法确定，按映射缺陷处理。
func mapTicker(raw json.RawMessage, observedAt time.Time) (*model.Ticker, error) {
	var item livecoinTicker
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("unmarshal ticker: %w", err)
	}

	symbol := common.Normalize(item.Symbol)
	if symbol.IsEmpty() {
		return nil, fmt.Errorf("ticker without symbol")
	}

	market, base, ok := symbol.Legs()
	if !ok {
		return nil, fmt.Errorf("ticker symbol %q has no two legs", symbol.String())
	}

	return &model.Ticker{
		Symbol: symbol.String(),
		Bid:    item.BestBid.Decimal,
		Ask:    item.BestAsk.Decimal,
		Last:   item.Last.Decimal,
		Volume: model.TickerVolume{
			Converted:      item.Volume.Decimal,
			InBase:         item.Volume.Mul(item.Last.Decimal),
			MarketCurrency: market,
			BaseCurrency:   base,
			Timestamp:      observedAt,
		},
	}, nil
}

// mapTrade 转换公共成交数据
//
// time 字段按端点约定为秒级时间戳；type 与 BUY/SELL 精确大小写匹配，
// 枚举之外的值降级为未知方向而不是整条失败。
func mapTrade(raw json.RawMessage, symbol string) (*model.Trade, error) {
	var item livecoinTrade
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("unmarshal trade: %w", err)
	}
	if item.ID == 0 {
		return nil, fmt.Errorf("trade without id")
	}

	return &model.Trade{
		ID:        strconv.FormatInt(item.ID, 10),
		Symbol:    symbol,
		Side:      parseTradeSide(item.Type),
		Price:     item.Price.Decimal,
		Amount:    item.Quantity.Decimal,
		Timestamp: item.Time.Time,
	}, nil
}

// mapMyTrade 转换私有成交数据（datetime 为秒级时间戳）
func mapMyTrade(raw json.RawMessage) (*model.Trade, error) {
	var item livecoinMyTrade
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("unmarshal trade: %w", err)
	}
	if item.ID == 0 {
		return nil, fmt.Errorf("trade without id")
	}

	trade := &model.Trade{
		ID:        strconv.FormatInt(item.ID, 10),
		Symbol:    common.Normalize(item.Symbol).String(),
		Side:      parseTradeSide(item.Type),
		Price:     item.Price.Decimal,
		Amount:    item.Quantity.Decimal,
		Fee:       item.Fee.Decimal,
		Timestamp: item.Datetime.Time,
	}
	if item.OrderID != 0 {
		trade.OrderID = strconv.FormatInt(item.OrderID, 10)
	}
	return trade, nil
}

// mapOrder 转换订单详情
//
// 已成交数量 = 委托数量 - 剩余数量，下限截断为 0（交易所偶发返回
// 剩余量大于委托量的脏数据）。
func mapOrder(detail *livecoinOrderDetail) *model.Order {
	filled := detail.Quantity.Sub(detail.RemainingQuantity.Decimal)
	if filled.IsNegative() {
		filled = decimal.Zero
	}

	side, orderType := parseOrderKind(detail.Type)

	return &model.Order{
		ID:        strconv.FormatInt(detail.ID, 10),
		Symbol:    common.Normalize(detail.Symbol).String(),
		Type:      orderType,
		Side:      side,
		Price:     detail.Price.Decimal,
		Amount:    detail.Quantity.Decimal,
		Filled:    filled,
		Remaining: detail.RemainingQuantity.Decimal,
		Fee:       detail.Commission.Decimal,
		Status:    parseOrderStatus(detail.Status),
		Timestamp: detail.IssueTime.Time,
	}
}

// mapClientOrder 转换历史/未成交订单数据项
func mapClientOrder(raw json.RawMessage) (*model.Order, error) {
	var item livecoinClientOrder
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	if item.ID == 0 {
		return nil, fmt.Errorf("order without id")
	}

	filled := item.Quantity.Sub(item.RemainingQuantity.Decimal)
	if filled.IsNegative() {
		filled = decimal.Zero
	}

	side, orderType := parseOrderKind(item.Type)

	return &model.Order{
		ID:        strconv.FormatInt(item.ID, 10),
		Symbol:    common.Normalize(item.CurrencyPair).String(),
		Type:      orderType,
		Side:      side,
		Price:     item.Price.Decimal,
		Amount:    item.Quantity.Decimal,
		Filled:    filled,
		Remaining: item.RemainingQuantity.Decimal,
		Fee:       item.Commission.Decimal,
		Status:    parseOrderStatus(item.OrderStatus),
		Timestamp: item.IssueTime.Time,
	}, nil
}

// mapBalances 转换余额列表
//
// 只保留 type 与请求视图一致且数值严格为正的条目；单条坏记录跳过。
func mapBalances(items []json.RawMessage, view string) model.Balances {
	balances := make(model.Balances)
	for _, raw := range items {
		var item livecoinBalance
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		if item.Type != view || item.Currency == "" {
			continue
		}
		if !item.Value.IsPositive() {
			continue
		}
		balances[item.Currency] = item.Value.Decimal
	}
	return balances
}

// mapDepositAddress 转换充值地址
//
// 钱包字符串用 "::" 内联编码地址标签，需要拆出来；响应没有可用
// 地址或币种对不上时返回 nil，不视为错误。
func mapDepositAddress(currency string, resp *livecoinDepositAddressResponse) *model.DepositAddress {
	if resp == nil || resp.Wallet == "" {
		return nil
	}
	if resp.Currency != "" && !strings.EqualFold(resp.Currency, currency) {
		return nil
	}

	address := resp.Wallet
	tag := ""
	if idx := strings.Index(resp.Wallet, addressTagDelimiter); idx >= 0 {
		address = resp.Wallet[:idx]
		tag = resp.Wallet[idx+len(addressTagDelimiter):]
	}
	if address == "" {
		return nil
	}

	return &model.DepositAddress{
		Currency: strings.ToUpper(currency),
		Address:  address,
		Tag:      tag,
	}
}

// mapTransaction 转换充提记录（date 为毫秒级时间戳）
func mapTransaction(raw json.RawMessage) (*model.Transaction, error) {
	var item livecoinTransaction
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("unmarshal transaction: %w", err)
	}
	if item.ID == "" {
		return nil, fmt.Errorf("transaction without id")
	}

	return &model.Transaction{
		ID:        item.ID,
		Type:      parseTransactionType(item.Type),
		Currency:  item.FixedCurrency,
		Amount:    item.Amount.Decimal,
		Fee:       item.Fee.Decimal,
		Timestamp: item.Date.Time,
	}, nil
}

// mapMarket 转换交易对限制信息
//
// 价格步长由小数位数推导：priceScale=3 -> 0.001。
func mapMarket(raw json.RawMessage) (*model.Market, error) {
	var item livecoinRestriction
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("unmarshal restriction: %w", err)
	}
	if item.CurrencyPair == "" {
		return nil, fmt.Errorf("restriction without currency pair")
	}

	return &model.Market{
		ID:        item.CurrencyPair,
		Symbol:    common.Normalize(item.CurrencyPair).String(),
		MinAmount: item.MinLimitQuantity.Decimal,
		PriceStep: decimal.New(1, -int32(item.PriceScale)),
		Active:    true,
	}, nil
}

// mapCurrency 转换币种信息
func mapCurrency(raw json.RawMessage) (*model.Currency, error) {
	var item livecoinCoin
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("unmarshal coin info: %w", err)
	}
	if item.Symbol == "" {
		return nil, fmt.Errorf("coin info without symbol")
	}

	return &model.Currency{
		Code:   strings.ToUpper(item.Symbol),
		Name:   item.Name,
		Active: item.WalletStatus == "normal",
	}, nil
}

// mapOrderBookSide 转换订单簿单侧档位，坏档位跳过
func mapOrderBookSide(levels [][]types.ExDecimal) []model.OrderBookEntry {
	entries := make([]model.OrderBookEntry, 0, len(levels))
	for _, level := range levels {
		if len(level) < 2 {
			continue
		}
		entries = append(entries, model.OrderBookEntry{
			Price:  level[0].Decimal,
			Amount: level[1].Decimal,
		})
	}
	return entries
}

// parseTradeSide 解析成交方向，精确大小写匹配
func parseTradeSide(s string) model.TradeSide {
	switch s {
	case "BUY":
		return model.TradeSideBuy
	case "SELL":
		return model.TradeSideSell
	default:
		return model.TradeSideUnspecified
	}
}

// parseOrderStatus 解析订单状态
//
// 交易所会在不通知的情况下增加未收录的状态值，枚举之外的 token
// 降级为 Unspecified 而不是整条记录失败。
func parseOrderStatus(s string) model.OrderStatus {
	switch s {
	case "OPEN":
		return model.OrderStatusOpen
	case "PARTIALLY_FILLED":
		return model.OrderStatusPartiallyFilled
	case "EXECUTED":
		return model.OrderStatusFilled
	case "CANCELLED", "PARTIALLY_FILLED_AND_CANCELLED":
		return model.OrderStatusCanceled
	case "REJECTED":
		return model.OrderStatusRejected
	default:
		return model.OrderStatusUnspecified
	}
}

// parseOrderKind 解析订单的方向和类型（如 "LIMIT_SELL"、"MARKET_BUY"）
func parseOrderKind(s string) (model.OrderSide, model.OrderType) {
	side := model.OrderSideBuy
	if strings.HasSuffix(s, "SELL") {
		side = model.OrderSideSell
	}
	orderType := model.OrderTypeLimit
	if strings.HasPrefix(s, "MARKET") {
		orderType = model.OrderTypeMarket
	}
	return side, orderType
}

// parseTransactionType 解析充提记录类型
func parseTransactionType(s string) model.TransactionType {
	switch s {
	case "DEPOSIT":
		return model.TransactionTypeDeposit
	case "WITHDRAWAL":
		return model.TransactionTypeWithdrawal
	default:
		return model.TransactionType(s)
	}
}
