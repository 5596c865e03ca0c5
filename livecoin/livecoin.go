package livecoin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openexch/cexlink/common"
	"github.com/openexch/cexlink/exchange"
	"github.com/openexch/cexlink/model"
	"github.com/openexch/cexlink/types"
)

// 余额视图（/payment/balances 的 type 字段）
const (
	balanceViewTotal     = "total"
	balanceViewAvailable = "available"
)

// Livecoin Livecoin 交易所实现
//
// 每个操作都是独立的请求/响应往返，实例不持有跨调用状态，
// 可被调用方并发使用。
type Livecoin struct {
	client *Client
	signer *Signer

	// now 时钟协作方：行情观测时间与充提记录默认回溯区间
	now func() time.Time
}

// NewLivecoin 创建 Livecoin 交易所实例
func NewLivecoin(apiKey, secretKey string, options map[string]interface{}) (exchange.Exchange, error) {
	client, err := NewClient(apiKey, secretKey, options)
	if err != nil {
		return nil, err
	}

	return &Livecoin{
		client: client,
		signer: NewSigner(secretKey),
		now:    time.Now,
	}, nil
}

// Name 返回交易所名称
func (l *Livecoin) Name() string {
	return livecoinName
}

var _ exchange.Exchange = (*Livecoin)(nil)

// ========== 请求辅助 ==========

// publicGet 发送公共GET请求
func (l *Livecoin) publicGet(ctx context.Context, path string, params *types.ExValues) ([]byte, error) {
	rawQuery := ""
	if params != nil {
		rawQuery = params.EncodeForm()
	}
	return l.client.HTTPClient.Get(ctx, path, rawQuery, nil)
}

// privateRequest 签名并发送私有请求
//
// 缺少密钥对时在发起任何网络请求前返回 ErrAuthenticationRequired。
// 签名覆盖的参数串与实际发送的查询字符串/表单体逐字节一致。
func (l *Livecoin) privateRequest(ctx context.Context, method, path string, params *types.ExValues) ([]byte, error) {
	if !l.client.HasCredentials() {
		return nil, fmt.Errorf("%w: %s %s", exchange.ErrAuthenticationRequired, method, path)
	}

	payload, signature := l.signer.SignParams(params)
	headers := map[string]string{
		headerAPIKey: l.client.APIKey,
		headerSign:   signature,
	}

	if method == http.MethodPost {
		return l.client.HTTPClient.PostForm(ctx, path, payload, headers)
	}
	return l.client.HTTPClient.Get(ctx, path, payload, headers)
}

// ========== 市场元数据 ==========

func (l *Livecoin) FetchMarkets(ctx context.Context) ([]*model.Market, error) {
	resp, err := l.publicGet(ctx, pathRestrictions, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch markets: %w", err)
	}

	var data livecoinRestrictionsResponse
	if err := json.Unmarshal(resp, &data); err != nil {
		return nil, fmt.Errorf("unmarshal markets: %w", err)
	}

	markets := make([]*model.Market, 0, len(data.Restrictions))
	for _, raw := range data.Restrictions {
		market, err := mapMarket(raw)
		if err != nil {
			continue
		}
		markets = append(markets, market)
	}
	return markets, nil
}

func (l *Livecoin) FetchCurrencies(ctx context.Context) ([]*model.Currency, error) {
	resp, err := l.publicGet(ctx, pathCoinInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch currencies: %w", err)
	}

	var data livecoinCoinInfoResponse
	if err := json.Unmarshal(resp, &data); err != nil {
		return nil, fmt.Errorf("unmarshal currencies: %w", err)
	}

	currencies := make([]*model.Currency, 0, len(data.Info))
	for _, raw := range data.Info {
		currency, err := mapCurrency(raw)
		if err != nil {
			continue
		}
		currencies = append(currencies, currency)
	}
	return currencies, nil
}

// ========== 市场数据 ==========

func (l *Livecoin) FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error) {
	native, err := ToLivecoinSymbol(symbol)
	if err != nil {
		return nil, err
	}

	params := types.NewExValues().Set("currencyPair", native)
	resp, err := l.publicGet(ctx, pathTicker, params)
	if err != nil {
		return nil, fmt.Errorf("fetch ticker: %w", err)
	}

	ticker, err := mapTicker(resp, l.now())
	if err != nil {
		return nil, fmt.Errorf("map ticker: %w", err)
	}
	return ticker, nil
}

func (l *Livecoin) FetchTickers(ctx context.Context) (map[string]*model.Ticker, error) {
	resp, err := l.publicGet(ctx, pathTicker, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch tickers: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, fmt.Errorf("unmarshal tickers: %w", err)
	}

	observedAt := l.now()
	tickers := make(map[string]*model.Ticker, len(items))
	for _, raw := range items {
		// 单条坏记录跳过，不中断整批
		ticker, err := mapTicker(raw, observedAt)
		if err != nil {
			continue
		}
		tickers[ticker.Symbol] = ticker
	}
	return tickers, nil
}

func (l *Livecoin) FetchOrderBook(ctx context.Context, symbol string, maxCount int) (*model.OrderBook, error) {
	if maxCount <= 0 {
		return nil, fmt.Errorf("invalid order book depth: %d", maxCount)
	}
	native, err := ToLivecoinSymbol(symbol)
	if err != nil {
		return nil, err
	}

	params := types.NewExValues().
		Set("currencyPair", native).
		Set("depth", maxCount).
		Set("groupByPrice", true)
	resp, err := l.publicGet(ctx, pathOrderBook, params)
	if err != nil {
		return nil, fmt.Errorf("fetch order book: %w", err)
	}

	var data livecoinOrderBookResponse
	if err := json.Unmarshal(resp, &data); err != nil {
		return nil, fmt.Errorf("unmarshal order book: %w", err)
	}

	return &model.OrderBook{
		Symbol:    common.Normalize(symbol).String(),
		Bids:      mapOrderBookSide(data.Bids),
		Asks:      mapOrderBookSide(data.Asks),
		Timestamp: data.Timestamp.Time,
	}, nil
}

func (l *Livecoin) FetchTrades(ctx context.Context, symbol string) ([]*model.Trade, error) {
	return l.fetchPublicTrades(ctx, symbol, time.Time{})
}

// FetchHistoricalTrades 尽力而为的历史成交查询
//
// 交易所只保留一个很短的近期窗口（last_trades 最多一小时），窗口
// 之前的记录永久不可得；since 在本地过滤。这是交易所能力缺口，
// 不是错误。
func (l *Livecoin) FetchHistoricalTrades(ctx context.Context, symbol string, since time.Time) ([]*model.Trade, error) {
	return l.fetchPublicTrades(ctx, symbol, since)
}

func (l *Livecoin) fetchPublicTrades(ctx context.Context, symbol string, since time.Time) ([]*model.Trade, error) {
	native, err := ToLivecoinSymbol(symbol)
	if err != nil {
		return nil, err
	}

	params := types.NewExValues().Set("currencyPair", native)
	if !since.IsZero() {
		// 取交易所允许的最大窗口（一小时而不是一分钟）
		params.Set("minutesOrHour", false)
	}

	resp, err := l.publicGet(ctx, pathLastTrades, params)
	if err != nil {
		return nil, fmt.Errorf("fetch trades: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, fmt.Errorf("unmarshal trades: %w", err)
	}

	normalized := common.Normalize(symbol).String()
	trades := make([]*model.Trade, 0, len(items))
	for _, raw := range items {
		trade, err := mapTrade(raw, normalized)
		if err != nil {
			continue
		}
		if !since.IsZero() && trade.Timestamp.Before(since) {
			continue
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

// FetchOHLCV 交易所不提供K线数据，显式报错而不是静默返回空数据
func (l *Livecoin) FetchOHLCV(ctx context.Context, symbol string, timeframe string, since time.Time, limit int) (model.OHLCVs, error) {
	return nil, fmt.Errorf("%w: %s does not provide candle data", exchange.ErrNotSupported, livecoinName)
}

// ========== 账户信息 ==========

func (l *Livecoin) FetchBalances(ctx context.Context) (model.Balances, error) {
	return l.fetchBalances(ctx, balanceViewTotal)
}

func (l *Livecoin) FetchTradableBalances(ctx context.Context) (model.Balances, error) {
	return l.fetchBalances(ctx, balanceViewAvailable)
}

func (l *Livecoin) fetchBalances(ctx context.Context, view string) (model.Balances, error) {
	resp, err := l.privateRequest(ctx, http.MethodGet, pathBalances, types.NewExValues())
	if err != nil {
		return nil, fmt.Errorf("fetch balances: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, fmt.Errorf("unmarshal balances: %w", err)
	}

	return mapBalances(items, view), nil
}

// ========== 订单操作 ==========

func (l *Livecoin) CreateOrder(ctx context.Context, symbol string, side model.OrderSide, orderType model.OrderType, amount, price decimal.Decimal) (*model.Order, error) {
	// 调用方契约校验，任何网络请求之前完成
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", exchange.ErrInvalidAmount, amount)
	}
	if orderType == model.OrderTypeLimit && !price.IsPositive() {
		return nil, exchange.ErrPriceRequired
	}
	native, err := ToLivecoinSymbol(symbol)
	if err != nil {
		return nil, err
	}

	var path string
	switch {
	case side == model.OrderSideBuy && orderType == model.OrderTypeLimit:
		path = pathBuyLimit
	case side == model.OrderSideSell && orderType == model.OrderTypeLimit:
		path = pathSellLimit
	case side == model.OrderSideBuy && orderType == model.OrderTypeMarket:
		path = pathBuyMarket
	default:
		path = pathSellMarket
	}

	params := types.NewExValues().Set("currencyPair", native)
	if orderType == model.OrderTypeLimit {
		params.Set("price", price)
	}
	params.Set("quantity", amount)

	resp, err := l.privateRequest(ctx, http.MethodPost, path, params)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	var result livecoinOrderActionResponse
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	if !result.Success || result.OrderID == 0 {
		return nil, fmt.Errorf("create order rejected: %s", result.Exception)
	}

	// 交易所尚未确认成交状态，统一返回 Pending；
	// 后续状态只能通过 FetchOrder 查询获得
	return &model.Order{
		ID:        fmt.Sprintf("%d", result.OrderID),
		Symbol:    common.Normalize(symbol).String(),
		Type:      orderType,
		Side:      side,
		Price:     price,
		Amount:    amount,
		Remaining: amount,
		Status:    model.OrderStatusPending,
		Timestamp: l.now(),
	}, nil
}

// CancelOrder 取消订单
//
// 撤单端点需要交易对，而调用方可能只有订单ID，所以先做一次详情
// 查询解析交易对，再发起撤单：两次串行的依赖调用。详情查不到该
// 订单时视为无操作成功（订单可能已经终结）。
func (l *Livecoin) CancelOrder(ctx context.Context, orderID string) error {
	detail, err := l.fetchOrderDetail(ctx, orderID)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	if detail == nil {
		return nil
	}

	native, err := ToLivecoinSymbol(detail.Symbol)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	params := types.NewExValues().
		Set("currencyPair", native).
		Set("orderId", orderID)
	resp, err := l.privateRequest(ctx, http.MethodPost, pathCancelLimit, params)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	var result livecoinOrderActionResponse
	if err := json.Unmarshal(resp, &result); err != nil {
		return fmt.Errorf("unmarshal cancel result: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("cancel order rejected: %s", result.Exception)
	}
	return nil
}

func (l *Livecoin) FetchOrder(ctx context.Context, orderID string) (*model.Order, error) {
	detail, err := l.fetchOrderDetail(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch order: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: %s", exchange.ErrOrderNotFound, orderID)
	}
	return mapOrder(detail), nil
}

// fetchOrderDetail 查询订单详情，订单不存在时返回 (nil, nil)
func (l *Livecoin) fetchOrderDetail(ctx context.Context, orderID string) (*livecoinOrderDetail, error) {
	params := types.NewExValues().Set("orderId", orderID)
	resp, err := l.privateRequest(ctx, http.MethodGet, pathOrderDetail, params)
	if err != nil {
		var httpErr *common.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	var detail livecoinOrderDetail
	if err := json.Unmarshal(resp, &detail); err != nil {
		return nil, fmt.Errorf("unmarshal order detail: %w", err)
	}
	if detail.ID == 0 || detail.Symbol == "" {
		return nil, nil
	}
	return &detail, nil
}

func (l *Livecoin) FetchOpenOrders(ctx context.Context, symbol string) ([]*model.Order, error) {
	params := types.NewExValues()
	if symbol != "" {
		native, err := ToLivecoinSymbol(symbol)
		if err != nil {
			return nil, err
		}
		params.Set("currencyPair", native)
	}
	params.Set("openClosed", clientOrdersOpenFilter)

	resp, err := l.privateRequest(ctx, http.MethodGet, pathClientOrders, params)
	if err != nil {
		return nil, fmt.Errorf("fetch open orders: %w", err)
	}

	var data livecoinClientOrdersResponse
	if err := json.Unmarshal(resp, &data); err != nil {
		return nil, fmt.Errorf("unmarshal open orders: %w", err)
	}

	orders := make([]*model.Order, 0, len(data.Data))
	for _, raw := range data.Data {
		order, err := mapClientOrder(raw)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (l *Livecoin) FetchMyTrades(ctx context.Context, symbol string, since time.Time, limit int) ([]*model.Trade, error) {
	params := types.NewExValues()
	if symbol != "" {
		native, err := ToLivecoinSymbol(symbol)
		if err != nil {
			return nil, err
		}
		params.Set("currencyPair", native)
	}
	params.Set("orderDesc", true)
	if limit > 0 {
		params.Set("limit", limit)
	}

	resp, err := l.privateRequest(ctx, http.MethodGet, pathMyTrades, params)
	if err != nil {
		return nil, fmt.Errorf("fetch my trades: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, fmt.Errorf("unmarshal my trades: %w", err)
	}

	trades := make([]*model.Trade, 0, len(items))
	for _, raw := range items {
		trade, err := mapMyTrade(raw)
		if err != nil {
			continue
		}
		if !since.IsZero() && trade.Timestamp.Before(since) {
			continue
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

// ========== 充值提现 ==========

func (l *Livecoin) FetchDepositAddress(ctx context.Context, currency string) (*model.DepositAddress, error) {
	if currency == "" {
		return nil, fmt.Errorf("%w: empty currency", exchange.ErrInvalidSymbol)
	}

	params := types.NewExValues().Set("currency", strings.ToUpper(currency))
	resp, err := l.privateRequest(ctx, http.MethodGet, pathDepositAddr, params)
	if err != nil {
		return nil, fmt.Errorf("fetch deposit address: %w", err)
	}

	var data livecoinDepositAddressResponse
	if err := json.Unmarshal(resp, &data); err != nil {
		return nil, fmt.Errorf("unmarshal deposit address: %w", err)
	}

	// 没有可用地址时返回 nil，不视为错误
	return mapDepositAddress(currency, &data), nil
}

func (l *Livecoin) FetchTransactions(ctx context.Context, txType model.TransactionType, since, until time.Time, limit int) ([]*model.Transaction, error) {
	if until.IsZero() {
		until = l.now()
	}
	if since.IsZero() {
		// 调用方未指定起点时默认回溯一年
		since = until.AddDate(-1, 0, 0)
	}

	params := types.NewExValues().
		Set("start", since.UnixMilli()).
		Set("end", until.UnixMilli())
	if txType != "" {
		params.Set("types", string(txType))
	}
	if limit > 0 {
		params.Set("limit", limit)
	}

	resp, err := l.privateRequest(ctx, http.MethodGet, pathTransactions, params)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, fmt.Errorf("unmarshal transactions: %w", err)
	}

	transactions := make([]*model.Transaction, 0, len(items))
	for _, raw := range items {
		tx, err := mapTransaction(raw)
		if err != nil {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// Withdraw 提现
//
// 返回值只反映请求是否被交易所接受（HTTP 2xx）；响应体中的 fault
// 字段当前不参与成功判定，与既有线上行为保持一致。
func (l *Livecoin) Withdraw(ctx context.Context, currency, address, tag string, amount decimal.Decimal) (bool, error) {
	if address == "" {
		return false, exchange.ErrInvalidAddress
	}
	if !amount.IsPositive() {
		return false, fmt.Errorf("%w: %s", exchange.ErrInvalidAmount, amount)
	}

	wallet := address
	if tag != "" {
		wallet = address + addressTagDelimiter + tag
	}

	params := types.NewExValues().
		Set("amount", amount).
		Set("currency", strings.ToUpper(currency)).
		Set("wallet", wallet)

	if _, err := l.privateRequest(ctx, http.MethodPost, pathWithdraw, params); err != nil {
		return false, fmt.Errorf("withdraw: %w", err)
	}
	return true, nil
}
