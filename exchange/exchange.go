package exchange

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openexch/cexlink/model"
)

// Exchange 交易所适配器接口
//
// 所有操作都是无状态的请求/响应往返：适配器内部不缓存行情、不保留
// 跨调用引用，允许调用方并发调用而无需额外同步。
type Exchange interface {
	// Name 返回交易所名称
	Name() string

	// ========== 市场元数据 ==========

	// FetchMarkets 获取市场列表（最小下单量、价格步长、是否可交易）
	FetchMarkets(ctx context.Context) ([]*model.Market, error)

	// FetchCurrencies 获取币种列表
	FetchCurrencies(ctx context.Context) ([]*model.Currency, error)

	// ========== 市场数据 ==========

	// FetchTicker 获取行情（单个）
	FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error)

	// FetchTickers 批量获取行情，key 为标准化交易对
	FetchTickers(ctx context.Context) (map[string]*model.Ticker, error)

	// FetchOrderBook 获取订单簿，maxCount 必须大于 0，深度受交易所上限约束
	FetchOrderBook(ctx context.Context, symbol string, maxCount int) (*model.OrderBook, error)

	// FetchTrades 获取最近成交（交易所固定的短时间窗口，不是历史查询）
	FetchTrades(ctx context.Context, symbol string) ([]*model.Trade, error)

	// FetchHistoricalTrades 获取历史成交（尽力而为：窗口受交易所保留期限制，
	// since 之前且超出保留期的记录永久不可得）
	FetchHistoricalTrades(ctx context.Context, symbol string, since time.Time) ([]*model.Trade, error)

	// FetchOHLCV 获取K线数据；交易所不提供K线时返回 ErrNotSupported
	FetchOHLCV(ctx context.Context, symbol string, timeframe string, since time.Time, limit int) (model.OHLCVs, error)

	// ========== 账户信息 ==========

	// FetchBalances 获取总余额（currency -> amount，仅保留正值）
	FetchBalances(ctx context.Context) (model.Balances, error)

	// FetchTradableBalances 获取可交易余额（currency -> amount，仅保留正值）
	FetchTradableBalances(ctx context.Context) (model.Balances, error)

	// ========== 订单操作 ==========

	// CreateOrder 创建订单，price 仅限价单必填；下单后状态为 Pending，
	// 后续状态只能通过 FetchOrder 查询获得
	CreateOrder(ctx context.Context, symbol string, side model.OrderSide, orderType model.OrderType, amount, price decimal.Decimal) (*model.Order, error)

	// CancelOrder 取消订单；订单不存在或已终结时视为无操作成功
	CancelOrder(ctx context.Context, orderID string) error

	// FetchOrder 查询订单详情
	FetchOrder(ctx context.Context, orderID string) (*model.Order, error)

	// FetchOpenOrders 获取未成交订单列表
	FetchOpenOrders(ctx context.Context, symbol string) ([]*model.Order, error)

	// FetchMyTrades 获取我的成交记录
	FetchMyTrades(ctx context.Context, symbol string, since time.Time, limit int) ([]*model.Trade, error)

	// ========== 充值提现 ==========

	// FetchDepositAddress 获取充值地址；响应缺少可用地址时返回 nil
	FetchDepositAddress(ctx context.Context, currency string) (*model.DepositAddress, error)

	// FetchTransactions 获取充提记录；since 为零值时默认回溯一年
	FetchTransactions(ctx context.Context, txType model.TransactionType, since, until time.Time, limit int) ([]*model.Transaction, error)

	// Withdraw 提现，tag 可为空
	Withdraw(ctx context.Context, currency, address, tag string, amount decimal.Decimal) (bool, error)
}
