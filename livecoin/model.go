package livecoin

import (
	"encoding/json"

	"github.com/openexch/cexlink/types"
)

// livecoinFault 响应中的故障信息（payment 端点）
type livecoinFault struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// livecoinTicker Livecoin 行情数据项
type livecoinTicker struct {
	Cur     string          `json:"cur"`
	Symbol  string          `json:"symbol"`
	Last    types.ExDecimal `json:"last"`
	High    types.ExDecimal `json:"high"`
	Low     types.ExDecimal `json:"low"`
	Volume  types.ExDecimal `json:"volume"`
	VWAP    types.ExDecimal `json:"vwap"`
	MaxBid  types.ExDecimal `json:"max_bid"`
	MinAsk  types.ExDecimal `json:"min_ask"`
	BestBid types.ExDecimal `json:"best_bid"`
	BestAsk types.ExDecimal `json:"best_ask"`
}

// livecoinTrade 公共成交数据项（time 为秒级时间戳，端点文档约定）
type livecoinTrade struct {
	Time     types.ExTimeSeconds `json:"time"`
	ID       int64               `json:"id"`
	Price    types.ExDecimal     `json:"price"`
	Quantity types.ExDecimal     `json:"quantity"`
	Type     string              `json:"type"`
}

// livecoinOrderBookResponse 订单簿响应
// 档位为 [price, amount] 数组，timestamp 为毫秒级
type livecoinOrderBookResponse struct {
	Timestamp types.ExTimeMilli   `json:"timestamp"`
	Asks      [][]types.ExDecimal `json:"asks"`
	Bids      [][]types.ExDecimal `json:"bids"`
}

// livecoinRestriction 交易对限制信息
type livecoinRestriction struct {
	CurrencyPair     string          `json:"currencyPair"`
	MinLimitQuantity types.ExDecimal `json:"minLimitQuantity"`
	PriceScale       int             `json:"priceScale"`
}

// livecoinRestrictionsResponse 交易对限制响应
type livecoinRestrictionsResponse struct {
	Success      bool              `json:"success"`
	Restrictions []json.RawMessage `json:"restrictions"`
}

// livecoinCoin 币种信息数据项
type livecoinCoin struct {
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	WalletStatus string `json:"walletStatus"`
}

// livecoinCoinInfoResponse 币种信息响应
type livecoinCoinInfoResponse struct {
	Success bool              `json:"success"`
	Info    []json.RawMessage `json:"info"`
}

// livecoinOrderDetail 订单详情响应（issueTime 为毫秒级）
type livecoinOrderDetail struct {
	ID                int64             `json:"id"`
	ClientID          int64             `json:"client_id"`
	Status            string            `json:"status"`
	Symbol            string            `json:"symbol"`
	Type              string            `json:"type"`
	Price             types.ExDecimal   `json:"price"`
	Quantity          types.ExDecimal   `json:"quantity"`
	RemainingQuantity types.ExDecimal   `json:"remaining_quantity"`
	Commission        types.ExDecimal   `json:"commission"`
	CommissionRate    types.ExDecimal   `json:"commission_rate"`
	IssueTime         types.ExTimeMilli `json:"issue_time"`
}

// livecoinClientOrdersResponse 历史/未成交订单响应
type livecoinClientOrdersResponse struct {
	TotalRows  int               `json:"totalRows"`
	StartIndex int               `json:"startIndex"`
	EndIndex   int               `json:"endIndex"`
	Data       []json.RawMessage `json:"data"`
}

// livecoinClientOrder 历史/未成交订单数据项（issueTime 为毫秒级）
type livecoinClientOrder struct {
	ID                int64             `json:"id"`
	CurrencyPair      string            `json:"currencyPair"`
	GoodUntilTime     int64             `json:"goodUntilTime"`
	Type              string            `json:"type"`
	OrderStatus       string            `json:"orderStatus"`
	IssueTime         types.ExTimeMilli `json:"issueTime"`
	Price             types.ExDecimal   `json:"price"`
	Quantity          types.ExDecimal   `json:"quantity"`
	RemainingQuantity types.ExDecimal   `json:"remainingQuantity"`
	Commission        types.ExDecimal   `json:"commission"`
}

// livecoinMyTrade 私有成交数据项（datetime 为秒级时间戳）
type livecoinMyTrade struct {
	ID       int64               `json:"id"`
	Datetime types.ExTimeSeconds `json:"datetime"`
	Type     string              `json:"type"`
	Symbol   string              `json:"symbol"`
	Price    types.ExDecimal     `json:"price"`
	Quantity types.ExDecimal     `json:"quantity"`
	Fee      types.ExDecimal     `json:"fee"`
	OrderID  int64               `json:"orderId"`
}

// livecoinBalance 余额数据项
type livecoinBalance struct {
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
	Value    types.ExDecimal `json:"value"`
}

// livecoinDepositAddressResponse 充值地址响应
// wallet 形如 "addr123" 或 "addr123::tag456"
type livecoinDepositAddressResponse struct {
	Fault    *livecoinFault `json:"fault"`
	UserID   int64          `json:"userId"`
	Currency string         `json:"currency"`
	Wallet   string         `json:"wallet"`
}

// livecoinTransaction 充提记录数据项（date 为毫秒级时间戳）
type livecoinTransaction struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Date          types.ExTimeMilli `json:"date"`
	Amount        types.ExDecimal   `json:"amount"`
	Fee           types.ExDecimal   `json:"fee"`
	FixedCurrency string            `json:"fixedCurrency"`
	TaxCurrency   string            `json:"taxCurrency"`
	External      string            `json:"external"`
}

// livecoinOrderActionResponse 下单/撤单响应
type livecoinOrderActionResponse struct {
	Success   bool   `json:"success"`
	Added     bool   `json:"added"`
	Cancelled bool   `json:"cancelled"`
	OrderID   int64  `json:"orderId"`
	Exception string `json:"exception"`
}

// livecoinWithdrawResponse 提现响应
// fault 字段当前不参与成功判定，见 Withdraw 的说明
type livecoinWithdrawResponse struct {
	Fault   *livecoinFault `json:"fault"`
	Success bool           `json:"success"`
}
