package livecoin

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/openexch/cexlink/model"
	"github.com/openexch/cexlink/types"
)

func TestMapTicker(t *testing.T) {
	raw := json.RawMessage(`{"symbol":"LTC/BTC","last":0.008,"best_bid":0.0079,"best_ask":0.0081,"volume":100}`)
	observedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	ticker, err := mapTicker(raw, observedAt)
	require.NoError(t, err)

	require.Equal(t, "LTC/BTC", ticker.Symbol)
	require.True(t, ticker.Ask.Equal(decimal.RequireFromString("0.0081")), "Ask=%s", ticker.Ask)
	require.True(t, ticker.Bid.Equal(decimal.RequireFromString("0.0079")), "Bid=%s", ticker.Bid)
	require.True(t, ticker.Last.Equal(decimal.RequireFromString("0.008")), "Last=%s", ticker.Last)
	require.True(t, ticker.Volume.Converted.Equal(decimal.RequireFromString("100")), "Converted=%s", ticker.Volume.Converted)
	require.True(t, ticker.Volume.InBase.Equal(decimal.RequireFromString("0.8")), "InBase=%s", ticker.Volume.InBase)
	require.Equal(t, "LTC", ticker.Volume.MarketCurrency)
	require.Equal(t, "BTC", ticker.Volume.BaseCurrency)
	// 行情时间戳是本地观测时间，不是交易所时间
	require.Equal(t, observedAt, ticker.Volume.Timestamp)
}

func TestMapTicker_Defects(t *testing.T) {
	observedAt := time.Now()

	t.Run("missing symbol", func(t *testing.T) {
		_, err := mapTicker(json.RawMessage(`{"last":0.008}`), observedAt)
		require.Error(t, err)
	})

	t.Run("symbol without two legs", func(t *testing.T) {
		_, err := mapTicker(json.RawMessage(`{"symbol":"BTC","last":0.008}`), observedAt)
		require.Error(t, err)
	})

	t.Run("unparsable numeric field", func(t *testing.T) {
		_, err := mapTicker(json.RawMessage(`{"symbol":"LTC/BTC","last":"abc"}`), observedAt)
		require.Error(t, err)
	})
}

func TestMapTrade(t *testing.T) {
	raw := json.RawMessage(`{"time":1409935047,"id":99451,"price":350,"quantity":2.85714285,"type":"BUY"}`)

	trade, err := mapTrade(raw, "LTC/BTC")
	require.NoError(t, err)

	require.Equal(t, "99451", trade.ID)
	require.True(t, trade.IsBuy())
	require.True(t, trade.Price.Equal(decimal.RequireFromString("350")))
	require.True(t, trade.Amount.Equal(decimal.RequireFromString("2.85714285")))
	// time 字段按秒级时间戳转换
	require.Equal(t, time.Unix(1409935047, 0).UTC(), trade.Timestamp)
}

func TestMapTrade_UnknownSideDegrades(t *testing.T) {
	// 精确大小写匹配：枚举之外的值降级为未知方向而不是整条失败
	for _, side := range []string{"buy", "Buy", "SOLD", ""} {
		raw := json.RawMessage(`{"time":1409935047,"id":1,"price":1,"quantity":1,"type":"` + side + `"}`)
		trade, err := mapTrade(raw, "LTC/BTC")
		require.NoError(t, err)
		require.Equal(t, model.TradeSideUnspecified, trade.Side)
	}
}

func TestMapBalances_ViewFiltering(t *testing.T) {
	items := []json.RawMessage{
		json.RawMessage(`{"type":"total","currency":"USD","value":20}`),
		json.RawMessage(`{"type":"available","currency":"USD","value":0}`),
	}

	total := mapBalances(items, balanceViewTotal)
	require.Len(t, total, 1)
	require.True(t, total.Get("USD").Equal(decimal.RequireFromString("20")))

	// 零值的 available 条目不进入可交易余额视图
	available := mapBalances(items, balanceViewAvailable)
	require.Empty(t, available)
}

func TestMapBalances_SkipsBadRecords(t *testing.T) {
	items := []json.RawMessage{
		json.RawMessage(`{"type":"total","currency":"USD","value":"garbage"}`),
		json.RawMessage(`{"type":"total","currency":"BTC","value":1.5}`),
	}

	balances := mapBalances(items, balanceViewTotal)
	require.Len(t, balances, 1)
	require.True(t, balances.Get("BTC").Equal(decimal.RequireFromString("1.5")))
}

func TestMapDepositAddress(t *testing.T) {
	t.Run("with tag", func(t *testing.T) {
		addr := mapDepositAddress("XEM", &livecoinDepositAddressResponse{Currency: "XEM", Wallet: "addr123::tag456"})
		require.NotNil(t, addr)
		require.Equal(t, "addr123", addr.Address)
		require.Equal(t, "tag456", addr.Tag)
	})

	t.Run("without tag", func(t *testing.T) {
		addr := mapDepositAddress("BTC", &livecoinDepositAddressResponse{Currency: "BTC", Wallet: "addr789"})
		require.NotNil(t, addr)
		require.Equal(t, "addr789", addr.Address)
		require.Empty(t, addr.Tag)
	})

	t.Run("empty wallet", func(t *testing.T) {
		require.Nil(t, mapDepositAddress("BTC", &livecoinDepositAddressResponse{Currency: "BTC"}))
	})

	t.Run("currency mismatch", func(t *testing.T) {
		require.Nil(t, mapDepositAddress("BTC", &livecoinDepositAddressResponse{Currency: "LTC", Wallet: "addr"}))
	})
}

func TestMapOrder_FilledClamping(t *testing.T) {
	detail := &livecoinOrderDetail{
		ID:                88504958,
		Status:            "OPEN",
		Symbol:            "DASH/USD",
		Type:              "LIMIT_SELL",
		Price:             types.NewExDecimal(decimal.RequireFromString("1.5")),
		Quantity:          types.NewExDecimal(decimal.RequireFromString("1.2")),
		RemainingQuantity: types.NewExDecimal(decimal.RequireFromString("0.5")),
	}

	order := mapOrder(detail)
	require.Equal(t, "88504958", order.ID)
	require.Equal(t, "DASH/USD", order.Symbol)
	require.Equal(t, model.OrderSideSell, order.Side)
	require.Equal(t, model.OrderTypeLimit, order.Type)
	require.Equal(t, model.OrderStatusOpen, order.Status)
	require.True(t, order.Filled.Equal(decimal.RequireFromString("0.7")))

	// 剩余量大于委托量的脏数据：已成交数量截断为 0
	detail.RemainingQuantity = types.NewExDecimal(decimal.RequireFromString("2"))
	order = mapOrder(detail)
	require.True(t, order.Filled.IsZero())
}

func TestParseOrderStatus(t *testing.T) {
	cases := map[string]model.OrderStatus{
		"OPEN":                           model.OrderStatusOpen,
		"PARTIALLY_FILLED":               model.OrderStatusPartiallyFilled,
		"EXECUTED":                       model.OrderStatusFilled,
		"CANCELLED":                      model.OrderStatusCanceled,
		"PARTIALLY_FILLED_AND_CANCELLED": model.OrderStatusCanceled,
		"REJECTED":                       model.OrderStatusRejected,
		// 未收录的状态值降级为 Unspecified
		"SOME_NEW_STATE": model.OrderStatusUnspecified,
		"open":           model.OrderStatusUnspecified,
		"":               model.OrderStatusUnspecified,
	}
	for raw, want := range cases {
		require.Equal(t, want, parseOrderStatus(raw), "status %q", raw)
	}
}

func TestMapMarket_PriceStep(t *testing.T) {
	raw := json.RawMessage(`{"currencyPair":"LTC/BTC","minLimitQuantity":0.1,"priceScale":5}`)

	market, err := mapMarket(raw)
	require.NoError(t, err)
	require.Equal(t, "LTC/BTC", market.Symbol)
	require.True(t, market.MinAmount.Equal(decimal.RequireFromString("0.1")))
	// 价格步长由小数位数推导：10^-5
	require.True(t, market.PriceStep.Equal(decimal.RequireFromString("0.00001")), "PriceStep=%s", market.PriceStep)
	require.True(t, market.Active)
}

func TestMapTransaction(t *testing.T) {
	raw := json.RawMessage(`{"id":"OK521780496","type":"DEPOSIT","date":1472205161286,"amount":1.5,"fee":0.01,"fixedCurrency":"BTC","taxCurrency":"BTC"}`)

	tx, err := mapTransaction(raw)
	require.NoError(t, err)
	require.Equal(t, "OK521780496", tx.ID)
	require.Equal(t, model.TransactionTypeDeposit, tx.Type)
	require.Equal(t, "BTC", tx.Currency)
	// date 字段按毫秒级时间戳转换
	require.Equal(t, time.UnixMilli(1472205161286).UTC(), tx.Timestamp)
}

func TestMapOrderBookSide_SkipsShortLevels(t *testing.T) {
	var levels [][]types.ExDecimal
	require.NoError(t, json.Unmarshal([]byte(`[["0.008","10"],["0.009"],["0.010","5"]]`), &levels))

	entries := mapOrderBookSide(levels)
	require.Len(t, entries, 2)
	require.True(t, entries[0].Price.Equal(decimal.RequireFromString("0.008")))
	require.True(t, entries[1].Amount.Equal(decimal.RequireFromString("5")))
}

func TestMapCurrency(t *testing.T) {
	active, err := mapCurrency(json.RawMessage(`{"name":"Bitcoin","symbol":"BTC","walletStatus":"normal"}`))
	require.NoError(t, err)
	require.Equal(t, "BTC", active.Code)
	require.True(t, active.Active)

	frozen, err := mapCurrency(json.RawMessage(`{"name":"SomeCoin","symbol":"SMC","walletStatus":"closed"}`))
	require.NoError(t, err)
	require.False(t, frozen.Active)
}
