package livecoin

import (
	"github.com/openexch/cexlink/common"
)

const (
	livecoinName    = "livecoin"
	livecoinBaseURL = "https://api.livecoin.net"
)

// API 路径
const (
	pathTicker       = "/exchange/ticker"
	pathOrderBook    = "/exchange/order_book"
	pathLastTrades   = "/exchange/last_trades"
	pathRestrictions = "/exchange/restrictions"
	pathCoinInfo     = "/info/coinInfo"
	pathOrderDetail  = "/exchange/order"
	pathClientOrders = "/exchange/client_orders"
	pathMyTrades     = "/exchange/trades"
	pathBuyLimit     = "/exchange/buylimit"
	pathSellLimit    = "/exchange/selllimit"
	pathBuyMarket    = "/exchange/buymarket"
	pathSellMarket   = "/exchange/sellmarket"
	pathCancelLimit  = "/exchange/cancellimit"
	pathBalances     = "/payment/balances"
	pathDepositAddr  = "/payment/get/address"
	pathWithdraw     = "/payment/out/coin"
	pathTransactions = "/payment/history/transactions"
)

// 认证请求头：公钥标识 + 大写 hex 签名
const (
	headerAPIKey = "Api-key"
	headerSign   = "Sign"
)

// clientOrdersOpenFilter 未成交订单的过滤 token。
// 历史实现里用的字面值与文档枚举存在出入，集中成一个常量，
// 确认后只需在这里修一处。
const clientOrdersOpenFilter = "OPEN"

// Client Livecoin 客户端
type Client struct {
	// HTTPClient HTTP 客户端
	HTTPClient *common.HTTPClient

	// APIKey API 密钥
	APIKey string

	// SecretKey 密钥
	SecretKey string

	// ProxyURL 代理地址
	ProxyURL string

	// Debug 是否启用调试模式
	Debug bool
}

// NewClient 创建 Livecoin 客户端
func NewClient(apiKey, secretKey string, options map[string]interface{}) (*Client, error) {
	baseURL := livecoinBaseURL
	proxyURL := ""
	debug := false

	if v, ok := options["baseURL"].(string); ok {
		baseURL = v
	}
	if v, ok := options["proxy"].(string); ok {
		proxyURL = v
	}
	if v, ok := options["debug"].(bool); ok {
		debug = v
	}

	client := &Client{
		HTTPClient: common.NewHTTPClient(baseURL),
		APIKey:     apiKey,
		SecretKey:  secretKey,
		ProxyURL:   proxyURL,
		Debug:      debug,
	}

	// 设置代理
	if proxyURL != "" {
		if err := client.HTTPClient.SetProxy(proxyURL); err != nil {
			return nil, err
		}
	}

	// 设置调试模式
	if debug {
		client.HTTPClient.SetDebug(true)
	}

	return client, nil
}

// HasCredentials 是否配置了完整的密钥对
func (c *Client) HasCredentials() bool {
	return c.APIKey != "" && c.SecretKey != ""
}
