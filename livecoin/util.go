package livecoin

import (
	"fmt"

	"github.com/openexch/cexlink/common"
	"github.com/openexch/cexlink/exchange"
)

// nativeSeparator Livecoin 的交易对分隔符
const nativeSeparator = "/"

// addressTagDelimiter 充值地址中内联编码地址标签的分隔符
// 钱包字符串形如 "addr123::tag456"
const addressTagDelimiter = "::"

// ToLivecoinSymbol 转换为 Livecoin 格式的 currencyPair 参数
//
// 输入任意常见格式（BTC/USD、btc_usd、BTC-USD），输出交易所原生
// 分隔符格式。拆不出两条腿的交易对无法构成请求参数，返回错误。
func ToLivecoinSymbol(symbol string) (string, error) {
	market, base, ok := common.Normalize(symbol).Legs()
	if !ok {
		return "", fmt.Errorf("%w: %s, expected BASE/QUOTE", exchange.ErrInvalidSymbol, symbol)
	}
	return market + nativeSeparator + base, nil
}
