package common

import "strings"

// CanonicalSeparator 标准化交易对分隔符
const CanonicalSeparator = "/"

// wireSeparators 各交易所常见的分隔符，统一替换为标准分隔符
var wireSeparators = []string{"_", "-"}

// Symbol 标准化交易对
//
// 只有标准化字符串是构造时确定的；拆分为 (市场货币, 计价货币) 两条腿
// 在使用点惰性进行，缺腿的 symbol 由调用方按单条记录的映射缺陷处理，
// 不允许中断整批数据。
type Symbol struct {
	value string
}

// Normalize 标准化交易对格式
//
// 纯函数且全函数：任何输入都不会失败，无法识别的格式原样透传为
// 单 token 交易对。如 "ltc_btc" / "LTC-BTC" / "LTC/BTC" -> "LTC/BTC"。
func Normalize(raw string) Symbol {
	s := strings.TrimSpace(raw)
	for _, sep := range wireSeparators {
		s = strings.ReplaceAll(s, sep, CanonicalSeparator)
	}
	return Symbol{value: strings.ToUpper(s)}
}

// Join 由两条腿构造标准化交易对（如 "LTC", "BTC" -> "LTC/BTC"）
func Join(market, base string) Symbol {
	return Symbol{value: strings.ToUpper(market) + CanonicalSeparator + strings.ToUpper(base)}
}

// String 返回标准化字符串形式
func (s Symbol) String() string {
	return s.value
}

// IsEmpty 是否为空交易对
func (s Symbol) IsEmpty() bool {
	return s.value == ""
}

// Legs 拆分为 (市场货币, 计价货币)
//
// 仅当标准分隔符恰好把字符串分成两个非空 token 时 ok 为 true；
// 其余情况返回 ok=false，由调用方决定降级策略。
func (s Symbol) Legs() (market, base string, ok bool) {
	parts := strings.Split(s.value, CanonicalSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
