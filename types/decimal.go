package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExDecimal 支持空字符串的 decimal.Decimal 类型
//
// 交易所响应中数值字段可能是字符串、数字、null 或空串；统一用定点
// 小数表示，避免跨交易所的浮点精度漂移。空值解析为零，格式非法的
// 数值返回错误，由调用方作为该条记录的映射缺陷处理。
type ExDecimal struct {
	decimal.Decimal
}

// NewExDecimal 从 decimal.Decimal 构造
func NewExDecimal(d decimal.Decimal) ExDecimal {
	return ExDecimal{Decimal: d}
}

// UnmarshalJSON 自定义 JSON 反序列化，支持空字符串和 null
func (d *ExDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" || s == "null" {
		d.Decimal = decimal.Zero
		return nil
	}
	return d.Decimal.UnmarshalJSON(data)
}

// MarshalJSON 序列化为数值字符串
func (d ExDecimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Decimal.String() + `"`), nil
}
