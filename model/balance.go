package model

import "github.com/shopspring/decimal"

// Balances 余额信息（币种 -> 数量的映射，仅包含正值）
type Balances map[string]decimal.Decimal

// Get 获取指定币种余额，不存在时返回零
func (b Balances) Get(currency string) decimal.Decimal {
	if amount, ok := b[currency]; ok {
		return amount
	}
	return decimal.Zero
}
