package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositAddress 充值地址
type DepositAddress struct {
	// Currency 币种
	Currency string `json:"currency"`
	// Address 地址
	Address string `json:"address"`
	// Tag 地址标签（共享地址交易所用于区分账户的次级标识，可为空）
	Tag string `json:"tag,omitempty"`
}

// TransactionType 充提记录类型
type TransactionType string

const (
	// TransactionTypeDeposit 充值
	TransactionTypeDeposit TransactionType = "DEPOSIT"
	// TransactionTypeWithdrawal 提现
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// Transaction 充提记录
type Transaction struct {
	// ID 记录ID
	ID string `json:"id"`
	// Type 记录类型
	Type TransactionType `json:"type"`
	// Currency 币种
	Currency string `json:"currency"`
	// Amount 数量
	Amount decimal.Decimal `json:"amount"`
	// Fee 手续费
	Fee decimal.Decimal `json:"fee"`
	// Timestamp 发生时间
	Timestamp time.Time `json:"timestamp"`
}
