package models

import (
	"time"
)

// Wallet 客户钱包表
type Wallet struct {
	ID        uint      `gorm:"primarykey" json:"id"`                            // 主键
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`             // 客户 ID
	Balance   Money     `gorm:"type:decimal(20,2);default:0" json:"balance"`     // 余额
	CreatedAt time.Time `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                         // 更新时间
}

// TableName 指定表名
func (Wallet) TableName() string {
	return "wallets"
}

// WalletTransaction 钱包流水表
type WalletTransaction struct {
	ID           uint      `gorm:"primarykey" json:"id"`                              // 主键
	WalletID     uint      `gorm:"not null;index" json:"wallet_id"`                   // 钱包 ID
	UserID       uint      `gorm:"not null;index" json:"user_id"`                     // 客户 ID
	Type         string    `gorm:"not null;index" json:"type"`                        // 类型（recharge/subscription_pay/admin_adjust/admin_refund）
	Direction    string    `gorm:"not null" json:"direction"`                         // 方向（in/out）
	Amount       Money     `gorm:"type:decimal(20,2);not null" json:"amount"`         // 变动金额（正数）
	BalanceAfter Money     `gorm:"type:decimal(20,2);not null" json:"balance_after"`  // 变动后余额
	Reference    string    `gorm:"uniqueIndex;not null" json:"reference"`             // 幂等引用号
	Remark       string    `gorm:"type:text" json:"remark"`                           // 备注
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                           // 创建时间
}

// TableName 指定表名
func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
