package models

import (
	"time"

	"gorm.io/gorm"
)

// Courier 配送员表
type Courier struct {
	ID        uint           `gorm:"primarykey" json:"id"`                         // 主键
	Name      string         `gorm:"not null" json:"name"`                         // 姓名
	Phone     string         `gorm:"default:''" json:"phone"`                      // 联系电话
	IsActive  bool           `gorm:"not null;default:true;index" json:"is_active"` // 是否在职可接单
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间
}

// TableName 指定表名
func (Courier) TableName() string {
	return "couriers"
}
