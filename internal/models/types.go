package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON 类型定义，用于存储结构化配置内容
type JSON map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan 实现 sql.Scanner 接口
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// StringArray 字符串数组类型，用于存储餐别、暂停餐等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// MealSelection 一条订餐选择（订阅申请内嵌）
type MealSelection struct {
	PackageID   uint   `json:"package_id"`   // 套餐 ID
	PackageName string `json:"package_name"` // 套餐名称快照
	MealType    string `json:"meal_type"`    // 餐别（Breakfast/Lunch/Dinner）
	Description string `json:"description"`  // 菜品描述
	Quantity    int    `json:"quantity"`     // 份数
}

// MealSelectionList 订餐选择集合（JSON 序列化存储）
type MealSelectionList []MealSelection

// Value 实现 driver.Valuer 接口
func (l MealSelectionList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan 实现 sql.Scanner 接口
func (l *MealSelectionList) Scan(value interface{}) error {
	if value == nil {
		*l = MealSelectionList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}
