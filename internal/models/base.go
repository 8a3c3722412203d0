package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BaseModel 所有表的公共字段
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// JSONMap 无模式JSON文档字段（库存、装备、战役数据等）
// 存储时序列化为JSON文本，读取时反序列化，保证结构深度相等
type JSONMap map[string]interface{}

// Value 实现driver.Valuer接口
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan 实现sql.Scanner接口
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("无法将 %T 扫描为 JSONMap", value)
	}

	return json.Unmarshal(data, m)
}

// DiceRollEvent 会话日志中的单条掷骰记录
// result 是该次掷骰的汇总值，区别于掷骰接口返回的逐骰数组
type DiceRollEvent struct {
	RollType  string    `json:"roll_type"`
	Dice      string    `json:"dice"`
	Result    int       `json:"result"`
	Modifier  int       `json:"modifier"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// DiceRollLog 掷骰记录列表（JSON列）
type DiceRollLog []DiceRollEvent

// Value 实现driver.Valuer接口
func (l DiceRollLog) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan 实现sql.Scanner接口
func (l *DiceRollLog) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("无法将 %T 扫描为 DiceRollLog", value)
	}

	return json.Unmarshal(data, l)
}
