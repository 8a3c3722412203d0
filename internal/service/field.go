package service

import "encoding/json"

// Field 三态更新字段
// 区分请求体中"未提供"、"显式为 null"和"提供了值"三种情况,
// 用于部分更新时只修改请求中出现的字段。
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// NewField 构造一个已设值的字段
func NewField[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// NullField 构造一个显式为 null 的字段
func NullField[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// IsSet 请求体中是否出现了该字段(含显式 null)
func (f Field[T]) IsSet() bool {
	return f.present
}

// IsNull 是否为显式 null
func (f Field[T]) IsNull() bool {
	return f.present && f.null
}

// Value 返回字段值与是否可用(出现且非 null)
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON 只要该方法被调用, 字段就视为出现
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if string(data) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON 按普通值序列化, 主要用于测试
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
