// Package conv 提供 any 到基础类型的转换工具，用于解码外部特征源
// （Feast、YAML/JSON 配置）返回的弱类型值。
package conv

import "fmt"

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32；bool 视为 1.0/0.0。
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}

// ToBool 将 any 转为 bool。数字非零视为 true。
func ToBool(v any) (bool, bool) {
	if v == nil {
		return false, false
	}
	switch val := v.(type) {
	case bool:
		return val, true
	case int, int32, int64, float32, float64:
		f, _ := ToFloat64(val)
		return f != 0, true
	default:
		return false, false
	}
}

// ToString 将 any 转为 string。仅支持 string 类型，否则返回 ("", false)。
func ToString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// SliceAnyToString 将 []any 转为 []string。
// 元素为 string 直接保留，为数字时格式化为 "%.0f"，其余跳过。
func SliceAnyToString(v any) []string {
	if v == nil {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
			continue
		}
		if f, ok := ToFloat64(e); ok {
			out = append(out, fmt.Sprintf("%.0f", f))
		}
	}
	return out
}
