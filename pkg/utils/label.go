package utils

// Label 是推荐结果上的可解释标记：哪个算法召回的、被哪个过滤器拦截的，
// 全链路透传，供上层展示与观测使用。Value 与 Source 的语义由业务自定义。
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"` // recall / filter / rerank / rule ...
}

// NewLabel 创建一个 Label。
func NewLabel(value, source string) Label {
	return Label{Value: value, Source: source}
}

// MergeLabel 合并同名 Label，遵循"保留历史、可追踪"的默认策略：
// Value 以 '|' 累积，Source 以 ',' 累积。
// 需要覆盖/优先级语义的场景，请在上层自行封装 merge 规则。
func MergeLabel(existing Label, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" {
		return existing
	}

	merged := existing
	merged.Value = existing.Value + "|" + incoming.Value
	switch {
	case existing.Source == "":
		merged.Source = incoming.Source
	case incoming.Source == "":
		merged.Source = existing.Source
	default:
		merged.Source = existing.Source + "," + incoming.Source
	}
	return merged
}
