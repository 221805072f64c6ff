package core

import "github.com/shopkit/shoprec/pkg/utils"

// RecommendContext 承载一次推荐调用的用户与场景信息，贯穿打分与后处理链路透传。
type RecommendContext struct {
	UserID string
	Scene  string

	// Params 请求级上下文参数（设备、时段、实验开关等），供过滤规则使用。
	Params map[string]any

	// Labels 是用户级标签，可驱动过滤/重排行为，也用于观测。
	Labels map[string]utils.Label
}

// PutLabel 写入用户级 Label；同名 key 按默认 Merge 规则累积。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取用户级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
