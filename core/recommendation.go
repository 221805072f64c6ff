package core

import "github.com/shopkit/shoprec/pkg/utils"

// Recommendation 是一次打分调用的产物，现算现用，不落库。
//
// Score 的量纲因算法而异，不能跨算法比较；
// Confidence 是 0-100 的启发式确定度，不是标定过的概率。
// Labels 记录结果的来龙去脉（召回来源、混合成分、过滤原因），供解释与观测。
type Recommendation struct {
	Product    *Product
	Score      float64
	Confidence float64
	Labels     map[string]utils.Label
}

// NewRecommendation 创建一条推荐结果。
func NewRecommendation(p *Product, score, confidence float64) *Recommendation {
	return &Recommendation{
		Product:    p,
		Score:      score,
		Confidence: confidence,
		Labels:     make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；同名 key 按默认 Merge 规则累积。
func (r *Recommendation) PutLabel(key string, lbl utils.Label) {
	if r.Labels == nil {
		r.Labels = make(map[string]utils.Label)
	}
	if old, ok := r.Labels[key]; ok {
		r.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	r.Labels[key] = lbl
}
