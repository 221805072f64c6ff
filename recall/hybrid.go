package recall

import (
	"context"
	"math"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/utils"
)

// Hybrid 把协同过滤与内容打分按固定权重合并。
//
// 算法流程：
//  1. 两个子策略各以 2×limit 召回，放大合并池
//  2. 按商品 id 合并：协同分 × 60% ＋ 内容分 × 40%，缺失的一侧按 0 计
//  3. Confidence：两侧都有时取均值，只有一侧时取该侧；加固定 +10 混合加成，封顶 95
//  4. 合并池按目录顺序重排后按合并分降序稳定排序，截断到 limit
//
// 两个子策略顺序执行：打分路径保持单线程、同步、无 I/O。
type Hybrid struct {
	Collaborative Source
	ContentBased  Source

	// Catalog 用于合并后恢复目录顺序，保证并列打破的确定性。
	Catalog core.Catalog

	// CollaborativeWeight / ContentWeight 合并权重，<= 0 时取默认 0.6 / 0.4。
	CollaborativeWeight float64
	ContentWeight       float64

	// ConfidenceBonus 混合加成，<= 0 时取默认 10。
	ConfidenceBonus float64
}

func (r *Hybrid) Name() string { return "recall.hybrid" }

func (r *Hybrid) Recommend(
	ctx context.Context,
	rctx *core.RecommendContext,
	limit int,
) ([]*core.Recommendation, error) {
	collabWeight := r.CollaborativeWeight
	if collabWeight <= 0 {
		collabWeight = 0.6
	}
	contentWeight := r.ContentWeight
	if contentWeight <= 0 {
		contentWeight = 0.4
	}
	bonus := r.ConfidenceBonus
	if bonus <= 0 {
		bonus = 10
	}

	pool := limit * 2

	collab, err := r.Collaborative.Recommend(ctx, rctx, pool)
	if err != nil {
		return nil, err
	}
	content, err := r.ContentBased.Recommend(ctx, rctx, pool)
	if err != nil {
		return nil, err
	}

	type entry struct {
		product       *core.Product
		collabScore   float64
		contentScore  float64
		confidence    float64
		collaborative bool
		contentBased  bool
	}
	combined := make(map[string]*entry, len(collab)+len(content))

	for _, rec := range collab {
		combined[rec.Product.ID] = &entry{
			product:       rec.Product,
			collabScore:   rec.Score * collabWeight,
			confidence:    rec.Confidence,
			collaborative: true,
		}
	}
	for _, rec := range content {
		if e, ok := combined[rec.Product.ID]; ok {
			e.contentScore = rec.Score * contentWeight
			e.confidence = (e.confidence + rec.Confidence) / 2
			e.contentBased = true
			continue
		}
		combined[rec.Product.ID] = &entry{
			product:      rec.Product,
			contentScore: rec.Score * contentWeight,
			confidence:   rec.Confidence,
			contentBased: true,
		}
	}

	// 按目录顺序重建结果，稳定排序后并列才能落回目录顺序
	recs := make([]*core.Recommendation, 0, len(combined))
	for _, p := range r.Catalog.Products() {
		e, ok := combined[p.ID]
		if !ok {
			continue
		}
		rec := core.NewRecommendation(e.product, e.collabScore+e.contentScore, math.Min(e.confidence+bonus, 95))
		rec.PutLabel("recall_source", utils.Label{Value: "hybrid", Source: "recall"})
		if e.collaborative {
			rec.PutLabel("hybrid_components", utils.Label{Value: "collaborative", Source: "recall"})
		}
		if e.contentBased {
			rec.PutLabel("hybrid_components", utils.Label{Value: "content_based", Source: "recall"})
		}
		recs = append(recs, rec)
	}

	sortByScore(recs)
	return truncate(recs, limit), nil
}
