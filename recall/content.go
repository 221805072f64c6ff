package recall

import (
	"context"
	"math"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/utils"
)

// ContentBased 是基于内容的打分（Content-Based Filtering）。
//
// 核心思想："用户买过/打过高分的商品带什么特征，就推带这些特征的商品"
//
// 算法流程：
//  1. 扫描用户历史，只取 purchase 或评分 >= 4 的交互，按交互累计特征标签频次
//  2. 候选得分 = 品类偏好加成 2 ＋ Σ(命中标签频次 × 0.5) ＋ (评分 − 3) × 0.5
//  3. 得分 <= 0 的候选丢弃
//
// Confidence = min(命中标签数 / 候选标签数 × 100, 90)；候选无标签时为 0（护栏）。
type ContentBased struct {
	Catalog  core.Catalog
	Profiles core.Profiles
}

func (r *ContentBased) Name() string { return "recall.content" }

func (r *ContentBased) Recommend(
	ctx context.Context,
	rctx *core.RecommendContext,
	limit int,
) ([]*core.Recommendation, error) {
	user, err := r.Profiles.User(rctx.UserID)
	if err != nil {
		return nil, err
	}

	// 特征标签频次表：每条合格交互为其商品的每个标签贡献一次计数
	featureFreq := make(map[string]int)
	for _, inter := range user.History {
		p, err := r.Catalog.Product(inter.ProductID)
		if err != nil {
			continue // 悬空引用直接忽略
		}
		if inter.Type != core.InteractionPurchase && inter.Rating < 4 {
			continue
		}
		for _, tag := range p.Features {
			featureFreq[tag]++
		}
	}

	seen := user.InteractedSet()
	recs := make([]*core.Recommendation, 0)
	for _, p := range r.Catalog.Products() {
		if _, ok := seen[p.ID]; ok {
			continue
		}

		var score float64
		matching := 0

		if user.PrefersCategory(p.Category) {
			score += 2
		}
		for _, tag := range p.Features {
			if n := featureFreq[tag]; n > 0 {
				score += float64(n) * 0.5
				matching++
			}
		}
		score += (p.Rating - 3) * 0.5

		if score <= 0 {
			continue
		}

		confidence := 0.0
		if len(p.Features) > 0 {
			confidence = math.Min(float64(matching)/float64(len(p.Features))*100, 90)
		}

		rec := core.NewRecommendation(p, score, confidence)
		rec.PutLabel("recall_source", utils.Label{Value: "content_based", Source: "recall"})
		recs = append(recs, rec)
	}

	sortByScore(recs)
	return truncate(recs, limit), nil
}
