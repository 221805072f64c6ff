package recall

import (
	"context"
	"math"
	"math/rand"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/utils"
)

// Popularity 是热门度打分：评分 × 0.7 加一个 [0, 2.5) 的随机扰动。
//
// 随机项是刻意保留的——线上同一请求多次调用会得到不同的排序，用于给
// 长尾商品曝光机会。随机源显式注入：测试注入固定种子即可断言确定性。
//
// Confidence = min(评分 × 18, 85)。
type Popularity struct {
	Catalog  core.Catalog
	Profiles core.Profiles

	// Rand 随机源；为空时退化为全局随机源（线上行为，刻意非确定）。
	Rand *rand.Rand
}

func (r *Popularity) Name() string { return "recall.popularity" }

func (r *Popularity) Recommend(
	ctx context.Context,
	rctx *core.RecommendContext,
	limit int,
) ([]*core.Recommendation, error) {
	user, err := r.Profiles.User(rctx.UserID)
	if err != nil {
		return nil, err
	}

	seen := user.InteractedSet()
	recs := make([]*core.Recommendation, 0)
	for _, p := range r.Catalog.Products() {
		if _, ok := seen[p.ID]; ok {
			continue
		}

		score := p.Rating*0.7 + r.random()*2.5
		rec := core.NewRecommendation(p, score, math.Min(p.Rating*18, 85))
		rec.PutLabel("recall_source", utils.Label{Value: "popularity", Source: "recall"})
		recs = append(recs, rec)
	}

	sortByScore(recs)
	return truncate(recs, limit), nil
}

func (r *Popularity) random() float64 {
	if r.Rand != nil {
		return r.Rand.Float64()
	}
	return rand.Float64()
}
