package recall

import (
	"context"
	"math"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/utils"
	"github.com/shopkit/shoprec/vector"
)

// CollaborativeFiltering 是基于用户的协同过滤（User-CF）。
//
// 核心思想："兴趣相似的用户，喜欢相似的物品"
//
// 算法流程：
//  1. 用户交互历史 → 偏好向量（与目录对齐）
//  2. 目标用户与每个其他用户算余弦相似度，只保留 > MinSimilarity 的
//  3. 对每个候选商品，用相似用户对它的（显式或隐式）评分做相似度加权平均
//  4. 相似度总和为 0 的候选没有打分依据，直接丢弃
//
// 这是对固定交互表的确定性启发式，不是训练出来的模型。
// Confidence = min(相似度总和 × 100, 95)，同样是启发式，不是概率。
type CollaborativeFiltering struct {
	Catalog  core.Catalog
	Profiles core.Profiles

	// MinSimilarity 相似用户的准入阈值（严格大于），<= 0 时取默认 0.1。
	MinSimilarity float64
}

func (r *CollaborativeFiltering) Name() string { return "recall.collaborative" }

func (r *CollaborativeFiltering) Recommend(
	ctx context.Context,
	rctx *core.RecommendContext,
	limit int,
) ([]*core.Recommendation, error) {
	user, err := r.Profiles.User(rctx.UserID)
	if err != nil {
		return nil, err
	}

	minSim := r.MinSimilarity
	if minSim <= 0 {
		minSim = 0.1
	}

	space := vector.NewSpace(r.Catalog)
	userVec := space.PreferenceVector(user)
	seen := user.InteractedSet()

	// 预先算好每个其他用户与目标用户的相似度
	type neighbor struct {
		user *core.User
		sim  float64
	}
	neighbors := make([]neighbor, 0)
	for _, other := range r.Profiles.Users() {
		if other.ID == user.ID {
			continue // 跳过自己
		}
		sim := vector.Cosine(userVec, space.PreferenceVector(other))
		if sim > minSim {
			neighbors = append(neighbors, neighbor{user: other, sim: sim})
		}
	}

	recs := make([]*core.Recommendation, 0)
	for _, p := range r.Catalog.Products() {
		if _, ok := seen[p.ID]; ok {
			continue
		}

		var simSum, weighted float64
		for _, nb := range neighbors {
			inter, ok := firstInteraction(nb.user, p.ID)
			if !ok {
				continue
			}
			simSum += nb.sim
			weighted += nb.sim * implicitRating(inter)
		}

		// 没有任何相似用户接触过该候选：无打分依据，丢弃
		if simSum <= 0 {
			continue
		}

		rec := core.NewRecommendation(p, weighted/simSum, math.Min(simSum*100, 95))
		rec.PutLabel("recall_source", utils.Label{Value: "collaborative", Source: "recall"})
		recs = append(recs, rec)
	}

	sortByScore(recs)
	return truncate(recs, limit), nil
}

// firstInteraction 返回用户与商品的第一条交互记录。
func firstInteraction(u *core.User, productID string) (core.Interaction, bool) {
	for _, inter := range u.History {
		if inter.ProductID == productID {
			return inter, true
		}
	}
	return core.Interaction{}, false
}

// implicitRating 把一条交互折算为 1-5 量纲的评分：
// 显式评分优先；否则 purchase=4.5、add_to_cart=3.5，其余 3。
func implicitRating(inter core.Interaction) float64 {
	if inter.Rated() {
		return inter.Rating
	}
	switch inter.Type {
	case core.InteractionPurchase:
		return 4.5
	case core.InteractionAddToCart:
		return 3.5
	default:
		return 3
	}
}
