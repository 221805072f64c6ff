package recall

import (
	"context"
	"sort"

	"github.com/shopkit/shoprec/core"
)

// Source 表示一个可独立选用的打分策略（协同 / 内容 / 混合 / 热门）。
//
// 约定（四个实现共同遵守）：
//   - 候选 = 目标用户未交互过的商品；已交互商品对任何算法都不返回
//   - 按分数降序返回至多 limit 条；并列时保持目录顺序（稳定排序）
//   - 没有合格候选时返回空切片，不是错误
type Source interface {
	Name() string
	Recommend(ctx context.Context, rctx *core.RecommendContext, limit int) ([]*core.Recommendation, error)
}

// sortByScore 按分数降序稳定排序：入参按目录顺序排列时，并列自然落回目录顺序。
func sortByScore(recs []*core.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}

// truncate 截断到 limit 条；limit <= 0 时不截断。
func truncate(recs []*core.Recommendation, limit int) []*core.Recommendation {
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
