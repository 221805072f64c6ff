package filter

import (
	"context"

	"github.com/shopkit/shoprec/core"
)

// Interacted 剔除目标用户已经交互过的商品。
//
// 四个打分策略在候选阶段已经排除了已交互商品；这里是链路末端的兜底，
// 保证"已交互商品对任何算法都不返回"这条不变量对自定义 Source 也成立。
type Interacted struct {
	Profiles core.Profiles
}

func (f *Interacted) Name() string { return "filter.interacted" }

func (f *Interacted) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	rec *core.Recommendation,
) (bool, error) {
	if rec == nil || rec.Product == nil || rctx == nil || rctx.UserID == "" {
		return false, nil
	}
	user, err := f.Profiles.User(rctx.UserID)
	if err != nil {
		return false, nil
	}
	return user.HasInteracted(rec.Product.ID), nil
}
