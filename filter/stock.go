package filter

import (
	"context"

	"github.com/shopkit/shoprec/core"
)

// InStock 剔除无货商品。默认不启用：目录展示层历来连无货商品一起展示，
// 只有明确要求"可下单"的场景才挂上这个过滤器。
type InStock struct{}

func (f *InStock) Name() string { return "filter.in_stock" }

func (f *InStock) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	rec *core.Recommendation,
) (bool, error) {
	if rec == nil || rec.Product == nil {
		return false, nil
	}
	return !rec.Product.InStock, nil
}
