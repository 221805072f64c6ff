package filter

import (
	"context"

	"github.com/shopkit/shoprec/core"
)

// Filter 是过滤器的抽象接口，用于判断一条推荐结果是否应该被剔除。
// 返回 true 表示剔除，false 表示保留。
type Filter interface {
	// Name 返回过滤器名称（记入被剔除结果的 label）
	Name() string

	// ShouldFilter 判断 rec 是否应该被剔除
	ShouldFilter(ctx context.Context, rctx *core.RecommendContext, rec *core.Recommendation) (bool, error)
}
