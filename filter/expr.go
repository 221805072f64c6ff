package filter

import (
	"context"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/dsl"
)

// Expr 是 CEL 表达式驱动的业务规则过滤器：只保留表达式为 true 的结果。
//
// 示例：
//
//	&filter.Expr{
//	    Profiles: profiles,
//	    Rule:     `product.in_stock && rec.score > 0.5`,
//	}
//
// 表达式编译或求值失败时保留结果（宽松失败，规则问题不打断推荐）。
type Expr struct {
	Profiles core.Profiles

	// Rule CEL 表达式；为空时不过滤。
	Rule string
}

func (f *Expr) Name() string { return "filter.expr" }

func (f *Expr) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	rec *core.Recommendation,
) (bool, error) {
	if f.Rule == "" || rec == nil {
		return false, nil
	}

	var user *core.User
	if f.Profiles != nil && rctx != nil && rctx.UserID != "" {
		user, _ = f.Profiles.User(rctx.UserID)
	}

	keep, err := dsl.NewEval(rec, user, rctx).Evaluate(f.Rule)
	if err != nil {
		return false, nil
	}
	return !keep, nil
}
