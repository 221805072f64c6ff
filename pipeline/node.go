package pipeline

import (
	"context"

	"github.com/shopkit/shoprec/core"
)

// Kind 用于标记 Node 类型，方便观测/编排（例如按阶段打点）。
type Kind string

const (
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合约束的结果
	KindReRank      Kind = "rerank"      // 重排阶段：截断/调序
	KindPostProcess Kind = "postprocess" // 后处理阶段：最终结果修饰
)

// Node 是打分之后的后处理链路的最小可扩展单元。
// 统一采用"输入 recommendations → 输出 recommendations"的形态，
// 方便过滤截断、业务规则、重排等操作自由组合。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		recs []*core.Recommendation,
	) ([]*core.Recommendation, error)
}
