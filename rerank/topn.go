package rerank

import (
	"context"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pipeline"
)

// TopN 是截断节点：保留前 N 条结果。
// 打分 Source 自身已按 limit 截断，这里是后处理链路末端的最终护栏
// （自定义 Node 可能放大结果集）。N <= 0 时不截断。
type TopN struct {
	N int
}

func (n *TopN) Name() string        { return "rerank.topn" }
func (n *TopN) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopN) Process(
	_ context.Context,
	_ *core.RecommendContext,
	recs []*core.Recommendation,
) ([]*core.Recommendation, error) {
	if n.N <= 0 || len(recs) <= n.N {
		return recs, nil
	}
	return recs[:n.N], nil
}
