package filter

import (
	"context"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pipeline"
	"github.com/shopkit/shoprec/pkg/utils"
)

// Node 是过滤 Node，组合多个过滤器。
// 任何一个过滤器命中即剔除该结果；过滤器出错时跳过该过滤器、不中断链路。
type Node struct {
	Filters []Filter
}

func (n *Node) Name() string        { return "filter.node" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *Node) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	recs []*core.Recommendation,
) ([]*core.Recommendation, error) {
	if len(n.Filters) == 0 || len(recs) == 0 {
		return recs, nil
	}

	out := make([]*core.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if rec == nil {
			continue
		}

		dropped := false
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, rec)
			if err != nil {
				continue
			}
			if ok {
				// 记录剔除原因，供观测/调试
				rec.PutLabel("filtered", utils.Label{Value: "true", Source: f.Name()})
				dropped = true
				break
			}
		}
		if dropped {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
