package pipeline

import (
	"context"

	"github.com/shopkit/shoprec/core"
)

// Pipeline 把后处理逻辑拆成可组合的 Node 链，依次执行。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	recs []*core.Recommendation,
) ([]*core.Recommendation, error) {
	cur := recs
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
