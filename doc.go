// Package shoprec 是一个电商推荐打分引擎（Shop Recommender）。
//
// 设计要点：
// - 四种打分策略：collaborative / content_based / hybrid / popularity，未知标识回退 hybrid
// - Labels-first: 每条推荐携带来源与解释标签，打分过程自带可观测性
// - 依赖显式注入：目录与用户档案是接口（core.Catalog / core.Profiles），引擎无全局状态
// - 打分全程同步、确定（popularity 的随机源可注入固定种子）
package shoprec

import (
	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/engine"
)

// 轻量 facade：便于用户直接 import "shoprec" 使用核心抽象。
type Engine = engine.Engine
type Option = engine.Option
type Algorithm = core.Algorithm
type Product = core.Product
type User = core.User
type Interaction = core.Interaction
type Recommendation = core.Recommendation

const (
	AlgorithmCollaborative = core.AlgorithmCollaborative
	AlgorithmContentBased  = core.AlgorithmContentBased
	AlgorithmHybrid        = core.AlgorithmHybrid
	AlgorithmPopularity    = core.AlgorithmPopularity
)

// New 创建推荐引擎（engine.New 的别名入口）。
func New(catalog core.Catalog, profiles core.Profiles, opts ...Option) *Engine {
	return engine.New(catalog, profiles, opts...)
}
