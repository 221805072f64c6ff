// Package engine 把目录、用户档案与四种打分策略组装成推荐引擎。
package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/explain"
	"github.com/shopkit/shoprec/filter"
	"github.com/shopkit/shoprec/pipeline"
	"github.com/shopkit/shoprec/recall"
	"github.com/shopkit/shoprec/rerank"
)

// DefaultLimit 是未指定 limit 时的返回条数。
const DefaultLimit = 3

// Engine 是推荐引擎。所有依赖通过构造参数显式注入，没有包级全局状态，
// 同一进程可以用不同的 fixture 数据起多个互不相干的实例。
//
// 所有打分操作同步执行、无 I/O、运行到底才返回；唯一的失败类别是
// 用不存在的 userId / productId 调用（UnknownEntity）。
type Engine struct {
	catalog   core.Catalog
	profiles  core.Profiles
	sources   map[core.Algorithm]recall.Source
	post      *pipeline.Pipeline
	generator *explain.Generator
	limit     int
}

type options struct {
	rnd           *rand.Rand
	filters       []filter.Filter
	templates     map[core.Algorithm]string
	minSimilarity float64
	collabWeight  float64
	contentWeight float64
	hybridBonus   float64
	limit         int
}

// Option 配置 Engine。
type Option func(*options)

// WithRand 注入热门度打分的随机源。线上默认用时间种子（刻意非确定）；
// 测试注入固定种子即可让 popularity 结果可复现。
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rnd = r }
}

// WithFilters 追加后处理过滤器（在兜底的已交互过滤之后执行）。
func WithFilters(filters ...filter.Filter) Option {
	return func(o *options) { o.filters = append(o.filters, filters...) }
}

// WithTemplates 覆盖解释文案模板（缺失的算法落回 Hybrid 模板）。
func WithTemplates(templates map[core.Algorithm]string) Option {
	return func(o *options) { o.templates = templates }
}

// WithMinSimilarity 设置协同过滤的相似用户准入阈值。
func WithMinSimilarity(min float64) Option {
	return func(o *options) { o.minSimilarity = min }
}

// WithHybridWeights 设置混合策略的合并权重与置信度加成。
func WithHybridWeights(collaborative, content, bonus float64) Option {
	return func(o *options) {
		o.collabWeight = collaborative
		o.contentWeight = content
		o.hybridBonus = bonus
	}
}

// WithDefaultLimit 设置未指定 limit 时的返回条数。
func WithDefaultLimit(limit int) Option {
	return func(o *options) { o.limit = limit }
}

// New 创建推荐引擎。
func New(catalog core.Catalog, profiles core.Profiles, opts ...Option) *Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.limit <= 0 {
		o.limit = DefaultLimit
	}

	collaborative := &recall.CollaborativeFiltering{
		Catalog:       catalog,
		Profiles:      profiles,
		MinSimilarity: o.minSimilarity,
	}
	contentBased := &recall.ContentBased{
		Catalog:  catalog,
		Profiles: profiles,
	}
	hybrid := &recall.Hybrid{
		Collaborative:       collaborative,
		ContentBased:        contentBased,
		Catalog:             catalog,
		CollaborativeWeight: o.collabWeight,
		ContentWeight:       o.contentWeight,
		ConfidenceBonus:     o.hybridBonus,
	}
	popularity := &recall.Popularity{
		Catalog:  catalog,
		Profiles: profiles,
		Rand:     o.rnd,
	}

	// 兜底的已交互过滤排在自定义过滤器之前
	filters := append([]filter.Filter{&filter.Interacted{Profiles: profiles}}, o.filters...)

	generator := explain.NewGenerator()
	for algo, tpl := range o.templates {
		generator.Templates[algo] = tpl
	}

	return &Engine{
		catalog:  catalog,
		profiles: profiles,
		sources: map[core.Algorithm]recall.Source{
			core.AlgorithmCollaborative: collaborative,
			core.AlgorithmContentBased:  contentBased,
			core.AlgorithmHybrid:        hybrid,
			core.AlgorithmPopularity:    popularity,
		},
		post:      &pipeline.Pipeline{Nodes: []pipeline.Node{&filter.Node{Filters: filters}}},
		generator: generator,
		limit:     o.limit,
	}
}

// Recommend 为用户生成至多 limit 条推荐，按分数降序。
//
// 未知算法标识静默回退 Hybrid（显式 default 分支，不是错误）。
// 没有合格候选时返回空切片，永不返回 nil。
// 未知 userId 返回 UnknownEntity 错误。
func (e *Engine) Recommend(
	ctx context.Context,
	userID string,
	algo core.Algorithm,
	limit int,
) ([]*core.Recommendation, error) {
	if _, err := e.profiles.User(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.limit
	}

	src, ok := e.sources[algo]
	if !ok {
		src = e.sources[core.AlgorithmHybrid]
	}

	rctx := &core.RecommendContext{UserID: userID}
	recs, err := src.Recommend(ctx, rctx, limit)
	if err != nil {
		return nil, err
	}

	recs, err = e.post.Run(ctx, rctx, recs)
	if err != nil {
		return nil, err
	}
	recs, _ = (&rerank.TopN{N: limit}).Process(ctx, rctx, recs)

	if recs == nil {
		recs = []*core.Recommendation{}
	}
	return recs, nil
}

// Explain 渲染 (用户, 商品, 算法) 的推荐理由，总是返回非空文案。
// 未知算法回退 Hybrid 模板。未知 userId 返回 UnknownEntity 错误。
func (e *Engine) Explain(
	ctx context.Context,
	userID string,
	product *core.Product,
	algo core.Algorithm,
) (string, error) {
	user, err := e.profiles.User(userID)
	if err != nil {
		return "", err
	}
	return e.generator.Render(algo, user, product), nil
}

// RecordInteraction 向用户的交互历史追加一条记录。
// rating 为 0 表示本次行为不携带评分。
// 不校验 productID 的目录成员资格：悬空引用由打分路径直接忽略，
// 保证引用存在是调用方的前置条件。
func (e *Engine) RecordInteraction(
	ctx context.Context,
	userID, productID string,
	t core.InteractionType,
	rating float64,
) error {
	return e.profiles.AppendInteraction(userID, core.Interaction{
		ProductID: productID,
		Type:      t,
		Rating:    rating,
		Time:      time.Now(),
	})
}

// SetPreferences 整体替换用户的偏好品类集合。
func (e *Engine) SetPreferences(ctx context.Context, userID string, categories []string) error {
	return e.profiles.SetPreferences(userID, categories)
}

// Catalog 返回引擎使用的商品目录。
func (e *Engine) Catalog() core.Catalog { return e.catalog }
