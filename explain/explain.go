// Package explain 为一条推荐生成人类可读的理由文案。
package explain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopkit/shoprec/core"
)

// Resolver 把一个占位符解析为具体文案片段。
type Resolver func(u *core.User, p *core.Product) string

// Generator 按算法渲染推荐理由。
//
// 模板以算法为键，正文里的 {placeholder} 由 Resolvers 中的同名解析函数
// 提供值，一次扫描全部替换——顺序替换链会出现前一次替换产物被后一次
// 误匹配的遮蔽问题，这里不存在。
//
// 文案是纯文本：不携带算法状态，也与该商品算出的分数/置信度无关。
type Generator struct {
	Templates map[core.Algorithm]string
	Resolvers map[string]Resolver
}

var placeholderRE = regexp.MustCompile(`\{([a-z_]+)\}`)

// NewGenerator 创建带默认模板与解析函数的 Generator。
func NewGenerator() *Generator {
	return &Generator{
		Templates: DefaultTemplates(),
		Resolvers: DefaultResolvers(),
	}
}

// Render 渲染 (用户, 商品, 算法) 的推荐理由。
// 未知算法回退 Hybrid 模板；无解析函数的占位符替换为空串。
// 任何输入组合都会得到一条非空文案。
func (g *Generator) Render(algo core.Algorithm, u *core.User, p *core.Product) string {
	if u == nil {
		u = &core.User{}
	}
	if p == nil {
		p = &core.Product{}
	}

	tpl, ok := g.Templates[algo]
	if !ok {
		tpl = g.Templates[core.AlgorithmHybrid]
	}

	return placeholderRE.ReplaceAllStringFunc(tpl, func(m string) string {
		name := m[1 : len(m)-1]
		if resolve, ok := g.Resolvers[name]; ok {
			return resolve(u, p)
		}
		return ""
	})
}

// DefaultTemplates 返回四种算法的默认文案模板。
func DefaultTemplates() map[core.Algorithm]string {
	return map[core.Algorithm]string{
		core.AlgorithmCollaborative: "Users with similar preferences to you also enjoyed this product. " +
			"Based on your purchase history and ratings, we think you'll love it too.",
		core.AlgorithmContentBased: "This product matches your interest in {category} and has features " +
			"similar to items you've previously purchased: {features}.",
		core.AlgorithmHybrid: "This recommendation combines insights from similar users and your " +
			"personal preferences for {category} products with {key_features}.",
		core.AlgorithmPopularity: "This is a trending product in {category} with excellent ratings " +
			"({rating}/5) that many customers in {location} have purchased recently.",
	}
}

// DefaultResolvers 返回默认占位符解析函数：
//   - category: 商品品类
//   - rating: 商品评分
//   - location: 用户所在地
//   - features: 前三个特征标签，", " 连接
//   - key_features: 前两个特征标签，" and " 连接
func DefaultResolvers() map[string]Resolver {
	return map[string]Resolver{
		"category": func(_ *core.User, p *core.Product) string {
			return p.Category
		},
		"rating": func(_ *core.User, p *core.Product) string {
			return strconv.FormatFloat(p.Rating, 'f', -1, 64)
		},
		"location": func(u *core.User, _ *core.Product) string {
			return u.Location
		},
		"features": func(_ *core.User, p *core.Product) string {
			return strings.Join(p.TopFeatures(3), ", ")
		},
		"key_features": func(_ *core.User, p *core.Product) string {
			return strings.Join(p.TopFeatures(2), " and ")
		},
	}
}
