// Package vector 把交互历史与商品属性编码为数值向量，并提供余弦相似度。
package vector

import (
	"math"
	"sort"

	"github.com/shopkit/shoprec/core"
)

// Space 是由完整目录派生的向量空间：品类全集、特征标签全集、价格上限
// 与商品下标。全集在每次构建时从目录现算，排序采用字典序——一次运行内
// 与跨次加载之间都保持一致，向量才可复现、可比较。
type Space struct {
	products   []*core.Product
	index      map[string]int // product id → 目录下标
	categories []string       // 字典序
	tags       []string       // 字典序
	maxPrice   float64
}

// NewSpace 从目录构建向量空间。
func NewSpace(catalog core.Catalog) *Space {
	products := catalog.Products()
	s := &Space{
		products: products,
		index:    make(map[string]int, len(products)),
	}

	catSet := make(map[string]struct{})
	tagSet := make(map[string]struct{})
	for i, p := range products {
		s.index[p.ID] = i
		catSet[p.Category] = struct{}{}
		for _, tag := range p.Features {
			tagSet[tag] = struct{}{}
		}
		if p.Price > s.maxPrice {
			s.maxPrice = p.Price
		}
	}

	s.categories = sortedKeys(catSet)
	s.tags = sortedKeys(tagSet)
	return s
}

// Len 返回目录商品数，即偏好向量的维度。
func (s *Space) Len() int { return len(s.products) }

// FeatureDim 返回商品特征向量的维度：品类 one-hot + 标签 one-hot + 价格 + 评分。
func (s *Space) FeatureDim() int { return len(s.categories) + len(s.tags) + 2 }

// ProductIndex 返回商品在目录中的下标。
func (s *Space) ProductIndex(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// PreferenceVector 把用户的交互历史编码为对全目录的偏好向量。
//
// 维度与商品数一致、与目录顺序对齐。每条交互按行为类型取权重
// （purchase=5, add_to_cart=3, view=1, 其他=1），携带评分时乘以 rating/5，
// 写入对应商品的槽位：同一商品多次交互时后写覆盖，不累加。
// 引用目录外商品的交互直接忽略；未交互的槽位保持 0。
func (s *Space) PreferenceVector(u *core.User) []float64 {
	vec := make([]float64, len(s.products))
	if u == nil {
		return vec
	}
	for _, inter := range u.History {
		idx, ok := s.index[inter.ProductID]
		if !ok {
			continue
		}
		w := InteractionWeight(inter.Type)
		if inter.Rated() {
			w *= inter.Rating / 5
		}
		vec[idx] = w
	}
	return vec
}

// FeatureVector 把商品属性编码为内容特征向量：
// 品类 one-hot（字典序全集）＋ 特征标签 one-hot ＋ 价格/目录最高价 ＋ 评分/5。
func (s *Space) FeatureVector(p *core.Product) []float64 {
	vec := make([]float64, 0, s.FeatureDim())
	for _, cat := range s.categories {
		if p.Category == cat {
			vec = append(vec, 1)
		} else {
			vec = append(vec, 0)
		}
	}
	for _, tag := range s.tags {
		if p.HasFeature(tag) {
			vec = append(vec, 1)
		} else {
			vec = append(vec, 0)
		}
	}
	if s.maxPrice > 0 {
		vec = append(vec, p.Price/s.maxPrice)
	} else {
		vec = append(vec, 0)
	}
	vec = append(vec, p.Rating/5)
	return vec
}

// InteractionWeight 返回行为类型的偏好权重。
func InteractionWeight(t core.InteractionType) float64 {
	switch t {
	case core.InteractionPurchase:
		return 5
	case core.InteractionAddToCart:
		return 3
	case core.InteractionView:
		return 1
	default:
		return 1
	}
}

// Cosine 计算两个向量的余弦相似度。
// 任一向量模长为零、或长度不一致时返回 0——护栏值，不是错误。
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
