package core

// Product 是商品目录中的一条记录。
// 启动时从静态配置（YAML 数据集 / Redis 快照 / Feast 特征库）加载，
// 加载后不再修改，所有打分路径都可以无锁读取。
type Product struct {
	ID          string  `json:"product_id" yaml:"product_id"`
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Price       float64 `json:"price" yaml:"price"`   // 非负
	Rating      float64 `json:"rating" yaml:"rating"` // 0-5
	Brand       string  `json:"brand" yaml:"brand"`
	Description string  `json:"description" yaml:"description"`
	InStock     bool    `json:"in_stock" yaml:"in_stock"`

	// Features 是内容特征标签，有序；跨商品可重复出现。
	Features []string `json:"features" yaml:"features"`
}

// HasFeature 判断商品是否带有某个特征标签。
func (p *Product) HasFeature(tag string) bool {
	for _, f := range p.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// TopFeatures 返回前 n 个特征标签（不足 n 个时返回全部），用于解释文案。
func (p *Product) TopFeatures(n int) []string {
	if n <= 0 || len(p.Features) == 0 {
		return nil
	}
	if n > len(p.Features) {
		n = len(p.Features)
	}
	return p.Features[:n]
}
