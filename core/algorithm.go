package core

// Algorithm 是四种打分策略的封闭枚举。
// 算法选择是对枚举值的纯分发；外部传入的未知标识统一回退到 Hybrid
// （显式的 default 分支，静默回退，不是错误）。
type Algorithm string

const (
	AlgorithmCollaborative Algorithm = "collaborative"
	AlgorithmContentBased  Algorithm = "content_based"
	AlgorithmHybrid        Algorithm = "hybrid"
	AlgorithmPopularity    Algorithm = "popularity"
)

// ParseAlgorithm 把外部算法标识解析为封闭枚举，未知标识回退 Hybrid。
func ParseAlgorithm(s string) Algorithm {
	switch Algorithm(s) {
	case AlgorithmCollaborative, AlgorithmContentBased, AlgorithmPopularity, AlgorithmHybrid:
		return Algorithm(s)
	default:
		return AlgorithmHybrid
	}
}

// Valid 判断是否为四种已知算法之一。
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmCollaborative, AlgorithmContentBased, AlgorithmPopularity, AlgorithmHybrid:
		return true
	}
	return false
}

// Description 返回算法的一句话描述，供外部展示层使用。
func (a Algorithm) Description() string {
	switch a {
	case AlgorithmCollaborative:
		return "User-based collaborative filtering using cosine similarity"
	case AlgorithmContentBased:
		return "Content-based filtering using product features"
	case AlgorithmPopularity:
		return "Popularity-based recommendations"
	default:
		return "Hybrid approach combining collaborative and content-based"
	}
}

// Accuracy 返回算法的离线评估准确率（固定元信息，非实时指标）。
func (a Algorithm) Accuracy() float64 {
	switch a {
	case AlgorithmCollaborative:
		return 0.78
	case AlgorithmContentBased:
		return 0.72
	case AlgorithmPopularity:
		return 0.65
	default:
		return 0.84
	}
}
