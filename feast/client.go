// Package feast 对接 Feast Feature Store，把在线特征同步进商品目录。
package feast

import (
	"context"
	"time"
)

// Client 是 Feast 在线特征服务的客户端接口。
//
// 目录同步只依赖在线特征读取，接口刻意收窄：
// 历史特征、物化等离线能力不在引擎的职责范围内。
//
// 参考：https://github.com/feast-dev/feast
type Client interface {
	// GetOnlineFeatures 获取在线特征（用于目录刷新）
	//
	// 参数：
	//   - features: 特征名称列表，例如 ["product_stats:rating", "product_stats:price"]
	//   - entityRows: 实体行，例如 [{"product_id": "P001"}]
	GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error)

	// Close 关闭客户端连接
	Close() error
}

// GetOnlineFeaturesRequest 获取在线特征请求
type GetOnlineFeaturesRequest struct {
	// Features 特征名称列表，例如 ["product_stats:rating", "product_stats:price"]
	Features []string

	// EntityRows 实体行，例如 [{"product_id": "P001"}, {"product_id": "P002"}]
	EntityRows []map[string]interface{}

	// Project 项目名称（可选，缺省用客户端配置）
	Project string
}

// GetOnlineFeaturesResponse 获取在线特征响应
type GetOnlineFeaturesResponse struct {
	// FeatureVectors 特征向量列表，每个元素对应一个实体行
	FeatureVectors []FeatureVector
}

// FeatureVector 特征向量
type FeatureVector struct {
	// Values 特征值，key 为特征名称
	Values map[string]interface{}

	// EntityRow 对应的实体行
	EntityRow map[string]interface{}
}

// ClientOption Feast 客户端配置选项
type ClientOption func(*ClientConfig)

// ClientConfig Feast 客户端配置
type ClientConfig struct {
	// Endpoint 服务端点
	Endpoint string

	// Project 项目名称
	Project string

	// Timeout 超时时间
	Timeout time.Duration

	// Auth 认证信息
	Auth *AuthConfig
}

// AuthConfig 认证配置
type AuthConfig struct {
	// Type 认证类型，目前支持 static（gRPC 静态 Token）
	Type string

	// Token 静态 Token
	Token string
}

// WithTimeout 配置选项：设置超时时间
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.Timeout = timeout
	}
}

// WithAuth 配置选项：设置认证信息
func WithAuth(auth *AuthConfig) ClientOption {
	return func(c *ClientConfig) {
		c.Auth = auth
	}
}
