package feast

import (
	"context"
	"fmt"
	"time"

	feastsdk "github.com/feast-dev/feast/sdk/go"
	feasttypes "github.com/feast-dev/feast/sdk/go/protos/feast/types"
)

// GrpcClient 是基于官方 Feast Go SDK 的 gRPC 客户端实现。
type GrpcClient struct {
	client *feastsdk.GrpcClient

	// Project 项目名称
	Project string

	// Endpoint 服务端点（用于信息展示）
	Endpoint string
}

// NewGrpcClient 创建一个基于官方 SDK 的 Feast gRPC 客户端。
//
// 参数：
//   - host: Feature Server 主机地址，例如 "localhost"
//   - port: gRPC 端口，0 表示默认 6565
//   - project: 项目名称
func NewGrpcClient(host string, port int, project string, opts ...ClientOption) (*GrpcClient, error) {
	if port == 0 {
		port = 6565
	}

	config := &ClientConfig{
		Endpoint: fmt.Sprintf("%s:%d", host, port),
		Project:  project,
		Timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(config)
	}

	var client *feastsdk.GrpcClient
	var err error
	if config.Auth != nil && config.Auth.Type == "static" && config.Auth.Token != "" {
		security := feastsdk.SecurityConfig{
			EnableTLS:  false,
			Credential: feastsdk.NewStaticCredential(config.Auth.Token),
		}
		client, err = feastsdk.NewSecureGrpcClient(host, port, security)
	} else {
		client, err = feastsdk.NewGrpcClient(host, port)
	}
	if err != nil {
		return nil, fmt.Errorf("feast grpc client: %w", err)
	}

	return &GrpcClient{
		client:   client,
		Project:  project,
		Endpoint: config.Endpoint,
	}, nil
}

// GetOnlineFeatures 获取在线特征（实现 Client 接口）
func (c *GrpcClient) GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error) {
	if len(req.Features) == 0 {
		return nil, fmt.Errorf("features are required")
	}
	if len(req.EntityRows) == 0 {
		return nil, fmt.Errorf("entity rows are required")
	}

	project := req.Project
	if project == "" {
		project = c.Project
	}
	if project == "" {
		return nil, fmt.Errorf("project is required")
	}

	// SDK 的 Row 是 map[string]*types.Value
	entityRows := make([]feastsdk.Row, len(req.EntityRows))
	for i, row := range req.EntityRows {
		entityRow := make(feastsdk.Row, len(row))
		for k, v := range row {
			entityRow[k] = toSDKValue(v)
		}
		entityRows[i] = entityRow
	}

	sdkResp, err := c.client.GetOnlineFeatures(ctx, &feastsdk.OnlineFeaturesRequest{
		Features: req.Features,
		Entities: entityRows,
		Project:  project,
	})
	if err != nil {
		return nil, fmt.Errorf("feast get online features: %w", err)
	}

	rows := sdkResp.Rows()
	if len(rows) != len(req.EntityRows) {
		return nil, fmt.Errorf("response row count mismatch: expected %d, got %d", len(req.EntityRows), len(rows))
	}

	featureVectors := make([]FeatureVector, len(rows))
	for i, row := range rows {
		values := make(map[string]interface{}, len(req.Features))
		for _, name := range req.Features {
			if val, ok := row[name]; ok {
				if converted := fromSDKValue(val); converted != nil {
					values[name] = converted
				}
			}
		}
		featureVectors[i] = FeatureVector{
			Values:    values,
			EntityRow: req.EntityRows[i],
		}
	}

	return &GetOnlineFeaturesResponse{FeatureVectors: featureVectors}, nil
}

// Close 关闭客户端连接（实现 Client 接口）
func (c *GrpcClient) Close() error {
	// 官方 SDK 没有显式的 Close，连接由 gRPC 库管理
	c.client = nil
	return nil
}

// toSDKValue 把 Go 值包成 SDK 的 *types.Value。
func toSDKValue(v interface{}) *feasttypes.Value {
	switch val := v.(type) {
	case string:
		return feastsdk.StrVal(val)
	case int:
		return feastsdk.Int64Val(int64(val))
	case int32:
		return feastsdk.Int64Val(int64(val))
	case int64:
		return feastsdk.Int64Val(val)
	case float32:
		return feastsdk.FloatVal(val)
	case float64:
		return feastsdk.DoubleVal(val)
	case bool:
		return feastsdk.BoolVal(val)
	case []byte:
		return feastsdk.BytesVal(val)
	default:
		return feastsdk.StrVal(fmt.Sprintf("%v", val))
	}
}

// fromSDKValue 从 SDK 的 *types.Value 提取 Go 值。
func fromSDKValue(val *feasttypes.Value) interface{} {
	if val == nil {
		return nil
	}
	switch v := val.Val.(type) {
	case *feasttypes.Value_StringVal:
		return v.StringVal
	case *feasttypes.Value_Int32Val:
		return int64(v.Int32Val)
	case *feasttypes.Value_Int64Val:
		return v.Int64Val
	case *feasttypes.Value_FloatVal:
		return float64(v.FloatVal)
	case *feasttypes.Value_DoubleVal:
		return v.DoubleVal
	case *feasttypes.Value_BoolVal:
		return v.BoolVal
	case *feasttypes.Value_BytesVal:
		return string(v.BytesVal)
	default:
		return nil
	}
}

var _ Client = (*GrpcClient)(nil)
