package feast

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/conv"
)

// 商品特征视图的默认布局。
const (
	defaultFeatureView = "product_stats"
	defaultEntityKey   = "product_id"
)

// CatalogSource 从 Feast 在线存储拉取商品特征，组装成目录商品。
//
// 商品的评分 / 价格 / 库存这类运营侧字段由离线管线维护，
// 通过 Feature Store 同步到引擎，目录刷新只是一次在线特征读取。
// 特征列缺失时对应字段保持零值，不视为错误。
type CatalogSource struct {
	Client Client

	// FeatureView 特征视图名称，空则用 product_stats
	FeatureView string

	// EntityKey 实体键名称，空则用 product_id
	EntityKey string

	// Project 项目名称（可选，缺省用客户端配置）
	Project string
}

// 特征视图内的列名。features 列为逗号分隔的标签串。
var catalogColumns = []string{"name", "category", "price", "rating", "brand", "in_stock", "features"}

// Fetch 拉取指定商品的在线特征并组装为目录商品。
// 返回顺序与 productIDs 一致，可直接喂给 MemoryStore。
func (s *CatalogSource) Fetch(ctx context.Context, productIDs []string) ([]*core.Product, error) {
	if s.Client == nil {
		return nil, fmt.Errorf("feast client is required")
	}
	if len(productIDs) == 0 {
		return []*core.Product{}, nil
	}

	view := s.FeatureView
	if view == "" {
		view = defaultFeatureView
	}
	entityKey := s.EntityKey
	if entityKey == "" {
		entityKey = defaultEntityKey
	}

	features := make([]string, 0, len(catalogColumns))
	for _, col := range catalogColumns {
		features = append(features, view+":"+col)
	}
	entityRows := make([]map[string]interface{}, len(productIDs))
	for i, id := range productIDs {
		entityRows[i] = map[string]interface{}{entityKey: id}
	}

	resp, err := s.Client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features:   features,
		EntityRows: entityRows,
		Project:    s.Project,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.FeatureVectors) != len(productIDs) {
		return nil, fmt.Errorf("feature vector count mismatch: expected %d, got %d", len(productIDs), len(resp.FeatureVectors))
	}

	products := make([]*core.Product, len(productIDs))
	for i, id := range productIDs {
		values := resp.FeatureVectors[i].Values
		p := &core.Product{ID: id}
		p.Name, _ = conv.ToString(values[view+":name"])
		p.Category, _ = conv.ToString(values[view+":category"])
		p.Price, _ = conv.ToFloat64(values[view+":price"])
		p.Rating, _ = conv.ToFloat64(values[view+":rating"])
		p.Brand, _ = conv.ToString(values[view+":brand"])
		p.InStock, _ = conv.ToBool(values[view+":in_stock"])
		if raw, ok := conv.ToString(values[view+":features"]); ok && raw != "" {
			for _, f := range strings.Split(raw, ",") {
				if f = strings.TrimSpace(f); f != "" {
					p.Features = append(p.Features, f)
				}
			}
		}
		products[i] = p
	}
	return products, nil
}
