package feast

import (
	"context"
	"fmt"
	"testing"
)

// stubClient 回放固定特征向量，不依赖真实 Feature Server。
type stubClient struct {
	resp *GetOnlineFeaturesResponse
	err  error
	got  *GetOnlineFeaturesRequest
}

func (c *stubClient) GetOnlineFeatures(_ context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error) {
	c.got = req
	return c.resp, c.err
}

func (c *stubClient) Close() error { return nil }

func TestCatalogSourceFetch(t *testing.T) {
	stub := &stubClient{resp: &GetOnlineFeaturesResponse{
		FeatureVectors: []FeatureVector{
			{Values: map[string]interface{}{
				"product_stats:name":     "Wireless Headphones",
				"product_stats:category": "Electronics",
				"product_stats:price":    79.99,
				"product_stats:rating":   4.5,
				"product_stats:brand":    "TechBrand",
				"product_stats:in_stock": true,
				"product_stats:features": "wireless, bluetooth ,long-battery",
			}},
			{Values: map[string]interface{}{
				"product_stats:rating": 4.2,
			}},
		},
	}}
	src := &CatalogSource{Client: stub}

	products, err := src.Fetch(context.Background(), []string{"P001", "P002"})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	p := products[0]
	if p.ID != "P001" || p.Name != "Wireless Headphones" || p.Category != "Electronics" {
		t.Errorf("product = %+v", p)
	}
	if p.Price != 79.99 || p.Rating != 4.5 || !p.InStock {
		t.Errorf("numeric fields = %+v", p)
	}
	wantFeatures := []string{"wireless", "bluetooth", "long-battery"}
	if len(p.Features) != len(wantFeatures) {
		t.Fatalf("features = %v, want %v", p.Features, wantFeatures)
	}
	for i, f := range wantFeatures {
		if p.Features[i] != f {
			t.Errorf("feature %d = %s, want %s", i, p.Features[i], f)
		}
	}

	// 特征列缺失 → 字段保持零值，不报错
	if products[1].ID != "P002" || products[1].Rating != 4.2 || products[1].Name != "" {
		t.Errorf("sparse product = %+v", products[1])
	}

	// 请求按默认视图与实体键组装
	if stub.got == nil || len(stub.got.EntityRows) != 2 {
		t.Fatalf("request = %+v", stub.got)
	}
	if stub.got.EntityRows[0]["product_id"] != "P001" {
		t.Errorf("entity row = %v", stub.got.EntityRows[0])
	}
}

func TestCatalogSourceCustomView(t *testing.T) {
	stub := &stubClient{resp: &GetOnlineFeaturesResponse{
		FeatureVectors: []FeatureVector{
			{Values: map[string]interface{}{"items:rating": 4.0}},
		},
	}}
	src := &CatalogSource{Client: stub, FeatureView: "items", EntityKey: "item_id"}

	products, err := src.Fetch(context.Background(), []string{"P1"})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if products[0].Rating != 4.0 {
		t.Errorf("rating = %v, want 4.0", products[0].Rating)
	}
	if stub.got.EntityRows[0]["item_id"] != "P1" {
		t.Errorf("entity row = %v", stub.got.EntityRows[0])
	}
	for _, f := range stub.got.Features {
		if f[:6] != "items:" {
			t.Errorf("feature %q not namespaced by view", f)
		}
	}
}

func TestCatalogSourceErrors(t *testing.T) {
	if _, err := (&CatalogSource{}).Fetch(context.Background(), []string{"P1"}); err == nil {
		t.Error("missing client must fail")
	}

	src := &CatalogSource{Client: &stubClient{err: fmt.Errorf("boom")}}
	if _, err := src.Fetch(context.Background(), []string{"P1"}); err == nil {
		t.Error("client error must propagate")
	}

	mismatched := &CatalogSource{Client: &stubClient{resp: &GetOnlineFeaturesResponse{}}}
	if _, err := mismatched.Fetch(context.Background(), []string{"P1"}); err == nil {
		t.Error("row count mismatch must fail")
	}

	empty := &CatalogSource{Client: &stubClient{}}
	products, err := empty.Fetch(context.Background(), nil)
	if err != nil || len(products) != 0 {
		t.Errorf("empty id list = (%v, %v), want empty slice", products, err)
	}
}
