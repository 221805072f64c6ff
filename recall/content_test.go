package recall

import (
	"context"
	"math"
	"testing"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/store"
)

func cbFixture(users ...*core.User) *store.MemoryStore {
	products := []*core.Product{
		{ID: "P1", Category: "Electronics", Rating: 4.5, Features: []string{"wireless", "bluetooth"}},
		{ID: "P2", Category: "Clothing", Rating: 4.2, Features: []string{"organic"}},
		{ID: "P3", Category: "Electronics", Rating: 4.4, Features: []string{"wireless", "smart"}},
		{ID: "P4", Category: "Sports", Rating: 2},
	}
	return store.NewMemoryStore(products, users)
}

func TestContentBased(t *testing.T) {
	ms := cbFixture(&core.User{
		ID:          "u1",
		Preferences: []string{"Electronics"},
		History: []core.Interaction{
			{ProductID: "P1", Type: core.InteractionPurchase, Rating: 5},
		},
	})
	src := &ContentBased{Catalog: ms, Profiles: ms}

	recs, err := src.Recommend(context.Background(), &core.RecommendContext{UserID: "u1"}, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// 频次表来自 P1：wireless=1, bluetooth=1。
	// P3: 品类偏好 2 + wireless 0.5 + (4.4-3)*0.5 = 3.2，命中 1/2 标签 → conf 50
	// P2: (4.2-3)*0.5 = 0.6，无命中 → conf 0
	// P4: (2-3)*0.5 = -0.5 → 丢弃
	if len(recs) != 2 {
		t.Fatalf("got %d recs, want 2", len(recs))
	}
	if recs[0].Product.ID != "P3" || recs[1].Product.ID != "P2" {
		t.Fatalf("got order [%s %s], want [P3 P2]", recs[0].Product.ID, recs[1].Product.ID)
	}
	if math.Abs(recs[0].Score-3.2) > 1e-9 {
		t.Errorf("P3 score = %v, want 3.2", recs[0].Score)
	}
	if math.Abs(recs[0].Confidence-50) > 1e-9 {
		t.Errorf("P3 confidence = %v, want 50", recs[0].Confidence)
	}
	if math.Abs(recs[1].Score-0.6) > 1e-9 {
		t.Errorf("P2 score = %v, want 0.6", recs[1].Score)
	}
	if recs[1].Confidence != 0 {
		t.Errorf("P2 confidence = %v, want 0", recs[1].Confidence)
	}
}

func TestContentBasedHighRatingQualifies(t *testing.T) {
	// 非购买但评分 >= 4 的交互同样进入频次表
	ms := cbFixture(&core.User{
		ID: "u1",
		History: []core.Interaction{
			{ProductID: "P1", Type: core.InteractionView, Rating: 4},
		},
	})
	src := &ContentBased{Catalog: ms, Profiles: ms}

	recs, err := src.Recommend(context.Background(), &core.RecommendContext{UserID: "u1"}, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	var p3 *core.Recommendation
	for _, rec := range recs {
		if rec.Product.ID == "P3" {
			p3 = rec
		}
	}
	if p3 == nil {
		t.Fatal("P3 missing")
	}
	// wireless 0.5 + (4.4-3)*0.5 = 1.2（无品类偏好）
	if math.Abs(p3.Score-1.2) > 1e-9 {
		t.Errorf("P3 score = %v, want 1.2", p3.Score)
	}
}

func TestContentBasedEmptyHistory(t *testing.T) {
	ms := cbFixture(&core.User{ID: "u1", Preferences: []string{"Electronics"}})
	src := &ContentBased{Catalog: ms, Profiles: ms}

	recs, err := src.Recommend(context.Background(), &core.RecommendContext{UserID: "u1"}, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// 无历史 → 频次表为空，只剩品类偏好与评分项
	for _, rec := range recs {
		if rec.Product.Category == "Electronics" {
			want := 2 + (rec.Product.Rating-3)*0.5
			if math.Abs(rec.Score-want) > 1e-9 {
				t.Errorf("%s score = %v, want %v", rec.Product.ID, rec.Score, want)
			}
		}
	}
}

func TestContentBasedDanglingHistoryIgnored(t *testing.T) {
	ms := cbFixture(&core.User{
		ID: "u1",
		History: []core.Interaction{
			{ProductID: "PX", Type: core.InteractionPurchase, Rating: 5},
		},
	})
	src := &ContentBased{Catalog: ms, Profiles: ms}

	if _, err := src.Recommend(context.Background(), &core.RecommendContext{UserID: "u1"}, 10); err != nil {
		t.Fatalf("dangling history must not fail: %v", err)
	}
}
