package recall

import (
	"context"
	"math"
	"testing"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/store"
)

// stubSource 回放固定结果，并记录收到的 limit。
type stubSource struct {
	recs     []*core.Recommendation
	gotLimit int
}

func (s *stubSource) Name() string { return "recall.stub" }

func (s *stubSource) Recommend(
	_ context.Context,
	_ *core.RecommendContext,
	limit int,
) ([]*core.Recommendation, error) {
	s.gotLimit = limit
	return s.recs, nil
}

func hybridCatalog() *store.MemoryStore {
	return store.NewMemoryStore([]*core.Product{
		{ID: "P1"}, {ID: "P2"}, {ID: "P3"},
	}, nil)
}

func TestHybridMerge(t *testing.T) {
	ms := hybridCatalog()
	p1, _ := ms.Product("P1")
	p2, _ := ms.Product("P2")

	collab := &stubSource{recs: []*core.Recommendation{
		core.NewRecommendation(p1, 1.0, 80),
	}}
	content := &stubSource{recs: []*core.Recommendation{
		core.NewRecommendation(p1, 2.0, 60),
		core.NewRecommendation(p2, 1.0, 50),
	}}

	src := &Hybrid{Collaborative: collab, ContentBased: content, Catalog: ms}
	recs, err := src.Recommend(context.Background(), &core.RecommendContext{UserID: "u1"}, 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// 子策略收到放大后的合并池
	if collab.gotLimit != 6 || content.gotLimit != 6 {
		t.Errorf("sub-source limits = (%d, %d), want (6, 6)", collab.gotLimit, content.gotLimit)
	}

	if len(recs) != 2 {
		t.Fatalf("got %d recs, want 2", len(recs))
	}

	// P1 两侧都有：1.0*0.6 + 2.0*0.4 = 1.4，conf (80+60)/2 + 10 = 80
	if recs[0].Product.ID != "P1" {
		t.Fatalf("top rec = %s, want P1", recs[0].Product.ID)
	}
	if math.Abs(recs[0].Score-1.4) > 1e-9 {
		t.Errorf("P1 score = %v, want 1.4", recs[0].Score)
	}
	if math.Abs(recs[0].Confidence-80) > 1e-9 {
		t.Errorf("P1 confidence = %v, want 80", recs[0].Confidence)
	}
	if lbl := recs[0].Labels["hybrid_components"]; lbl.Value != "collaborative|content_based" {
		t.Errorf("P1 hybrid_components = %q", lbl.Value)
	}

	// P2 只有内容侧：1.0*0.4 = 0.4，conf 50 + 10 = 60
	if recs[1].Product.ID != "P2" {
		t.Fatalf("second rec = %s, want P2", recs[1].Product.ID)
	}
	if math.Abs(recs[1].Score-0.4) > 1e-9 {
		t.Errorf("P2 score = %v, want 0.4", recs[1].Score)
	}
	if math.Abs(recs[1].Confidence-60) > 1e-9 {
		t.Errorf("P2 confidence = %v, want 60", recs[1].Confidence)
	}
	if lbl := recs[1].Labels["hybrid_components"]; lbl.Value != "content_based" {
		t.Errorf("P2 hybrid_components = %q", lbl.Value)
	}
}

func TestHybridConfidenceCap(t *testing.T) {
	ms := hybridCatalog()
	p1, _ := ms.Product("P1")

	src := &Hybrid{
		Collaborative: &stubSource{},
		ContentBased:  &stubSource{recs: []*core.Recommendation{core.NewRecommendation(p1, 1.0, 90)}},
		Catalog:       ms,
	}
	recs, err := src.Recommend(context.Background(), &core.RecommendContext{UserID: "u1"}, 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recs, want 1", len(recs))
	}
	if recs[0].Confidence != 95 {
		t.Errorf("confidence = %v, want capped 95", recs[0].Confidence)
	}
}

func TestHybridCustomWeights(t *testing.T) {
	ms := hybridCatalog()
	p1, _ := ms.Product("P1")

	src := &Hybrid{
		Collaborative:       &stubSource{recs: []*core.Recommendation{core.NewRecommendation(p1, 2.0, 50)}},
		ContentBased:        &stubSource{recs: []*core.Recommendation{core.NewRecommendation(p1, 1.0, 50)}},
		Catalog:             ms,
		CollaborativeWeight: 0.5,
		ContentWeight:       0.5,
		ConfidenceBonus:     5,
	}
	recs, err := src.Recommend(context.Background(), &core.RecommendContext{UserID: "u1"}, 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if math.Abs(recs[0].Score-1.5) > 1e-9 {
		t.Errorf("score = %v, want 1.5", recs[0].Score)
	}
	if math.Abs(recs[0].Confidence-55) > 1e-9 {
		t.Errorf("confidence = %v, want 55", recs[0].Confidence)
	}
}

func TestHybridTruncatesToLimit(t *testing.T) {
	ms := hybridCatalog()
	p1, _ := ms.Product("P1")
	p2, _ := ms.Product("P2")
	p3, _ := ms.Product("P3")

	src := &Hybrid{
		Collaborative: &stubSource{recs: []*core.Recommendation{
			core.NewRecommendation(p1, 3.0, 70),
			core.NewRecommendation(p2, 2.0, 70),
			core.NewRecommendation(p3, 1.0, 70),
		}},
		ContentBased: &stubSource{},
		Catalog:      ms,
	}
	recs, err := src.Recommend(context.Background(), &core.RecommendContext{UserID: "u1"}, 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recs, want 2", len(recs))
	}
	if recs[0].Product.ID != "P1" || recs[1].Product.ID != "P2" {
		t.Fatalf("got [%s %s], want [P1 P2]", recs[0].Product.ID, recs[1].Product.ID)
	}
}
