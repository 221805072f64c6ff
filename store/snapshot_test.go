package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/shopkit/shoprec/core"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	defer kv.Close()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Fatalf("Get(missing) err = %v, want StoreNotFound", err)
	}

	if err := kv.Set(ctx, "k1", []byte("v1")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := kv.Get(ctx, "k1")
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get(k1) = (%q, %v), want (v1, nil)", got, err)
	}

	if err := kv.Set(ctx, "k2", []byte("v2")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	batch, err := kv.BatchGet(ctx, []string{"k1", "k2", "missing"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	if len(batch) != 2 || string(batch["k1"]) != "v1" || string(batch["k2"]) != "v2" {
		t.Fatalf("BatchGet() = %v", batch)
	}

	if err := kv.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := kv.Get(ctx, "k1"); !core.IsStoreNotFound(err) {
		t.Fatalf("Get after Delete err = %v, want StoreNotFound", err)
	}

	if err := kv.HSet(ctx, "h", "f1", []byte("x")); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}
	if v, err := kv.HGet(ctx, "h", "f1"); err != nil || string(v) != "x" {
		t.Fatalf("HGet() = (%q, %v)", v, err)
	}
	if _, err := kv.HGet(ctx, "h", "missing"); !core.IsStoreNotFound(err) {
		t.Fatalf("HGet(missing field) err = %v, want StoreNotFound", err)
	}
	all, err := kv.HGetAll(ctx, "h")
	if err != nil || len(all) != 1 {
		t.Fatalf("HGetAll() = (%v, %v)", all, err)
	}
}

func TestDatasetSnapshotRoundtrip(t *testing.T) {
	products := []*core.Product{
		{ID: "P1", Name: "Headphones", Category: "Electronics", Price: 79.99, Rating: 4.5, InStock: true,
			Features: []string{"wireless", "bluetooth"}},
		{ID: "P2", Name: "T-Shirt", Category: "Clothing", Price: 29.99, Rating: 4.2, InStock: true},
	}
	users := []*core.User{
		{ID: "u1", Name: "Alice", Age: 28, Location: "New York", Preferences: []string{"Electronics"},
			History: []core.Interaction{
				{ProductID: "P1", Type: core.InteractionPurchase, Rating: 5},
			}},
		{ID: "u2", Name: "Bob", Age: 35, Location: "California"},
	}

	kv := NewMemoryKV()
	defer kv.Close()
	ctx := context.Background()

	if err := SaveDataset(ctx, kv, products, users); err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}
	restored, err := LoadDataset(ctx, kv)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}

	gotProducts := restored.Products()
	if len(gotProducts) != len(products) {
		t.Fatalf("got %d products, want %d", len(gotProducts), len(products))
	}
	for i, want := range products {
		if !reflect.DeepEqual(gotProducts[i], want) {
			t.Errorf("product %d = %+v, want %+v", i, gotProducts[i], want)
		}
	}

	gotUsers := restored.Users()
	if len(gotUsers) != len(users) {
		t.Fatalf("got %d users, want %d", len(gotUsers), len(users))
	}
	for i, want := range users {
		if !reflect.DeepEqual(gotUsers[i], want) {
			t.Errorf("user %d = %+v, want %+v", i, gotUsers[i], want)
		}
	}
}

func TestLoadDatasetEmpty(t *testing.T) {
	kv := NewMemoryKV()
	defer kv.Close()

	restored, err := LoadDataset(context.Background(), kv)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if len(restored.Products()) != 0 || len(restored.Users()) != 0 {
		t.Fatal("empty KV must restore an empty dataset")
	}
}
