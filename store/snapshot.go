package store

import (
	"context"
	"encoding/json"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/shopkit/shoprec/core"
)

// 数据集快照的键布局（哈希表: id → JSON 文档）：
//
//	catalog:products → product_id → core.Product
//	catalog:users    → user_id    → core.User
const (
	snapshotProductsKey = "catalog:products"
	snapshotUsersKey    = "catalog:users"
)

// SaveDataset 把数据集写入 KV 存储。
func SaveDataset(ctx context.Context, kv core.KeyValueStore, products []*core.Product, users []*core.User) error {
	for _, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if err := kv.HSet(ctx, snapshotProductsKey, p.ID, data); err != nil {
			return err
		}
	}
	for _, u := range users {
		data, err := json.Marshal(u)
		if err != nil {
			return err
		}
		if err := kv.HSet(ctx, snapshotUsersKey, u.ID, data); err != nil {
			return err
		}
	}
	return nil
}

// LoadDataset 从 KV 存储重建内存快照。
//
// 商品与用户两个哈希并发拉取——并发只存在于数据加载边缘，
// 打分路径仍然是同步的。哈希字段无序，重建时按 id 字典序排列，
// 保证恢复出的目录迭代顺序稳定且与保存前一致。
func LoadDataset(ctx context.Context, kv core.KeyValueStore) (*MemoryStore, error) {
	var (
		products []*core.Product
		users    []*core.User
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		raw, err := kv.HGetAll(ctx, snapshotProductsKey)
		if err != nil {
			return err
		}
		products = make([]*core.Product, 0, len(raw))
		for _, data := range raw {
			var p core.Product
			if err := json.Unmarshal(data, &p); err != nil {
				return err
			}
			products = append(products, &p)
		}
		sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
		return nil
	})
	eg.Go(func() error {
		raw, err := kv.HGetAll(ctx, snapshotUsersKey)
		if err != nil {
			return err
		}
		users = make([]*core.User, 0, len(raw))
		for _, data := range raw {
			var u core.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}
			users = append(users, &u)
		}
		sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return NewMemoryStore(products, users), nil
}
