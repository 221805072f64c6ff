package store

import (
	"sync"

	"github.com/shopkit/shoprec/core"
)

// MemoryStore 是内存实现的目录与用户档案存储：数据集小到可以全驻留。
//
// 商品保持加载顺序，目录迭代顺序稳定。
// 引擎本身单线程；锁是给并发宿主嵌入时的最低保障——
// "追加交互 + 重新打分"这类读改序列仍需调用方自行独占。
type MemoryStore struct {
	mu        sync.RWMutex
	products  []*core.Product
	productID map[string]*core.Product
	users     map[string]*core.User
	userOrder []string
}

// NewMemoryStore 用一批商品与用户创建存储。顺序即迭代顺序。
func NewMemoryStore(products []*core.Product, users []*core.User) *MemoryStore {
	m := &MemoryStore{
		products:  make([]*core.Product, 0, len(products)),
		productID: make(map[string]*core.Product, len(products)),
		users:     make(map[string]*core.User, len(users)),
		userOrder: make([]string, 0, len(users)),
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		if _, ok := m.productID[p.ID]; ok {
			continue // 重复 id 保留首条
		}
		m.products = append(m.products, p)
		m.productID[p.ID] = p
	}
	for _, u := range users {
		if u == nil {
			continue
		}
		if _, ok := m.users[u.ID]; ok {
			continue
		}
		m.users[u.ID] = u
		m.userOrder = append(m.userOrder, u.ID)
	}
	return m
}

// Products 返回全部商品，顺序稳定（加载顺序）。
func (m *MemoryStore) Products() []*core.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Product, len(m.products))
	copy(out, m.products)
	return out
}

// Product 按 id 查找商品。
func (m *MemoryStore) Product(id string) (*core.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.productID[id]
	if !ok {
		return nil, core.ErrUnknownProduct
	}
	return p, nil
}

// Users 返回全部用户，顺序稳定（加载顺序）。
func (m *MemoryStore) Users() []*core.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		out = append(out, m.users[id])
	}
	return out
}

// User 按 id 查找用户。
func (m *MemoryStore) User(id string) (*core.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, core.ErrUnknownUser
	}
	return u, nil
}

// AppendInteraction 向用户的交互历史追加一条记录（只追加，不去重）。
func (m *MemoryStore) AppendInteraction(userID string, inter core.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return core.ErrUnknownUser
	}
	u.History = append(u.History, inter)
	return nil
}

// SetPreferences 整体替换用户的偏好品类集合。
func (m *MemoryStore) SetPreferences(userID string, categories []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return core.ErrUnknownUser
	}
	u.Preferences = append([]string(nil), categories...)
	return nil
}

var (
	_ core.Catalog  = (*MemoryStore)(nil)
	_ core.Profiles = (*MemoryStore)(nil)
)
