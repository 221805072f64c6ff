package core

import "context"

// Catalog 是只读商品目录的领域接口。
//
// 设计原则：
//   - 接口定义在领域层（core），由基础设施层（store）实现
//   - Products 的迭代顺序必须稳定：打分结果的并列打破依赖目录顺序
type Catalog interface {
	// Products 返回全部商品，顺序稳定。
	Products() []*Product

	// Product 按 id 查找商品；未知 id 返回 ErrUnknownProduct。
	Product(id string) (*Product, error)
}

// Profiles 是用户档案目录的领域接口。
// 交互历史只追加，偏好集合整体替换；两者都是引擎调用间隙的简单写入。
// 嵌入并发宿主时，"追加交互 + 重新打分"的读改序列需要调用方独占访问。
type Profiles interface {
	// Users 返回全部用户，顺序稳定。
	Users() []*User

	// User 按 id 查找用户；未知 id 返回 ErrUnknownUser。
	User(id string) (*User, error)

	// AppendInteraction 向用户的交互历史追加一条记录。
	// 不校验 productID 的目录成员资格（悬空引用由打分路径直接忽略）。
	AppendInteraction(userID string, inter Interaction) error

	// SetPreferences 整体替换用户的偏好品类集合。
	SetPreferences(userID string, categories []string) error
}

// Store 是 KV 存储的领域接口，供数据集快照后端使用。
//
// 实现：
//   - store.MemoryKV：内存实现，用于测试/开发
//   - store.RedisStore：Redis 实现，用于共享数据集快照
type Store interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Get 读取单个 key 的值；不存在时返回 ErrStoreNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入单个 key-value
	Set(ctx context.Context, key string, value []byte) error

	// Delete 删除单个 key
	Delete(ctx context.Context, key string) error

	// BatchGet 批量读取（减少网络往返），缺失的 key 直接跳过
	BatchGet(ctx context.Context, keys []string) (map[string][]byte, error)

	// Close 关闭连接/释放资源
	Close() error
}

// KeyValueStore 是 Store 的扩展接口，增加哈希表操作。
// 数据集快照以"哈希表: id → JSON 文档"的布局存放。
type KeyValueStore interface {
	Store

	// HGet 读取 Hash 字段；不存在时返回 ErrStoreNotFound
	HGet(ctx context.Context, key, field string) ([]byte, error)

	// HSet 写入 Hash 字段
	HSet(ctx context.Context, key, field string, value []byte) error

	// HGetAll 读取整个 Hash
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)
}
