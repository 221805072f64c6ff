package store

// 注意：此包只包含实现，接口定义在 core 包。
// 领域接口：core.Catalog / core.Profiles；KV 接口：core.Store / core.KeyValueStore。
//
// 示例：
//   ms := store.NewMemoryStore(products, users)
//   var catalog core.Catalog = ms
//   var profiles core.Profiles = ms
