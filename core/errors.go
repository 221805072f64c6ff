package core

// DomainError 是领域层的统一错误类型。
//
// 打分路径上不存在会抛错的数值分支：零模长相似度、空特征列表、空历史
// 等未定义运算全部以兜底值（0 相似度、0 分、丢弃候选）处理。
// 唯一合法的失败类别是前置条件违例：以存储中不存在的 userId / productId
// 调用任何操作，统一表达为 NOT_FOUND（UnknownEntity）。
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND"）
	Message string
	Module  string // 模块名称（如 "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError 创建领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{Module: module, Code: code, Message: message}
}

// GetDomainError 取出 DomainError，不是则返回 nil。
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// 错误代码常量
const (
	ErrorCodeNotFound     = "NOT_FOUND"     // 实体不存在
	ErrorCodeNotSupported = "NOT_SUPPORTED" // 操作不支持
	ErrorCodeInvalidInput = "INVALID_INPUT" // 输入无效
)

// 模块名称常量
const (
	ModuleStore  = "store"  // 存储模块
	ModuleEngine = "engine" // 推荐引擎
)

// 前置条件违例：引用了存储中不存在的实体。
// 正确接线的系统里不应出现，出现时由调用方修正，不做重试。
var (
	ErrUnknownUser    = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: unknown user id")
	ErrUnknownProduct = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: unknown product id")
)

// IsUnknownEntity 检查错误是否为未知实体（用户或商品 id 不存在）。
func IsUnknownEntity(err error) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Module == ModuleStore && domainErr.Code == ErrorCodeNotFound
}

// IsNotFound 检查错误是否为 NOT_FOUND。
func IsNotFound(err error) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Code == ErrorCodeNotFound
}

// KV 存储错误（Redis / 内存 KV 快照后端使用）。
var (
	// ErrStoreNotFound 表示 key 不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

	// ErrStoreNotSupported 表示操作不支持
	ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
)

// IsStoreNotFound 检查错误是否为 key 不存在。
func IsStoreNotFound(err error) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Module == ModuleStore && domainErr.Code == ErrorCodeNotFound
}
