package cache

// Store 缓存存储器
type Store interface {
	// Set 存储值
	Set(key string, value interface{}) error
	// Get 取值
	Get(key string) (interface{}, bool)
	// Delete 批量删除给定前缀的值
	Delete(keys []string, prefix string)
}

// GlobalCache 全局缓存
var GlobalCache Store

// Init 初始化缓存
func Init() {
	GlobalCache = NewMemoStore()
}

// Set 向全局缓存写入值
func Set(key string, value interface{}) error {
	return GlobalCache.Set(key, value)
}

// Get 从全局缓存取值
func Get(key string) (interface{}, bool) {
	return GlobalCache.Get(key)
}

// Deletes 从全局缓存批量删除值
func Deletes(keys []string, prefix string) {
	GlobalCache.Delete(keys, prefix)
}
