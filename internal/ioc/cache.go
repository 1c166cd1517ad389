package ioc

import (
	ca "github.com/patrickmn/go-cache"
)

// InitGoCache 通知类型只会按语言写入一次，不需要过期和清理
func InitGoCache() *ca.Cache {
	return ca.New(ca.NoExpiration, 0)
}
