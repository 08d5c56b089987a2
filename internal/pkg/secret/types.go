package secret

import (
	"context"
	"errors"
)

var ErrSecretNotFound = errors.New("密钥不存在")

// Store 只读密钥库，按逻辑名或者租户维度的引用读取解密后的值
//
//go:generate mockgen -source=./types.go -destination=./mocks/store.mock.go -package=secretmocks Store
type Store interface {
	// Get 找不到时返回 ErrSecretNotFound
	Get(ctx context.Context, name string) (string, error)
}
