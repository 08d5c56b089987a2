package secret

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	vault "github.com/hashicorp/vault/api"
	ca "github.com/patrickmn/go-cache"
)

var _ Store = (*VaultStore)(nil)

// VaultStore 基于 Vault KV-v2 的密钥库。
// name 形如 "tenants/12" 或 "tenants/12#sender_key"，省略 # 时读取 defaultField
type VaultStore struct {
	kv           *vault.KVv2
	defaultField string
	ttl          time.Duration
	cache        *ca.Cache
}

// NewVaultStore ttl <= 0 时不缓存
func NewVaultStore(client *vault.Client, mount, defaultField string, ttl time.Duration) *VaultStore {
	return &VaultStore{
		kv:           client.KVv2(mount),
		defaultField: defaultField,
		ttl:          ttl,
		cache:        ca.New(ttl, 2*ttl),
	}
}

func (s *VaultStore) Get(ctx context.Context, name string) (string, error) {
	path, field := s.split(name)
	if path == "" || field == "" {
		return "", fmt.Errorf("%w: 非法的密钥名 %q", ErrSecretNotFound, name)
	}

	canonical := path + "#" + field
	if s.ttl > 0 {
		if v, ok := s.cache.Get(canonical); ok {
			return v.(string), nil
		}
	}

	sec, err := s.kv.Get(ctx, path)
	if err != nil {
		if errors.Is(err, vault.ErrSecretNotFound) {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, path)
		}
		return "", fmt.Errorf("vault get %s: %w", path, err)
	}

	raw, ok := sec.Data[field]
	if !ok {
		return "", fmt.Errorf("%w: %s 中没有 %s", ErrSecretNotFound, path, field)
	}
	val, ok := raw.(string)
	if !ok || val == "" {
		return "", fmt.Errorf("%w: %s 不是非空字符串", ErrSecretNotFound, canonical)
	}

	if s.ttl > 0 {
		s.cache.Set(canonical, val, s.ttl)
	}
	return val, nil
}

func (s *VaultStore) split(name string) (path, field string) {
	const parts = 2
	segs := strings.SplitN(strings.Trim(name, "/"), "#", parts)
	path = segs[0]
	field = s.defaultField
	if len(segs) == parts && segs[1] != "" {
		field = segs[1]
	}
	return path, field
}
