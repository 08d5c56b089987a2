package identity

import (
	"context"

	"notice-dispatch/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/identity.mock.go -package=identitymocks Resolver

// Resolver 解析租户本次派发可以使用的发送身份，只读
type Resolver interface {
	// Resolve 三级回退全部失败时返回 errs.ErrSenderKeyNotFound
	Resolve(ctx context.Context, tenantID int64) (domain.SenderIdentity, error)
}

type Config struct {
	// DefaultSecretName 平台默认发送密钥在密钥库里的名字
	DefaultSecretName string `yaml:"defaultSecretName"`
	// PlatformChannelName 使用平台默认密钥时展示的渠道名
	PlatformChannelName string `yaml:"platformChannelName"`
	// FallbackChannelName 租户有专属密钥但没配渠道名时使用
	FallbackChannelName string `yaml:"fallbackChannelName"`
	// DefaultSenderKey 静态兜底密钥，为空时读取环境变量 KAKAO_DEFAULT_SENDER_KEY
	DefaultSenderKey string `yaml:"defaultSenderKey"`
}
