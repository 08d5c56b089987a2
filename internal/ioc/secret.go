package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	vault "github.com/hashicorp/vault/api"
	"notice-dispatch/internal/pkg/secret"
)

func InitSecretStore() secret.Store {
	type Config struct {
		Addr         string        `yaml:"addr"`
		Token        string        `yaml:"token"`
		Mount        string        `yaml:"mount"`
		DefaultField string        `yaml:"defaultField"`
		CacheTTL     time.Duration `yaml:"cacheTTL"`
	}
	cfg := Config{Mount: "kakao", DefaultField: "sender_key"}
	if err := econf.UnmarshalKey("vault", &cfg); err != nil {
		panic(err)
	}

	vcfg := vault.DefaultConfig()
	vcfg.Address = cfg.Addr
	client, err := vault.NewClient(vcfg)
	if err != nil {
		panic(err)
	}
	// 空 token 时沿用 VAULT_TOKEN 环境变量
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}
	return secret.NewVaultStore(client, cfg.Mount, cfg.DefaultField, cfg.CacheTTL)
}
