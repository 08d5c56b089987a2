package identity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/pkg/secret"
	secretmocks "notice-dispatch/internal/pkg/secret/mocks"
	"notice-dispatch/internal/repository"
	repomocks "notice-dispatch/internal/repository/mocks"
)

// 用到 t.Setenv，不能并行
func TestSenderResolver_Resolve(t *testing.T) {
	const tenantID int64 = 12
	cfg := Config{
		DefaultSecretName:   "platform/default",
		PlatformChannelName: "조합포털",
		FallbackChannelName: "조합 알림",
		DefaultSenderKey:    "static-key",
	}
	notFound := fmt.Errorf("%w: x", secret.ErrSecretNotFound)

	tests := []struct {
		name    string
		cfg     Config
		mock    func(ctrl *gomock.Controller) (repository.TenantRepository, secret.Store)
		want    domain.SenderIdentity
		wantErr error
	}{
		{
			name: "租户专属密钥",
			cfg:  cfg,
			mock: func(ctrl *gomock.Controller) (repository.TenantRepository, secret.Store) {
				tenants := repomocks.NewMockTenantRepository(ctrl)
				store := secretmocks.NewMockStore(ctrl)
				tenants.EXPECT().FindByID(gomock.Any(), tenantID).
					Return(domain.Tenant{ID: tenantID, SenderKeyRef: "tenants/12", ChannelName: "둔촌조합"}, nil)
				store.EXPECT().Get(gomock.Any(), "tenants/12").Return("tenant-key", nil)
				return tenants, store
			},
			want: domain.SenderIdentity{Key: "tenant-key", ChannelName: "둔촌조합"},
		},
		{
			name: "租户没配渠道名用兜底名",
			cfg:  cfg,
			mock: func(ctrl *gomock.Controller) (repository.TenantRepository, secret.Store) {
				tenants := repomocks.NewMockTenantRepository(ctrl)
				store := secretmocks.NewMockStore(ctrl)
				tenants.EXPECT().FindByID(gomock.Any(), tenantID).
					Return(domain.Tenant{ID: tenantID, SenderKeyRef: "tenants/12"}, nil)
				store.EXPECT().Get(gomock.Any(), "tenants/12").Return("tenant-key", nil)
				return tenants, store
			},
			want: domain.SenderIdentity{Key: "tenant-key", ChannelName: "조합 알림"},
		},
		{
			name: "租户密钥缺失回退到平台密钥",
			cfg:  cfg,
			mock: func(ctrl *gomock.Controller) (repository.TenantRepository, secret.Store) {
				tenants := repomocks.NewMockTenantRepository(ctrl)
				store := secretmocks.NewMockStore(ctrl)
				tenants.EXPECT().FindByID(gomock.Any(), tenantID).
					Return(domain.Tenant{ID: tenantID, SenderKeyRef: "tenants/12", ChannelName: "둔촌조합"}, nil)
				store.EXPECT().Get(gomock.Any(), "tenants/12").Return("", notFound)
				store.EXPECT().Get(gomock.Any(), "platform/default").Return("platform-key", nil)
				return tenants, store
			},
			want: domain.SenderIdentity{Key: "platform-key", ChannelName: "조합포털", IsDefault: true},
		},
		{
			name: "租户没有密钥引用回退到平台密钥",
			cfg:  cfg,
			mock: func(ctrl *gomock.Controller) (repository.TenantRepository, secret.Store) {
				tenants := repomocks.NewMockTenantRepository(ctrl)
				store := secretmocks.NewMockStore(ctrl)
				tenants.EXPECT().FindByID(gomock.Any(), tenantID).Return(domain.Tenant{ID: tenantID}, nil)
				store.EXPECT().Get(gomock.Any(), "platform/default").Return("platform-key", nil)
				return tenants, store
			},
			want: domain.SenderIdentity{Key: "platform-key", ChannelName: "조합포털", IsDefault: true},
		},
		{
			name: "租户查询失败回退到平台密钥",
			cfg:  cfg,
			mock: func(ctrl *gomock.Controller) (repository.TenantRepository, secret.Store) {
				tenants := repomocks.NewMockTenantRepository(ctrl)
				store := secretmocks.NewMockStore(ctrl)
				tenants.EXPECT().FindByID(gomock.Any(), tenantID).Return(domain.Tenant{}, assert.AnError)
				store.EXPECT().Get(gomock.Any(), "platform/default").Return("platform-key", nil)
				return tenants, store
			},
			want: domain.SenderIdentity{Key: "platform-key", ChannelName: "조합포털", IsDefault: true},
		},
		{
			name: "密钥库全部缺失回退到静态密钥",
			cfg:  cfg,
			mock: func(ctrl *gomock.Controller) (repository.TenantRepository, secret.Store) {
				tenants := repomocks.NewMockTenantRepository(ctrl)
				store := secretmocks.NewMockStore(ctrl)
				tenants.EXPECT().FindByID(gomock.Any(), tenantID).Return(domain.Tenant{}, errs.ErrTenantNotFound)
				store.EXPECT().Get(gomock.Any(), "platform/default").Return("", notFound)
				return tenants, store
			},
			want: domain.SenderIdentity{Key: "static-key", ChannelName: "조합포털", IsDefault: true},
		},
		{
			name: "三级全部缺失",
			cfg:  Config{PlatformChannelName: "조합포털"},
			mock: func(ctrl *gomock.Controller) (repository.TenantRepository, secret.Store) {
				tenants := repomocks.NewMockTenantRepository(ctrl)
				store := secretmocks.NewMockStore(ctrl)
				tenants.EXPECT().FindByID(gomock.Any(), tenantID).Return(domain.Tenant{ID: tenantID}, nil)
				return tenants, store
			},
			wantErr: errs.ErrSenderKeyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			t.Setenv(DefaultSenderKeyEnv, "")
			tenants, store := tt.mock(ctrl)
			got, err := NewSenderResolver(tenants, store, tt.cfg).Resolve(context.Background(), tenantID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.Key)
		})
	}
}

func TestSenderResolver_EnvDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Setenv(DefaultSenderKeyEnv, "env-key")
	tenants := repomocks.NewMockTenantRepository(ctrl)
	store := secretmocks.NewMockStore(ctrl)
	tenants.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Tenant{}, errs.ErrTenantNotFound)

	got, err := NewSenderResolver(tenants, store, Config{PlatformChannelName: "조합포털"}).Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SenderIdentity{Key: "env-key", ChannelName: "조합포털", IsDefault: true}, got)
}
