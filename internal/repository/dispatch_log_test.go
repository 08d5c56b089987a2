package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/pkg/sqlx"
	"notice-dispatch/internal/repository/dao"
	daomocks "notice-dispatch/internal/repository/dao/mocks"
)

func TestDispatchLogRepository_CreateRoundTrip(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	related := int64(77)
	createdAt := time.UnixMilli(1_700_000_000_000)
	record := domain.DispatchLogRecord{
		TenantID:          1,
		InitiatorID:       9,
		Title:             "총회 안내",
		RelatedContentID:  &related,
		RecipientCount:    2,
		KakaoSuccessCount: 1,
		FailCount:         1,
		EstimatedCost:     15,
		ChannelName:       "둔촌",
		TemplateCode:      "TPL_01",
		RecipientManifest: []domain.Recipient{
			{PhoneNumber: "01011112222", Name: "a", TemplateVariables: map[string]string{"name": "a", "amount": "300000"}},
			{PhoneNumber: "01033334444", Name: "b"},
		},
		ProviderResponses: []domain.ProviderResult{
			{ResultCode: "0", MsgType: domain.ProviderMsgTypeAlimtalk, SuccessCount: 1, ProviderMessageID: "m1"},
			{ResultCode: "-99", FailCount: 1, Message: "수신거부"},
		},
		CreatedAt: createdAt,
	}

	d := daomocks.NewMockDispatchLogDAO(ctrl)
	d.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log dao.DispatchLog) (dao.DispatchLog, error) {
		assert.Equal(t, int64(77), log.RelatedContentID.Int64)
		assert.True(t, log.RelatedContentID.Valid)
		assert.Equal(t, createdAt.UnixMilli(), log.Ctime)
		require.True(t, log.RecipientManifest.Valid)
		assert.Equal(t, dao.DispatchLogRecipient{
			PhoneNumber:       "01011112222",
			Name:              "a",
			TemplateVariables: map[string]string{"name": "a", "amount": "300000"},
		}, log.RecipientManifest.Val[0])
		assert.Nil(t, log.RecipientManifest.Val[1].TemplateVariables)
		assert.Equal(t, "AT", log.ProviderResponses.Val[0].MsgType)
		log.ID = 100
		return log, nil
	})

	got, err := NewDispatchLogRepository(d).Create(context.Background(), record)
	require.NoError(t, err)

	record.ID = 100
	assert.Equal(t, record, got)
	assert.Equal(t, "300000", got.RecipientManifest[0].TemplateVariables["amount"])
}

func TestDispatchLogRepository_ListByTenant(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := daomocks.NewMockDispatchLogDAO(ctrl)
	d.EXPECT().ListByTenant(gomock.Any(), int64(1), 0, 20).Return([]dao.DispatchLog{{ID: 2, TenantID: 1}, {ID: 1, TenantID: 1}}, nil)

	got, err := NewDispatchLogRepository(d).ListByTenant(context.Background(), 1, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Nil(t, got[0].RelatedContentID)
	assert.Empty(t, got[0].RecipientManifest)
}

func TestDispatchLogRepository_FindByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		daoErr  error
		wantErr error
	}{
		{name: "找到"},
		{name: "不存在", daoErr: gorm.ErrRecordNotFound, wantErr: errs.ErrDispatchLogNotFound},
		{name: "数据库异常", daoErr: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := daomocks.NewMockDispatchLogDAO(ctrl)
			d.EXPECT().FindByID(gomock.Any(), int64(1), int64(8)).Return(dao.DispatchLog{
				ID:       8,
				TenantID: 1,
				RecipientManifest: sqlx.NewJSONColumn([]dao.DispatchLogRecipient{
					{PhoneNumber: "01011112222", TemplateVariables: map[string]string{"amount": "300000"}},
				}),
			}, tt.daoErr)

			got, err := NewDispatchLogRepository(d).FindByID(context.Background(), 1, 8)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(8), got.ID)
			assert.Equal(t, "300000", got.RecipientManifest[0].TemplateVariables["amount"])
		})
	}
}
