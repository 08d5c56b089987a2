package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTBuilder_Build(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	builder := NewJWTBuilder("dispatch-secret")

	valid, err := builder.Sign(Claims{Uid: 7, TenantID: 12})
	require.NoError(t, err)
	expired, err := builder.Sign(Claims{Uid: 7, TenantID: 12, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}})
	require.NoError(t, err)
	otherKey, err := NewJWTBuilder("other").Sign(Claims{Uid: 7})
	require.NoError(t, err)
	noUser, err := builder.Sign(Claims{TenantID: 12})
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{Uid: 7}).SignedString([]byte("dispatch-secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "通过", header: "Bearer " + valid, wantCode: http.StatusOK},
		{name: "没有 token", header: "", wantCode: http.StatusUnauthorized},
		{name: "不是 Bearer", header: valid, wantCode: http.StatusUnauthorized},
		{name: "过期", header: "Bearer " + expired, wantCode: http.StatusUnauthorized},
		{name: "签名不对", header: "Bearer " + otherKey, wantCode: http.StatusUnauthorized},
		{name: "没有 uid", header: "Bearer " + noUser, wantCode: http.StatusUnauthorized},
		{name: "算法不对", header: "Bearer " + hs512, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := gin.New()
			server.Use(builder.Build())
			server.GET("/me", func(ctx *gin.Context) {
				claims, ok := ClaimsFrom(ctx)
				require.True(t, ok)
				ctx.JSON(http.StatusOK, gin.H{"uid": claims.Uid, "tenantId": claims.TenantID})
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantCode, recorder.Code)
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"uid":7,"tenantId":12}`, recorder.Body.String())
			}
		})
	}
}
