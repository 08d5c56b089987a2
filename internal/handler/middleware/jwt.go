package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gotomicro/ego/core/elog"
)

const claimsKey = "dispatch_claims"

var errMissingToken = errors.New("缺少 Authorization 头")

// Claims 管理后台签发的 token。Uid 是操作人，TenantID 是操作人所属的 조합
type Claims struct {
	Uid      int64 `json:"uid"`
	TenantID int64 `json:"tenantId"`
	jwt.RegisteredClaims
}

type JWTBuilder struct {
	key    []byte
	logger *elog.Component
}

func NewJWTBuilder(key string) *JWTBuilder {
	return &JWTBuilder{key: []byte(key), logger: elog.DefaultLogger}
}

// Build 只接受 HS256 签名的 Bearer token
func (b *JWTBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := b.parse(ctx.GetHeader("Authorization"))
		if err != nil {
			b.logger.Warn("token 校验失败",
				elog.String("path", ctx.FullPath()), elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{Code: http.StatusUnauthorized, Msg: "未登录"})
			return
		}
		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

func (b *JWTBuilder) parse(header string) (*Claims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, errMissingToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims,
		func(*jwt.Token) (any, error) { return b.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Uid <= 0 {
		return nil, errors.New("token 无效")
	}
	return claims, nil
}

// Sign 生成 token，控制台和测试共用
func (b *JWTBuilder) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.key)
}

// ClaimsFrom 取出中间件放进去的 Claims
func ClaimsFrom(ctx *gin.Context) (*Claims, bool) {
	val, ok := ctx.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
