package dispatch

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type handleFunc[Req any] func(ctx *ginx.Context, req Req) (ginx.Result, error)

func wrapBody[Req any](fn handleFunc[Req]) gin.HandlerFunc {
	return wrap(fn, func(ctx *gin.Context, req *Req) error {
		return ctx.ShouldBindJSON(req)
	})
}

func wrapQuery[Req any](fn handleFunc[Req]) gin.HandlerFunc {
	return wrap(fn, func(ctx *gin.Context, req *Req) error {
		return ctx.ShouldBindQuery(req)
	})
}

// wrapPath 先绑定路径参数，再绑定查询参数
func wrapPath[Req any](fn handleFunc[Req]) gin.HandlerFunc {
	return wrap(fn, func(ctx *gin.Context, req *Req) error {
		if err := ctx.ShouldBindUri(req); err != nil {
			return err
		}
		return ctx.ShouldBindQuery(req)
	})
}

// wrap 和 ginx.B 一样绑定参数调用业务方法。ginx.B 出错一律回 500，
// 这里按 Result.Code 映射成 400/404/422/500，前端靠状态码区分参数错误和发送渠道缺失
func wrap[Req any](fn handleFunc[Req], bind func(ctx *gin.Context, req *Req) error) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := bind(ctx, &req); err != nil {
			ctx.PureJSON(http.StatusBadRequest, ginx.Result{Code: CodeInvalidParameter, Msg: "参数错误"})
			return
		}
		res, err := fn(&ginx.Context{Context: ctx}, req)
		if err != nil {
			status := statusOf(res)
			if status == http.StatusInternalServerError {
				elog.DefaultLogger.Error("处理请求失败",
					elog.String("path", ctx.FullPath()), elog.FieldErr(err))
			}
			ctx.PureJSON(status, res)
			return
		}
		ctx.PureJSON(http.StatusOK, res)
	}
}
