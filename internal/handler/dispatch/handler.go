package dispatch

import (
	"errors"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/handler/middleware"
	dispatchsvc "notice-dispatch/internal/service/dispatch"
	"notice-dispatch/internal/service/pricing"
)

var _ ginx.Handler = &Handler{}

const (
	CodeInvalidParameter = 400001
	CodeLogNotFound      = 404001
	CodeSenderKeyMissing = 422001
	CodeSystemError      = 500001

	defaultListLimit = 20
	// maxListLimit 列表每条都带完整的 JSON 清单，单页不能太大
	maxListLimit = 100
)

// SinkFactory 为一次派发创建进度回调
type SinkFactory func(tenantID int64, runID string) dispatchsvc.ProgressSink

type Handler struct {
	svc     dispatchsvc.Service
	pricing pricing.Service
	sinks   SinkFactory
	auth    gin.HandlerFunc
	logger  *elog.Component
}

// NewHandler sinks 为 nil 时不推送进度，auth 为 nil 时不校验 token
func NewHandler(svc dispatchsvc.Service, pricingSvc pricing.Service, sinks SinkFactory, auth gin.HandlerFunc) *Handler {
	return &Handler{
		svc:     svc,
		pricing: pricingSvc,
		sinks:   sinks,
		auth:    auth,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	var handlers []gin.HandlerFunc
	if h.auth != nil {
		handlers = append(handlers, h.auth)
	}
	g := server.Group("/dispatch", handlers...)
	g.POST("/alimtalk", wrapBody(h.DispatchAlimtalk))
	g.POST("/text/batch", wrapBody(h.DispatchTextBatch))
	g.GET("/logs", wrapQuery(h.ListLogs))
	g.GET("/logs/:id", wrapPath(h.GetLog))

	server.Group("/pricing", handlers...).POST("/entries", wrapBody(h.AppendPricing))
}

// DispatchAlimtalk 公告触发的알림톡 派发，服务端分批
func (h *Handler) DispatchAlimtalk(ctx *ginx.Context, req AlimtalkReq) (ginx.Result, error) {
	tenantID, initiatorID := h.caller(ctx, req.TenantID, req.InitiatorID)
	dreq := domain.DispatchRequest{
		TenantID:         tenantID,
		InitiatorID:      initiatorID,
		Channel:          domain.DispatchChannelTemplate,
		MessageType:      domain.MessageTypeKakao,
		TemplateCode:     req.TemplateCode,
		TemplateName:     req.TemplateName,
		Title:            req.Title,
		Content:          req.Content,
		RelatedContentID: req.RelatedContentID,
		Recipients:       toRecipients(req.Recipients),
	}

	var sink dispatchsvc.ProgressSink = dispatchsvc.NopSink
	if h.sinks != nil {
		sink = h.sinks(tenantID, uuid.NewString())
	}
	summary, err := h.svc.Dispatch(ctx.Request.Context(), dreq, sink)
	if err != nil {
		return errorResult(err), err
	}
	if summary.AuditWriteErr != nil {
		h.logger.Error("派发已完成但审计记录没有写入",
			elog.Int64("tenantID", tenantID), elog.FieldErr(summary.AuditWriteErr))
	}
	return ginx.Result{
		Data: AlimtalkResp{
			TotalRecipients:   summary.TotalRecipients,
			KakaoSuccessCount: summary.KakaoSuccessCount,
			SMSSuccessCount:   summary.SMSSuccessCount,
			FailCount:         summary.FailCount,
			EstimatedCost:     summary.EstimatedCost,
			ChannelName:       summary.ChannelName,
			IsDefaultChannel:  summary.IsDefaultChannel,
			ProviderMessageID: summary.ProviderMessageID,
			Canceled:          summary.Canceled,
			AuditWriteFailed:  summary.AuditWriteErr != nil,
			Batches: slice.Map(summary.Batches, func(_ int, src domain.BatchResult) Batch {
				return Batch{
					BatchIndex:   src.BatchIndex,
					StartIndex:   src.StartIndex,
					EndIndex:     src.EndIndex,
					Status:       src.Status.String(),
					SuccessCount: src.SuccessCount,
					FailCount:    src.FailCount,
					ErrorMessage: src.ErrorMessage,
				}
			}),
		},
	}, nil
}

// DispatchTextBatch 管理后台一次调用发一批文本短信
func (h *Handler) DispatchTextBatch(ctx *ginx.Context, req TextBatchReq) (ginx.Result, error) {
	tenantID, initiatorID := h.caller(ctx, req.TenantID, req.InitiatorID)
	resp, err := h.svc.DispatchBatch(ctx.Request.Context(), domain.DispatchRequest{
		TenantID:    tenantID,
		InitiatorID: initiatorID,
		Channel:     domain.DispatchChannelText,
		MessageType: domain.MessageType(req.MessageType),
		Title:       req.Title,
		Content:     req.Content,
		Recipients:  toRecipients(req.Recipients),
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: TextBatchResp{
			SuccessCnt: resp.SuccessCnt,
			ErrorCnt:   resp.ErrorCnt,
			MsgID:      resp.MsgID,
		},
	}, nil
}

// ListLogs 派发审计记录，按 id 倒序
func (h *Handler) ListLogs(ctx *ginx.Context, req ListLogsReq) (ginx.Result, error) {
	tenantID, _ := h.caller(ctx, req.TenantID, 0)
	switch {
	case req.Limit == 0:
		req.Limit = defaultListLimit
	case req.Limit > maxListLimit:
		req.Limit = maxListLimit
	}
	logs, err := h.svc.ListLogs(ctx.Request.Context(), tenantID, req.Offset, req.Limit)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: ListLogsResp{
			Logs: slice.Map(logs, func(_ int, src domain.DispatchLogRecord) DispatchLog {
				return toDispatchLog(src)
			}),
		},
	}, nil
}

// GetLog 单条审计记录的收件人清单和供应商回包
func (h *Handler) GetLog(ctx *ginx.Context, req GetLogReq) (ginx.Result, error) {
	tenantID, _ := h.caller(ctx, req.TenantID, 0)
	log, err := h.svc.GetLog(ctx.Request.Context(), tenantID, req.ID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: DispatchLogDetail{
			DispatchLog: toDispatchLog(log),
			Content:     log.Content,
			Recipients: slice.Map(log.RecipientManifest, func(_ int, src domain.Recipient) LogRecipient {
				return LogRecipient{
					PhoneNumber:       src.MaskedPhone(),
					Name:              src.Name,
					TemplateVariables: src.TemplateVariables,
				}
			}),
			ProviderResponses: slice.Map(log.ProviderResponses, func(_ int, src domain.ProviderResult) ProviderResponse {
				return ProviderResponse{
					ResultCode:        src.ResultCode,
					MsgType:           string(src.MsgType),
					SuccessCount:      src.SuccessCount,
					FailCount:         src.FailCount,
					ProviderMessageID: src.ProviderMessageID,
					Message:           src.Message,
				}
			}),
		},
	}, nil
}

func toDispatchLog(src domain.DispatchLogRecord) DispatchLog {
	return DispatchLog{
		ID:                src.ID,
		TenantID:          src.TenantID,
		InitiatorID:       src.InitiatorID,
		Title:             src.Title,
		RelatedContentID:  src.RelatedContentID,
		RecipientCount:    src.RecipientCount,
		KakaoSuccessCount: src.KakaoSuccessCount,
		SMSSuccessCount:   src.SMSSuccessCount,
		FailCount:         src.FailCount,
		EstimatedCost:     src.EstimatedCost,
		ChannelName:       src.ChannelName,
		IsDefaultChannel:  src.IsDefaultChannel,
		TemplateCode:      src.TemplateCode,
		TemplateName:      src.TemplateName,
		Ctime:             src.CreatedAt.UnixMilli(),
	}
}

// AppendPricing 追加一条价目
func (h *Handler) AppendPricing(ctx *ginx.Context, req AppendPricingReq) (ginx.Result, error) {
	entry, err := h.pricing.Append(ctx.Request.Context(), domain.PricingEntry{
		MessageType:   domain.MessageType(req.MessageType),
		UnitPrice:     req.UnitPrice,
		EffectiveFrom: time.UnixMilli(req.EffectiveFrom),
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{
		Data: PricingEntry{
			ID:            entry.ID,
			MessageType:   entry.MessageType.String(),
			UnitPrice:     entry.UnitPrice,
			EffectiveFrom: entry.EffectiveFrom.UnixMilli(),
		},
	}, nil
}

// caller token 里的租户和操作人优先于请求体
func (h *Handler) caller(ctx *ginx.Context, tenantID, initiatorID int64) (int64, int64) {
	claims, ok := middleware.ClaimsFrom(ctx.Context)
	if !ok {
		return tenantID, initiatorID
	}
	if claims.TenantID > 0 {
		tenantID = claims.TenantID
	}
	return tenantID, claims.Uid
}

func toRecipients(src []Recipient) []domain.Recipient {
	return slice.Map(src, func(_ int, r Recipient) domain.Recipient {
		return domain.Recipient{
			PhoneNumber:       r.PhoneNumber,
			Name:              r.Name,
			TemplateVariables: r.TemplateVariables,
		}
	})
}

func errorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		return ginx.Result{Code: CodeInvalidParameter, Msg: err.Error()}
	case errors.Is(err, errs.ErrDispatchLogNotFound):
		return ginx.Result{Code: CodeLogNotFound, Msg: "派发记录不存在"}
	case errors.Is(err, errs.ErrSenderKeyNotFound):
		return ginx.Result{Code: CodeSenderKeyMissing, Msg: "没有可用的发送渠道"}
	default:
		return ginx.Result{Code: CodeSystemError, Msg: "系统错误"}
	}
}

func statusOf(res ginx.Result) int {
	switch res.Code {
	case CodeInvalidParameter:
		return http.StatusBadRequest
	case CodeLogNotFound:
		return http.StatusNotFound
	case CodeSenderKeyMissing:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
