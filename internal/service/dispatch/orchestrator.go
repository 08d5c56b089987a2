package dispatch

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/repository"
	"notice-dispatch/internal/service/identity"
	"notice-dispatch/internal/service/pricing"
	"notice-dispatch/internal/service/provider"
)

var _ Service = (*Orchestrator)(nil)

// Sleeper 批次之间的等待，ctx 结束时提前返回 ctx.Err()
type Sleeper func(ctx context.Context, d time.Duration) error

type Orchestrator struct {
	resolver   identity.Resolver
	oracle     pricing.Oracle
	provider   provider.Provider
	accountant *Accountant
	logs       repository.DispatchLogRepository
	cfg        Config

	now    func() time.Time
	sleep  Sleeper
	logger *elog.Component
}

func NewOrchestrator(
	resolver identity.Resolver,
	oracle pricing.Oracle,
	p provider.Provider,
	accountant *Accountant,
	logs repository.DispatchLogRepository,
	cfg Config,
) *Orchestrator {
	return &Orchestrator{
		resolver:   resolver,
		oracle:     oracle,
		provider:   p,
		accountant: accountant,
		logs:       logs,
		cfg:        cfg.withDefaults(),
		now:        time.Now,
		sleep:      sleepCtx,
		logger:     elog.DefaultLogger,
	}
}

// WithClock 替换计价和审计记录使用的时钟
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// WithSleeper 替换批次之间的等待
func (o *Orchestrator) WithSleeper(sleep Sleeper) *Orchestrator {
	o.sleep = sleep
	return o
}

func (o *Orchestrator) Dispatch(ctx context.Context, req domain.DispatchRequest, sink ProgressSink) (domain.DispatchSummary, error) {
	return o.NewRun(req, sink).Execute(ctx)
}

func (o *Orchestrator) DispatchBatch(ctx context.Context, req domain.DispatchRequest) (domain.BatchSendResponse, error) {
	if req.Channel == "" {
		req.Channel = domain.DispatchChannelText
	}
	if len(req.Recipients) > o.cfg.BatchSize {
		return domain.BatchSendResponse{}, fmt.Errorf("%w: 单次最多 %d 个收件人，实际 %d",
			errs.ErrInvalidParameter, o.cfg.BatchSize, len(req.Recipients))
	}
	summary, err := o.NewRun(req, NopSink).Execute(ctx)
	if err != nil {
		return domain.BatchSendResponse{}, err
	}
	return domain.BatchSendResponse{
		SuccessCnt: summary.SuccessCount(),
		ErrorCnt:   summary.FailCount,
		MsgID:      summary.ProviderMessageID,
	}, nil
}

func (o *Orchestrator) ListLogs(ctx context.Context, tenantID int64, offset, limit int) ([]domain.DispatchLogRecord, error) {
	if tenantID <= 0 || offset < 0 || limit <= 0 {
		return nil, fmt.Errorf("%w: tenantID = %d, offset = %d, limit = %d",
			errs.ErrInvalidParameter, tenantID, offset, limit)
	}
	return o.logs.ListByTenant(ctx, tenantID, offset, limit)
}

func (o *Orchestrator) GetLog(ctx context.Context, tenantID, id int64) (domain.DispatchLogRecord, error) {
	if tenantID <= 0 || id <= 0 {
		return domain.DispatchLogRecord{}, fmt.Errorf("%w: tenantID = %d, id = %d",
			errs.ErrInvalidParameter, tenantID, id)
	}
	return o.logs.FindByID(ctx, tenantID, id)
}

// NewRun 一次派发。Run 只能执行一次，同样的请求再派发一次就是新的 Run，会重新发送并新写一条审计记录
func (o *Orchestrator) NewRun(req domain.DispatchRequest, sink ProgressSink) *Run {
	if sink == nil {
		sink = NopSink
	}
	return &Run{o: o, req: req, sink: sink}
}

type RunState int32

const (
	RunStateIdle RunState = iota
	RunStateResolving
	RunStateSending
	RunStateSummarizing
	RunStateDone
)

func (s RunState) String() string {
	switch s {
	case RunStateIdle:
		return "idle"
	case RunStateResolving:
		return "resolving"
	case RunStateSending:
		return "sending"
	case RunStateSummarizing:
		return "summarizing"
	case RunStateDone:
		return "done"
	}
	return "unknown"
}

type Run struct {
	o     *Orchestrator
	req   domain.DispatchRequest
	sink  ProgressSink
	state atomic.Int32
}

func (r *Run) State() RunState {
	return RunState(r.state.Load())
}

func (r *Run) Execute(ctx context.Context) (domain.DispatchSummary, error) {
	if !r.state.CompareAndSwap(int32(RunStateIdle), int32(RunStateResolving)) {
		return domain.DispatchSummary{}, fmt.Errorf("%w: state = %s", errs.ErrRunAlreadyExecuted, r.State())
	}
	defer r.state.Store(int32(RunStateDone))

	if err := r.req.Validate(); err != nil {
		return domain.DispatchSummary{}, err
	}
	sender, err := r.o.resolver.Resolve(ctx, r.req.TenantID)
	if err != nil {
		return domain.DispatchSummary{}, err
	}
	startedAt := r.o.now()
	prices := r.o.oracle.UnitPrices(ctx, startedAt)

	r.state.Store(int32(RunStateSending))
	results, canceled, batchErr := r.sendAll(ctx, sender)

	r.state.Store(int32(RunStateSummarizing))
	record := r.o.accountant.Summarize(sender, prices, r.req, results, r.o.now())
	summary := domain.DispatchSummary{
		TotalRecipients:   len(r.req.Recipients),
		KakaoSuccessCount: record.KakaoSuccessCount,
		SMSSuccessCount:   record.SMSSuccessCount,
		FailCount:         record.FailCount,
		EstimatedCost:     record.EstimatedCost,
		ChannelName:       sender.ChannelName,
		IsDefaultChannel:  sender.IsDefault,
		Batches:           results,
		Canceled:          canceled,
		BatchErr:          batchErr,
	}
	for _, res := range results {
		if res.ProviderMessageID != "" {
			summary.ProviderMessageID = res.ProviderMessageID
			break
		}
	}
	// 调用方取消后审计记录照样要写
	if _, err = r.o.accountant.Persist(context.WithoutCancel(ctx), record); err != nil {
		summary.AuditWriteErr = err
	}

	r.o.logger.Info("派发完成",
		elog.Int64("tenantID", r.req.TenantID),
		elog.String("channel", r.req.Channel.String()),
		elog.Int("total", summary.TotalRecipients),
		elog.Int("kakao", summary.KakaoSuccessCount),
		elog.Int("sms", summary.SMSSuccessCount),
		elog.Int("fail", summary.FailCount),
		elog.Any("canceled", canceled))
	return summary, nil
}

// sendAll 顺序发送全部批次。ctx 结束或批次间等待出错后不再开始新批次，进行中的批次在脱离取消的 ctx 上发完，
// 没发出的批次整批记为失败，保证 Kakao + SMS + Fail == 收件人数
func (r *Run) sendAll(ctx context.Context, sender domain.SenderIdentity) ([]domain.BatchResult, bool, error) {
	batches := Partition(r.req.Recipients, r.o.cfg.BatchSize)
	results := make([]domain.BatchResult, 0, len(batches))
	detached := context.WithoutCancel(ctx)

	var (
		batchErr error
		// stopped 停止派发的原因，之后的批次都用它记失败
		stopped error
	)
	for i, b := range batches {
		if i > 0 && stopped == nil {
			if err := r.o.sleep(ctx, r.o.cfg.PacingDelay); err != nil {
				stopped = err
			}
		}
		if ctx.Err() != nil {
			stopped = context.Cause(ctx)
		}
		if stopped != nil {
			results = append(results, domain.NewFailedBatchResult(b, stopped))
			continue
		}

		res, err := r.sendBatch(detached, sender, b)
		if err != nil {
			r.o.logger.Error("批次发送异常，整批计为失败",
				elog.Int64("tenantID", r.req.TenantID),
				elog.Int("batchIndex", b.Index),
				elog.FieldErr(err))
			batchErr = multierror.Append(batchErr, err)
			res = domain.NewFailedBatchResult(b, err)
		}
		results = append(results, res)
		r.sink.OnBatch(detached, res)
	}
	return results, stopped != nil, batchErr
}

func (r *Run) sendBatch(ctx context.Context, sender domain.SenderIdentity, b domain.Batch) (res domain.BatchResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: batch %d: %v", errs.ErrBatchCatastrophic, b.Index, p)
		}
	}()

	outcomes := make([]domain.ProviderResult, len(b.Recipients))
	var eg errgroup.Group
	eg.SetLimit(r.o.cfg.Concurrency)
	for i := range b.Recipients {
		eg.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("%w: batch %d, recipient %d: %v",
						errs.ErrBatchCatastrophic, b.Index, b.StartIndex+i, p)
				}
			}()
			outcomes[i] = r.o.provider.Send(ctx, provider.SendReq{
				Identity:     sender,
				Channel:      r.req.Channel,
				MessageType:  r.messageType(),
				TemplateCode: r.req.TemplateCode,
				Title:        r.req.Title,
				Content:      r.req.Content,
				Recipient:    b.Recipients[i],
			})
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return domain.BatchResult{}, err
	}
	return domain.NewBatchResult(b, outcomes, r.req.Channel == domain.DispatchChannelText), nil
}

func (r *Run) messageType() domain.MessageType {
	if r.req.Channel == domain.DispatchChannelTemplate {
		return domain.MessageTypeKakao
	}
	return r.req.MessageType
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
