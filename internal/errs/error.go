package errs

import "errors"

var (
	// ErrInvalidParameter 请求参数不合法，发送前直接拒绝，不计费不记录
	ErrInvalidParameter = errors.New("参数错误")

	ErrTenantNotFound    = errors.New("租户不存在")
	ErrSenderKeyNotFound = errors.New("发送密钥不存在")

	// ErrProviderCall 单个收件人调用供应商失败，在收件人维度计为失败，不向上传播
	ErrProviderCall = errors.New("调用供应商失败")
	// ErrBatchCatastrophic 收件人维度之外的异常，整批计为失败，派发继续
	ErrBatchCatastrophic = errors.New("批次发送异常")
	// ErrLogPersistence 审计记录写入失败，派发结果照常返回
	ErrLogPersistence = errors.New("派发审计记录写入失败")

	ErrRunAlreadyExecuted = errors.New("派发已经执行过")

	ErrDispatchLogNotFound = errors.New("派发记录不存在")

	ErrCircuitBreaker = errors.New("触发熔断")
	ErrRateLimited    = errors.New("触发限流")
)
