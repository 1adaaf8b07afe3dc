package transport

import (
	"context"
	nethttp "net/http"
	"time"

	"go.uber.org/zap"

	"UserCenter/modules/kit/logx"
	"UserCenter/modules/kit/tracex"
)

// AccessLog 是 HTTP 请求级日志上下文。
type AccessLog struct {
	Status      int
	ErrorReason string
	startTime   time.Time
	action      string
}

type accessLogKey struct{}

// NewContext 创建带 AccessLog 的新 context（以 background 为父 context）。
func NewContext(action string) context.Context {
	return NewContextWithParent(context.Background(), action)
}

// NewContextWithParent 创建带 AccessLog 的新 context（保留父 context 的取消/超时信号）。
func NewContextWithParent(parent context.Context, action string) context.Context {
	ctx := parent
	if ctx == nil {
		ctx = context.Background()
	}
	if action == "" {
		action = "unknown"
	}
	ctx = tracex.EnsureTraceID(ctx)
	ctx = tracex.WithSpanID(ctx, "ops")

	al := &AccessLog{
		Status:    nethttp.StatusInternalServerError,
		startTime: time.Now(),
		action:    action,
	}
	return context.WithValue(ctx, accessLogKey{}, al)
}

// FromContext 从 context 读取 AccessLog。
func FromContext(ctx context.Context) *AccessLog {
	if ctx == nil {
		return nil
	}
	al, _ := ctx.Value(accessLogKey{}).(*AccessLog)
	return al
}

func SetStatus(ctx context.Context, status int) {
	if al := FromContext(ctx); al != nil {
		al.Status = status
	}
}

// SetErrorReason 设置 access 日志错误原因（失败场景）。
func SetErrorReason(ctx context.Context, reason string) {
	if reason == "" {
		return
	}
	if al := FromContext(ctx); al != nil {
		al.ErrorReason = reason
	}
}

// WriteAccessLog 输出访问日志（建议在中间件 defer 调用）。5xx 记 WARN，其余记 INFO。
func WriteAccessLog(ctx context.Context, log logx.Logger) {
	al := FromContext(ctx)
	if al == nil || log == nil {
		return
	}

	fields := []zap.Field{
		zap.String("action", al.action),
		zap.Int("status", al.Status),
		zap.Duration("latency", time.Since(al.startTime)),
	}
	l := log.WithContext(ctx)
	if al.Status < nethttp.StatusInternalServerError {
		l.Info("access "+al.action, append(fields, zap.String("result", "success"))...)
		return
	}
	fields = append(fields, zap.String("result", "failure"))
	if al.ErrorReason != "" {
		fields = append(fields, zap.String("error_reason", al.ErrorReason))
	}
	l.Warn("access "+al.action, fields...)
}
