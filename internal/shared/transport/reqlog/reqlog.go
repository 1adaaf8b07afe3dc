// Package reqlog 提供请求日志中间件：每次调用在内层处理前输出一行
// "{METHOD} {PATH}"（INFO），其它一概透传。
package reqlog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"UserCenter/internal/shared/service"
	"UserCenter/modules/kit/logx"
)

// Route 是请求日志需要的最小请求视图。
type Route interface {
	Method() string
	Path() string
}

// NewLayer 返回请求日志 Layer；Layer 本身无状态，可以重复使用。
func NewLayer[Req Route, Resp any](log logx.Logger) service.Layer[Req, Resp] {
	if log == nil {
		log = logx.NewNop()
	}
	return service.LayerFunc[Req, Resp](func(inner service.Service[Req, Resp]) service.Service[Req, Resp] {
		return New(inner, log)
	})
}

// RequestLogger 包装一个内层句柄。
//
// Call 会把已经确认 ready 的句柄交给本次调用的任务，自己换上一个新克隆的句柄，
// 因此调用之间互不共享可变状态；下一次 Call 之前必须重新 PollReady。
type RequestLogger[Req Route, Resp any] struct {
	inner service.Service[Req, Resp]
	log   logx.Logger
}

func New[Req Route, Resp any](inner service.Service[Req, Resp], log logx.Logger) *RequestLogger[Req, Resp] {
	if log == nil {
		log = logx.NewNop()
	}
	return &RequestLogger[Req, Resp]{inner: inner, log: log}
}

func (l *RequestLogger[Req, Resp]) PollReady(w service.Waker) (service.Poll, error) {
	return l.inner.PollReady(w)
}

func (l *RequestLogger[Req, Resp]) Call(ctx context.Context, req Req) *service.Future[Resp] {
	// ready 状态属于 l.inner：把它移交给任务，自己留下克隆
	clone := l.inner.Clone()
	inner := l.inner
	l.inner = clone

	log := l.log
	return service.Go(ctx, func(ctx context.Context) (Resp, error) {
		if err := ctx.Err(); err != nil {
			service.Release(inner)
			var zero Resp
			return zero, err
		}

		method, path := req.Method(), req.Path()
		log.WithContext(ctx).Info(fmt.Sprintf("%s %s", method, path),
			zap.String("method", method),
			zap.String("path", path),
		)
		return inner.Call(ctx, req).Await(ctx)
	})
}

func (l *RequestLogger[Req, Resp]) Clone() service.Service[Req, Resp] {
	return &RequestLogger[Req, Resp]{inner: l.inner.Clone(), log: l.log}
}

func (l *RequestLogger[Req, Resp]) Release() {
	service.Release(l.inner)
}
