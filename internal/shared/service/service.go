// Package service 定义“先确认 ready 再调用”的请求/响应服务能力，以及在它之上
// 组合中间件所需的 Layer、Future 与几种通用实现（并发限制、缓冲驱动）。
//
// 句柄约定：
//   - 一个句柄同一时刻只归一个 goroutine 使用（PollReady/Call 不做并发保护）；
//   - Clone 可以并发调用，得到的新句柄共享底层资源，但不继承已预留的 ready 许可；
//   - 不再使用的句柄调用 Release 归还它持有的许可（相当于析构）。
package service

import (
	"context"
	"errors"
)

// Poll 是一次非阻塞 ready 检查的结果。
type Poll uint8

const (
	Pending Poll = iota
	Ready
)

func (p Poll) String() string {
	if p == Ready {
		return "ready"
	}
	return "pending"
}

// Waker 由返回 Pending 的 PollReady 登记，状态可能变化时被调用（可能被调用多次）。
type Waker func()

// ErrNotReady 表示 Call 之前没有在同一个句柄上拿到 Ready。
var ErrNotReady = errors.New("service: call before poll_ready returned ready")

// Service 是请求/响应服务能力。内层处理器和装饰器都满足它，可以任意嵌套。
type Service[Req, Resp any] interface {
	// PollReady 不会阻塞；返回 Pending 时会在 w 上登记唤醒。
	PollReady(w Waker) (Poll, error)
	// Call 不会阻塞，返回代表本次调用的 Future。
	Call(ctx context.Context, req Req) *Future[Resp]
	// Clone 返回一个廉价的新句柄。
	Clone() Service[Req, Resp]
}

// Releaser 由持有预留资源的句柄实现。
type Releaser interface {
	Release()
}

// Release 归还 svc 持有的预留资源（如果有）。
func Release(svc any) {
	if r, ok := svc.(Releaser); ok {
		r.Release()
	}
}

// Layer 把一个服务包装成同请求/响应类型的新服务。
type Layer[Req, Resp any] interface {
	Layer(inner Service[Req, Resp]) Service[Req, Resp]
}

type LayerFunc[Req, Resp any] func(inner Service[Req, Resp]) Service[Req, Resp]

func (f LayerFunc[Req, Resp]) Layer(inner Service[Req, Resp]) Service[Req, Resp] {
	return f(inner)
}

// Stack 按顺序叠加中间件：layers[0] 在最外层。
func Stack[Req, Resp any](inner Service[Req, Resp], layers ...Layer[Req, Resp]) Service[Req, Resp] {
	svc := inner
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i] == nil {
			continue
		}
		svc = layers[i].Layer(svc)
	}
	return svc
}

// WaitReady 等到 svc 返回 Ready。等待靠 Waker 唤醒，不会空转。
func WaitReady[Req, Resp any](ctx context.Context, svc Service[Req, Resp]) error {
	wake := make(chan struct{}, 1)
	waker := func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}
	for {
		p, err := svc.PollReady(waker)
		if err != nil {
			return err
		}
		if p == Ready {
			return nil
		}
		select {
		case <-wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Oneshot 在 svc 上完成一次完整调用：等待 ready、调用、等待结果。
func Oneshot[Req, Resp any](ctx context.Context, svc Service[Req, Resp], req Req) (Resp, error) {
	if err := WaitReady(ctx, svc); err != nil {
		var zero Resp
		return zero, err
	}
	return svc.Call(ctx, req).Await(ctx)
}

// FuncService 把一个普通函数适配成永远 ready 的 Service。
type FuncService[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

func (f FuncService[Req, Resp]) PollReady(Waker) (Poll, error) {
	return Ready, nil
}

func (f FuncService[Req, Resp]) Call(ctx context.Context, req Req) *Future[Resp] {
	return Go(ctx, func(ctx context.Context) (Resp, error) {
		return f(ctx, req)
	})
}

func (f FuncService[Req, Resp]) Clone() Service[Req, Resp] {
	return f
}
