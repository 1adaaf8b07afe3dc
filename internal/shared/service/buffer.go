package service

import (
	"context"
	"errors"
	"sync"
)

var ErrBufferClosed = errors.New("service: buffer closed")

// Buffer 把一个不可并发使用的句柄交给独立的 worker goroutine 驱动，对外提供
// 可并发调用的 Service：请求进入有界队列，worker 依次等待 ready 再 Call，
// 调用本身在各自的 Future 里并发执行。
type Buffer[Req, Resp any] struct {
	reqs    chan bufferMsg[Req, Resp]
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
}

type bufferMsg[Req, Resp any] struct {
	ctx   context.Context
	req   Req
	reply chan *Future[Resp]
}

func NewBuffer[Req, Resp any](svc Service[Req, Resp], bound int) *Buffer[Req, Resp] {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Buffer[Req, Resp]{
		reqs:    make(chan bufferMsg[Req, Resp], max(1, bound)),
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go b.run(svc)
	return b
}

func (b *Buffer[Req, Resp]) run(svc Service[Req, Resp]) {
	defer close(b.stopped)
	defer Release(svc)

	for {
		select {
		case <-b.ctx.Done():
			return
		case msg := <-b.reqs:
			if err := b.waitReady(msg.ctx, svc); err != nil {
				var zero Resp
				msg.reply <- Resolved(zero, err)
				continue
			}
			msg.reply <- svc.Call(msg.ctx, msg.req)
		}
	}
}

// waitReady 在调用方放弃或 Buffer 关闭时都会提前返回。
func (b *Buffer[Req, Resp]) waitReady(ctx context.Context, svc Service[Req, Resp]) error {
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(b.ctx, cancel)
	defer stop()

	err := WaitReady(wctx, svc)
	if err != nil && b.ctx.Err() != nil {
		return ErrBufferClosed
	}
	return err
}

// PollReady 在关闭前总是 Ready，背压体现在 Call 的排队上。
func (b *Buffer[Req, Resp]) PollReady(Waker) (Poll, error) {
	if b.ctx.Err() != nil {
		return Pending, ErrBufferClosed
	}
	return Ready, nil
}

func (b *Buffer[Req, Resp]) Call(ctx context.Context, req Req) *Future[Resp] {
	return Go(ctx, func(ctx context.Context) (Resp, error) {
		var zero Resp
		msg := bufferMsg[Req, Resp]{ctx: ctx, req: req, reply: make(chan *Future[Resp], 1)}

		select {
		case b.reqs <- msg:
		case <-b.ctx.Done():
			return zero, ErrBufferClosed
		case <-ctx.Done():
			return zero, ctx.Err()
		}

		select {
		case fut := <-msg.reply:
			return fut.Await(ctx)
		case <-b.stopped:
			return zero, ErrBufferClosed
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	})
}

// Clone 返回自身：Buffer 本身可以并发使用。
func (b *Buffer[Req, Resp]) Clone() Service[Req, Resp] {
	return b
}

// Close 停止 worker 并释放它持有的句柄，等待 worker 退出。
func (b *Buffer[Req, Resp]) Close() {
	b.once.Do(b.cancel)
	<-b.stopped
}
