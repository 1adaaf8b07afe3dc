package service

import (
	"context"
	"sync"
)

// Future 是一次调用的结果句柄。放弃等待（Await 的 ctx 结束或 Cancel）会取消底层任务。
type Future[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc
	once   sync.Once
	val    T
	err    error
}

// Go 启动一个独立调度的任务，任务独占它捕获的状态。
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(f.done)
		defer cancel()
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Resolved 返回一个已经完成的 Future。
func Resolved[T any](val T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), cancel: func() {}, val: val, err: err}
	close(f.done)
	return f
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await 等待结果；ctx 先结束时取消任务并返回 ctx.Err()。
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		f.Cancel()
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel 放弃这次调用，可重复调用。
func (f *Future[T]) Cancel() {
	f.once.Do(f.cancel)
}
