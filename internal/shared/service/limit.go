package service

import (
	"context"
	"sync"
)

// ConcurrencyLimit 限制同时在途的调用数。
//
// 许可是“按句柄”预留的：PollReady 在当前句柄上拿到许可，只有同一个句柄的
// 下一次 Call 才能消费它；许可在该次调用的 Future 完成时归还。Clone 出来的
// 句柄共享同一个计数器，但不继承许可。
type ConcurrencyLimit[Req, Resp any] struct {
	inner  Service[Req, Resp]
	sem    *semaphore
	permit bool
}

func NewConcurrencyLimit[Req, Resp any](inner Service[Req, Resp], maxInFlight int) *ConcurrencyLimit[Req, Resp] {
	return &ConcurrencyLimit[Req, Resp]{
		inner: inner,
		sem:   newSemaphore(maxInFlight),
	}
}

// ConcurrencyLimitLayer 每次 Layer 都会创建一个独立的计数器。
func ConcurrencyLimitLayer[Req, Resp any](maxInFlight int) Layer[Req, Resp] {
	return LayerFunc[Req, Resp](func(inner Service[Req, Resp]) Service[Req, Resp] {
		return NewConcurrencyLimit(inner, maxInFlight)
	})
}

func (l *ConcurrencyLimit[Req, Resp]) PollReady(w Waker) (Poll, error) {
	if !l.permit {
		if !l.sem.tryAcquire(w) {
			return Pending, nil
		}
		l.permit = true
	}
	return l.inner.PollReady(w)
}

func (l *ConcurrencyLimit[Req, Resp]) Call(ctx context.Context, req Req) *Future[Resp] {
	if !l.permit {
		var zero Resp
		return Resolved(zero, ErrNotReady)
	}
	l.permit = false

	fut := l.inner.Call(ctx, req)
	sem := l.sem
	go func() {
		<-fut.Done()
		sem.release()
	}()
	return fut
}

func (l *ConcurrencyLimit[Req, Resp]) Clone() Service[Req, Resp] {
	return &ConcurrencyLimit[Req, Resp]{
		inner: l.inner.Clone(),
		sem:   l.sem,
	}
}

// Release 归还尚未消费的许可。
func (l *ConcurrencyLimit[Req, Resp]) Release() {
	if l.permit {
		l.permit = false
		l.sem.release()
	}
	Release(l.inner)
}

// Available 返回当前剩余许可数。
func (l *ConcurrencyLimit[Req, Resp]) Available() int {
	return l.sem.available()
}

type semaphore struct {
	mu      sync.Mutex
	avail   int
	waiters []Waker
}

func newSemaphore(n int) *semaphore {
	return &semaphore{avail: max(1, n)}
}

// tryAcquire 拿不到时把 w 登记为等待者。
func (s *semaphore) tryAcquire(w Waker) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.avail > 0 {
		s.avail--
		return true
	}
	if w != nil {
		s.waiters = append(s.waiters, w)
	}
	return false
}

func (s *semaphore) release() {
	s.mu.Lock()
	s.avail++
	waiters := s.waiters
	s.waiters = nil
	s.mu.Unlock()

	for _, w := range waiters {
		w()
	}
}

func (s *semaphore) available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avail
}
