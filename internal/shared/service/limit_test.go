package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConcurrencyLimit_许可只属于确认ready的句柄(t *testing.T) {
	ctx := context.Background()
	unblock := make(chan struct{})
	inner := FuncService[int, int](func(_ context.Context, req int) (int, error) {
		<-unblock
		return req * 2, nil
	})

	a := NewConcurrencyLimit[int, int](inner, 1)
	b := a.Clone()

	if p, err := a.PollReady(nil); p != Ready || err != nil {
		t.Fatalf("期望 a ready, got=%v err=%v", p, err)
	}

	woken := make(chan struct{}, 1)
	if p, _ := b.PollReady(func() {
		select {
		case woken <- struct{}{}:
		default:
		}
	}); p != Pending {
		t.Fatalf("期望许可用完时 b pending, got=%v", p)
	}
	if _, err := b.Call(ctx, 1).Await(ctx); !errors.Is(err, ErrNotReady) {
		t.Fatalf("期望未 ready 的句柄 Call 返回 ErrNotReady, got=%v", err)
	}

	fut := a.Call(ctx, 21)
	close(unblock)
	if v, err := fut.Await(ctx); v != 42 || err != nil {
		t.Fatalf("期望 42, got v=%d err=%v", v, err)
	}

	select {
	case <-woken:
	case <-time.After(time.Second):
		t.Fatalf("期望许可归还后唤醒等待者")
	}
	if p, _ := b.PollReady(nil); p != Ready {
		t.Fatalf("期望许可归还后 b ready, got=%v", p)
	}
}

func TestConcurrencyLimit_Release归还未使用的许可(t *testing.T) {
	inner := FuncService[int, int](func(_ context.Context, req int) (int, error) { return req, nil })
	l := NewConcurrencyLimit[int, int](inner, 1)

	if p, _ := l.PollReady(nil); p != Ready {
		t.Fatalf("期望 ready, got=%v", p)
	}
	if l.Available() != 0 {
		t.Fatalf("期望许可被预留, available=%d", l.Available())
	}
	Release(l)
	if l.Available() != 1 {
		t.Fatalf("期望 Release 后许可归还, available=%d", l.Available())
	}
	Release(l)
	if l.Available() != 1 {
		t.Fatalf("期望重复 Release 不会多还许可, available=%d", l.Available())
	}
}
