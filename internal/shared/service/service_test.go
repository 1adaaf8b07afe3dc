package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func tagLayer(name string) Layer[string, string] {
	return LayerFunc[string, string](func(inner Service[string, string]) Service[string, string] {
		return FuncService[string, string](func(ctx context.Context, req string) (string, error) {
			out, err := Oneshot(ctx, inner, req)
			return name + "(" + out + ")", err
		})
	})
}

func TestStack_第一个layer在最外层(t *testing.T) {
	base := FuncService[string, string](func(_ context.Context, req string) (string, error) {
		return req, nil
	})
	svc := Stack[string, string](base, tagLayer("a"), nil, tagLayer("b"))

	got, err := Oneshot(context.Background(), svc, "x")
	if err != nil {
		t.Fatalf("期望调用成功, err=%v", err)
	}
	if got != "a(b(x))" {
		t.Fatalf("期望 a(b(x)), got=%q", got)
	}
}

func TestFuture_Await取消时会取消任务(t *testing.T) {
	observed := make(chan struct{})
	fut := Go(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(observed)
		return 0, ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := fut.Await(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("期望 context.Canceled, got=%v", err)
	}
	select {
	case <-observed:
	case <-time.After(time.Second):
		t.Fatalf("期望任务观察到取消")
	}
}

func TestFuture_已完成时Await直接返回结果(t *testing.T) {
	want := errors.New("boom")
	fut := Resolved(3, want)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v, err := fut.Await(ctx)
	if v != 3 || err != want {
		t.Fatalf("期望已完成的结果优先于 ctx, got v=%d err=%v", v, err)
	}
	fut.Cancel()
	fut.Cancel()
}

type neverReady struct{}

func (neverReady) PollReady(Waker) (Poll, error) { return Pending, nil }
func (neverReady) Call(context.Context, int) *Future[int] {
	return Resolved(0, ErrNotReady)
}
func (n neverReady) Clone() Service[int, int] { return n }

func TestWaitReady_ctx超时返回错误(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := WaitReady[int, int](ctx, neverReady{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("期望 DeadlineExceeded, got=%v", err)
	}
}
