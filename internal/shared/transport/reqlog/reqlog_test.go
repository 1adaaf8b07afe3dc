package reqlog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"UserCenter/internal/shared/service"
	"UserCenter/modules/kit/errx"
	"UserCenter/modules/kit/logx"
	"UserCenter/modules/kit/tracex"
)

type route struct {
	method string
	path   string
	id     int
}

func (r route) Method() string { return r.method }
func (r route) Path() string   { return r.path }

func newObserved() (logx.Logger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return logx.NewZapLogger(zap.New(core)), recorded
}

// pollStub 返回预设的 PollReady 结果，并记录登记的 waker。
type pollStub struct {
	poll  service.Poll
	err   error
	polls *atomic.Int32
	waker service.Waker
}

func (s *pollStub) PollReady(w service.Waker) (service.Poll, error) {
	s.polls.Add(1)
	s.waker = w
	return s.poll, s.err
}

func (s *pollStub) Call(context.Context, route) *service.Future[int] {
	return service.Resolved(0, nil)
}

func (s *pollStub) Clone() service.Service[route, int] {
	return &pollStub{poll: s.poll, err: s.err, polls: s.polls}
}

func TestRequestLogger_PollReady原样透传(t *testing.T) {
	log, recorded := newObserved()
	boom := errors.New("not ready: broken")

	cases := []struct {
		name string
		poll service.Poll
		err  error
	}{
		{"ready", service.Ready, nil},
		{"pending", service.Pending, nil},
		{"error", service.Pending, boom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &pollStub{poll: tc.poll, err: tc.err, polls: new(atomic.Int32)}
			rl := New[route, int](stub, log)

			called := false
			p, err := rl.PollReady(func() { called = true })
			if p != tc.poll || err != tc.err {
				t.Fatalf("期望 (%v, %v), got (%v, %v)", tc.poll, tc.err, p, err)
			}
			if stub.polls.Load() != 1 {
				t.Fatalf("期望内层被 poll 一次, got=%d", stub.polls.Load())
			}
			stub.waker()
			if !called {
				t.Fatalf("期望 waker 原样交给内层")
			}
		})
	}
	if recorded.Len() != 0 {
		t.Fatalf("期望 PollReady 不输出日志, got=%d", recorded.Len())
	}
}

func TestRequestLogger_内层执行前恰好输出一行日志(t *testing.T) {
	log, recorded := newObserved()

	var seen atomic.Int32
	inner := service.FuncService[route, int](func(_ context.Context, req route) (int, error) {
		seen.Store(int32(recorded.FilterMessage("GET /users/42").Len()))
		return req.id, nil
	})
	rl := New[route, int](inner, log)

	ctx := tracex.WithSpanID(tracex.WithTraceID(context.Background(), "t-1"), "s-1")
	v, err := service.Oneshot[route, int](ctx, rl, route{method: "GET", path: "/users/42", id: 7})
	if err != nil || v != 7 {
		t.Fatalf("期望结果原样返回, got v=%d err=%v", v, err)
	}
	if seen.Load() != 1 {
		t.Fatalf("期望内层执行时日志已输出, got=%d", seen.Load())
	}

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("期望恰好一行日志, got=%d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.InfoLevel || e.Message != "GET /users/42" {
		t.Fatalf("日志不符合预期: level=%v msg=%q", e.Level, e.Message)
	}
	fields := e.ContextMap()
	if fields["method"] != "GET" || fields["path"] != "/users/42" || fields["trace_id"] != "t-1" || fields["span_id"] != "s-1" {
		t.Fatalf("日志字段不符合预期: %v", fields)
	}
}

func TestRequestLogger_错误原样透传(t *testing.T) {
	log, _ := newObserved()
	want := errx.ErrUpstream.WithMsg("relation users does not exist")
	inner := service.FuncService[route, int](func(context.Context, route) (int, error) {
		return 0, want
	})
	rl := New[route, int](inner, log)

	_, err := service.Oneshot[route, int](context.Background(), rl, route{method: "POST", path: "/user.User/Get"})
	if err != error(want) {
		t.Fatalf("期望返回同一个错误值, got=%v", err)
	}
}

func TestRequestLogger_单实例承载多个在途调用(t *testing.T) {
	const n = 50
	log, recorded := newObserved()

	unblock := make(chan struct{})
	inner := service.FuncService[route, int](func(_ context.Context, req route) (int, error) {
		<-unblock
		return req.id * 10, nil
	})
	// 许可按句柄预留：只有确认 ready 的那个句柄能 Call 成功
	rl := New[route, int](service.NewConcurrencyLimit[route, int](inner, n), log)

	ctx := context.Background()
	futs := make([]*service.Future[int], 0, n)
	for i := 0; i < n; i++ {
		if err := service.WaitReady[route, int](ctx, rl); err != nil {
			t.Fatalf("第 %d 次 WaitReady 失败: %v", i, err)
		}
		futs = append(futs, rl.Call(ctx, route{method: "POST", path: "/user.User/GetById", id: i}))
	}
	close(unblock)

	for i, fut := range futs {
		v, err := fut.Await(ctx)
		if err != nil {
			t.Fatalf("第 %d 个调用失败: %v", i, err)
		}
		if v != i*10 {
			t.Fatalf("第 %d 个调用结果错乱: got=%d", i, v)
		}
	}
	if got := recorded.FilterMessage("POST /user.User/GetById").Len(); got != n {
		t.Fatalf("期望每个调用一行日志, got=%d", got)
	}
}

func TestRequestLogger_调用方放弃后不影响后续ready(t *testing.T) {
	log, recorded := newObserved()

	invoked := new(atomic.Int32)
	inner := service.FuncService[route, int](func(context.Context, route) (int, error) {
		invoked.Add(1)
		return 1, nil
	})
	limit := service.NewConcurrencyLimit[route, int](inner, 1)
	rl := New[route, int](limit, log)

	if p, _ := rl.PollReady(nil); p != service.Ready {
		t.Fatalf("期望 ready, got=%v", p)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	fut := rl.Call(cancelled, route{method: "POST", path: "/user.User/Get"})
	if _, err := fut.Await(context.Background()); !errors.Is(err, context.Canceled) {
		t.Fatalf("期望 context.Canceled, got=%v", err)
	}

	// 被放弃的句柄归还许可后，同一个实例可以再次 ready
	ctx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	if err := service.WaitReady[route, int](ctx, rl); err != nil {
		t.Fatalf("期望放弃后仍能 ready, err=%v", err)
	}
	if v, err := rl.Call(ctx, route{method: "POST", path: "/user.User/Get"}).Await(ctx); err != nil || v != 1 {
		t.Fatalf("期望后续调用成功, got v=%d err=%v", v, err)
	}

	if invoked.Load() != 1 {
		t.Fatalf("期望被放弃的调用不触达内层, invoked=%d", invoked.Load())
	}
	if recorded.Len() != 1 {
		t.Fatalf("期望只有成功的调用输出日志, got=%d", recorded.Len())
	}
}

func TestNewLayer_生成的服务互相独立(t *testing.T) {
	log, recorded := newObserved()
	layer := NewLayer[route, int](log)
	inner := service.FuncService[route, int](func(_ context.Context, req route) (int, error) { return req.id, nil })

	a := layer.Layer(inner)
	b := layer.Layer(inner)
	ctx := context.Background()
	if _, err := service.Oneshot(ctx, a, route{method: "POST", path: "/a", id: 1}); err != nil {
		t.Fatalf("a 调用失败: %v", err)
	}
	if _, err := service.Oneshot(ctx, b, route{method: "POST", path: "/b", id: 2}); err != nil {
		t.Fatalf("b 调用失败: %v", err)
	}
	if recorded.FilterMessage("POST /a").Len() != 1 || recorded.FilterMessage("POST /b").Len() != 1 {
		t.Fatalf("期望每个实例各自输出日志, all=%d", recorded.Len())
	}
}
