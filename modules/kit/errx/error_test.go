package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is_只按code比较语义(t *testing.T) {
	e1 := NewSys(CodeUpstream, "relation does not exist").WithData("table", "users")
	e2 := ErrUpstream.WithCause(errors.New("other"))
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is(e1, e2)==true（只按 code 判断语义），e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, ErrInternal) {
		t.Fatalf("期望不同 code 不相等，e1=%v", e1)
	}
}

func TestError_WithMsg_不污染哨兵错误(t *testing.T) {
	err := ErrInternal.WithMsg("db timeout")
	if err.Msg() != "db timeout" {
		t.Fatalf("期望 msg 被替换，got=%q", err.Msg())
	}
	if ErrInternal.Msg() != "服务器内部错误" {
		t.Fatalf("期望哨兵错误 msg 不变，got=%q", ErrInternal.Msg())
	}
}

func TestError_From_能穿透fmt包装(t *testing.T) {
	wrapped := fmt.Errorf("get profile: %w", ErrUpstream.WithMsg("no rows"))
	e, ok := From(wrapped)
	if !ok {
		t.Fatalf("期望 From 能找到 *Error, err=%v", wrapped)
	}
	if e.Code() != CodeUpstream || e.Msg() != "no rows" {
		t.Fatalf("解析结果不符合预期: code=%s msg=%s", e.Code(), e.Msg())
	}
	if _, ok := From(errors.New("plain")); ok {
		t.Fatalf("期望普通错误 From 返回 false")
	}
}

func TestError_业务错误不捕获栈_但保留cause链(t *testing.T) {
	cause := errors.New("bad json")
	err := NewBiz(CodeReqParamError, "user id cannot be empty").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
	if err.IsSys() {
		t.Fatalf("期望业务错误 IsSys()==false")
	}
}

func TestError_系统错误捕获一次栈_且不重复捕获(t *testing.T) {
	cause := errors.New("io timeout")
	sys := NewSys(CodeInternal, "dial mysql").WithCause(cause)
	if got := sys.Stack(); len(got) == 0 {
		t.Fatalf("期望系统错误捕获栈（发生/转换处），got=%v", got)
	}

	// 再包一层系统错误：如果下层已有栈，上层不应重复捕获
	sys2 := NewSys(CodeUpstream, "query users").WithCause(sys)
	if got := sys2.Stack(); got != nil {
		t.Fatalf("期望上层系统错误不重复捕获栈（cause 链里已有栈），got=%v", got)
	}
}

func TestError_Data_防止外部map污染(t *testing.T) {
	m := map[string]any{"k": "v"}
	err := NewBiz("BIZ_X", "").WithDataMap(m)
	m["k"] = "mutated"
	if got := err.Data()["k"]; got != "v" {
		t.Fatalf("期望构造时复制 data，避免外部后续修改影响错误上下文；got=%v", got)
	}
}
