package logx

import (
	"context"
	"errors"
	"testing"

	"UserCenter/modules/kit/errx"
	"UserCenter/modules/kit/tracex"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildErrorLog_能提取语义与栈(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	e := errx.ErrInternal.WithMsg("query users").
		WithData("method", "GetProfile").
		WithCause(cause)

	meta := BuildErrorLog(e)
	if meta.Error == "" {
		t.Fatalf("期望 meta.Error 非空")
	}
	if meta.Code != string(errx.CodeInternal) {
		t.Fatalf("期望 meta.Code == %s, got=%q", errx.CodeInternal, meta.Code)
	}
	if meta.Msg != "query users" {
		t.Fatalf("期望 meta.Msg == query users, got=%q", meta.Msg)
	}
	if meta.Data == nil || meta.Data["method"] != "GetProfile" {
		t.Fatalf("期望 meta.Data 包含 method=GetProfile, got=%v", meta.Data)
	}
	if len(meta.CauseChain) == 0 {
		t.Fatalf("期望 meta.CauseChain 非空")
	}
	if meta.Origin == "" || meta.Stack == "" {
		t.Fatalf("期望 meta.Origin/meta.Stack 非空（错误发生/转换处栈） origin=%q stack=%q", meta.Origin, meta.Stack)
	}
}

func TestReportSysError_带trace字段且为ERROR级别(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	ctx := tracex.WithTraceID(context.Background(), "t-1")
	ReportSysError(ctx, l, NewSysLog("user get tech error", errx.ErrUpstream.WithMsg("boom")))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望输出 1 条日志, got=%d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("期望 ERROR 级别, got=%v", entries[0].Level)
	}
	if got := entries[0].ContextMap()["trace_id"]; got != "t-1" {
		t.Fatalf("期望 trace_id=t-1, got=%v", got)
	}
	if got := entries[0].ContextMap()["error_code"]; got != string(errx.CodeUpstream) {
		t.Fatalf("期望 error_code=%s, got=%v", errx.CodeUpstream, got)
	}
}

func TestReportBizError_为WARN级别(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	ReportBizError(context.Background(), l, NewBizLog("user get profile reject", "CODE_REQ_PARAM_ERROR", "user id cannot be empty"))

	entries := logs.All()
	if len(entries) != 1 || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("期望输出 1 条 WARN 日志, got=%v", entries)
	}
	if entries[0].Message != "user get profile reject, msg:user id cannot be empty" {
		t.Fatalf("日志内容不符合预期: %q", entries[0].Message)
	}
}
