package grpc

import (
	"context"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"UserCenter/modules/kit/tracex"
)

// 跨进程传递 trace 的 metadata 键。
const (
	traceIDHeader = "x-trace-id"
	spanIDHeader  = "x-span-id"
)

// UnaryClientTraceInterceptor 把 ctx 里的 trace_id/span_id 写进出站 metadata。
func UnaryClientTraceInterceptor() gogrpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *gogrpc.ClientConn,
		invoker gogrpc.UnaryInvoker,
		opts ...gogrpc.CallOption,
	) error {
		return invoker(outgoingTrace(ctx), method, req, reply, cc, opts...)
	}
}

// UnaryServerTraceInterceptor 从入站 metadata 恢复 trace；上游没带 trace_id 时生成一个。
// 最终的 trace_id 通过响应 header 回给调用方，便于对上服务端日志。
func UnaryServerTraceInterceptor() gogrpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		_ *gogrpc.UnaryServerInfo,
		handler gogrpc.UnaryHandler,
	) (any, error) {
		ctx = tracex.EnsureTraceID(incomingTrace(ctx))
		if traceID, ok := tracex.TraceIDFrom(ctx); ok {
			// 非 grpc.Server 驱动的 ctx（例如单测直接调用）没有 stream，忽略即可
			_ = gogrpc.SetHeader(ctx, metadata.Pairs(traceIDHeader, traceID))
		}
		return handler(ctx, req)
	}
}

func outgoingTrace(ctx context.Context) context.Context {
	var kv []string
	if traceID, ok := tracex.TraceIDFrom(ctx); ok {
		kv = append(kv, traceIDHeader, traceID)
	}
	if spanID, ok := tracex.SpanIDFrom(ctx); ok {
		kv = append(kv, spanIDHeader, spanID)
	}
	if len(kv) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, kv...)
}

func incomingTrace(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	if traceID := firstValue(md, traceIDHeader); traceID != "" {
		ctx = tracex.WithTraceID(ctx, traceID)
	}
	if spanID := firstValue(md, spanIDHeader); spanID != "" {
		ctx = tracex.WithSpanID(ctx, spanID)
	}
	return ctx
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
