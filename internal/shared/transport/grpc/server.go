package grpc

import (
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"UserCenter/internal/shared/config"
	"UserCenter/internal/shared/service"
	"UserCenter/internal/shared/transport/reqlog"
	"UserCenter/modules/kit/logx"
)

// StackOptions 描述 unary 服务栈的组成。
type StackOptions struct {
	Log     logx.Logger
	Metrics *Metrics // nil 表示不采集
	Auth    config.AuthConfig
	Limit   config.LimitConfig
}

// NewStack 组装 Buffer( Metrics( RequestLogger( Auth?( Limit( Dispatch ))))).
//
// Buffer 之内的句柄只由 Buffer 的 worker 驱动，所有 RPC 共用同一个 RequestLogger。
// 用完调用 Close 释放。
func NewStack(opts StackOptions) *service.Buffer[UnaryCall, any] {
	var layers []service.Layer[UnaryCall, any]
	if opts.Metrics != nil {
		layers = append(layers, opts.Metrics.Layer())
	}
	layers = append(layers,
		reqlog.NewLayer[UnaryCall, any](opts.Log),
		AuthLayer(opts.Auth),
		service.ConcurrencyLimitLayer[UnaryCall, any](opts.Limit.MaxInFlight),
	)
	return service.NewBuffer(service.Stack(Dispatch(), layers...), opts.Limit.QueueSize)
}

// NewServer 创建挂好 trace 与服务栈拦截器的 grpc.Server，并注册健康检查服务。
// user.User 只有 unary 方法，不挂 stream 拦截器。
func NewServer(stack Service, extra ...gogrpc.ServerOption) (*gogrpc.Server, *health.Server) {
	opts := []gogrpc.ServerOption{
		gogrpc.ChainUnaryInterceptor(
			UnaryServerTraceInterceptor(),
			UnaryServiceInterceptor(stack),
		),
	}
	server := gogrpc.NewServer(append(opts, extra...)...)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)
	return server, hs
}
