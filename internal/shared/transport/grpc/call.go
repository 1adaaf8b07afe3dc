package grpc

import (
	"context"
	"errors"
	nethttp "net/http"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"UserCenter/internal/shared/service"
)

// UnaryCall 是一次 unary RPC 在服务栈里的请求形态。
type UnaryCall struct {
	// FullMethod 形如 /user.User/Get。
	FullMethod string
	Req        any
	Handler    gogrpc.UnaryHandler
}

// Method 返回 gRPC 调用所用的 HTTP/2 方法，始终是 POST。
func (c UnaryCall) Method() string { return nethttp.MethodPost }

func (c UnaryCall) Path() string { return c.FullMethod }

// Service 是承载 unary RPC 的服务栈。
type Service = service.Service[UnaryCall, any]

// Dispatch 是最内层服务：执行 gRPC 生成代码交进来的处理器。
func Dispatch() Service {
	return service.FuncService[UnaryCall, any](func(ctx context.Context, call UnaryCall) (any, error) {
		return call.Handler(ctx, call.Req)
	})
}

// UnaryServiceInterceptor 把每个 unary 调用交给 svc 完成；svc 会被并发调用，
// 应当是 *service.Buffer 这类可并发使用的服务。
func UnaryServiceInterceptor(svc Service) gogrpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *gogrpc.UnaryServerInfo,
		handler gogrpc.UnaryHandler,
	) (any, error) {
		resp, err := service.Oneshot(ctx, svc, UnaryCall{FullMethod: info.FullMethod, Req: req, Handler: handler})
		if err != nil {
			return nil, toStatus(err)
		}
		return resp, nil
	}
}

// toStatus 只转换服务栈自身产生的错误，处理器返回的 status 原样透传。
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	case errors.Is(err, service.ErrBufferClosed):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return err
	}
}
