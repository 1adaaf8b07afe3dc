package grpc

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	userpb "UserCenter/internal/shared/gen/user"
)

// DialUserService 建立 user grpc 连接并返回 typed client；默认 proto 编码，
// 需要 JSON 时在调用上加 grpc.CallContentSubtype(userpb.CodecName)。
func DialUserService(target string, extra ...grpc.DialOption) (*grpc.ClientConn, userpb.UserClient, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(UnaryClientTraceInterceptor()),
	}
	opts = append(opts, extra...)
	// grpc.NewClient 不会立即建连，第一次调用时才解析 target 并连接
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("dial user service failed: %w", err)
	}
	return conn, userpb.NewUserClient(conn), nil
}
