package handler

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"UserCenter/internal/user/domain"
)

// toRPCError 把依赖失败映射成 gRPC 状态，消息原样透出。
func toRPCError(err error) error {
	kind, msg := domain.KindOf(err)
	switch kind {
	case domain.KindInternal:
		return status.Error(codes.Internal, msg)
	case domain.KindUpstream:
		return status.Error(codes.Unknown, msg)
	case domain.KindInvalidInput:
		return status.Error(codes.InvalidArgument, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}
