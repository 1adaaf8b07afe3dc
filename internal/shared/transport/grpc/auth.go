package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"UserCenter/internal/shared/config"
	"UserCenter/internal/shared/security"
	"UserCenter/internal/shared/service"
)

const (
	authorizationHeader = "authorization"
	// 健康检查始终免鉴权
	healthMethodPrefix = "/grpc.health.v1.Health/"
)

type subjectKey struct{}

// SubjectFrom 返回鉴权通过后 token 里的 subject（user_id）。
func SubjectFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey{}).(string)
	return s, ok && s != ""
}

// AuthLayer 校验 "authorization: Bearer <jwt>"；未开启时返回 nil（service.Stack 会跳过）。
func AuthLayer(cfg config.AuthConfig) service.Layer[UnaryCall, any] {
	if !cfg.Enabled {
		return nil
	}
	skip := make(map[string]struct{}, len(cfg.SkipMethods))
	for _, m := range cfg.SkipMethods {
		skip[m] = struct{}{}
	}
	key := []byte(cfg.JWTSecret)
	return service.LayerFunc[UnaryCall, any](func(inner Service) Service {
		return &authService{inner: inner, key: key, skip: skip}
	})
}

type authService struct {
	inner Service
	key   []byte
	skip  map[string]struct{}
}

func (s *authService) PollReady(w service.Waker) (service.Poll, error) {
	return s.inner.PollReady(w)
}

func (s *authService) Call(ctx context.Context, call UnaryCall) *service.Future[any] {
	if _, ok := s.skip[call.FullMethod]; ok || strings.HasPrefix(call.FullMethod, healthMethodPrefix) {
		return s.inner.Call(ctx, call)
	}
	subject, err := s.authenticate(ctx)
	if err != nil {
		// 内层已确认的 ready 没有被消费，归还
		service.Release(s.inner)
		return service.Resolved[any](nil, err)
	}
	return s.inner.Call(context.WithValue(ctx, subjectKey{}, subject), call)
}

func (s *authService) authenticate(ctx context.Context) (string, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get(authorizationHeader)
	if len(values) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing authorization header")
	}
	raw := values[0]
	if len(raw) < 7 || !strings.EqualFold(raw[:7], "bearer ") {
		return "", status.Error(codes.Unauthenticated, "authorization header must be a bearer token")
	}
	_, claims, err := security.ParseToken(s.key, strings.TrimSpace(raw[7:]))
	if err != nil {
		return "", status.Error(codes.Unauthenticated, "invalid token")
	}
	return claims.Subject, nil
}

func (s *authService) Clone() Service {
	return &authService{inner: s.inner.Clone(), key: s.key, skip: s.skip}
}

func (s *authService) Release() {
	service.Release(s.inner)
}
