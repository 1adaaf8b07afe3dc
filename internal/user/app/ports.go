package app

import (
	"context"

	"UserCenter/internal/user/domain"
)

// UserClient 是用户存储的依赖契约。
//
// 失败必须用 domain.Internal / domain.Upstream 构造（或至少能被 domain.KindOf 识别），
// 处理器据此映射 RPC 状态码。
type UserClient interface {
	// Get 按任意列等值查询，没有匹配时返回空切片。
	Get(ctx context.Context, key, value string) ([]domain.User, error)
	// Update 用 body 更新 id 对应的用户并返回更新后的记录。
	Update(ctx context.Context, id string, body map[string]any) (domain.User, error)
	// GetProfile 返回 id 对应的用户资料。
	GetProfile(ctx context.Context, id string) (domain.User, error)
	// Ping 检查存储连通性，供就绪探针使用。
	Ping(ctx context.Context) error
}
