package handler

import (
	"context"
	"time"

	userpb "UserCenter/internal/shared/gen/user"
	"UserCenter/internal/user/app"
	"UserCenter/internal/user/domain"
	"UserCenter/modules/kit/logx"
	"UserCenter/modules/kit/tracex"
)

type User struct {
	client app.UserClient
	log    logx.Logger
	// GetRating / GetCreditBalance 尚未实现，走默认的 Unimplemented
	userpb.UnimplementedUserServer
}

func NewUser(client app.UserClient, log logx.Logger) *User {
	if log == nil {
		log = logx.NewNop()
	}
	return &User{client: client, log: log}
}

func (u *User) Get(ctx context.Context, req *userpb.GetRequest) (*userpb.GetResponse, error) {
	ctx = tracex.WithSpanID(ctx, "user")

	users, err := u.client.Get(ctx, req.GetKey(), req.GetValue())
	if err != nil {
		return nil, u.fail(ctx, "user get", err)
	}
	out := make([]*userpb.UserInfo, 0, len(users))
	for i := range users {
		out = append(out, toPB(users[i]))
	}
	return &userpb.GetResponse{Users: out}, nil
}

func (u *User) GetById(ctx context.Context, req *userpb.GetByIdRequest) (*userpb.GetByIdResponse, error) {
	ctx = tracex.WithSpanID(ctx, "user")

	users, err := u.client.Get(ctx, "user_id", req.GetUserId())
	if err != nil {
		return nil, u.fail(ctx, "user get by id", err)
	}
	if len(users) == 0 {
		return &userpb.GetByIdResponse{}, nil
	}
	return &userpb.GetByIdResponse{User: toPB(users[0])}, nil
}

func (u *User) Update(ctx context.Context, req *userpb.UpdateRequest) (*userpb.UpdateResponse, error) {
	ctx = tracex.WithSpanID(ctx, "user")

	user, err := u.client.Update(ctx, req.GetUserId(), req.GetBody().AsMap())
	if err != nil {
		return nil, u.fail(ctx, "user update", err)
	}
	return &userpb.UpdateResponse{User: toPB(user)}, nil
}

func (u *User) GetProfile(ctx context.Context, req *userpb.GetProfileRequest) (*userpb.GetProfileResponse, error) {
	ctx = tracex.WithSpanID(ctx, "user")

	if req.GetUserId() == "" {
		return nil, u.fail(ctx, "user get profile", domain.InvalidInput("user id cannot be empty"))
	}
	user, err := u.client.GetProfile(ctx, req.GetUserId())
	if err != nil {
		return nil, u.fail(ctx, "user get profile", err)
	}
	return &userpb.GetProfileResponse{User: toPB(user)}, nil
}

// fail 记录失败并返回映射后的 RPC 错误：参数错误按业务拒绝记录，其余按技术错误记录。
func (u *User) fail(ctx context.Context, action string, err error) error {
	kind, msg := domain.KindOf(err)
	if kind == domain.KindInvalidInput {
		logx.ReportBizError(ctx, u.log, logx.NewBizLog(action+" reject", kind.String(), msg))
	} else {
		logx.ReportSysError(ctx, u.log, logx.NewSysLog(action+" tech error", err))
	}
	return toRPCError(err)
}

func toPB(user domain.User) *userpb.UserInfo {
	return &userpb.UserInfo{
		UserId:        user.UserID,
		Email:         user.Email,
		Username:      user.Username,
		FullName:      user.FullName,
		AvatarUrl:     user.AvatarURL,
		Rating:        user.Rating,
		CreditBalance: user.CreditBalance,
		CreatedAt:     formatTime(user.CreatedAt),
		UpdatedAt:     formatTime(user.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
