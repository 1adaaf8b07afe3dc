package interfaces

import (
	"google.golang.org/grpc"

	userpb "UserCenter/internal/shared/gen/user"
	"UserCenter/internal/user/app"
	"UserCenter/internal/user/interfaces/handler"
	"UserCenter/modules/kit/logx"
)

type Module struct {
	User *handler.User
}

func New(client app.UserClient, log logx.Logger) *Module {
	return &Module{User: handler.NewUser(client, log)}
}

func (m *Module) Register(s grpc.ServiceRegistrar) {
	userpb.RegisterUserServer(s, m.User)
}
