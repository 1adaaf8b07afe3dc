// Package store 按配置选择用户存储后端。
package store

import (
	"context"
	"fmt"

	"UserCenter/internal/shared/config"
	"UserCenter/internal/shared/infrastructure/db"
	mongoinfra "UserCenter/internal/shared/infrastructure/mongo"
	"UserCenter/internal/shared/logs"
	"UserCenter/internal/user/app"
	"UserCenter/internal/user/infra/store/memory"
	"UserCenter/internal/user/infra/store/mongodb"
	"UserCenter/internal/user/infra/store/mysql"
)

const (
	DriverMemory  = "memory"
	DriverMySQL   = "mysql"
	DriverMongoDB = "mongodb"
)

// Open 返回存储实现和对应的关闭函数。
func Open(cfg config.Config) (app.UserClient, func(), error) {
	switch cfg.Store.Driver {
	case DriverMemory, "":
		return memory.New(), func() {}, nil
	case DriverMySQL:
		gormDB, err := db.Open(cfg.MySQL)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql failed: %w", err)
		}
		closeFn := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return mysql.New(gormDB), closeFn, nil
	case DriverMongoDB:
		client, err := mongoinfra.Open(cfg.MongoDB, logs.Logger())
		if err != nil {
			return nil, nil, fmt.Errorf("open mongodb failed: %w", err)
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return mongodb.New(client, cfg.MongoDB.Database, cfg.MongoDB.Collection), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
