// Package mysql 是基于 gorm 的用户存储。
package mysql

import (
	"context"
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"UserCenter/internal/user/domain"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key, value string) ([]domain.User, error) {
	users := make([]domain.User, 0)
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: key}, Value: value}).
		Find(&users).Error
	if err != nil {
		return nil, classify(err)
	}
	return users, nil
}

// Update 按列名写入 body；user_id 是主键，不随 body 修改，写完按原 id 回读。
func (s *Store) Update(ctx context.Context, id string, body map[string]any) (domain.User, error) {
	fields := domain.UpdateFields(body)
	if len(fields) == 0 {
		return s.GetProfile(ctx, id)
	}

	err := s.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("user_id = ?", id).
		Updates(fields).Error
	if err != nil {
		return domain.User{}, classify(err)
	}
	return s.GetProfile(ctx, id)
}

func (s *Store) GetProfile(ctx context.Context, id string) (domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("user_id = ?", id).First(&user).Error
	if err != nil {
		return domain.User{}, classify(err)
	}
	return user, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// classify 数据库返回的错误和“无记录”归为上游错误，其余（连接、驱动本地失败）归为内部错误。
func classify(err error) error {
	var me *mysqldrv.MySQLError
	switch {
	case errors.As(err, &me):
		return domain.Upstream(me.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.Upstream(err.Error())
	default:
		return domain.Internal(err.Error()).WithCause(err)
	}
}
