// Package memory 是进程内的用户存储，用于本地开发和测试。
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"UserCenter/internal/user/domain"
)

// columns 是可以用来查询的列。
var columns = map[string]func(u domain.User) string{
	"user_id":    func(u domain.User) string { return u.UserID },
	"email":      func(u domain.User) string { return u.Email },
	"username":   func(u domain.User) string { return u.Username },
	"full_name":  func(u domain.User) string { return u.FullName },
	"avatar_url": func(u domain.User) string { return u.AvatarURL },
}

type Store struct {
	mu    sync.RWMutex
	users map[string]domain.User
	order []string
}

func New(seed ...domain.User) *Store {
	s := &Store{users: make(map[string]domain.User, len(seed))}
	for _, u := range seed {
		s.Put(u)
	}
	return s
}

// Put 插入或覆盖一条记录。
func (s *Store) Put(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	if _, ok := s.users[u.UserID]; !ok {
		s.order = append(s.order, u.UserID)
	}
	s.users[u.UserID] = u
}

func (s *Store) Get(ctx context.Context, key, value string) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Internal(err.Error())
	}
	col, ok := columns[key]
	if !ok {
		return nil, domain.Upstream(fmt.Sprintf("column users.%s does not exist", key))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0)
	for _, id := range s.order {
		if u := s.users[id]; col(u) == value {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, id string, body map[string]any) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, domain.Internal(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.Upstream("no rows in result set")
	}
	if err := u.Apply(domain.UpdateFields(body)); err != nil {
		return domain.User{}, domain.Internal(fmt.Sprintf("invalid update body: %v", err))
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return u, nil
}

func (s *Store) GetProfile(ctx context.Context, id string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, domain.Internal(err.Error())
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.Upstream("no rows in result set")
	}
	return u, nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}
