package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"UserCenter/internal/user/domain"
)

func TestClassify_服务端错误是上游错误(t *testing.T) {
	me := &mysqldrv.MySQLError{Number: 1054, SQLState: [5]byte{'4', '2', 'S', '2', '2'}, Message: "Unknown column 'nickname' in 'field list'"}
	kind, msg := domain.KindOf(classify(fmt.Errorf("update: %w", me)))
	if kind != domain.KindUpstream {
		t.Fatalf("期望上游错误, got=%v", kind)
	}
	if msg != me.Error() {
		t.Fatalf("期望消息原样保留, got=%q", msg)
	}
}

func TestClassify_无记录是上游错误(t *testing.T) {
	kind, msg := domain.KindOf(classify(gorm.ErrRecordNotFound))
	if kind != domain.KindUpstream || msg != gorm.ErrRecordNotFound.Error() {
		t.Fatalf("期望上游错误, got kind=%v msg=%q", kind, msg)
	}
}

func TestClassify_本地错误是内部错误(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	err := classify(cause)
	kind, msg := domain.KindOf(err)
	if kind != domain.KindInternal || msg != cause.Error() {
		t.Fatalf("期望内部错误, got kind=%v msg=%q", kind, msg)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望保留 cause 便于排障")
	}
}

// dryRunDB 只生成 SQL 不连库，并记录每条 UPDATE 语句。
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		DSN:                       "root:root@tcp(127.0.0.1:3306)/usercenter?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run db failed: %v", err)
	}
	var updates []string
	err = db.Callback().Update().After("gorm:update").Register("usercenter:capture_update", func(tx *gorm.DB) {
		updates = append(updates, tx.Statement.SQL.String())
	})
	if err != nil {
		t.Fatalf("register callback failed: %v", err)
	}
	return db, &updates
}

func TestUpdate_不改写主键(t *testing.T) {
	db, updates := dryRunDB(t)
	store := New(db)

	_, err := store.Update(context.Background(), "u1", map[string]any{
		"user_id":   "hijack",
		"full_name": "Ada",
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(*updates) != 1 {
		t.Fatalf("期望执行一条 UPDATE, got=%v", *updates)
	}
	set, where, _ := strings.Cut((*updates)[0], " WHERE ")
	if strings.Contains(set, "user_id") {
		t.Fatalf("期望 SET 子句不含 user_id, got=%q", set)
	}
	if !strings.Contains(set, "full_name") || !strings.Contains(where, "user_id") {
		t.Fatalf("期望按原 id 更新 full_name, got=%q", (*updates)[0])
	}
}

func TestUpdate_只有主键时不写库(t *testing.T) {
	db, updates := dryRunDB(t)
	store := New(db)

	if _, err := store.Update(context.Background(), "u1", map[string]any{"user_id": "hijack"}); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(*updates) != 0 {
		t.Fatalf("期望不执行 UPDATE, got=%v", *updates)
	}
}
