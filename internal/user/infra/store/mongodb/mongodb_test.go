package mongodb

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"UserCenter/internal/user/domain"
)

func TestClassify(t *testing.T) {
	cmdErr := mongo.CommandError{Code: 13, Name: "Unauthorized", Message: "command find requires authentication"}
	writeErr := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}

	cases := []struct {
		name string
		err  error
		kind domain.Kind
	}{
		{"无文档", mongo.ErrNoDocuments, domain.KindUpstream},
		{"命令错误", cmdErr, domain.KindUpstream},
		{"写错误", writeErr, domain.KindUpstream},
		{"本地错误", errors.New("server selection timeout"), domain.KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, msg := domain.KindOf(classify(tc.err))
			if kind != tc.kind {
				t.Fatalf("期望 %v, got=%v", tc.kind, kind)
			}
			if msg != tc.err.Error() {
				t.Fatalf("期望消息原样保留, got=%q want=%q", msg, tc.err.Error())
			}
		})
	}
}

func TestUpdateDoc_不改写主键(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	body := map[string]any{"user_id": "hijack", "full_name": "Ada"}

	doc := updateDoc(body, now)
	if len(doc) != 1 || doc[0].Key != "$set" {
		t.Fatalf("期望只有 $set, got=%v", doc)
	}
	set, ok := doc[0].Value.(bson.M)
	if !ok {
		t.Fatalf("期望 $set 是 bson.M, got=%T", doc[0].Value)
	}
	if _, ok := set["user_id"]; ok {
		t.Fatalf("期望 $set 不含 user_id, got=%v", set)
	}
	if set["full_name"] != "Ada" || set["updated_at"] != now {
		t.Fatalf("期望写入 full_name 并刷新 updated_at, got=%v", set)
	}
	if body["user_id"] != "hijack" {
		t.Fatalf("期望入参不被修改, got=%v", body)
	}
}
