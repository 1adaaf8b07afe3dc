package domain

import "testing"

func TestUserApply_按json字段更新(t *testing.T) {
	u := User{UserID: "u1", FullName: "old"}
	err := u.Apply(map[string]any{
		"full_name":      "Ada Lovelace",
		"rating":         4.5,
		"credit_balance": float64(120),
		"user_id":        "hijack",
	})
	if err != nil {
		t.Fatalf("期望更新成功, err=%v", err)
	}
	if u.FullName != "Ada Lovelace" || u.Rating != 4.5 || u.CreditBalance != 120 {
		t.Fatalf("更新结果不符合预期: %+v", u)
	}
	if u.UserID != "u1" {
		t.Fatalf("期望 user_id 不可修改, got=%q", u.UserID)
	}
}

func TestUserApply_未知字段失败且不修改原值(t *testing.T) {
	u := User{UserID: "u1", FullName: "old"}
	if err := u.Apply(map[string]any{"full_name": "new", "nickname": "x"}); err == nil {
		t.Fatalf("期望未知字段返回错误")
	}
	if u.FullName != "old" {
		t.Fatalf("期望失败时原值不变, got=%q", u.FullName)
	}
}

func TestUserApply_整数字段拒绝小数(t *testing.T) {
	u := User{UserID: "u1", CreditBalance: 7}
	if err := u.Apply(map[string]any{"credit_balance": 10.9}); err == nil {
		t.Fatalf("期望小数写入整数字段返回错误")
	}
	if u.CreditBalance != 7 {
		t.Fatalf("期望失败时原值不变, got=%d", u.CreditBalance)
	}

	if err := u.Apply(map[string]any{"credit_balance": float64(11)}); err != nil {
		t.Fatalf("期望整数值的 float64 可以写入, err=%v", err)
	}
	if u.CreditBalance != 11 {
		t.Fatalf("期望 credit_balance=11, got=%d", u.CreditBalance)
	}
}

func TestUpdateFields_去掉user_id且不修改入参(t *testing.T) {
	body := map[string]any{"user_id": "new", "full_name": "Ada"}
	out := UpdateFields(body)
	if _, ok := out["user_id"]; ok {
		t.Fatalf("期望 user_id 被去掉, got=%v", out)
	}
	if out["full_name"] != "Ada" {
		t.Fatalf("期望其余字段保留, got=%v", out)
	}
	if body["user_id"] != "new" {
		t.Fatalf("期望入参不被修改, got=%v", body)
	}
	if got := UpdateFields(nil); got == nil || len(got) != 0 {
		t.Fatalf("期望 nil body 返回空 map, got=%v", got)
	}
}
