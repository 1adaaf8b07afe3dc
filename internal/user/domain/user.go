package domain

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// User 是用户中心对外暴露的用户记录。
type User struct {
	UserID        string    `gorm:"column:user_id;type:varchar(64);primaryKey;comment:用户ID" json:"user_id" bson:"user_id"`
	Email         string    `gorm:"column:email;type:varchar(255);index;comment:邮箱" json:"email" bson:"email"`
	Username      string    `gorm:"column:username;type:varchar(64);index;comment:用户名" json:"username" bson:"username"`
	FullName      string    `gorm:"column:full_name;type:varchar(128);comment:全名" json:"full_name" bson:"full_name"`
	AvatarURL     string    `gorm:"column:avatar_url;type:varchar(512);comment:头像" json:"avatar_url" bson:"avatar_url"`
	Rating        float64   `gorm:"column:rating;default:0;comment:评分" json:"rating" bson:"rating"`
	CreditBalance int64     `gorm:"column:credit_balance;default:0;comment:积分余额" json:"credit_balance" bson:"credit_balance"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;comment:创建时间" json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime;comment:更新时间" json:"updated_at" bson:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Apply 把更新 body 按 json 字段名写进 u；user_id 不允许修改，未知字段或类型不符返回错误。
func (u *User) Apply(body map[string]any) error {
	next := *u
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &next,
		ErrorUnused: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.DecodeHookFuncType(wholeNumberHook),
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(body); err != nil {
		return err
	}
	next.UserID = u.UserID
	*u = next
	return nil
}

// UpdateFields 返回 body 的副本，去掉不可修改的 user_id；各存储后端写库前统一经过这里。
func UpdateFields(body map[string]any) map[string]any {
	out := maps.Clone(body)
	if out == nil {
		out = map[string]any{}
	}
	delete(out, "user_id")
	return out
}

// wholeNumberHook 拒绝把带小数的数值写进整数字段（json 数字统一解成 float64）。
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	var f float64
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f = reflect.ValueOf(data).Float()
	default:
		return data, nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("expected a whole number for %s, got %v", to, data)
	}
	return data, nil
}
