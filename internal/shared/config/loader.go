package config

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const envPrefix = "USERCENTER"

var (
	hooksMu sync.Mutex
	hooks   []func(Config)
)

// OnChange 订阅配置文件变更。回调拿到的是一份新解析且已校验的配置；
// Conf 本身启动后不再改写，需要热更新的字段由订阅方自行切换（例如日志级别）。
func OnChange(fn func(Config)) {
	if fn == nil {
		return
	}
	hooksMu.Lock()
	hooks = append(hooks, fn)
	hooksMu.Unlock()
}

func load(configPath string, watch bool) (Config, error) {
	if !fileExist(configPath) {
		return Config{}, fmt.Errorf("config file not exist, configPath=%v", configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	setDefaults(v)
	// 环境变量优先：USERCENTER_MYSQL_PASSWORD 覆盖 mysql.password
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
	}
	conf, err := decode(v)
	if err != nil {
		return Config{}, err
	}

	if watch {
		v.OnConfigChange(func(e fsnotify.Event) {
			next, err := decode(v)
			if err != nil {
				// 变更后的配置非法：保留旧配置继续运行
				log.Printf("配置文件变更但解析失败，忽略本次变更, file=%s err=%v", e.Name, err)
				return
			}
			hooksMu.Lock()
			subs := slices.Clone(hooks)
			hooksMu.Unlock()
			for _, fn := range subs {
				fn(next)
			}
		})
		v.WatchConfig()
	}
	return conf, nil
}

func decode(v *viper.Viper) (Config, error) {
	var conf Config
	err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("viper unmarshal config data: %w", err)
	}
	// 兼容本地开发：未配置 jwt_secret 时回退到 JWT_SECRET 环境变量
	if conf.Auth.JWTSecret == "" {
		conf.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("userserver.host", "0.0.0.0")
	v.SetDefault("userserver.port", 50051)
	v.SetDefault("httpserver.host", "0.0.0.0")
	v.SetDefault("httpserver.port", 8080)
	v.SetDefault("store.driver", "memory")
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("mysql.max_idle", 10)
	v.SetDefault("mysql.max_conn", 50)
	v.SetDefault("mysql.slow_threshold", 200*time.Millisecond)
	v.SetDefault("mongodb.database", "usercenter")
	v.SetDefault("mongodb.collection", "users")
	v.SetDefault("mongodb.connect_timeout", 3*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.skip_methods", []string{})
	v.SetDefault("limit.max_in_flight", 256)
	v.SetDefault("limit.queue_size", 1024)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
