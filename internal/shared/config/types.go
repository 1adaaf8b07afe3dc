package config

import "time"

type Config struct {
	UserServer      ServerConfig  `yaml:"userserver" mapstructure:"userserver"`
	HTTPServer      ServerConfig  `yaml:"httpserver" mapstructure:"httpserver"`
	Store           StoreConfig   `yaml:"store" mapstructure:"store"`
	MySQL           MySQLConfig   `yaml:"mysql" mapstructure:"mysql"`
	MongoDB         MongoDBConfig `yaml:"mongodb" mapstructure:"mongodb"`
	Log             LogConfig     `yaml:"log" mapstructure:"log"`
	Auth            AuthConfig    `yaml:"auth" mapstructure:"auth"`
	Limit           LimitConfig   `yaml:"limit" mapstructure:"limit"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

type ServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

// StoreConfig 选择用户数据的存储后端：memory / mysql / mongodb。
type StoreConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	Charset  string `yaml:"charset" mapstructure:"charset"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
	// SlowThreshold 超过该耗时的 SQL 记为慢查询（WARN）。
	SlowThreshold time.Duration `yaml:"slow_threshold" mapstructure:"slow_threshold"`
}

type MongoDBConfig struct {
	URI            string        `yaml:"uri" mapstructure:"uri"`
	Database       string        `yaml:"database" mapstructure:"database"`
	Collection     string        `yaml:"collection" mapstructure:"collection"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type AuthConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	JWTSecret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	// SkipMethods 不需要鉴权的 gRPC 全方法名，例如 /user.User/Get。
	SkipMethods []string `yaml:"skip_methods" mapstructure:"skip_methods"`
}

// LimitConfig 控制服务栈的并发上限与排队长度。
type LimitConfig struct {
	MaxInFlight int `yaml:"max_in_flight" mapstructure:"max_in_flight"`
	QueueSize   int `yaml:"queue_size" mapstructure:"queue_size"`
}
