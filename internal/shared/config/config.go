package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const defaultConfigRelPath = "configs/conf.yml"

var Conf Config

// Load 加载配置到 Conf，失败直接 panic（启动期错误）。
//
// 约定：
// 1) 传入 cfgName（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`。
func Load(cfgName string) {
	curDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	path := cfgName
	switch {
	case cfgName == "":
		path = findConfigUpward(curDir)
	case !filepath.IsAbs(cfgName):
		path = filepath.Join(curDir, cfgName)
	}

	conf, err := load(path, true)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// LoadFile 读取并校验单个配置文件，不注册热更新。
func LoadFile(path string) (Config, error) {
	return load(path, false)
}

// Validate 做启动期配置校验。
func (c *Config) Validate() error {
	var errs []error
	if c.UserServer.Port <= 0 {
		errs = append(errs, fmt.Errorf("userserver.port must be positive, got=%d", c.UserServer.Port))
	}
	if c.HTTPServer.Port < 0 {
		errs = append(errs, fmt.Errorf("httpserver.port must not be negative, got=%d", c.HTTPServer.Port))
	}
	if !slices.Contains([]string{"memory", "mysql", "mongodb"}, c.Store.Driver) {
		errs = append(errs, fmt.Errorf("store.driver must be one of memory/mysql/mongodb, got=%q", c.Store.Driver))
	}
	if c.Limit.MaxInFlight <= 0 {
		errs = append(errs, fmt.Errorf("limit.max_in_flight must be positive, got=%d", c.Limit.MaxInFlight))
	}
	if c.Limit.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("limit.queue_size must be positive, got=%d", c.Limit.QueueSize))
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret (or JWT_SECRET) is required when auth.enabled"))
	}
	return errors.Join(errs...)
}

func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("config file not exist, searched configs/conf.yml from: " + startDir)
		}
		dir = parent
	}
}
