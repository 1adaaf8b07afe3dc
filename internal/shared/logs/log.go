package logs

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"UserCenter/internal/shared/config"
	"UserCenter/modules/kit/logx"
)

// 进程级日志 sink：启动时 Init 一次，之后只读；未初始化前是 Nop，不会空指针。
var (
	logger atomic.Pointer[zap.Logger]
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	logger.Store(zap.NewNop())
}

func Init(appName string, cfg config.LogConfig) error {
	// 1) 解析日志级别：默认是 info
	level.SetLevel(parseLevel(cfg.Level))

	// 2) console 和 file 共用的编码器配置
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// 3) 控制台：彩色级别，便于本地阅读
	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleCfg)
	consoleSyncer := zapcore.Lock(os.Stderr)

	// 4) 文件：JSON 结构化输出 + lumberjack 切割；不写文件时只输出到控制台
	core := zapcore.NewCore(consoleEncoder, consoleSyncer, level)
	if cfg.FileDir != "" {
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		var fileWriter io.Writer = &lumberjack.Logger{
			Filename:   cfg.FileDir,
			MaxSize:    max(1, cfg.MaxSize),    // 单个文件最大大小（MB），至少 1
			MaxBackups: max(0, cfg.MaxBackups), // 最多保留多少个旧文件
			MaxAge:     max(0, cfg.MaxAge),     // 最多保留多少天的旧文件
			Compress:   cfg.Compress,
		}
		// 两路 core：不会把带颜色的 ANSI 转义写进日志文件
		core = zapcore.NewTee(
			core,
			zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(fileWriter), level),
		)
	}

	// 5) 开发模式：warn 及以上自动带堆栈
	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	// 6) 替换全局 logger：如果之前初始化过，先 Sync 刷盘
	old := logger.Swap(zap.New(core, opts...).Named(appName))
	_ = old.Sync()
	return nil
}

// SetLevel 运行期切换日志级别（配置热更新时调用）。
func SetLevel(lvl string) {
	level.SetLevel(parseLevel(lvl))
}

// Level 返回当前生效的日志级别。
func Level() zapcore.Level {
	return level.Level()
}

// Logger 返回全局 zap logger（已带 caller skip 以外的所有选项）。
func Logger() *zap.Logger {
	return logger.Load()
}

// Logx 返回实现 logx.Logger 的全局 logger，供中间件/处理器注入。
func Logx() logx.Logger {
	return logx.NewZapLogger(Logger())
}

// Sync 刷盘，进程退出前调用。
func Sync() error {
	return Logger().Sync()
}

func parseLevel(s string) zapcore.Level {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		// 解析失败则回退到 info
		return zapcore.InfoLevel
	}
	return lvl
}

// 常用日志级别的辅助函数，fields 用 zap.String / zap.Int 等构造结构化字段。

func Debug(msg string, fields ...zap.Field) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

// Fatal 输出 Fatal 级别日志，然后退出程序（os.Exit(1)）。
func Fatal(msg string, fields ...zap.Field) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Fatal(msg, fields...)
}
