package logs

import (
	"path/filepath"
	"testing"

	"UserCenter/internal/shared/config"

	"go.uber.org/zap/zapcore"
)

func TestInit_级别解析失败回退到info(t *testing.T) {
	if err := Init("test", config.LogConfig{Level: "not-a-level"}); err != nil {
		t.Fatalf("err=%v", err)
	}
	if Level() != zapcore.InfoLevel {
		t.Fatalf("期望回退到 info, got=%v", Level())
	}
}

func TestSetLevel_运行期切换(t *testing.T) {
	if err := Init("test", config.LogConfig{Level: "info", FileDir: filepath.Join(t.TempDir(), "user.log")}); err != nil {
		t.Fatalf("err=%v", err)
	}
	SetLevel("DEBUG")
	if Level() != zapcore.DebugLevel {
		t.Fatalf("期望切换到 debug, got=%v", Level())
	}
	if !Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("期望全局 logger 立即感知新级别")
	}
	SetLevel("info")
}

func TestLogger_未初始化时不为nil(t *testing.T) {
	if Logger() == nil || Logx() == nil {
		t.Fatalf("期望全局 logger 始终可用")
	}
	Info("noop before init")
}
