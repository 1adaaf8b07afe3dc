package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"UserCenter/modules/kit/logx"
)

func serve(s *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestNewHttpServer_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	s := NewHttpServer(":0", gin.New(), logx.NewZapLogger(zap.New(core)))
	if w := serve(s, "/healthz"); w.Code != nethttp.StatusOK {
		t.Fatalf("unexpected status code: got=%d want=%d", w.Code, nethttp.StatusOK)
	}

	entries := recorded.FilterMessage("access GET /healthz").All()
	if len(entries) != 1 {
		t.Fatalf("期望一行访问日志, got=%d", recorded.Len())
	}
	fields := entries[0].ContextMap()
	if fields["result"] != "success" || fields["trace_id"] == nil {
		t.Fatalf("访问日志字段不符合预期: %v", fields)
	}
}

func TestMountOps_Readyz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	var readyErr error
	s := NewHttpServer(":0", gin.New(), logx.NewZapLogger(zap.New(core)))
	s.MountOps(func(context.Context) error { return readyErr }, nil)

	if w := serve(s, "/readyz"); w.Code != nethttp.StatusOK {
		t.Fatalf("期望就绪时 200, got=%d", w.Code)
	}

	readyErr = errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	w := serve(s, "/readyz")
	if w.Code != nethttp.StatusServiceUnavailable || !strings.Contains(w.Body.String(), "connection refused") {
		t.Fatalf("期望依赖不可用时 503, got=%d body=%s", w.Code, w.Body.String())
	}
	if recorded.FilterField(zap.String("result", "failure")).Len() != 1 {
		t.Fatalf("期望失败的访问日志")
	}
}

func TestMountOps_Metrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "usercenter_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	s := NewHttpServer(":0", gin.New(), nil)
	s.MountOps(nil, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	w := serve(s, "/metrics")
	if w.Code != nethttp.StatusOK || !strings.Contains(w.Body.String(), "usercenter_test_total 1") {
		t.Fatalf("期望导出指标, got=%d body=%s", w.Code, w.Body.String())
	}
}
