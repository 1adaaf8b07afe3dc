package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"UserCenter/internal/shared/config"
	"UserCenter/internal/shared/logs"
	transportgrpc "UserCenter/internal/shared/transport/grpc"
	transporthttp "UserCenter/internal/shared/transport/http"
	"UserCenter/internal/user/infra/store"
	"UserCenter/internal/user/interfaces"
)

func main() {
	cfgPath := flag.String("config", "", "config file path (default: search configs/conf.yml upward)")
	flag.Parse()

	config.Load(*cfgPath)
	if err := logs.Init("user", config.Conf.Log); err != nil {
		panic(err)
	}
	defer func() { _ = logs.Sync() }()
	config.OnChange(func(c config.Config) {
		logs.SetLevel(c.Log.Level)
		logs.Info("config reloaded", zap.String("log_level", logs.Level().String()))
	})

	client, closeStore, err := store.Open(config.Conf)
	if err != nil {
		logs.Fatal("open store failed", zap.Error(err), zap.String("driver", config.Conf.Store.Driver))
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	stack := transportgrpc.NewStack(transportgrpc.StackOptions{
		Log:     logs.Logx(),
		Metrics: transportgrpc.NewMetrics(reg),
		Auth:    config.Conf.Auth,
		Limit:   config.Conf.Limit,
	})
	defer stack.Close()

	server, health := transportgrpc.NewServer(stack)
	interfaces.New(client, logs.Logx()).Register(server)

	userServerHost := config.Conf.UserServer.Host
	if userServerHost == "" {
		userServerHost = "0.0.0.0"
	}
	userServerAddr := fmt.Sprintf("%s:%d", userServerHost, config.Conf.UserServer.Port)
	lis, err := net.Listen("tcp", userServerAddr)
	if err != nil {
		logs.Fatal("listen user grpc failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		logs.Info("user grpc server started", zap.String("addr", userServerAddr))
		if err := server.Serve(lis); err != nil {
			errCh <- fmt.Errorf("user grpc serve failed: %w", err)
		}
	}()

	var ops *transporthttp.Server
	if config.Conf.HTTPServer.Port > 0 {
		opsAddr := fmt.Sprintf("%s:%d", config.Conf.HTTPServer.Host, config.Conf.HTTPServer.Port)
		ops = transporthttp.NewHttpServer(opsAddr, nil, logs.Logx())
		ops.MountOps(client.Ping, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			logs.Info("ops http server started", zap.String("addr", opsAddr))
			if err := ops.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
				errCh <- fmt.Errorf("ops http serve failed: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	health.Shutdown()
	timeout := config.Conf.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if ops != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		if err := ops.Shutdown(shutdownCtx); err != nil {
			logs.Warn("ops http shutdown failed", zap.Error(err))
		}
		cancel()
	}

	stopCh := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopCh)
	}()
	select {
	case <-stopCh:
	case <-time.After(timeout):
		logs.Warn("graceful stop timeout, force stop", zap.Duration("timeout", timeout))
		server.Stop()
	}
	_ = lis.Close()
}
