// llm-mock-api 模拟一次 chat/LLM 调用，用于生成观测链路
//
// 启动后监听 LLM_ADDR（默认 :8000），span 以 stdout 导出，
// 便于在本地直接观察 workflow/retrieval/llm 的层级结构。
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/logger"
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi"
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi/chat"
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/server"
)

func main() {
	// .env 为可选的本地开发便利
	_ = godotenv.Load()

	cfg, err := mockapi.LoadConfig()
	if err != nil {
		logger.Errorf("load config: %v", err)
		os.Exit(1)
	}

	shutdownTracing, err := setupTracing(cfg)
	if err != nil {
		logger.Errorf("setup tracing: %v", err)
		os.Exit(1)
	}

	handler, err := chat.New(cfg)
	if err != nil {
		logger.Errorf("init handler: %v", err)
		os.Exit(1)
	}

	srv := server.New(cfg, handler)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		logger.Errorf("server: %v", err)
	case <-ctx.Done():
		logger.Infof("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("server shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warnf("tracer shutdown: %v", err)
	}
}

// setupTracing 配置全局 TracerProvider
//
// stdout 导出器让链路直接可见；生产环境只需替换导出器，
// 核心逻辑对导出方式无感知。
func setupTracing(cfg *mockapi.Config) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.Service),
			semconv.ServiceVersion(cfg.Version),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
