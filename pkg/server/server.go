package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/logger"
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi"
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi/chat"
)

// ═══════════════════════════════════════════════════════════════════════════
// Server
// ═══════════════════════════════════════════════════════════════════════════

// Server HTTP 传输层
//
// 并发请求间不共享任何可变状态，只共享只读配置与 Handler。
type Server struct {
	cfg     *mockapi.Config
	handler *chat.Handler
	httpSrv *http.Server
}

// New 创建 Server
func New(cfg *mockapi.Config, handler *chat.Handler) *Server {
	s := &Server{cfg: cfg, handler: handler}
	s.httpSrv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler 返回完整的 HTTP handler
//
// mux 外层包裹 otelhttp，每个请求获得一个外层 HTTP span，
// 核心逻辑产生的 workflow/retrieval/llm span 挂在它下面。
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/chat", s.handleChat)
	return otelhttp.NewHandler(mux, "chat.request",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}))
}

// ListenAndServe 启动监听，阻塞直到服务关闭
func (s *Server) ListenAndServe() error {
	logger.Infof("listening on %s (service=%s version=%s)", s.cfg.Addr, s.cfg.Service, s.cfg.Version)
	return s.httpSrv.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// ═══════════════════════════════════════════════════════════════════════════
// 路由处理
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// 先填默认值再反序列化，未出现的字段保持默认；未知字段忽略
	req := mockapi.NewChatRequest(s.cfg)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	// Schema 校验在核心逻辑之前完成
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	output, latencyMS, err := s.handler.Handle(r.Context(), req)
	if err != nil {
		if mockapi.IsSimulatedError(err) {
			logger.Debugf("simulated provider error: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		logger.Errorf("chat request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, mockapi.ChatResponse{
		Output:    output,
		Provider:  s.cfg.Provider,
		Model:     s.cfg.Model,
		LatencyMS: latencyMS,
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// 响应辅助
// ═══════════════════════════════════════════════════════════════════════════

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
