package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/smarthealth/internal/health/onboarding"
	"github.com/louisbranch/smarthealth/internal/platform/requestctx"
	"github.com/louisbranch/smarthealth/internal/platform/timeouts"
	webapp "github.com/louisbranch/smarthealth/internal/services/web/app"
	"github.com/louisbranch/smarthealth/internal/services/web/modules"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/observability"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
	webstatic "github.com/louisbranch/smarthealth/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// DBPath selects SQLite storage; empty keeps state in memory.
	DBPath string
	// DeviceKey signs device cookies; empty generates one per process.
	DeviceKey           []byte
	TrustForwardedProto bool
	// Timings overrides the onboarding delays.
	Timings *onboarding.Timings
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	runtime    *Runtime
}

// NewHandler builds the root handler over rt.
func NewHandler(rt *Runtime) (http.Handler, error) {
	if err := rt.validate(); err != nil {
		return nil, err
	}
	deps := rt.moduleDependencies()
	screens, err := webapp.BuildRootHandler(webapp.Config{
		Onboarded:           rt.onboarded,
		PublicModules:       modules.DefaultPublicModules(deps),
		ScreenModules:       modules.DefaultScreenModules(deps),
		RequestSchemePolicy: rt.SchemePolicy,
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.Handle("/", httpx.Chain(screens, httpx.NoStore(), rt.Devices.Middleware))
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
		observability.Trace(nil),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// onboarded reports whether the requesting device finished onboarding with a
// role. A device whose state cannot be loaded is sent back to onboarding,
// which renders the storage error.
func (rt *Runtime) onboarded(r *http.Request) bool {
	store, err := rt.States.Store(r.Context(), requestctx.DeviceIDFromContext(r.Context()))
	if err != nil {
		return false
	}
	return store.Onboarded() && store.Role().IsSet()
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	rt, err := NewRuntime(cfg)
	if err != nil {
		return nil, err
	}
	handler, err := NewHandler(rt)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		runtime: rt,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go s.runtime.runJanitor(janitorCtx, timeouts.SweepInterval, timeouts.DeviceIdle)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if err := s.runtime.Close(); err != nil {
		log.Printf("close web runtime: %v", err)
	}
}

// runJanitor evicts idle device stores and abandoned onboarding flows every
// interval until ctx ends.
func (rt *Runtime) runJanitor(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rt.sweep(idle)
		}
	}
}

func (rt *Runtime) sweep(idle time.Duration) {
	states := rt.States.Sweep(idle)
	flows := rt.Flows.Sweep(idle)
	if states > 0 || flows > 0 {
		log.Printf("web janitor swept states=%d flows=%d", states, flows)
	}
}
