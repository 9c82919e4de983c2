package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wsld/internal/host"
	"wsld/internal/lifecycle"
	"wsld/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	RefreshRegistered(ctx context.Context) ([]*lifecycle.Handle, error)
	GetRegistered(name string) (*lifecycle.Handle, error)
	GetAvailableToInstall(ctx context.Context) ([]types.Definition, error)
	Definition(ctx context.Context, name string) (types.Definition, error)
	RunningNames(ctx context.Context) ([]string, error)
	Install(ctx context.Context, name string) error
	Launch(ctx context.Context, name string) error
	Terminate(ctx context.Context, name string) error
	Unregister(ctx context.Context, name string) error
	Subscribe(fn func(host.RunningSet)) *lifecycle.Subscription
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	// Body limit for all endpoints (commands take no body, keep it tight)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/distributions", func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := joinContexts(serverBaseCtx, r.Context())
			defer cancel()
			handles, err := svc.RefreshRegistered(ctx)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			out := make([]types.Distribution, 0, len(handles))
			for _, h := range handles {
				out = append(out, h.Info())
			}
			writeJSON(w, types.DistributionsResponse{Distributions: out})
		})

		r.Get("/distributions/available", func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := joinContexts(serverBaseCtx, r.Context())
			defer cancel()
			defs, err := svc.GetAvailableToInstall(ctx)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, types.AvailableResponse{Definitions: defs})
		})

		r.Get("/distributions/running", func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := joinContexts(serverBaseCtx, r.Context())
			defer cancel()
			names, err := svc.RunningNames(ctx)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			if names == nil {
				names = []string{}
			}
			writeJSON(w, types.RunningResponse{Running: names})
		})

		r.Get("/distributions/watch", watchHandler(svc))

		r.Get("/distributions/{name}", func(w http.ResponseWriter, r *http.Request) {
			h, err := svc.GetRegistered(chi.URLParam(r, "name"))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, h.Info())
		})

		r.Get("/distributions/{name}/logo", func(w http.ResponseWriter, r *http.Request) {
			def, err := svc.Definition(r.Context(), chi.URLParam(r, "name"))
			if err != nil {
				writeServiceError(w, err)
				return
			}
			if len(def.Logo) == 0 {
				writeJSONError(w, http.StatusNotFound, "no logo for distribution: "+def.Name)
				return
			}
			w.Header().Set("Content-Type", logoContentType(def))
			w.Write(def.Logo)
		})

		r.Post("/distributions/{name}/install", commandHandler(svc, "install", svc.Install))
		r.Post("/distributions/{name}/launch", commandHandler(svc, "launch", svc.Launch))
		r.Post("/distributions/{name}/terminate", commandHandler(svc, "terminate", svc.Terminate))
		r.Post("/distributions/{name}/unregister", commandHandler(svc, "unregister", svc.Unregister))

		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Status())
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("starting"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// commandHandler dispatches one lifecycle command and acknowledges with 202.
// Completion is observed through a later refresh or the watch stream.
func commandHandler(svc Service, op string, fn func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if strings.TrimSpace(name) == "" {
			writeJSONError(w, http.StatusBadRequest, "distribution name is required")
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		start := time.Now()
		lvl := requestLogLevel(r)
		if err := fn(ctx, name); err != nil {
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			writeServiceError(w, err)
			if lvl >= LevelError {
				if zlog != nil {
					z := zlog.Error().Str("op", op).Str("name", name).Dur("dur", time.Since(start))
					if rid := middleware.GetReqID(r.Context()); rid != "" {
						z = z.Str("request_id", rid)
					}
					z.Err(err).Msg("command failed")
				} else {
					log.Printf("command failed op=%s name=%s dur=%s err=%v", op, name, time.Since(start), err)
				}
			}
			return
		}
		if lvl >= LevelInfo {
			if zlog != nil {
				z := zlog.Info().Str("op", op).Str("name", name).Dur("dur", time.Since(start))
				if rid := middleware.GetReqID(r.Context()); rid != "" {
					z = z.Str("request_id", rid)
				}
				z.Msg("command dispatched")
			} else {
				log.Printf("command dispatched op=%s name=%s dur=%s", op, name, time.Since(start))
			}
		}
		writeJSONStatus(w, http.StatusAccepted, types.CommandResponse{Status: "dispatched", Op: op, Distribution: name})
	}
}

// watchHandler streams NDJSON running-set events until the client leaves.
func watchHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		var flush func()
		if f, ok := w.(http.Flusher); ok {
			flush = f.Flush
		}

		updates := make(chan host.RunningSet, 1)
		sub := svc.Subscribe(func(set host.RunningSet) {
			select {
			case updates <- set:
			default:
			}
		})
		defer sub.Cancel()

		// Join server base context with request context so shutdown ends streams too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()

		w.WriteHeader(http.StatusOK)
		if flush != nil {
			flush()
		}
		lvl := requestLogLevel(r)
		enc := json.NewEncoder(w)
		for {
			select {
			case <-ctx.Done():
				return
			case set := <-updates:
				ev := types.RunningEvent{Running: set.Names(), At: time.Now().UTC()}
				if err := enc.Encode(ev); err != nil {
					return
				}
				if flush != nil {
					flush()
				}
				if lvl >= LevelDebug {
					if zlog != nil {
						zlog.Debug().Strs("running", ev.Running).Msg("watch event")
					} else {
						log.Printf("watch> running=%v", ev.Running)
					}
				}
			}
		}
	}
}

func logoContentType(def types.Definition) string {
	switch {
	case strings.HasSuffix(strings.ToLower(def.LogoFile), ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(strings.ToLower(def.LogoFile), ".png"):
		return "image/png"
	default:
		return http.DetectContentType(def.Logo)
	}
}

// writeJSON writes a 200 JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// writeJSONStatus writes a JSON response with an explicit status code.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
