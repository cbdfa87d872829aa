// Package server wires the VITTIN page, the chat endpoints and the
// newsletter form into an HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/a-h/templ"

	"github.com/vittin/site/client"
	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/internal/config"
	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/internal/newsletter"
	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/internal/website/landing"
	"github.com/vittin/site/pkg/health"
	"github.com/vittin/site/pkg/i18n"
	"github.com/vittin/site/pkg/limits"
	"github.com/vittin/site/pkg/logging"
)

// DefaultSeed drives the background particles when Options.Seed is zero.
const DefaultSeed = 2024

// Options are the collaborators of a Server. Config, Service, Registry and
// Store are required.
type Options struct {
	Config   *config.Config
	Service  *chat.Service
	Registry *chat.Registry
	Store    *content.Store
	Logger   logging.Logger

	// Optional; built from Config when nil.
	Bundle  *i18n.Bundle
	Health  *health.Checker
	Limiter limits.RateLimiter
	Conns   *limits.ConnectionLimiter

	Seed uint64
}

// Server is the VITTIN HTTP server.
type Server struct {
	cfg      *config.Config
	service  *chat.Service
	registry *chat.Registry
	store    *content.Store
	logger   logging.Logger
	bundle   *i18n.Bundle
	health   *health.Checker
	limiter  limits.RateLimiter
	conns    *limits.ConnectionLimiter
	seed     uint64

	handler http.Handler
	srv     *http.Server
}

// New builds the server and its routes.
func New(opts Options) *Server {
	s := &Server{
		cfg:      opts.Config,
		service:  opts.Service,
		registry: opts.Registry,
		store:    opts.Store,
		logger:   opts.Logger,
		bundle:   opts.Bundle,
		health:   opts.Health,
		limiter:  opts.Limiter,
		conns:    opts.Conns,
		seed:     opts.Seed,
	}
	if s.logger == nil {
		s.logger = logging.NopLogger{}
	}
	if s.bundle == nil {
		s.bundle = website.NewBundle()
	}
	if s.limiter == nil {
		s.limiter = limits.NewTokenBucket(s.cfg.Chat.Rate, s.cfg.Chat.Burst)
	}
	if s.conns == nil {
		s.conns = limits.NewConnectionLimiter(s.cfg.Chat.MaxConnsPerIP)
	}
	if s.health == nil {
		s.health = DefaultChecker("dev", s.service, s.registry)
	}
	if s.seed == 0 {
		s.seed = DefaultSeed
	}

	s.handler = Chain(s.routes(),
		logging.RequestLogger(s.logger),
		Recovery(),
		SecureHeaders(DefaultSecureHeadersConfig()),
		Locale(s.bundle, s.cfg.Site.Locale),
	)

	s.srv = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	return s
}

// DefaultChecker registers the chat credential (non-critical) and session
// capacity checks.
func DefaultChecker(version string, service *chat.Service, registry *chat.Registry) *health.Checker {
	hc := health.NewChecker(version)
	hc.AddCheck("chat", health.CredentialCheck(service.Online()), 0)
	hc.AddCheck("sessions", health.CapacityCheck("chat sessions", registry.Len, registry.Max()), 0)
	return hc
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", client.Handler()))

	byIP := limits.Middleware(s.limiter, limits.ClientIP)
	mux.Handle("POST "+website.ChatPath, byIP(http.HandlerFunc(s.handleChat)))
	mux.HandleFunc("GET "+website.ChatWSPath, s.handleChatWS)

	mux.Handle("POST "+website.NewsletterURL, newsletter.Handler(s.bundle.Translator(s.cfg.Site.Locale)))

	mux.Handle("GET /healthz", s.health.LivenessHandler())
	mux.Handle("GET /readyz", s.health.ReadinessHandler())

	return mux
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// PageOptions returns the render options for one page load: a fresh chat
// session id and the current catalog.
func (s *Server) PageOptions(t *i18n.Translator) landing.Options {
	return landing.Options{
		Translator:       t,
		Catalog:          s.store.Current(),
		BaseURL:          s.cfg.Site.BaseURL,
		Year:             s.cfg.Site.Year,
		SessionID:        chat.NewID(),
		ChatOnline:       s.service.Online(),
		MaxMessageLength: s.cfg.Chat.MaxMessageLength,
		Seed:             s.seed,
		ShowHologram:     true,
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	opts := s.PageOptions(i18n.TranslatorFromContext(r.Context()))

	// The page embeds a session id, so it must not be shared by caches.
	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(landing.Page(opts)).ServeHTTP(w, r)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
