package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/internal/server"
	"github.com/vittin/site/pkg/limits"
	"github.com/vittin/site/pkg/logging"
	"github.com/vittin/site/pkg/shutdown"
)

const (
	sweepInterval  = time.Minute
	reloadDebounce = 250 * time.Millisecond
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Serve the site, chat API and websocket",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	f := cmd.Flags()
	f.String("host", "", "listen host")
	f.Int("port", 0, "listen port")
	f.String("content", "", "YAML file overriding the page content")
	f.Bool("watch", false, "reload the content file when it changes")
	bindFlags(a.v, f, map[string]string{
		"host":    "server.host",
		"port":    "server.port",
		"content": "content.file",
		"watch":   "content.watch",
	})

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	cfg, log := a.cfg, a.logger

	store, err := content.NewStore(cfg.Content.File)
	if err != nil {
		return err
	}

	service := a.chatService()
	if !service.Online() {
		log.Warn("chat credential not configured, chat runs offline")
	}
	registry := chat.NewRegistry(cfg.Chat.SessionTTL, cfg.Chat.MaxSessions)
	limiter := limits.NewTokenBucket(cfg.Chat.Rate, cfg.Chat.Burst)

	checker := server.DefaultChecker(version, service, registry)
	checker.AddCriticalCheck("content", func(context.Context) error {
		return store.Current().Validate()
	}, 0)

	srv := server.New(server.Options{
		Config:   cfg,
		Service:  service,
		Registry: registry,
		Store:    store,
		Logger:   log,
		Health:   checker,
		Limiter:  limiter,
	})

	sh := shutdown.NewHandler(cfg.Server.ShutdownTimeout, log)
	sh.RegisterFunc("http", shutdown.PriorityHTTP, srv.Shutdown)
	sh.Register(shutdown.CloseableHook("chat registry", shutdown.PriorityChat, registry))

	if cfg.Content.Watch {
		w, err := content.NewWatcher(store, reloadDebounce, log)
		if err != nil {
			return err
		}
		w.OnReload = func(err error) {
			if err == nil {
				log.Info("content reloaded", logging.String("file", store.Path()))
			}
		}
		sh.Register(shutdown.CloseableHook("content watcher", shutdown.PriorityWatcher, w))
		go w.Run(ctx)
	}

	go registry.Run(ctx, sweepInterval)
	go limiter.Run(ctx, sweepInterval)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Info("vittin started",
		logging.String("addr", cfg.Server.Addr()),
		logging.String("model", service.Model()),
		logging.Bool("chat_online", service.Online()),
	)

	select {
	case err := <-errCh:
		_ = sh.Shutdown()
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return sh.Shutdown()
}
