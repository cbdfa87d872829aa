package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/internal/chat/gemini"
	"github.com/vittin/site/internal/config"
	"github.com/vittin/site/pkg/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// app holds the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:   "vittin",
		Short: "VITTIN promotional site and chat assistant",
		Long: `vittin serves the VITTIN single-page site: hero, themes, latest videos,
about, newsletter and the VITTIN BOT chat widget backed by Gemini.

Configuration is read, lowest priority first, from defaults, vittin.yaml
(or --config, or VITTIN_CONFIG_FILE), VITTIN_* environment variables and
flags. The chat credential is VITTIN_CHAT_API_KEY, GEMINI_API_KEY or API_KEY.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./vittin.yaml, or VITTIN_CONFIG_FILE)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	bindFlags(a.v, pf, map[string]string{
		"log-level":  "log.level",
		"log-format": "log.format",
	})

	root.AddCommand(
		newServeCmd(a),
		newRenderCmd(a),
		newChatCmd(a),
		newAuditCmd(a),
		newVersionCmd(),
	)
	return root
}

// bindFlags binds each flag to its config key so flags override file and env.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	fs.VisitAll(func(f *pflag.Flag) {
		if key, ok := keys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})
}

// defaultConfigFiles are looked up in the working directory when neither
// --config nor VITTIN_CONFIG_FILE is set. Only these exact names are tried,
// so the extensionless vittin binary next to them is never parsed.
var defaultConfigFiles = []string{"vittin.yaml", "vittin.yml"}

// configFile returns the file to read, or "" when there is none.
func (a *app) configFile() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	if env := os.Getenv("VITTIN_CONFIG_FILE"); env != "" {
		return env
	}
	for _, name := range defaultConfigFiles {
		if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() {
			return name
		}
	}
	return ""
}

// load reads the config file, then builds and validates the typed config.
func (a *app) load(stderr io.Writer) error {
	if file := a.configFile(); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger = logger
	logging.SetDefault(logger)

	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", logging.String("file", used))
	}
	return nil
}

// chatService builds the send flow; without a credential it stays offline
// and never constructs the provider.
func (a *app) chatService() *chat.Service {
	var provider chat.Provider
	if a.cfg.ChatEnabled() {
		provider = gemini.New(a.cfg.Chat.APIKey)
	}
	return chat.NewService(chat.Config{
		APIKey:            a.cfg.Chat.APIKey,
		Model:             a.cfg.Chat.Model,
		SystemInstruction: a.cfg.Chat.SystemInstruction,
	}, provider, a.logger)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "vittin %s\n", version)
			return err
		},
	}
}
