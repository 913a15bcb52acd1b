// Package cmd implements the pokedex command line.
package cmd

import (
	"context"
	"fmt"
	"io"

	"pokedex/internal/config"
	"pokedex/internal/logging"
	"pokedex/internal/pokeapi"
	"pokedex/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// env is everything a subcommand needs, built once per invocation.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	sync     func() error
	provider *telemetry.Provider
	client   *pokeapi.Client
}

func (e *env) close(ctx context.Context) {
	if e == nil {
		return
	}
	if err := e.provider.Shutdown(ctx); err != nil {
		e.logger.Warn("telemetry shutdown failed", zap.Error(err))
	}
	_ = e.sync()
}

// runFunc is a command body that receives the per-invocation env.
type runFunc func(cmd *cobra.Command, args []string, e *env) error

// NewRootCmd builds the pokedex command tree. Each call returns an
// independent tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()
	var cfgFile string

	root := &cobra.Command{
		Use:   "pokedex",
		Short: "Browse Pokémon from PokéAPI",
		Long: `pokedex shows the first twelve Pokémon as cards and lets you look
one up by name. Without a subcommand it starts the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// withEnv builds the env before fn runs and tears it down afterwards,
	// whether or not fn fails.
	withEnv := func(fn runFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context(), v, cfgFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.close(context.WithoutCancel(cmd.Context()))
			return fn(cmd, args, e)
		}
	}
	root.RunE = withEnv(runBrowser)

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is "+config.ConfigFile()+")")
	flags.String("base-url", pokeapi.DefaultBaseURL, "PokéAPI pokemon endpoint")
	flags.String("log-file", logging.DefaultPath(), "log file path")
	flags.String("log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	_ = v.BindPFlag("api.base_url", flags.Lookup("base-url"))
	_ = v.BindPFlag("logging.file", flags.Lookup("log-file"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))

	root.AddCommand(
		newListCmd(withEnv),
		newGetCmd(withEnv),
	)
	return root
}

// newEnv loads configuration and builds the logger, tracer provider and
// API client. A log file that cannot be opened is reported on stderr and
// logging is disabled.
func newEnv(ctx context.Context, v *viper.Viper, cfgFile string, stderr io.Writer) (*env, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := config.ReadFile(v, cfgFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, sync, err := logging.NewOrNop(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(stderr, "pokedex: logging disabled: %v\n", err)
	}

	provider, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		_ = sync()
		return nil, fmt.Errorf("failed to set up telemetry: %w", err)
	}

	client := pokeapi.NewClient(cfg.API.BaseURL,
		pokeapi.WithUserAgent(cfg.API.UserAgent),
		pokeapi.WithLogger(logger),
		pokeapi.WithTracerProvider(provider.TracerProvider()),
	)
	logger.Info("pokedex starting",
		zap.String("base_url", client.BaseURL()),
		zap.Bool("tracing", provider.Enabled()))

	return &env{cfg: cfg, logger: logger, sync: sync, provider: provider, client: client}, nil
}

// ErrorText returns what to print for an error from the command tree: the
// fixed message for fetch failures, the error itself otherwise.
func ErrorText(err error) string {
	if msg := pokeapi.Message(err); msg != "" {
		return msg
	}
	return "Error: " + err.Error()
}
