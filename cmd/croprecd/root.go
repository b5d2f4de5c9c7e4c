package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"croprecd/internal/config"
	"croprecd/internal/registry"
)

// cli carries the resolved configuration from the root command to subcommands.
type cli struct {
	configPath string
	envFile    string
	cfg        config.Config
	stdout     io.Writer
	getenv     func(string) string
}

func newRootCmd() *cobra.Command {
	c := &cli{stdout: os.Stdout, getenv: os.Getenv}
	return c.rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "croprecd",
		Short:         "Crop recommendation prediction service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	def := config.Defaults()
	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "Path to a .yaml/.yml, .json or .toml config file")
	pf.StringVar(&c.envFile, "env-file", ".env", "Dotenv file loaded before reading CROPRECD_* variables (ignored if absent)")
	pf.String("artifacts-dir", def.ArtifactsDir, "Directory holding the model and encoder artifacts (CROPRECD_ARTIFACTS_DIR)")
	pf.Int("api-revision", def.APIRevision, "API revision: 1 (basic features) or 2 (soil type features) (CROPRECD_API_REVISION)")
	pf.String("log-level", def.LogLevel, "Log level: debug|info|warn|error|off (CROPRECD_LOG_LEVEL)")
	pf.String("log-format", def.LogFormat, "Log format: json|console (CROPRECD_LOG_FORMAT)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := c.resolve(cmd.Flags())
		if err != nil {
			return err
		}
		c.cfg = cfg
		setupLogging(cfg, os.Stderr)
		return nil
	}

	root.AddCommand(c.serveCmd(), c.inspectCmd())
	return root
}

// resolve layers defaults, the config file, the environment and explicitly
// set flags, later layers winning.
func (c *cli) resolve(flags *pflag.FlagSet) (config.Config, error) {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, fmt.Errorf("load %s: %w", c.envFile, err)
		}
	}
	cfg := config.Defaults()
	if c.configPath != "" {
		fileCfg, err := config.Load(c.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("config %s: %w", c.configPath, err)
		}
		cfg = fileCfg.Merge(cfg)
	}
	envCfg, err := config.FromEnv(c.getenv)
	if err != nil {
		return config.Config{}, err
	}
	cfg = envCfg.Merge(cfg)
	cfg = flagConfig(flags).Merge(cfg)
	if !registry.Revision(cfg.APIRevision).Valid() {
		return config.Config{}, fmt.Errorf("api revision must be 1 or 2, got %d", cfg.APIRevision)
	}
	return cfg, nil
}

// flagConfig collects only the flags the user actually set.
func flagConfig(flags *pflag.FlagSet) config.Config {
	var cfg config.Config
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr, _ = flags.GetString(f.Name)
		case "artifacts-dir":
			cfg.ArtifactsDir, _ = flags.GetString(f.Name)
		case "api-revision":
			cfg.APIRevision, _ = flags.GetInt(f.Name)
		case "log-level":
			cfg.LogLevel, _ = flags.GetString(f.Name)
		case "log-format":
			cfg.LogFormat, _ = flags.GetString(f.Name)
		case "cache-size":
			cfg.CacheSize, _ = flags.GetInt(f.Name)
		case "batch-workers":
			cfg.BatchWorkers, _ = flags.GetInt(f.Name)
		case "max-body-bytes":
			cfg.MaxBodyBytes, _ = flags.GetInt64(f.Name)
		case "request-timeout":
			cfg.RequestTimeoutSeconds, _ = flags.GetInt64(f.Name)
		case "shutdown-timeout":
			cfg.ShutdownTimeoutSeconds, _ = flags.GetInt64(f.Name)
		case "rate-limit":
			cfg.RateLimit, _ = flags.GetFloat64(f.Name)
		case "rate-limit-burst":
			cfg.RateLimitBurst, _ = flags.GetInt(f.Name)
		case "cors":
			v, _ := flags.GetBool(f.Name)
			cfg.CORSEnabled = &v
		case "cors-origins":
			cfg.CORSAllowedOrigins = config.SplitCSV(f.Value.String())
		case "cors-methods":
			cfg.CORSAllowedMethods = config.SplitCSV(f.Value.String())
		case "cors-headers":
			cfg.CORSAllowedHeaders = config.SplitCSV(f.Value.String())
		}
	})
	return cfg
}

// setupLogging configures the global zerolog logger.
func setupLogging(cfg config.Config, w io.Writer) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if strings.EqualFold(cfg.LogLevel, "off") {
		level = zerolog.Disabled
	}
	zerolog.SetGlobalLevel(level)
	if strings.EqualFold(cfg.LogFormat, "console") {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Str("service", "croprecd").Logger()
}
