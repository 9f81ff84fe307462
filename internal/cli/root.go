// Package cli implements the lunisolar command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mshafiee/lunisolar"
	"github.com/mshafiee/lunisolar/internal/config"
	"github.com/mshafiee/lunisolar/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
	engine *lunisolar.Engine
	format render.Format
	out    io.Writer
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop(), out: out}

	root := &cobra.Command{
		Use:   "lunisolar",
		Short: "Chinese lunisolar calendar from first principles",
		Long: "lunisolar computes solar terms, new moons, lunar months with leap months,\n" +
			"and the sixty-cycle pillars of any instant between years 1 and 9999.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .lunisolar.yaml)")
	flags.BoolP("verbose", "v", false, "verbose logging")
	flags.StringP("format", "f", "text", "output format: text, json, yaml or toml")
	flags.Float64("zone", 8, "civil zone offset in hours east of UTC")
	flags.String("rat-hour", "unified", "rat hour convention: unified or split")
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("zone_offset_hours", flags.Lookup("zone"))
	_ = a.v.BindPFlag("rat_hour", flags.Lookup("rat-hour"))

	root.AddCommand(
		a.termsCmd(),
		a.monthsCmd(),
		a.dayCmd(),
		a.pillarsCmd(),
		a.convertCmd(),
		a.decodeCmd(),
		a.rabByungCmd(),
		a.newMoonCmd(),
		a.warmCmd(),
	)
	return root
}

// setup loads configuration, builds the logger and constructs the engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName(".lunisolar")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	a.v.SetEnvPrefix("LUNISOLAR")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must load.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && a.v.ConfigFileUsed() != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = newLogger(cfg.Verbose); err != nil {
		return err
	}
	if a.format, err = render.ParseFormat(cfg.Format); err != nil {
		return err
	}

	opts, closeFiles, err := cfg.EngineOptions()
	if err != nil {
		return err
	}
	defer closeFiles()
	if a.engine, err = lunisolar.New(opts...); err != nil {
		return err
	}
	a.logger.Debug("engine ready",
		zap.String("config", a.v.ConfigFileUsed()),
		zap.Float64("zone_hours", a.engine.ZoneOffset()),
		zap.String("rat_hour", a.engine.RatHour().Name()),
		zap.Int("term_buckets", a.engine.SolarTermCorrections().Len()),
		zap.Int("moon_buckets", a.engine.NewMoonCorrections().Len()))
	return nil
}

// newLogger returns a production logger writing to stderr, at debug level
// when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// emit renders v in the configured format.
func (a *app) emit(v any) error {
	return render.Write(a.out, a.format, v)
}
