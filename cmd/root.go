package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/paupercube/cmd/cube"
	"github.com/lepinkainen/paupercube/internal/config"
	"github.com/spf13/viper"
)

var (
	fetchCards       = cube.Fetch
	buildReports     = cube.Report
	showCard         = cube.ShowCard
	forgetCards      = cube.ForgetCards
	gatherCacheStats = cube.GatherCacheStats
	writeCacheStats  = cube.WriteCacheStats

	stdout io.Writer = os.Stdout
)

// CLI represents the complete command structure for the paupercube application
type CLI struct {
	// Global flags, empty values keep the configured setting
	ListsDir   string `help:"Directory containing the cube list files" placeholder:"DIR"`
	DataFile   string `help:"Path to the card cache JSON file" placeholder:"FILE"`
	OutputDir  string `help:"Directory the CSV reports are written to" placeholder:"DIR"`
	WaitTime   string `help:"Minimum delay between Scryfall requests (e.g. 100ms)" placeholder:"DURATION"`
	MaxFetches int    `help:"Maximum number of uncached cards to fetch per run, 0 for no limit, -1 for the configured value" default:"-1"`
	Verbose    bool   `short:"v" help:"Enable debug logging"`

	Fetch  FetchCmd  `cmd:"" help:"Fetch printings for every uncached card in the cube lists"`
	Report ReportCmd `cmd:"" help:"Write the by-set and by-name reports from the card cache"`
	Run    RunCmd    `cmd:"" default:"1" help:"Fetch missing cards, then write the reports"`
	Cache  CacheCmd  `cmd:"" help:"Inspect or edit the card cache"`
}

// FetchCmd represents the fetch command
type FetchCmd struct{}

// ReportOptions are the flags shared by the report and run commands
type ReportOptions struct {
	BySetFile  string `help:"File name of the by-set report inside the output directory"`
	ByNameFile string `help:"File name of the by-name report inside the output directory"`
	Datasette  bool   `help:"Also write the reports to Datasette"`
}

// ReportCmd represents the report command
type ReportCmd struct {
	ReportOptions `embed:""`
}

// RunCmd represents the run command
type RunCmd struct {
	ReportOptions `embed:""`
}

// CacheCmd groups the cache maintenance subcommands
type CacheCmd struct {
	Show   CacheShowCmd   `cmd:"" help:"Print the cached printings of a card as YAML"`
	Forget CacheForgetCmd `cmd:"" help:"Remove cards from the cache so they are fetched again"`
	Stats  CacheStatsCmd  `cmd:"" help:"Compare the cache with the cube lists"`
}

// CacheShowCmd represents the cache show command
type CacheShowCmd struct {
	Name string `arg:"" help:"Card name as written in the cube lists"`
}

// CacheForgetCmd represents the cache forget command
type CacheForgetCmd struct {
	Names []string `arg:"" help:"Card names to remove"`
}

// CacheStatsCmd represents the cache stats command
type CacheStatsCmd struct{}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("paupercube"),
		kong.Description("Collects Scryfall printings for the Pauper Cube lists and builds set and name reports."),
		kong.UsageOnError(),
	)

	initLogging(cli.Verbose)

	if err := initConfig(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := updateGlobalConfig(&cli); err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(1)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx.BindTo(runCtx, (*context.Context)(nil))

	err := ctx.Run()
	stop()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() error {
	config.SetDefaults()

	viper.SetEnvPrefix("PAUPERCUBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		slog.Info("Config file not found, writing default config file")
		if err := viper.SafeWriteConfig(); err != nil {
			slog.Warn("Error writing config file", "error", err)
		}
	}

	config.InitConfig()
	return nil
}

func updateGlobalConfig(cli *CLI) error {
	if cli.ListsDir != "" {
		viper.Set("lists.dir", cli.ListsDir)
	}
	if cli.DataFile != "" {
		viper.Set("data.file", cli.DataFile)
	}
	if cli.OutputDir != "" {
		viper.Set("output.dir", cli.OutputDir)
	}
	config.InitConfig()

	if cli.WaitTime != "" {
		wait, err := time.ParseDuration(cli.WaitTime)
		if err != nil {
			return fmt.Errorf("invalid --wait-time %q: %w", cli.WaitTime, err)
		}
		if wait < 0 {
			return fmt.Errorf("--wait-time must not be negative, got %s", wait)
		}
		viper.Set("fetch.wait_time", wait.String())
		config.SetWaitTime(wait)
	}

	if cli.MaxFetches >= 0 {
		viper.Set("fetch.max_fetches", cli.MaxFetches)
		config.SetMaxFetches(cli.MaxFetches)
	}

	return nil
}

func (o ReportOptions) apply() {
	if o.BySetFile != "" {
		viper.Set("report.by_set_file", o.BySetFile)
	}
	if o.ByNameFile != "" {
		viper.Set("report.by_name_file", o.ByNameFile)
	}
	if o.Datasette {
		viper.Set("datasette.enabled", true)
	}
}

// Run methods for each command

func (f *FetchCmd) Run(ctx context.Context) error {
	_, err := fetchCards(ctx, cube.ParamsFromConfig())
	return err
}

func (r *ReportCmd) Run() error {
	r.apply()
	return buildReports(cube.ParamsFromConfig())
}

func (r *RunCmd) Run(ctx context.Context) error {
	r.apply()
	params := cube.ParamsFromConfig()

	if _, err := fetchCards(ctx, params); err != nil {
		return err
	}
	return buildReports(params)
}

func (s *CacheShowCmd) Run() error {
	return showCard(stdout, config.DataFile, s.Name)
}

func (f *CacheForgetCmd) Run() error {
	removed, err := forgetCards(config.DataFile, f.Names)
	if err != nil {
		return err
	}
	slog.Info("Cache updated", "removed", removed, "requested", len(f.Names))
	return nil
}

func (s *CacheStatsCmd) Run() error {
	stats, err := gatherCacheStats(cube.ParamsFromConfig())
	if err != nil {
		return err
	}
	return writeCacheStats(stdout, stats)
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else if env := os.Getenv("PAUPERCUBE_LOG_LEVEL"); env != "" {
		if err := level.UnmarshalText([]byte(env)); err != nil {
			level = slog.LevelInfo
		}
	}

	// Logs go to stderr so command output on stdout stays parseable
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
