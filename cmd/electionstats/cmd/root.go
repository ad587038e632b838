package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"electionstats/lib/configutil"
	"electionstats/lib/elections/api"
	"electionstats/lib/elections/cache"
	"electionstats/lib/telemetry"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl   string `json:"base_url"`
	CacheFile string `json:"cache_file"`
}

var (
	flagDebug bool

	client   *api.Client
	provider api.Provider
	telem    telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "electionstats",
	Short: "electionstats downloads and normalizes Massachusetts election results.",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func fatal(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err.Error())
	os.Exit(1)
}

func Execute() {
	cobra.OnInitialize(func() {
		telemetry.InitSlog(flagDebug)

		config, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			fatal("failed to read config", err)
		}

		tel, err := telemetry.SetupFromEnv(context.Background(), "electionstats")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			fatal("failed to setup telemetry", err)
		}
		telem = tel

		client = api.NewClient(config.BaseUrl)
		provider = client

		if config.CacheFile != "" {
			db, err := cache.Open(config.CacheFile)
			if err != nil {
				fatal("failed to open cache", err)
			}
			provider, err = cache.NewProvider(db, client)
			if err != nil {
				fatal("failed to initialize cache", err)
			}
		}
	})

	err := rootCmd.Execute()
	// flush any buffered spans before exiting
	telem.Shutdown(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
