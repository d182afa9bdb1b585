package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
)

var sugar *zap.SugaredLogger
var cfg *config.Config

var (
	baseUrlFlag             string
	timeoutFlag             string
	displayLanguageFlag     string
	descriptionLanguageFlag string
)

var rootCmd = &cobra.Command{
	Use:               "pokedex",
	Short:             "Pokédex built on PokeAPI",
	Long:              `Aggregates pokemon, their types, abilities and species from PokeAPI into single records.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&baseUrlFlag, "base-url", "", "PokeAPI base url (env POKEAPI_BASE_URL)")
	flags.StringVar(&timeoutFlag, "timeout", "", "HTTP timeout, e.g. 10s (env POKEAPI_HTTP_TIMEOUT)")
	flags.StringVar(&displayLanguageFlag, "language", "", "select type and ability names by language code instead of position (env DISPLAY_LANGUAGE)")
	flags.StringVar(&descriptionLanguageFlag, "description-language", "", "preferred description language (env DESCRIPTION_LANGUAGE)")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(lambdaCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := applyFlags(cmd, loaded); err != nil {
		return err
	}
	cfg = loaded
	logger, err := newLogger(cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	sugar = logger.Sugar()
	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		c.BaseUrl = baseUrlFlag
	}
	if flags.Changed("language") {
		c.DisplayLanguage = displayLanguageFlag
	}
	if flags.Changed("description-language") {
		c.DescriptionLanguage = descriptionLanguageFlag
	}
	if flags.Changed("timeout") {
		timeout, err := config.ParseTimeout(timeoutFlag)
		if err != nil {
			return err
		}
		c.HTTPTimeout = timeout
	}
	return c.Validate()
}

func newLogger(format string) (*zap.Logger, error) {
	if format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment(zap.AddStacktrace(zap.FatalLevel))
}

func newAggregator() (*pokedex.Aggregator, error) {
	client := pokeapi.NewClient(cfg.ClientConfig(), sugar)
	return pokedex.NewAggregator(&pokedex.Config{
		Fetcher:     client,
		Names:       cfg.NameSelector(),
		Concurrency: cfg.Concurrency,
		Sugar:       sugar,
	})
}

func syncLogger() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

func main() {
	// Inside lambda the binary is started without arguments.
	if len(os.Args) == 1 && os.Getenv("_HANDLER") != "" {
		rootCmd.SetArgs([]string{lambdaCmd.Use})
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	syncLogger()
	if err != nil {
		os.Exit(1)
	}
}
