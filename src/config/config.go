package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
)

type Config struct {
	BaseUrl              string
	HTTPTimeout          time.Duration
	DisplayLanguageIndex int
	// DisplayLanguage, when set, selects localized names by language code
	// instead of by DisplayLanguageIndex.
	DisplayLanguage     string
	DescriptionLanguage string
	BatchSize           int
	Concurrency         int
	Region              string
	BucketName          string
	LogFormat           string
	Handler             string
}

func Default() *Config {
	return &Config{
		BaseUrl:              pokeapi.DefaultBaseUrl,
		DisplayLanguageIndex: pokedex.DisplayLanguageIndex,
		DescriptionLanguage:  "es",
		BatchSize:            pokedex.DefaultBatchSize,
		Concurrency:          pokedex.DefaultConcurrency,
		LogFormat:            "console",
	}
}

// FromEnv starts from Default and overrides whatever the environment sets.
func FromEnv() (*Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if v, ok := lookup("POKEAPI_BASE_URL"); ok && v != "" {
		cfg.BaseUrl = v
	}
	if v, ok := lookup("POKEAPI_HTTP_TIMEOUT"); ok && v != "" {
		timeout, err := ParseTimeout(v)
		if err != nil {
			return nil, fmt.Errorf("POKEAPI_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = timeout
	}
	ints := []struct {
		name   string
		target *int
	}{
		{"DISPLAY_LANGUAGE_INDEX", &cfg.DisplayLanguageIndex},
		{"POKEDEX_BATCH_SIZE", &cfg.BatchSize},
		{"POKEDEX_CONCURRENCY", &cfg.Concurrency},
	}
	for _, entry := range ints {
		v, ok := lookup(entry.name)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.name, err)
		}
		*entry.target = parsed
	}
	strs := []struct {
		name   string
		target *string
	}{
		{"DISPLAY_LANGUAGE", &cfg.DisplayLanguage},
		{"DESCRIPTION_LANGUAGE", &cfg.DescriptionLanguage},
		{"AWS_REGION", &cfg.Region},
		{"BUCKET_NAME", &cfg.BucketName},
		{"LOG_FORMAT", &cfg.LogFormat},
		{"_HANDLER", &cfg.Handler},
	}
	for _, entry := range strs {
		if v, ok := lookup(entry.name); ok && v != "" {
			*entry.target = v
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseTimeout accepts a Go duration; an empty string means no timeout.
func ParseTimeout(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	return time.ParseDuration(value)
}

func (c *Config) Validate() error {
	if c.BaseUrl == "" {
		c.BaseUrl = pokeapi.DefaultBaseUrl
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative, got %s", c.HTTPTimeout)
	}
	if c.DisplayLanguageIndex < 0 {
		return fmt.Errorf("display language index must not be negative, got %d", c.DisplayLanguageIndex)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

func (c *Config) ClientConfig() pokeapi.ClientConfig {
	return pokeapi.ClientConfig{
		BaseUrl: c.BaseUrl,
		Timeout: c.HTTPTimeout,
	}
}

func (c *Config) NameSelector() pokedex.NameSelector {
	return pokedex.NameSelector{
		Index:    c.DisplayLanguageIndex,
		Language: c.DisplayLanguage,
	}
}
