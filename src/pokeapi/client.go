package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2/"

type ClientConfig struct {
	BaseUrl string
	// Timeout is handed to the http.Client. Zero keeps the transport default.
	Timeout time.Duration
	// Transport is mostly useful for tests. When nil the client gets its own
	// transport that closes every connection after its response.
	Transport http.RoundTripper
}

// Client performs single GETs against the API. It keeps no state between
// calls, pooled connections included, and is safe for concurrent use.
type Client struct {
	baseUrl string
	client  *http.Client
	sugar   *zap.SugaredLogger
}

type validator interface {
	Validate() error
}

func NewClient(cfg ClientConfig, sugar *zap.SugaredLogger) *Client {
	baseUrl := cfg.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if !strings.HasSuffix(baseUrl, "/") {
		baseUrl += "/"
	}
	transport := cfg.Transport
	if transport == nil {
		transport = newTransport()
	}
	return &Client{
		baseUrl: baseUrl,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		sugar: sugar,
	}
}

func newTransport() *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	return transport
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

// PokemonUrl builds the url of the pokemon resource for an id or a name.
func (c *Client) PokemonUrl(segment string) string {
	return fmt.Sprintf("%spokemon/%s/", c.baseUrl, url.PathEscape(segment))
}

// GetJSON issues exactly one GET and decodes a 2xx body into target. When
// target has a Validate method it runs before returning.
func (c *Client) GetJSON(ctx context.Context, resourceUrl string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resourceUrl, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", resourceUrl, err)
	}
	req.Header.Set("Accept", "application/json")
	c.sugar.Debugf("GET %s", resourceUrl)
	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.sugar.Warnf("Network failure fetching %s: %s", resourceUrl, err)
		return &NetworkUnavailableError{URL: resourceUrl, Cause: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.sugar.Warnf("Resource %s not found", resourceUrl)
		return &NotFoundError{URL: resourceUrl}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.sugar.Warnf("Upstream returned %d for %s", resp.StatusCode, resourceUrl)
		return &UpstreamError{URL: resourceUrl, StatusCode: resp.StatusCode}
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(target); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &MalformedPayloadError{URL: resourceUrl, Cause: err}
	}
	if v, ok := target.(validator); ok {
		if err := v.Validate(); err != nil {
			return &MalformedPayloadError{URL: resourceUrl, Cause: err}
		}
	}
	return nil
}

func (c *Client) GetPokemon(ctx context.Context, resourceUrl string) (*PokemonResponse, error) {
	var pokemon PokemonResponse
	if err := c.GetJSON(ctx, resourceUrl, &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}

func (c *Client) GetType(ctx context.Context, resourceUrl string) (*TypeResponse, error) {
	var pokemonType TypeResponse
	if err := c.GetJSON(ctx, resourceUrl, &pokemonType); err != nil {
		return nil, err
	}
	return &pokemonType, nil
}

func (c *Client) GetAbility(ctx context.Context, resourceUrl string) (*AbilityResponse, error) {
	var ability AbilityResponse
	if err := c.GetJSON(ctx, resourceUrl, &ability); err != nil {
		return nil, err
	}
	return &ability, nil
}

func (c *Client) GetSpecies(ctx context.Context, resourceUrl string) (*SpeciesResponse, error) {
	var species SpeciesResponse
	if err := c.GetJSON(ctx, resourceUrl, &species); err != nil {
		return nil, err
	}
	return &species, nil
}
