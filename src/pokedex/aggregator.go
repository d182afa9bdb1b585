// Package pokedex assembles pokemon records out of the resources served by
// the pokeapi client.
package pokedex

//go:generate mockgen -destination=mock/mock_fetcher.go -package=pokedexmock github.com/BielosX/wombat/pokedex/src/pokedex Fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

const DefaultConcurrency = 8

// Fetcher is the subset of pokeapi.Client the aggregator needs.
type Fetcher interface {
	PokemonUrl(segment string) string
	GetPokemon(ctx context.Context, resourceUrl string) (*pokeapi.PokemonResponse, error)
	GetType(ctx context.Context, resourceUrl string) (*pokeapi.TypeResponse, error)
	GetAbility(ctx context.Context, resourceUrl string) (*pokeapi.AbilityResponse, error)
	GetSpecies(ctx context.Context, resourceUrl string) (*pokeapi.SpeciesResponse, error)
}

type Config struct {
	Fetcher Fetcher
	Names   NameSelector
	// Concurrency bounds how many pokemon LoadIDs aggregates at once.
	Concurrency int
	Sugar       *zap.SugaredLogger
}

func (c *Config) Validate() error {
	if c.Fetcher == nil {
		return errors.New("pokedex: Fetcher is required")
	}
	if c.Sugar == nil {
		return errors.New("pokedex: Sugar is required")
	}
	if c.Names.Language == "" && c.Names.Index < 0 {
		return fmt.Errorf("pokedex: invalid display language index %d", c.Names.Index)
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	return nil
}

type Aggregator struct {
	fetcher     Fetcher
	names       NameSelector
	concurrency int
	sugar       *zap.SugaredLogger
}

func NewAggregator(cfg *Config) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{
		fetcher:     cfg.Fetcher,
		names:       cfg.Names,
		concurrency: cfg.Concurrency,
		sugar:       cfg.Sugar,
	}, nil
}

// Aggregate fetches the pokemon resource for query, then its types,
// abilities and species concurrently, and joins everything into a Record.
// The first failing fetch cancels the others and is returned as is.
func (a *Aggregator) Aggregate(ctx context.Context, query Query) (*Record, error) {
	segment, err := query.pathSegment()
	if err != nil {
		return nil, err
	}
	a.sugar.Infof("Aggregating pokemon %s", segment)
	pokemon, err := a.fetcher.GetPokemon(ctx, a.fetcher.PokemonUrl(segment))
	if err != nil {
		return nil, err
	}

	var abilityRefs, hiddenRefs []pokeapi.NamedResource
	for _, slot := range pokemon.Abilities {
		if slot.IsHidden {
			hiddenRefs = append(hiddenRefs, slot.Ability)
		} else {
			abilityRefs = append(abilityRefs, slot.Ability)
		}
	}

	types := make([]string, len(pokemon.Types))
	abilities := make([]string, len(abilityRefs))
	hiddenAbilities := make([]string, len(hiddenRefs))
	var species *pokeapi.SpeciesResponse

	group, groupCtx := errgroup.WithContext(ctx)
	for i, slot := range pokemon.Types {
		i, slot := i, slot
		group.Go(func() error {
			pokemonType, err := a.fetcher.GetType(groupCtx, slot.Type.Url)
			if err != nil {
				return err
			}
			name, err := a.names.Pick(pokemonType.Names)
			if err != nil {
				return fmt.Errorf("type %s: %w", slot.Type.Name, err)
			}
			types[i] = strings.ToLower(name)
			return nil
		})
	}
	a.resolveAbilities(groupCtx, group, abilityRefs, abilities)
	a.resolveAbilities(groupCtx, group, hiddenRefs, hiddenAbilities)
	group.Go(func() error {
		var err error
		species, err = a.fetcher.GetSpecies(groupCtx, pokemon.Species.Url)
		return err
	})
	if err := group.Wait(); err != nil {
		a.sugar.Warnf("Aggregation of pokemon %s failed: %s", segment, err)
		return nil, err
	}

	record := &Record{
		Id:            int(pokemon.Id),
		Name:          strings.ToLower(pokemon.Name),
		Height:        int(pokemon.Height),
		Weight:        int(pokemon.Weight),
		Types:         types,
		Abilities:     abilities,
		HiddenAbility: hiddenAbilities,
		Description:   descriptions(species),
		GenderRatio:   GenderRatio(species.GenderRate),
		BaseStats:     baseStats(pokemon.Stats),
	}
	a.sugar.Infof("Aggregated pokemon #%d %s", record.Id, record.Name)
	return record, nil
}

func (a *Aggregator) resolveAbilities(ctx context.Context,
	group *errgroup.Group,
	refs []pokeapi.NamedResource,
	out []string) {
	for i, ref := range refs {
		i, ref := i, ref
		group.Go(func() error {
			ability, err := a.fetcher.GetAbility(ctx, ref.Url)
			if err != nil {
				return err
			}
			name, err := a.names.Pick(ability.Names)
			if err != nil {
				return fmt.Errorf("ability %s: %w", ref.Name, err)
			}
			out[i] = name
			return nil
		})
	}
}

func descriptions(species *pokeapi.SpeciesResponse) []DescriptionEntry {
	result := make([]DescriptionEntry, 0, len(species.FlavorTextEntries))
	for _, entry := range species.FlavorTextEntries {
		result = append(result, DescriptionEntry{
			Text:     NormalizeFlavorText(entry.FlavorText),
			Language: entry.Language.Name,
		})
	}
	return result
}

func baseStats(stats []pokeapi.PokemonStat) BaseStats {
	result := make(BaseStats, len(stats))
	for _, s := range stats {
		result[s.Stat.Name] = int(s.BaseStat)
	}
	return result
}
