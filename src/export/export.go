// Package export turns ranges of aggregated pokemon into Parquet and CSV
// files and uploads them.
package export

//go:generate mockgen -destination=mock/mock_export.go -package=exportmock github.com/BielosX/wombat/pokedex/src/export RecordSource,Uploader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BielosX/wombat/pokedex/src/csv"
	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
)

const (
	parquetContentType = "application/vnd.apache.parquet"
	csvContentType     = "text/csv"
	keyPrefix          = "pokemons"
)

type RecordSource interface {
	Aggregate(ctx context.Context, query pokedex.Query) (*pokedex.Record, error)
}

type Uploader interface {
	PutFile(ctx context.Context, reader io.Reader, bucket, key, contentType string) error
}

type ScheduleRequest struct {
	PageSize    int32 `json:"pageSize"`
	StartOffset int32 `json:"startOffset"`
	PageCount   int32 `json:"pageCount"`
}

// Schedule covers pokemon ids Offset+1 to Offset+Limit.
type Schedule struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

type ScraperResult struct {
	RunId           string `json:"runId"`
	Count           int32  `json:"count"`
	ParquetFileName string `json:"parquetFileName"`
	CsvFileName     string `json:"csvFileName"`
}

// Plan splits a scheduling request into one Schedule per page.
func Plan(request ScheduleRequest) []Schedule {
	if request.PageCount <= 0 || request.PageSize <= 0 {
		return []Schedule{}
	}
	result := make([]Schedule, 0, request.PageCount)
	for i := int32(0); i < request.PageCount; i++ {
		result = append(result, Schedule{Limit: request.PageSize, Offset: request.StartOffset + i*request.PageSize})
	}
	return result
}

type Config struct {
	Source      RecordSource
	Uploader    Uploader
	Bucket      string
	Concurrency int
	Sugar       *zap.SugaredLogger
}

func (c *Config) Validate() error {
	if c.Source == nil {
		return errors.New("export: Source is required")
	}
	if c.Uploader == nil {
		return errors.New("export: Uploader is required")
	}
	if c.Bucket == "" {
		return errors.New("export: Bucket is required")
	}
	if c.Sugar == nil {
		return errors.New("export: Sugar is required")
	}
	if c.Concurrency <= 0 {
		c.Concurrency = pokedex.DefaultConcurrency
	}
	return nil
}

type Exporter struct {
	source      RecordSource
	uploader    Uploader
	bucket      string
	concurrency int
	sugar       *zap.SugaredLogger
	newRunId    func() string
}

func NewExporter(cfg *Config) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Exporter{
		source:      cfg.Source,
		uploader:    cfg.Uploader,
		bucket:      cfg.Bucket,
		concurrency: cfg.Concurrency,
		sugar:       cfg.Sugar,
		newRunId:    uuid.NewString,
	}, nil
}

// Export aggregates every pokemon of the schedule and uploads the result as
// Parquet and CSV. Nothing is uploaded if any pokemon fails to aggregate.
func (e *Exporter) Export(ctx context.Context, schedule Schedule) (*ScraperResult, error) {
	e.sugar.Infof("Starting export, limit: %d offset: %d", schedule.Limit, schedule.Offset)
	if schedule.Limit <= 0 {
		return nil, fmt.Errorf("export: limit must be positive, got %d", schedule.Limit)
	}
	records, err := e.collect(ctx, schedule)
	if err != nil {
		return nil, err
	}

	pokemonWriter, err := parquet.NewPokemonWriter(e.sugar)
	if err != nil {
		e.sugar.Errorf("Failed to create Pokemon Parquet Writer: %s", err)
		return nil, err
	}
	csvWriter := csv.NewPokemonWriter()
	for _, record := range records {
		row := parquet.ToPokemon(record)
		if err := pokemonWriter.WritePokemon(&row); err != nil {
			e.sugar.Errorf("Error writing Pokemon to Parquet: %s", err)
			return nil, err
		}
		if err := csvWriter.Write(row); err != nil {
			e.sugar.Errorf("Error writing Pokemon to CSV: %s", err)
			return nil, err
		}
	}
	if err := pokemonWriter.Finish(); err != nil {
		return nil, err
	}
	if err := csvWriter.Finish(); err != nil {
		return nil, err
	}

	firstId := schedule.Offset + 1
	lastId := schedule.Offset + schedule.Limit
	runId := e.newRunId()
	parquetFileName := fmt.Sprintf("%s/%d_%d/%s.parquet", keyPrefix, firstId, lastId, runId)
	csvFileName := fmt.Sprintf("%s/%d_%d/%s.csv", keyPrefix, firstId, lastId, runId)

	e.sugar.Infof("Sending parquet file of size %d to S3", pokemonWriter.Size())
	if err := e.uploader.PutFile(ctx, pokemonWriter.BufferReader(), e.bucket, parquetFileName, parquetContentType); err != nil {
		return nil, err
	}
	e.sugar.Infof("Sending CSV file of size %d to S3", csvWriter.Size())
	if err := e.uploader.PutFile(ctx, csvWriter.BufferReader(), e.bucket, csvFileName, csvContentType); err != nil {
		return nil, err
	}
	return &ScraperResult{
		RunId:           runId,
		Count:           int32(len(records)),
		ParquetFileName: parquetFileName,
		CsvFileName:     csvFileName,
	}, nil
}

func (e *Exporter) collect(ctx context.Context, schedule Schedule) ([]*pokedex.Record, error) {
	records := make([]*pokedex.Record, schedule.Limit)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency)
	for i := range records {
		i := i
		id := int(schedule.Offset) + i + 1
		group.Go(func() error {
			record, err := e.source.Aggregate(groupCtx, pokedex.QueryByID(id))
			if err != nil {
				return fmt.Errorf("pokemon #%d: %w", id, err)
			}
			records[i] = record
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		e.sugar.Errorf("Export aborted: %s", err)
		return nil, err
	}
	return records, nil
}
