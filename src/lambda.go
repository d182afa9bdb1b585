package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"

	"github.com/BielosX/wombat/pokedex/src/export"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
	"github.com/BielosX/wombat/pokedex/src/s3"
)

type AggregateRequest struct {
	Query string `json:"query"`
}

var lambdaCmd = &cobra.Command{
	Use:    "lambda",
	Short:  "Run as an AWS Lambda handler selected by _HANDLER",
	Hidden: true,
	RunE:   runLambda,
}

func runLambda(cmd *cobra.Command, _ []string) error {
	switch cfg.Handler {
	case "aggregate":
		lambda.Start(handleAggregate)
	case "scheduler":
		lambda.Start(scheduleTasks)
	case "scraper":
		lambda.Start(handleScraping)
	default:
		return fmt.Errorf("unknown handler %q", cfg.Handler)
	}
	return nil
}

func handleAggregate(ctx context.Context, request AggregateRequest) (*pokedex.Record, error) {
	sugar.Infof("Starting Aggregate Handler, query: %s", request.Query)
	query, err := pokedex.ParseQuery(request.Query)
	if err != nil {
		return nil, err
	}
	aggregator, err := newAggregator()
	if err != nil {
		return nil, err
	}
	return aggregator.Aggregate(ctx, query)
}

func scheduleTasks(request export.ScheduleRequest) ([]export.Schedule, error) {
	sugar.Infof("Starting Schedule Tasks Handler, pageSize: %d, startOffset: %d, pageCount: %d",
		request.PageSize,
		request.StartOffset,
		request.PageCount)
	return export.Plan(request), nil
}

func handleScraping(ctx context.Context, request export.Schedule) (*export.ScraperResult, error) {
	exporter, err := newExporter(ctx, cfg.BucketName)
	if err != nil {
		return nil, err
	}
	return exporter.Export(ctx, request)
}

func newExporter(ctx context.Context, bucket string) (*export.Exporter, error) {
	if bucket == "" {
		return nil, errors.New("no bucket configured, set BUCKET_NAME or --bucket")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		sugar.Errorf("Failed to load SDK config: %s", err)
		return nil, err
	}
	aggregator, err := newAggregator()
	if err != nil {
		return nil, err
	}
	return export.NewExporter(&export.Config{
		Source:      aggregator,
		Uploader:    s3.NewClient(awsCfg),
		Bucket:      bucket,
		Concurrency: cfg.Concurrency,
		Sugar:       sugar,
	})
}
