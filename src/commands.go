package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BielosX/wombat/pokedex/src/connectivity"
	"github.com/BielosX/wombat/pokedex/src/display"
	"github.com/BielosX/wombat/pokedex/src/export"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
)

var (
	jsonOutput bool

	listFirst     int
	listCount     int
	listType      string
	listOrder     string
	listDesc      bool
	listRetries   int
	listSkipCheck bool

	exportLimit  int32
	exportOffset int32
	exportBucket string
)

var getCmd = &cobra.Command{
	Use:   "get <id|name>",
	Short: "Show one pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Load a page of the Pokédex",
	RunE:  runList,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a range of pokemon as Parquet and CSV to S3",
	RunE:  runExport,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check internet connectivity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !connectivity.Check(cmd.Context(), connectivity.DefaultProbeAddress, connectivity.DefaultTimeout) {
			return errors.New(display.MessageNoNetwork)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "online")
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the record as JSON")

	listCmd.Flags().IntVar(&listFirst, "first", 1, "first pokemon id")
	listCmd.Flags().IntVar(&listCount, "count", 0, "how many pokemon to load (default POKEDEX_BATCH_SIZE)")
	listCmd.Flags().StringVar(&listType, "type", "", "only show pokemon of this type")
	listCmd.Flags().StringVar(&listOrder, "order", "", "order by id, name or stats")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "descending order")
	listCmd.Flags().IntVar(&listRetries, "retries", 1, "how many times failed pokemon are requested again")
	listCmd.Flags().BoolVar(&listSkipCheck, "skip-check", false, "skip the connectivity check")

	exportCmd.Flags().Int32Var(&exportLimit, "limit", 20, "number of pokemon to export")
	exportCmd.Flags().Int32Var(&exportOffset, "offset", 0, "export starts at id offset+1")
	exportCmd.Flags().StringVar(&exportBucket, "bucket", "", "target bucket (default BUCKET_NAME)")
}

func runGet(cmd *cobra.Command, args []string) error {
	query, err := pokedex.ParseQuery(args[0])
	if err != nil {
		return userError(cmd, err)
	}
	aggregator, err := newAggregator()
	if err != nil {
		return err
	}
	record, err := aggregator.Aggregate(cmd.Context(), query)
	if err != nil {
		sugar.Debugf("Aggregation failed: %s", err)
		return userError(cmd, err)
	}
	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(record)
	}
	fmt.Fprint(cmd.OutOrStdout(), display.Card(record, cfg.DescriptionLanguage))
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	order, ok := pokedex.ParseOrder(listOrder)
	if !ok {
		return fmt.Errorf("unknown order %q", listOrder)
	}
	count := listCount
	if count <= 0 {
		count = cfg.BatchSize
	}
	if !listSkipCheck && !connectivity.Check(cmd.Context(), connectivity.DefaultProbeAddress, connectivity.DefaultTimeout) {
		return errors.New(display.MessageNoNetwork)
	}
	aggregator, err := newAggregator()
	if err != nil {
		return err
	}

	results := aggregator.LoadRange(cmd.Context(), listFirst, count)
	records := pokedex.Loaded(results)
	failed := pokedex.FailedIDs(results)
	for attempt := 0; attempt < listRetries && len(failed) > 0; attempt++ {
		sugar.Infof("Retrying %d failed pokemon", len(failed))
		retried := aggregator.LoadIDs(cmd.Context(), failed)
		records = append(records, pokedex.Loaded(retried)...)
		failed = pokedex.FailedIDs(retried)
		results = retried
	}

	shown := pokedex.Sort(pokedex.FilterByType(records, listType), order, listDesc)
	out := cmd.OutOrStdout()
	for _, record := range shown {
		fmt.Fprintf(out, "%-20s %-20s total=%d\n", display.Title(record), fmt.Sprint(record.Types), record.BaseStats.Total())
	}
	if len(shown) == 0 && len(records) > 0 {
		fmt.Fprintln(out, "No pokemon match the selected filters")
	}
	if len(failed) > 0 {
		err := pokedex.BatchError(results)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s (failed ids: %v)\n", display.ErrorMessage(err), failed)
		return err
	}
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	bucket := exportBucket
	if bucket == "" {
		bucket = cfg.BucketName
	}
	exporter, err := newExporter(cmd.Context(), bucket)
	if err != nil {
		return err
	}
	result, err := exporter.Export(cmd.Context(), export.Schedule{Limit: exportLimit, Offset: exportOffset})
	if err != nil {
		return userError(cmd, err)
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// userError prints the user facing message for err and returns err.
func userError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), display.ErrorMessage(err))
	return err
}
