package pokedex

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const DefaultBatchSize = 20

// BatchResult is the outcome of aggregating one pokemon of a batch. Exactly
// one of Record and Err is set.
type BatchResult struct {
	Id     int
	Record *Record
	Err    error
}

// LoadRange aggregates count consecutive pokemon starting at firstId. A
// failing pokemon does not stop the others; it is reported in its result so
// the caller can retry it later with LoadIDs. A count below one loads
// nothing.
func (a *Aggregator) LoadRange(ctx context.Context, firstId, count int) []BatchResult {
	if count <= 0 {
		return nil
	}
	ids := make([]int, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, firstId+i)
	}
	return a.LoadIDs(ctx, ids)
}

// LoadIDs aggregates the given ids with at most Concurrency aggregations in
// flight. Results keep the order of ids.
func (a *Aggregator) LoadIDs(ctx context.Context, ids []int) []BatchResult {
	results := make([]BatchResult, len(ids))
	var group errgroup.Group
	group.SetLimit(a.concurrency)
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			record, err := a.Aggregate(ctx, QueryByID(id))
			results[i] = BatchResult{Id: id, Record: record, Err: err}
			return nil
		})
	}
	_ = group.Wait()
	loaded := len(Loaded(results))
	a.sugar.Infof("Loaded %d of %d pokemon", loaded, len(ids))
	return results
}

func Loaded(results []BatchResult) []*Record {
	var records []*Record
	for _, r := range results {
		if r.Err == nil {
			records = append(records, r.Record)
		}
	}
	return records
}

func FailedIDs(results []BatchResult) []int {
	var ids []int
	for _, r := range results {
		if r.Err != nil {
			ids = append(ids, r.Id)
		}
	}
	return ids
}

// BatchError joins the failures of a batch, nil when every pokemon loaded.
func BatchError(results []BatchResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("pokemon #%d: %w", r.Id, r.Err))
		}
	}
	return errors.Join(errs...)
}
