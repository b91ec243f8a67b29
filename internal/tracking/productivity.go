package tracking

import (
	"strings"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
)

const (
	bucketSeparator = "|||"
	unknownClient   = "unknown_client"
	unknownWorkType = "unknown_work_type"

	statusSkip = "skip"
)

// ClientAggregate is the derived productivity summary for one
// client+work-type bucket. It is never persisted.
type ClientAggregate struct {
	TotalFiles   int    `json:"totalFiles"`
	WorkSeconds  int64  `json:"workSeconds"`
	PauseSeconds int64  `json:"pauseSeconds"`
	AvgSeconds   int64  `json:"avgSeconds"`
	LastWorkType string `json:"lastWorkType"`
	LastCategory string `json:"lastCategory"`
}

// ProductivityTotals sums all buckets of one aggregation.
type ProductivityTotals struct {
	TotalFiles        int   `json:"totalFiles"`
	TotalWorkSeconds  int64 `json:"totalWorkSeconds"`
	TotalPauseSeconds int64 `json:"totalPauseSeconds"`
	AvgSeconds        int64 `json:"avgSeconds"`
}

// BucketKey builds the aggregation key for a batch. Missing fields are
// coerced to sentinel values so malformed batches still land in a bucket
// instead of being dropped.
func BucketKey(clientCode, workType string) string {
	if strings.TrimSpace(clientCode) == "" {
		clientCode = unknownClient
	}
	if strings.TrimSpace(workType) == "" {
		workType = unknownWorkType
	}
	return clientCode + bucketSeparator + workType
}

// Accumulator folds work-log batches into per-bucket productivity state.
// Merge is associative, so partial accumulators built over shards of the
// input can be combined without changing the result.
type Accumulator struct {
	buckets map[string]*ClientAggregate
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{buckets: make(map[string]*ClientAggregate)}
}

// Add folds one batch into the accumulator. File entries with a "skip"
// status are excluded from counts and sums; negative durations are treated
// as zero.
func (a *Accumulator) Add(b models.WorkLogBatch) {
	key := BucketKey(b.ClientCode, b.WorkType)
	st, ok := a.buckets[key]
	if !ok {
		st = &ClientAggregate{}
		a.buckets[key] = st
	}

	for _, f := range b.Files {
		if strings.EqualFold(strings.TrimSpace(f.FileStatus), statusSkip) {
			continue
		}
		st.TotalFiles++
		if f.TimeSpent > 0 {
			st.WorkSeconds += f.TimeSpent
		}
	}
	if b.PauseTime > 0 {
		st.PauseSeconds += b.PauseTime
	}

	// Last-write-wins by iteration order over non-empty values.
	if b.WorkType != "" {
		st.LastWorkType = b.WorkType
	}
	if b.Categories != "" {
		st.LastCategory = b.Categories
	}
}

// Merge folds other into a, bucket by bucket. Other is treated as the
// later shard for the last-write-wins fields.
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil {
		return
	}
	for key, o := range other.buckets {
		st, ok := a.buckets[key]
		if !ok {
			st = &ClientAggregate{}
			a.buckets[key] = st
		}
		st.TotalFiles += o.TotalFiles
		st.WorkSeconds += o.WorkSeconds
		st.PauseSeconds += o.PauseSeconds
		if o.LastWorkType != "" {
			st.LastWorkType = o.LastWorkType
		}
		if o.LastCategory != "" {
			st.LastCategory = o.LastCategory
		}
	}
}

// Summarize computes per-bucket averages and grand totals. The returned map
// is a copy; the accumulator can keep folding afterwards.
func (a *Accumulator) Summarize() (map[string]ClientAggregate, ProductivityTotals) {
	byClient := make(map[string]ClientAggregate, len(a.buckets))
	var totals ProductivityTotals

	for key, st := range a.buckets {
		agg := *st
		if agg.TotalFiles > 0 {
			agg.AvgSeconds = agg.WorkSeconds / int64(agg.TotalFiles)
		}
		byClient[key] = agg

		totals.TotalFiles += agg.TotalFiles
		totals.TotalWorkSeconds += agg.WorkSeconds
		totals.TotalPauseSeconds += agg.PauseSeconds
	}
	if totals.TotalFiles > 0 {
		totals.AvgSeconds = totals.TotalWorkSeconds / int64(totals.TotalFiles)
	}

	return byClient, totals
}

// SummarizeBatches is the one-shot form: fold every batch and summarize.
func SummarizeBatches(batches []models.WorkLogBatch) (map[string]ClientAggregate, ProductivityTotals) {
	acc := NewAccumulator()
	for _, b := range batches {
		acc.Add(b)
	}
	return acc.Summarize()
}
