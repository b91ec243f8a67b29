package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
)

func batch(client, workType string, pause int64, files ...models.FileEntry) models.WorkLogBatch {
	return models.WorkLogBatch{
		ClientCode: client,
		WorkType:   workType,
		PauseTime:  pause,
		Files:      files,
	}
}

func file(name string, seconds int64, status string) models.FileEntry {
	return models.FileEntry{FileName: name, TimeSpent: seconds, FileStatus: status}
}

func TestSummarizeBatches_SkipExcluded(t *testing.T) {
	byClient, totals := SummarizeBatches([]models.WorkLogBatch{
		batch("0001_XY", "qc", 30,
			file("a.jpg", 120, "done"),
			file("b.jpg", 60, "skip"),
		),
	})

	agg, ok := byClient["0001_XY|||qc"]
	require.True(t, ok)
	assert.Equal(t, 1, agg.TotalFiles)
	assert.Equal(t, int64(120), agg.WorkSeconds)
	assert.Equal(t, int64(30), agg.PauseSeconds)
	assert.Equal(t, int64(120), agg.AvgSeconds)

	assert.Equal(t, 1, totals.TotalFiles)
	assert.Equal(t, int64(120), totals.TotalWorkSeconds)
	assert.Equal(t, int64(30), totals.TotalPauseSeconds)
	assert.Equal(t, int64(120), totals.AvgSeconds)
}

func TestSummarizeBatches_SkipCaseInsensitive(t *testing.T) {
	for _, status := range []string{"skip", "SKIP", "Skip", " skip "} {
		_, totals := SummarizeBatches([]models.WorkLogBatch{
			batch("c", "qc", 0, file("a.jpg", 100, status)),
		})
		assert.Zero(t, totals.TotalFiles, "status %q must be skipped", status)
		assert.Zero(t, totals.TotalWorkSeconds, "status %q must be skipped", status)
	}
}

func TestSummarizeBatches_MissingFieldsCoerced(t *testing.T) {
	byClient, totals := SummarizeBatches([]models.WorkLogBatch{
		batch("", "", 0, file("", 90, "done")),
	})

	agg, ok := byClient["unknown_client|||unknown_work_type"]
	require.True(t, ok, "malformed batch must land in the sentinel bucket")
	assert.Equal(t, 1, agg.TotalFiles)
	assert.Equal(t, int64(90), agg.WorkSeconds)
	assert.Equal(t, 1, totals.TotalFiles)
}

func TestSummarizeBatches_NegativeDurationsClamped(t *testing.T) {
	_, totals := SummarizeBatches([]models.WorkLogBatch{
		batch("c", "qc", -10, file("a.jpg", -5, "done")),
	})
	assert.Equal(t, 1, totals.TotalFiles)
	assert.Zero(t, totals.TotalWorkSeconds)
	assert.Zero(t, totals.TotalPauseSeconds)
}

func TestSummarizeBatches_AverageFloors(t *testing.T) {
	byClient, _ := SummarizeBatches([]models.WorkLogBatch{
		batch("c", "qc", 0,
			file("a.jpg", 100, "done"),
			file("b.jpg", 101, "done"),
		),
	})
	assert.Equal(t, int64(100), byClient["c|||qc"].AvgSeconds)
}

func TestSummarizeBatches_LastWriteWins(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(models.WorkLogBatch{ClientCode: "c", WorkType: "qc", Categories: "basic"})
	acc.Add(models.WorkLogBatch{ClientCode: "c", WorkType: "qc", Categories: "premium"})
	acc.Add(models.WorkLogBatch{ClientCode: "c", WorkType: "qc"}) // empty category keeps the last value

	byClient, _ := acc.Summarize()
	assert.Equal(t, "premium", byClient["c|||qc"].LastCategory)
	assert.Equal(t, "qc", byClient["c|||qc"].LastWorkType)
}

func TestSummarizeBatches_TotalsMatchBuckets(t *testing.T) {
	batches := []models.WorkLogBatch{
		batch("0001_XY", "qc", 30, file("a.jpg", 120, "done"), file("b.jpg", 60, "skip")),
		batch("0002_ZZ", "retouch", 15, file("c.jpg", 200, "done"), file("d.jpg", 100, "done")),
		batch("0001_XY", "qc", 10, file("e.jpg", 80, "done")),
	}

	byClient, totals := SummarizeBatches(batches)

	var files int
	var work, pause int64
	for _, agg := range byClient {
		files += agg.TotalFiles
		work += agg.WorkSeconds
		pause += agg.PauseSeconds
	}
	assert.Equal(t, totals.TotalFiles, files)
	assert.Equal(t, totals.TotalWorkSeconds, work)
	assert.Equal(t, totals.TotalPauseSeconds, pause)
	assert.Equal(t, 3, totals.TotalFiles)
	assert.Equal(t, int64(400), totals.TotalWorkSeconds)
}

func TestAccumulator_MergeMatchesSequential(t *testing.T) {
	batches := []models.WorkLogBatch{
		batch("0001_XY", "qc", 30, file("a.jpg", 120, "done")),
		batch("0002_ZZ", "retouch", 15, file("b.jpg", 200, "done")),
		batch("0001_XY", "qc", 5, file("c.jpg", 60, "done"), file("d.jpg", 40, "skip")),
		batch("", "", 0, file("e.jpg", 10, "done")),
	}

	sequential := NewAccumulator()
	for _, b := range batches {
		sequential.Add(b)
	}
	seqByClient, seqTotals := sequential.Summarize()

	// Sharded computation merged at the end must agree.
	left, right := NewAccumulator(), NewAccumulator()
	left.Add(batches[0])
	left.Add(batches[1])
	right.Add(batches[2])
	right.Add(batches[3])
	left.Merge(right)
	mergedByClient, mergedTotals := left.Summarize()

	assert.Equal(t, seqByClient, mergedByClient)
	assert.Equal(t, seqTotals, mergedTotals)
}

func TestBucketKey(t *testing.T) {
	assert.Equal(t, "0001_XY|||qc", BucketKey("0001_XY", "qc"))
	assert.Equal(t, "unknown_client|||qc", BucketKey("", "qc"))
	assert.Equal(t, "0001_XY|||unknown_work_type", BucketKey("0001_XY", "  "))
}

func TestSummarizeBatches_Empty(t *testing.T) {
	byClient, totals := SummarizeBatches(nil)
	assert.NotNil(t, byClient)
	assert.Empty(t, byClient)
	assert.Zero(t, totals.TotalFiles)
	assert.Zero(t, totals.AvgSeconds)
}
