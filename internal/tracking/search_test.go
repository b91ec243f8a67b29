package tracking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
)

func searchBatch(client string, updated time.Time, names ...string) models.WorkLogBatch {
	b := models.WorkLogBatch{
		EmployeeName: "alice",
		ClientCode:   client,
		ClientName:   "Client " + client,
		WorkType:     "qc",
		Shift:        "morning",
		FolderPath:   "/orders/" + client,
		DateToday:    updated.Format(DateLayout),
		UpdatedAt:    updated,
	}
	for _, n := range names {
		b.Files = append(b.Files, models.FileEntry{FileName: n, TimeSpent: 65, FileStatus: "done"})
	}
	return b
}

func TestSearchFiles_BlankQueryRejected(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		_, err := SearchFiles(nil, q, "")
		assert.ErrorIs(t, err, ErrInvalidInput, "query %q", q)
	}
}

func TestSearchFiles_SubstringCaseInsensitive(t *testing.T) {
	batches := []models.WorkLogBatch{
		searchBatch("0001_XY", day, "IMG_0001.jpg", "portrait_final.png"),
	}

	results, err := SearchFiles(batches, "img_00", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "IMG_0001.jpg", results[0].FileName)
	assert.Equal(t, "alice", results[0].EmployeeName)
	assert.Equal(t, "00:01:05", results[0].TimeSpent)
	assert.Equal(t, "/orders/0001_XY/IMG_0001.jpg", results[0].FilePath)
}

func TestSearchFiles_ClientCodeFilter(t *testing.T) {
	batches := []models.WorkLogBatch{
		searchBatch("0001_XY", day, "a.jpg"),
		searchBatch("0002_ZZ", day, "a.jpg"),
	}

	results, err := SearchFiles(batches, "a.jpg", "0001_xy")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "0001_XY", results[0].ClientCode)
}

func TestSearchFiles_RecentFirstAndCapped(t *testing.T) {
	var batches []models.WorkLogBatch
	for i := 0; i < 70; i++ {
		batches = append(batches, searchBatch("c", day.Add(time.Duration(i)*time.Minute), fmt.Sprintf("file_%03d.jpg", i)))
	}

	results, err := SearchFiles(batches, "file_", "")
	require.NoError(t, err)
	assert.Len(t, results, 50)
	// Most recently updated batch surfaces first.
	assert.Equal(t, "file_069.jpg", results[0].FileName)
}

func TestSearchFiles_NoMatches(t *testing.T) {
	batches := []models.WorkLogBatch{searchBatch("c", day, "a.jpg")}

	results, err := SearchFiles(batches, "zzz", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFormatHHMMSS(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3661, "01:01:01"},
		{10800, "03:00:00"},
		{-5, "00:00:00"},
		{360000, "100:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHHMMSS(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		folder, name, want string
	}{
		{"/orders/a", "b.jpg", "/orders/a/b.jpg"},
		{"/orders/a/", "b.jpg", "/orders/a/b.jpg"},
		{"/orders/a/", "/b.jpg", "/orders/a/b.jpg"},
		{"/orders/a", "/b.jpg", "/orders/a/b.jpg"},
		{"", "b.jpg", "b.jpg"},
		{"/orders/a", "", "/orders/a"},
		{"", "", ""},
		{"  /orders/a/  ", " b.jpg ", "/orders/a/b.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPath(tt.folder, tt.name), "folder=%q name=%q", tt.folder, tt.name)
	}
}
