package tracking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
)

// maxSearchResults caps the file search response.
const maxSearchResults = 50

// SearchResult is one display-ready row of the file search.
type SearchResult struct {
	FileName     string `json:"fileName"`
	EmployeeName string `json:"employeeName"`
	WorkType     string `json:"workType"`
	Shift        string `json:"shift"`
	ClientName   string `json:"clientName"`
	ClientCode   string `json:"clientCode"`
	TimeSpent    string `json:"timeSpent"`
	FilePath     string `json:"filePath"`
	FolderPath   string `json:"folderPath"`
	DateToday    string `json:"dateToday"`
	Report       string `json:"report"`
}

// SearchFiles flattens batches into one row per file and returns the rows
// whose file name contains query (case-insensitive), most recently updated
// batches first, capped at 50. clientCode, when set, is a case-insensitive
// exact filter. A blank query is ErrInvalidInput.
func SearchFiles(batches []models.WorkLogBatch, query, clientCode string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("file search: %w", ErrInvalidInput)
	}
	needle := strings.ToLower(query)
	clientCode = strings.TrimSpace(clientCode)

	ordered := make([]models.WorkLogBatch, len(batches))
	copy(ordered, batches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].UpdatedAt.After(ordered[j].UpdatedAt)
	})

	results := make([]SearchResult, 0)
	for _, b := range ordered {
		if clientCode != "" && !strings.EqualFold(b.ClientCode, clientCode) {
			continue
		}
		for _, f := range b.Files {
			if !strings.Contains(strings.ToLower(f.FileName), needle) {
				continue
			}
			results = append(results, SearchResult{
				FileName:     f.FileName,
				EmployeeName: b.EmployeeName,
				WorkType:     b.WorkType,
				Shift:        b.Shift,
				ClientName:   b.ClientName,
				ClientCode:   b.ClientCode,
				TimeSpent:    FormatHHMMSS(f.TimeSpent),
				FilePath:     JoinPath(b.FolderPath, f.FileName),
				FolderPath:   b.FolderPath,
				DateToday:    b.DateToday,
				Report:       b.Report,
			})
			if len(results) >= maxSearchResults {
				return results, nil
			}
		}
	}
	return results, nil
}

// FormatHHMMSS renders a duration in seconds as HH:MM:SS. Malformed input
// degrades to "00:00:00" rather than failing.
func FormatHHMMSS(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// JoinPath joins a folder path and a file name with a single separator,
// tolerating missing or duplicate separators on either side.
func JoinPath(folder, name string) string {
	folder = strings.TrimRight(strings.TrimSpace(folder), "/")
	name = strings.TrimLeft(strings.TrimSpace(name), "/")
	switch {
	case folder == "" && name == "":
		return ""
	case folder == "":
		return name
	case name == "":
		return folder
	default:
		return folder + "/" + name
	}
}
