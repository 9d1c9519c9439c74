package service

import (
	"context"
	"math"
	"strconv"

	"arsipku/internal/model"
	"arsipku/internal/store"
)

// RecentLimit is how many documents the recent view shows.
const RecentLimit = 5

// Aggregates are the derived statistics over one user's document set.
// They are recomputed from the full set, never patched incrementally.
type Aggregates struct {
	FolderCounts map[model.Folder]int `json:"folders"`
	TotalCount   int                  `json:"total_count"`
	TotalBytes   int64                `json:"total_bytes"`
}

// StatsService derives aggregates and the recent view from the documents
// table. Callers re-run Recompute after every mutating operation.
type StatsService struct {
	docs store.DocumentStore
}

func NewStatsService(docs store.DocumentStore) *StatsService {
	return &StatsService{docs: docs}
}

// Recompute makes one full pass over the user's documents and returns the
// per-folder counts (all three folders always present), the total count and
// the total bytes used.
func (s *StatsService) Recompute(ctx context.Context, userID string) (Aggregates, error) {
	docs, err := s.docs.ListByUser(ctx, userID)
	if err != nil {
		return Aggregates{}, err
	}
	agg := Aggregates{FolderCounts: make(map[model.Folder]int, 3)}
	for _, f := range model.Folders() {
		agg.FolderCounts[f] = 0
	}
	for i := range docs {
		agg.FolderCounts[docs[i].Folder]++
		agg.TotalCount++
		agg.TotalBytes += docs[i].Size()
	}
	return agg, nil
}

// Recent returns the user's documents sorted by upload date, newest first,
// truncated to RecentLimit.
func (s *StatsService) Recent(ctx context.Context, userID string) ([]model.Document, error) {
	docs, err := s.docs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sorted := SortDocuments(docs, SortByUploadDate, true)
	if len(sorted) > RecentLimit {
		sorted = sorted[:RecentLimit]
	}
	return sorted, nil
}

// FormatBytes renders a byte count with base-1024 units, picking the largest
// unit and showing at most two decimals. Zero and negative counts render as
// "0 Bytes".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	units := [...]string{"Bytes", "KB", "MB", "GB", "TB"}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
