package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// runSummary records one generation run for auditing. It is written next to
// the CSVs as both JSON and CSV.
type runSummary struct {
	RunID        string         `json:"run_id"`
	Command      string         `json:"command"`
	Seed         int64          `json:"seed"`
	Workers      int            `json:"workers,omitempty"`
	StartTime    time.Time      `json:"start_time"`
	EndTime      time.Time      `json:"end_time"`
	DurationSecs float64        `json:"duration_secs"`
	Rows         map[string]int `json:"rows"`
}

func newRunSummary(command string, seed int64, workers int, start time.Time) runSummary {
	return runSummary{
		RunID:     uuid.NewString(),
		Command:   command,
		Seed:      seed,
		Workers:   workers,
		StartTime: start,
		Rows:      make(map[string]int),
	}
}

func (s *runSummary) finish() {
	s.EndTime = time.Now()
	s.DurationSecs = s.EndTime.Sub(s.StartTime).Seconds()
}

func writeSummaryJSON(s runSummary, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func writeSummaryCSV(s runSummary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"table", "rows"}); err != nil {
		return err
	}
	tables := make([]string, 0, len(s.Rows))
	for t := range s.Rows {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		if err := w.Write([]string{t, strconv.Itoa(s.Rows[t])}); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(s runSummary) {
	fmt.Println()
	fmt.Println("============================================")
	fmt.Println(" GENERATION SUMMARY")
	fmt.Println("============================================")
	fmt.Printf("Run ID:    %s\n", s.RunID)
	fmt.Printf("Seed:      %d\n", s.Seed)
	if s.Workers > 0 {
		fmt.Printf("Workers:   %d\n", s.Workers)
	}
	fmt.Printf("Duration:  %.1fs\n", s.DurationSecs)
	fmt.Println()
	tables := make([]string, 0, len(s.Rows))
	for t := range s.Rows {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		fmt.Printf("  %-28s %d rows\n", t, s.Rows[t])
	}
	fmt.Println()
}
