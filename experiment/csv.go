package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{
	"Run_ID", "Size", "Run", "Algorithm", "Success", "Time",
	"Path_Length", "Nodes_Expanded", "Nodes_Generated", "Max_Mem_Nodes",
	"Avg_Branching", "Max_Branching", "Min_Branching",
}

// WriteCSV writes the run records with a fixed header row.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.RunID,
			strconv.Itoa(rec.Size),
			strconv.Itoa(rec.Run),
			rec.Algorithm,
			strconv.FormatBool(rec.Success),
			strconv.FormatFloat(rec.Seconds, 'f', 6, 64),
			strconv.Itoa(rec.PathLength),
			strconv.Itoa(rec.Expanded),
			strconv.Itoa(rec.Generated),
			strconv.Itoa(rec.PeakInMemory),
			strconv.FormatFloat(rec.AvgBranching, 'f', 4, 64),
			strconv.Itoa(rec.MaxBranching),
			strconv.Itoa(rec.MinBranching),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the records to a file, creating parent directories.
func WriteCSVFile(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() { _ = fd.Close() }()
	return WriteCSV(fd, records)
}
