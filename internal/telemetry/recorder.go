// Package telemetry records per-tick simulation samples to CSV for offline
// balancing and replay comparisons.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// TickRecord is one row of the telemetry CSV.
type TickRecord struct {
	Tick         int     `csv:"tick"`
	PlayerX      int     `csv:"player_x"`
	PlayerY      int     `csv:"player_y"`
	PlayerAngle  float64 `csv:"player_angle"`
	PlayerSpeed  int     `csv:"player_speed"`
	PlayerLasers int     `csv:"player_lasers"`
	EnemyLasers  int     `csv:"enemy_lasers"`
	Enemies      int     `csv:"enemies"`
	Kills        int     `csv:"kills"`
	ShotsFired   int     `csv:"shots_fired"`
	HitsTaken    int     `csv:"hits_taken"`
}

// Source is implemented by games that can describe their current tick.
type Source interface {
	TickRecord() TickRecord
}

// Recorder appends TickRecords to a CSV file, writing the header once.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	file          *os.File
	every         int
	headerWritten bool
}

// NewRecorder creates the CSV file at path. Only ticks divisible by every
// are written; every <= 1 records all ticks. An empty path disables recording.
func NewRecorder(path string, every int) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("telemetry: creating directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating %s: %w", path, err)
	}

	return &Recorder{file: f, every: max(every, 1)}, nil
}

// Record writes rec if its tick falls on the sampling interval.
func (r *Recorder) Record(rec TickRecord) error {
	if r == nil || rec.Tick%r.every != 0 {
		return nil
	}

	records := []TickRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("telemetry: writing tick %d: %w", rec.Tick, err)
		}
		r.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return fmt.Errorf("telemetry: writing tick %d: %w", rec.Tick, err)
	}
	return nil
}

// Close flushes and closes the file.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.file.Close()
}

// ReadFile loads every record from a telemetry CSV.
func ReadFile(path string) ([]TickRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: opening %s: %w", path, err)
	}
	defer f.Close()

	var records []TickRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("telemetry: parsing %s: %w", path, err)
	}
	return records, nil
}
