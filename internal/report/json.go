package report

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/mselser95/signbench/pkg/types"
)

// ExportRun writes the full run record as indented JSON, suitable for
// archival or re-ranking with the rank command.
func ExportRun(path string, run *types.BenchmarkRun) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// LoadRun reads a previously exported run record.
func LoadRun(path string) (*types.BenchmarkRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var run types.BenchmarkRun
	err = json.Unmarshal(data, &run)
	if err != nil {
		return nil, fmt.Errorf("unmarshal run: %w", err)
	}

	return &run, nil
}
