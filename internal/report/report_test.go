package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestReportRoundtrip(t *testing.T) {
	r := New([]string{"grayscale", "edge"})
	r.Entries["cards/card-1"] = Entry{
		Source: Source{Path: "cards/card-1.png", Format: "png", Width: 200, Height: 150, Size: 9000},
		Output: Output{Path: "cards/card-1.200.150.abcd1234.png", Format: "png",
			Width: 200, Height: 150, Size: 7500, Hash: "abcd1234abcd1234"},
	}
	r.Stats.Failed = 1

	dir := t.TempDir()
	path := filepath.Join(dir, "pixform.report.json")
	if err := WriteJSON(r, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var r2 Report
	if err := json.Unmarshal(data, &r2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if r2.Version != SupportedReportVersion {
		t.Errorf("version: got %d, want %d", r2.Version, SupportedReportVersion)
	}
	if len(r2.Chain) != 2 || r2.Chain[1] != "edge" {
		t.Errorf("chain: got %v", r2.Chain)
	}
	e, ok := r2.Entries["cards/card-1"]
	if !ok {
		t.Fatal("entry cards/card-1 missing")
	}
	if e.Output.Hash != "abcd1234abcd1234" {
		t.Errorf("output hash: got %q", e.Output.Hash)
	}
	if r2.Stats.TotalInputs != 1 {
		t.Errorf("total_inputs: got %d", r2.Stats.TotalInputs)
	}
	if r2.Stats.TotalInputBytes != 9000 || r2.Stats.TotalOutputBytes != 7500 {
		t.Errorf("byte stats: %+v", r2.Stats)
	}
	if r2.Stats.Failed != 1 {
		t.Errorf("failed count lost across ComputeStats: %+v", r2.Stats)
	}
}

func TestReportIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2026-01-01T00:00:00Z",
		"chain": ["invert"],
		"future_field": "should be ignored",
		"entries": {},
		"stats": { "total_inputs": 0, "new_stat": 42 }
	}`

	var r Report
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if r.Version != 1 || len(r.Chain) != 1 {
		t.Errorf("parsed report: %+v", r)
	}
}
