package report

// Report is the top-level output of a pixform batch run.
type Report struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Chain       []string         `json:"chain"`
	Entries     map[string]Entry `json:"entries"`
	Stats       Stats            `json:"stats"`
}

// Entry describes one processed source image and its written output.
type Entry struct {
	Source Source `json:"source"`
	Output Output `json:"output"`
}

// Source holds metadata about the input image.
type Source struct {
	Path   string `json:"path"`   // relative to the input directory
	Format string `json:"format"` // "png", "jpeg", ...
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

// Output describes the transformed file written to disk.
type Output struct {
	Path   string `json:"path"` // relative to the output directory
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64 of the encoded bytes
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputs      int   `json:"total_inputs"`
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	Failed           int   `json:"failed,omitempty"`
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
