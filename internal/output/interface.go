package output

// Kind identifies one artifact of a run.
type Kind string

const (
	KindText    Kind = "text"
	KindSRT     Kind = "srt"
	KindJSON    Kind = "json"
	KindSummary Kind = "summary"
)

// Run groups the artifacts of one transcription run. All paths written for a
// run share the BaseName-Timestamp prefix, so a run's files sort together and
// never collide with another run's.
type Run struct {
	BaseName  string
	Timestamp string
	Outputs   map[Kind]string
}

// Prefix returns the shared file name prefix for the run's artifacts.
func (r *Run) Prefix() string {
	return r.BaseName + "-" + r.Timestamp
}

// Writer persists run artifacts under the output directory.
type Writer interface {
	// BeginRun derives a collision-free run handle from the input file name.
	BeginRun(inputFileName string) (*Run, error)

	// WriteText writes one artifact, records its path in run.Outputs, and
	// returns the path. Writing the same kind twice within a run overwrites
	// in place.
	WriteText(run *Run, kind Kind, content string) (string, error)
}
