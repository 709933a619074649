package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// UniquePath picks a report filename for the gameweek that does not collide
// with earlier runs: GW_<n>_report.txt, then GW_<n>_report_2.txt and so on.
func UniquePath(dir string, gameweek int) string {
	base := filepath.Join(dir, fmt.Sprintf("GW_%d_report.txt", gameweek))
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return base
	}
	for i := 2; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("GW_%d_report_%d.txt", gameweek, i))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// Sink writes the report to a file while echoing it to a second stream,
// normally stdout.
type Sink struct {
	file *os.File
	out  io.Writer
}

// NewSink creates the report directory when missing and opens the next free
// report file for the gameweek.
func NewSink(dir string, gameweek int, echo io.Writer) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir %s: %w", dir, err)
	}
	path := UniquePath(dir, gameweek)
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report file %s: %w", path, err)
	}
	if echo == nil {
		echo = os.Stdout
	}
	return &Sink{file: file, out: echo}, nil
}

func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.file.Write(p)
	if err != nil {
		return n, err
	}
	// Echo failures do not invalidate the file copy.
	_, _ = s.out.Write(p)
	return n, nil
}

// Path returns the file this sink writes to.
func (s *Sink) Path() string {
	return s.file.Name()
}

func (s *Sink) Close() error {
	return s.file.Close()
}
