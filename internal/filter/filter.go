// Package filter implements the streaming loop, which reads one filesystem
// path per line, evaluates the compiled expression against the attributes of
// each path, and writes the lines that were accepted.
//
// Processing is strictly sequential and order-preserving. The first error of
// any kind aborts the run, while lines accepted before it remain written.
package filter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/desertwitch/direntfilter/internal/schema"
	"github.com/desertwitch/direntfilter/internal/values"
	"github.com/dustin/go-humanize"
)

type metadataProvider interface {
	GetMetadata(path string) *schema.Metadata
}

type evaluationProvider interface {
	Evaluate(value map[string]any) (bool, error)
}

// Stats holds the counters of a run.
type Stats struct {
	Read      uint64
	Skipped   uint64
	Evaluated uint64
	Accepted  uint64
}

// Handler is the principal implementation of the stream filter.
type Handler struct {
	fsHandler   metadataProvider
	evalHandler evaluationProvider
	stats       Stats
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(fsHandler metadataProvider, evalHandler evaluationProvider) *Handler {
	return &Handler{
		fsHandler:   fsHandler,
		evalHandler: evalHandler,
	}
}

// Stats returns the counters of the last (or current) run.
func (h *Handler) Stats() Stats {
	return h.stats
}

// Run reads r until it is exhausted, writing every accepted line to w. A
// final line without a line terminator is processed like any other.
func (h *Handler) Run(r io.Reader, w io.Writer) error {
	h.stats = Stats{}

	reader := bufio.NewReader(r)

	for lineNum := 1; ; lineNum++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("(filter) %w: line %d: %w", ErrRead, lineNum, err)
		}

		eof := err != nil

		if line == "" && eof {
			return nil
		}

		if err := h.processLine(lineNum, line, w); err != nil {
			return err
		}

		if eof {
			return nil
		}
	}
}

func (h *Handler) processLine(lineNum int, line string, w io.Writer) error {
	h.stats.Read++

	path := strings.TrimRightFunc(line, unicode.IsSpace)
	if path == "" {
		h.stats.Skipped++

		return nil
	}

	h.stats.Evaluated++

	metadata := h.fsHandler.GetMetadata(path)

	accepted, err := h.evalHandler.Evaluate(values.FromMetadata(metadata))
	if err != nil {
		return fmt.Errorf("(filter) line %d (%q): %w", lineNum, path, err)
	}

	if !accepted {
		return nil
	}

	if _, err := io.WriteString(w, path+"\n"); err != nil {
		return fmt.Errorf("(filter) %w: line %d: %w", ErrWrite, lineNum, err)
	}

	h.stats.Accepted++

	slog.Debug("Accepted:",
		"path", path,
		"size", humanize.IBytes(metadata.Len),
	)

	return nil
}
