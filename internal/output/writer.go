package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/duel-chess/internal/config"
	"github.com/lgbarn/duel-chess/internal/game"
)

// SnapshotWriter is the interface for writing game positions to output.
// Different implementations handle different output formats (text, JSON).
type SnapshotWriter interface {
	// WriteSnapshot writes one position.
	WriteSnapshot(snap game.Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by the display settings.
func NewWriter(w io.Writer, opts *config.DisplayConfig) SnapshotWriter {
	if opts != nil && opts.JSON {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, opts)
}

// TextWriter draws the board followed by a status line.
type TextWriter struct {
	w    io.Writer
	opts *config.DisplayConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts *config.DisplayConfig) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// WriteSnapshot draws the position.
func (tw *TextWriter) WriteSnapshot(snap game.Snapshot) error {
	if err := RenderBoard(tw.w, snap.Board, tw.opts); err != nil {
		return err
	}
	_, err := fmt.Fprintln(tw.w, DescribeStatus(snap))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONHistory holds a sequence of positions for array output.
type JSONHistory struct {
	Snapshots []*JSONSnapshot `json:"snapshots"`
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	snaps  []*JSONSnapshot
	single bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches positions until Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteSnapshot buffers a position (or writes it immediately in single mode).
func (jw *JSONWriter) WriteSnapshot(snap game.Snapshot) error {
	js := SnapshotJSON(snap)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(js)
	}
	jw.snaps = append(jw.snaps, js)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.snaps) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONHistory{Snapshots: jw.snaps})

	jw.snaps = jw.snaps[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
