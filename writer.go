package lineup

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

type pendingSeparator int

const (
	pendingNone pendingSeparator = iota
	pendingItem
	pendingLine
)

// Writer emits items one at a time with the configured separators and
// padding. Separator state persists across calls, so use one Writer per
// output run and call WriteItem once per item, in order.
//
// Writer does no buffering of its own; sink errors propagate verbatim.
type Writer struct {
	w       io.Writer
	format  OutFormat
	pending pendingSeparator
	inLine  int
}

// NewWriter returns a Writer on w. It fails if the format does not
// validate.
func NewWriter(w io.Writer, format OutFormat) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	return &Writer{w: w, format: format}, nil
}

// WriteItem appends one formatted item to the sink: first the separator
// owed from the previous call, then the item, padded to the span width
// when one is configured. Items are never truncated.
func (w *Writer) WriteItem(item string) error {
	switch w.pending {
	case pendingItem:
		if _, err := io.WriteString(w.w, w.format.Separator); err != nil {
			return err
		}
	case pendingLine:
		if _, err := io.WriteString(w.w, w.format.Line.Separator); err != nil {
			return err
		}
	}
	if err := w.writeSpanned(item); err != nil {
		return err
	}
	w.advance()
	return nil
}

func (w *Writer) writeSpanned(item string) error {
	span := w.format.Span
	if span == nil {
		_, err := io.WriteString(w.w, item)
		return err
	}
	length := span.length(item)
	if length >= span.Width {
		_, err := io.WriteString(w.w, item)
		return err
	}
	pad := strings.Repeat(string(span.Pad), span.Width-length)
	if span.Anchor == AnchorRight {
		if _, err := io.WriteString(w.w, pad); err != nil {
			return err
		}
		_, err := io.WriteString(w.w, item)
		return err
	}
	if _, err := io.WriteString(w.w, item); err != nil {
		return err
	}
	_, err := io.WriteString(w.w, pad)
	return err
}

// advance decides which separator the next call owes.
func (w *Writer) advance() {
	lg := w.format.Line
	if lg == nil {
		w.pending = pendingItem
		return
	}
	if w.inLine+1 < lg.ItemsPerLine {
		w.pending = pendingItem
		w.inLine++
		return
	}
	w.pending = pendingLine
	w.inLine = 0
}

// length computes the item length under the span's measure.
func (s *ItemSpan) length(item string) int {
	if s.Measure == MeasureWidth {
		return runewidth.StringWidth(item)
	}
	return utf8.RuneCountInString(item)
}
