package lineup

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// BoundaryError reports a byte-count split point that landed inside a
// multi-byte UTF-8 sequence.
type BoundaryError struct {
	// Offset is the byte offset of the bad split point in the
	// original input.
	Offset int
}

// Error formats the error message with the stored offset.
func (e *BoundaryError) Error() string {
	return fmt.Sprintf("lineup: split at byte %d is not on a rune boundary", e.Offset)
}

// Unwrap returns [ErrRuneBoundary] so BoundaryError participates in
// errors.Is.
func (e *BoundaryError) Unwrap() error { return ErrRuneBoundary }

// Reader tokenizes a single in-memory input into items. Items are
// substrings of the original input; nothing is copied.
//
// A Reader is not restartable and not safe for concurrent use.
type Reader struct {
	rest   string
	format InFormat
	inLine int
	offset int
	done   bool
}

// NewReader returns a Reader over input. It fails if the format does not
// validate. A nil Separator in the format means the default comma
// delimiter.
func NewReader(input string, format InFormat) (*Reader, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if format.Separator == nil {
		format.Separator = DefaultInFormat().Separator
	}
	return &Reader{rest: input, format: format}, nil
}

// Read returns the next item. It returns io.EOF once the input is
// exhausted, and a [BoundaryError] when a byte-count split lands inside
// a multi-byte character. After a non-nil error the Reader stays
// exhausted.
//
// In byte-count mode a final remainder shorter than the count is
// discarded, not returned. With the default [EmptyStop] policy an
// explicit delimiter producing an empty item also ends the stream; see
// [EmptyPolicy] for the alternatives.
func (r *Reader) Read() (string, error) {
	for {
		if r.done || r.rest == "" {
			r.done = true
			return "", io.EOF
		}
		switch sep := r.stepSeparator().(type) {
		case Delimiter:
			item, empty := r.cut(string(sep))
			if !empty {
				return item, nil
			}
			switch r.format.Empty {
			case EmptySkip:
				continue
			case EmptyKeep:
				return "", nil
			default: // EmptyStop
				r.done = true
				return "", io.EOF
			}
		case ByteCount:
			return r.take(int(sep))
		}
	}
}

// stepSeparator picks the separator for this step. Every ItemsPerLine-th
// step searches for the line separator instead of the item separator,
// regardless of the base tokenization mode.
func (r *Reader) stepSeparator() ItemSeparator {
	if lg := r.format.Line; lg != nil {
		if r.inLine == lg.ItemsPerLine-1 {
			r.inLine = 0
			return Delimiter(lg.Separator)
		}
		r.inLine++
	}
	return r.format.Separator
}

// cut consumes the input through the first occurrence of delim. When
// delim does not occur, the whole remaining input is the final item. An
// empty delim never matches; matching it everywhere would never consume
// input.
func (r *Reader) cut(delim string) (item string, empty bool) {
	before, after, found := strings.Cut(r.rest, delim)
	if !found || delim == "" {
		item = r.rest
		r.offset += len(r.rest)
		r.rest = ""
		return item, false
	}
	r.offset += len(before) + len(delim)
	r.rest = after
	return before, before == ""
}

// take consumes the next n bytes as one item.
func (r *Reader) take(n int) (string, error) {
	if len(r.rest) < n {
		// Trailing partial item is dropped.
		r.offset += len(r.rest)
		r.rest = ""
		r.done = true
		return "", io.EOF
	}
	if n < len(r.rest) && !utf8.RuneStart(r.rest[n]) {
		r.done = true
		return "", &BoundaryError{Offset: r.offset + n}
	}
	item := r.rest[:n]
	r.rest = r.rest[n:]
	r.offset += n
	return item, nil
}

// Items returns a range-over-func view of the remaining items. A
// tokenization error is yielded once, paired with an empty item, and
// iteration stops.
func (r *Reader) Items() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			item, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
