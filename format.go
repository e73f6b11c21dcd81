package lineup

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for programmatic error handling.
var (
	ErrByteCount      = errors.New("byte count must be positive")
	ErrItemsPerLine   = errors.New("items per line must be positive")
	ErrSpanWidth      = errors.New("span width must be positive")
	ErrSpanPad        = errors.New("span pad character must be set")
	ErrUnknownAnchor  = errors.New("unknown anchor")
	ErrUnknownMeasure = errors.New("unknown measure")
	ErrUnknownPolicy  = errors.New("unknown empty-item policy")
	ErrRuneBoundary   = errors.New("split is not on a rune boundary")
)

// ItemSeparator selects how input text is tokenized into items.
// The two implementations are [Delimiter] and [ByteCount].
type ItemSeparator interface {
	itemSeparator()
}

// Delimiter splits input on a literal substring.
type Delimiter string

func (Delimiter) itemSeparator() {}

// ByteCount splits input every N bytes. The count must be positive, and
// every split point must fall on a UTF-8 rune boundary; a remainder
// shorter than N bytes is discarded.
type ByteCount int

func (ByteCount) itemSeparator() {}

// ParseItemSeparator parses a separator string. A string that parses as
// an integer selects [ByteCount] (and must be positive); anything else
// is a literal [Delimiter].
func ParseItemSeparator(s string) (ItemSeparator, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrByteCount, n)
		}
		return ByteCount(n), nil
	}
	return Delimiter(s), nil
}

// Anchor controls which side of the span an item sticks to when padding
// is needed.
type Anchor int

const (
	AnchorLeft  Anchor = iota // item first, padding after
	AnchorRight               // padding first, item after
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

// ParseAnchor parses an anchor name.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "left":
		return AnchorLeft, nil
	case "right":
		return AnchorRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAnchor, s)
	}
}

// Measure selects how an item's length is computed when padding.
type Measure int

const (
	// MeasureScalars counts Unicode code points.
	MeasureScalars Measure = iota
	// MeasureWidth counts terminal display cells, so full-width
	// characters count as two.
	MeasureWidth
)

// String returns the measure name.
func (m Measure) String() string {
	switch m {
	case MeasureScalars:
		return "scalars"
	case MeasureWidth:
		return "width"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// ParseMeasure parses a measure name.
func ParseMeasure(s string) (Measure, error) {
	switch s {
	case "scalars":
		return MeasureScalars, nil
	case "width":
		return MeasureWidth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMeasure, s)
	}
}

// EmptyPolicy controls what the reader does when an explicit delimiter
// produces an empty item.
type EmptyPolicy int

const (
	// EmptyStop ends the stream at the first empty item.
	EmptyStop EmptyPolicy = iota
	// EmptySkip drops empty items and keeps scanning.
	EmptySkip
	// EmptyKeep yields empty items like any other.
	EmptyKeep
)

// String returns the policy name.
func (p EmptyPolicy) String() string {
	switch p {
	case EmptyStop:
		return "stop"
	case EmptySkip:
		return "skip"
	case EmptyKeep:
		return "keep"
	default:
		return fmt.Sprintf("EmptyPolicy(%d)", int(p))
	}
}

// ParseEmptyPolicy parses an empty-item policy name.
func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	switch s {
	case "stop":
		return EmptyStop, nil
	case "skip":
		return EmptySkip, nil
	case "keep":
		return EmptyKeep, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// LineGrouping emits an alternate separator after every ItemsPerLine
// items. On the read side the alternate separator is searched for; on
// the write side it is emitted.
type LineGrouping struct {
	ItemsPerLine int
	Separator    string
}

// ItemSpan pads items shorter than Width up to exactly Width. Longer
// items pass through untouched; items are never truncated.
type ItemSpan struct {
	Width   int
	Pad     rune
	Anchor  Anchor
	Measure Measure
}

// InFormat describes how input text is tokenized.
//
// A nil Separator means the default comma delimiter. A nil Line means no
// line grouping. The reader and writer each keep their own line-grouping
// counter; the two sides never share state.
type InFormat struct {
	Separator ItemSeparator
	Line      *LineGrouping
	Empty     EmptyPolicy
}

// OutFormat describes how items are rendered.
type OutFormat struct {
	Span      *ItemSpan
	Separator string
	Line      *LineGrouping
}

// DefaultInFormat returns the default input format: comma-delimited
// items, no line grouping, empty items end the stream.
func DefaultInFormat() InFormat {
	return InFormat{Separator: Delimiter(",")}
}

// DefaultOutFormat returns the default output format: no padding, items
// joined with a single space on one line.
func DefaultOutFormat() OutFormat {
	return OutFormat{Separator: " "}
}

// Validate checks that the format is usable: a [ByteCount] separator
// must be positive and line grouping, when set, must have a positive
// item count.
func (f InFormat) Validate() error {
	if bc, ok := f.Separator.(ByteCount); ok && bc <= 0 {
		return fmt.Errorf("%w: %d", ErrByteCount, int(bc))
	}
	if f.Line != nil && f.Line.ItemsPerLine <= 0 {
		return fmt.Errorf("%w: %d", ErrItemsPerLine, f.Line.ItemsPerLine)
	}
	return nil
}

// Validate checks that the format is usable: a span, when set, must
// have a positive width and a pad character, and line grouping, when
// set, must have a positive item count.
func (f OutFormat) Validate() error {
	if f.Span != nil {
		if f.Span.Width <= 0 {
			return fmt.Errorf("%w: %d", ErrSpanWidth, f.Span.Width)
		}
		if f.Span.Pad == 0 {
			return ErrSpanPad
		}
	}
	if f.Line != nil && f.Line.ItemsPerLine <= 0 {
		return fmt.Errorf("%w: %d", ErrItemsPerLine, f.Line.ItemsPerLine)
	}
	return nil
}
