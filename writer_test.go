package lineup_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bjaus/lineup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

func TestWriteSpanned(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format lineup.OutFormat
		items  []string
		want   string
	}{
		"span right anchor with line grouping": {
			format: lineup.OutFormat{
				Span:      &lineup.ItemSpan{Width: 4, Pad: '_', Anchor: lineup.AnchorRight},
				Separator: "|",
				Line:      &lineup.LineGrouping{ItemsPerLine: 2, Separator: ";"},
			},
			items: []string{"001", "01", "1"},
			want:  "_001|__01;___1",
		},
		"span left anchor": {
			format: lineup.OutFormat{
				Span:      &lineup.ItemSpan{Width: 4, Pad: '.', Anchor: lineup.AnchorLeft},
				Separator: " ",
			},
			items: []string{"ab", "abcd"},
			want:  "ab.. abcd",
		},
		"emoji pad and separators": {
			format: lineup.OutFormat{
				Span:      &lineup.ItemSpan{Width: 4, Pad: '👉', Anchor: lineup.AnchorRight},
				Separator: "🖖",
				Line:      &lineup.LineGrouping{ItemsPerLine: 2, Separator: "🔩\n"},
			},
			items: []string{"😊😊", "👶", "💼💼💼"},
			want:  "👉👉😊😊🖖👉👉👉👶🔩\n👉💼💼💼",
		},
		"no span": {
			format: lineup.OutFormat{Separator: ", "},
			items:  []string{"a", "bb"},
			want:   "a, bb",
		},
		"item at width is untouched": {
			format: lineup.OutFormat{
				Span:      &lineup.ItemSpan{Width: 3, Pad: '_', Anchor: lineup.AnchorRight},
				Separator: "|",
			},
			items: []string{"abc", "x"},
			want:  "abc|__x",
		},
		"item over width is never truncated": {
			format: lineup.OutFormat{
				Span:      &lineup.ItemSpan{Width: 2, Pad: '_', Anchor: lineup.AnchorLeft},
				Separator: "|",
			},
			items: []string{"abcdef", "x"},
			want:  "abcdef|x_",
		},
		"empty separator": {
			format: lineup.OutFormat{},
			items:  []string{"a", "b", "c"},
			want:   "abc",
		},
		"line grouping without span": {
			format: lineup.OutFormat{
				Separator: " ",
				Line:      &lineup.LineGrouping{ItemsPerLine: 3, Separator: "\n"},
			},
			items: []string{"1", "2", "3", "4", "5"},
			want:  "1 2 3\n4 5",
		},
		"no items": {
			format: lineup.DefaultOutFormat(),
			items:  nil,
			want:   "",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := lineup.Write(&buf, tt.format, tt.items...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteMeasure(t *testing.T) {
	t.Parallel()
	// "你" occupies one code point but two terminal cells.
	tests := map[string]struct {
		measure lineup.Measure
		want    string
	}{
		"scalars": {measure: lineup.MeasureScalars, want: "___你"},
		"width":   {measure: lineup.MeasureWidth, want: "__你"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			format := lineup.OutFormat{
				Span:      &lineup.ItemSpan{Width: 4, Pad: '_', Anchor: lineup.AnchorRight, Measure: tt.measure},
				Separator: " ",
			}
			err := lineup.Write(&buf, format, "你")
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriterStatePersists(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w, err := lineup.NewWriter(&buf, lineup.OutFormat{
		Separator: "|",
		Line:      &lineup.LineGrouping{ItemsPerLine: 2, Separator: ";"},
	})
	require.NoError(t, err)

	for _, item := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, w.WriteItem(item))
	}
	assert.Equal(t, "a|b;c|d;e", buf.String())
}

func TestWriterSinkError(t *testing.T) {
	t.Parallel()
	w, err := lineup.NewWriter(&errWriter{}, lineup.DefaultOutFormat())
	require.NoError(t, err)
	err = w.WriteItem("a")
	require.ErrorIs(t, err, errWriteFailed)
}

func TestWriterSinkErrorOnSeparator(t *testing.T) {
	t.Parallel()
	// First item succeeds; the separator before the second fails.
	sink := &failAfterN{n: 1}
	w, err := lineup.NewWriter(sink, lineup.OutFormat{Separator: "|"})
	require.NoError(t, err)
	require.NoError(t, w.WriteItem("a"))
	err = w.WriteItem("b")
	require.ErrorIs(t, err, errWriteFailed)
}

func TestNewWriterValidates(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format lineup.OutFormat
		want   error
	}{
		"zero span width": {
			format: lineup.OutFormat{Span: &lineup.ItemSpan{Width: 0, Pad: '_'}},
			want:   lineup.ErrSpanWidth,
		},
		"missing pad": {
			format: lineup.OutFormat{Span: &lineup.ItemSpan{Width: 4}},
			want:   lineup.ErrSpanPad,
		},
		"zero items per line": {
			format: lineup.OutFormat{Line: &lineup.LineGrouping{ItemsPerLine: 0}},
			want:   lineup.ErrItemsPerLine,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			_, err := lineup.NewWriter(&buf, tt.format)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
