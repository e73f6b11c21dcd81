// Package lineup re-tokenizes delimited text and re-emits it under a
// different layout.
//
// Input is split into items by an [InFormat]: either on a literal
// [Delimiter] or every N bytes with [ByteCount]. Items are then written
// out under an [OutFormat]: a separator string between items, optional
// fixed-width padding per item ([ItemSpan]), and optional grouping of N
// items per line with a distinct line separator ([LineGrouping]).
//
// The central entry points are [Read], [Write], and [Reformat]:
//
//	out := lineup.OutFormat{
//		Span:      &lineup.ItemSpan{Width: 4, Pad: '_', Anchor: lineup.AnchorRight},
//		Separator: "|",
//		Line:      &lineup.LineGrouping{ItemsPerLine: 2, Separator: ";"},
//	}
//	lineup.Write(os.Stdout, out, "001", "01", "1")
//	// Output: _001|__01;___1
//
// [Reader] and [Writer] are the underlying single-pass engines, for
// callers that want item-at-a-time control.
//
// # Tokenization
//
// With a [Delimiter], the text before each occurrence becomes an item
// and the remainder after the last occurrence becomes the final item.
// With [ByteCount], every N-byte slice becomes an item; a trailing
// remainder shorter than N is discarded, and a split point inside a
// multi-byte UTF-8 sequence is reported as a [BoundaryError].
//
// When line grouping is configured on the input side, every
// ItemsPerLine-th step searches for the line separator instead of the
// item separator. The input and output sides keep independent grouping
// counters.
//
// An empty item (two adjacent delimiters) ends the stream by default,
// matching the tool this package grew out of. Set [InFormat.Empty] to
// [EmptySkip] or [EmptyKeep] for the two more conventional behaviors.
//
// # Padding
//
// An [ItemSpan] pads items shorter than Width with copies of Pad, on the
// right for [AnchorLeft] and on the left for [AnchorRight]. Longer items
// are written unchanged; items are never truncated. Length is measured
// in Unicode code points by default, or in terminal display cells with
// [MeasureWidth].
//
// # Errors
//
// Formats are validated when a Reader or Writer is constructed; the
// sentinel errors ([ErrByteCount], [ErrSpanWidth], ...) support
// errors.Is. Sink write failures propagate to the caller verbatim, and
// nothing is retried: the whole pipeline is a pure, one-shot transform.
package lineup
