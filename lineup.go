package lineup

import (
	"io"
	"iter"
)

// Read tokenizes input into items. Validation failures and boundary
// errors are yielded once, paired with an empty item, and iteration
// stops.
//
// Items are substrings of input, so input must stay reachable while the
// sequence is in use. The sequence is single-pass.
func Read(input string, format InFormat) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		r, err := NewReader(input, format)
		if err != nil {
			yield("", err)
			return
		}
		for item, err := range r.Items() {
			if !yield(item, err) {
				return
			}
		}
	}
}

// Write formats items and writes them to w.
func Write(w io.Writer, format OutFormat, items ...string) error {
	iw, err := NewWriter(w, format)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := iw.WriteItem(item); err != nil {
			return err
		}
	}
	return nil
}

// WriteSeq formats items from an iterator and writes them to w as they
// arrive. It stops at the first sink error.
func WriteSeq(w io.Writer, format OutFormat, seq iter.Seq[string]) error {
	iw, err := NewWriter(w, format)
	if err != nil {
		return err
	}
	for item := range seq {
		if err := iw.WriteItem(item); err != nil {
			return err
		}
	}
	return nil
}

// Reformat tokenizes input according to in and writes the items to w
// according to out. It is a single blocking pass; the first
// tokenization or sink error aborts the rest of the emission.
func Reformat(w io.Writer, input string, in InFormat, out OutFormat) error {
	r, err := NewReader(input, in)
	if err != nil {
		return err
	}
	iw, err := NewWriter(w, out)
	if err != nil {
		return err
	}
	for {
		item, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := iw.WriteItem(item); err != nil {
			return err
		}
	}
}
