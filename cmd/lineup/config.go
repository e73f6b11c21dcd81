package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bjaus/lineup"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// options holds raw flag values before they are resolved into lineup
// formats.
type options struct {
	configPath string

	inSeparator     string
	inLineN         int
	inLineSeparator string
	inEmpty         string

	outSpan          int
	outPad           string
	outAnchor        string
	outMeasure       string
	outSeparator     string
	outLineN         int
	outLineSeparator string
}

func defaultOptions() options {
	return options{
		inSeparator:  ",",
		inEmpty:      "stop",
		outPad:       " ",
		outAnchor:    "left",
		outMeasure:   "scalars",
		outSeparator: " ",
	}
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML file with in/out format settings; explicit flags override it")
	fs.StringVar(&o.inSeparator, "in-separator", o.inSeparator, "IN format: item separator, a literal string or a byte count per item when numeric")
	fs.IntVar(&o.inLineN, "in-line-n", 0, "IN format: items per line; 0 means all items on a single line")
	fs.StringVar(&o.inLineSeparator, "in-line-separator", "", "IN format: separator string between lines")
	fs.StringVar(&o.inEmpty, "in-empty", o.inEmpty, "IN format: empty item handling, one of stop, skip, keep")
	fs.IntVar(&o.outSpan, "out-span", 0, "OUT format: pad items shorter than this many characters; 0 disables padding")
	fs.StringVar(&o.outPad, "out-pad", o.outPad, "OUT format: pad character (see --out-span)")
	fs.StringVar(&o.outAnchor, "out-anchor", o.outAnchor, "OUT format: anchor items left or right when padding is needed")
	fs.StringVar(&o.outMeasure, "out-measure", o.outMeasure, "OUT format: item length measure, scalars or width")
	fs.StringVar(&o.outSeparator, "out-separator", o.outSeparator, "OUT format: separator string for items within a line")
	fs.IntVar(&o.outLineN, "out-line-n", 0, "OUT format: items per line; 0 means all items on a single line")
	fs.StringVar(&o.outLineSeparator, "out-line-separator", "", "OUT format: separator string between lines")
}

// fileConfig is the YAML shape of --config. Pointer fields distinguish
// "absent" from an explicit zero value.
type fileConfig struct {
	In struct {
		Separator     *string `yaml:"separator"`
		LineN         *int    `yaml:"line_n"`
		LineSeparator *string `yaml:"line_separator"`
		Empty         *string `yaml:"empty"`
	} `yaml:"in"`
	Out struct {
		Span          *int    `yaml:"span"`
		Pad           *string `yaml:"pad"`
		Anchor        *string `yaml:"anchor"`
		Measure       *string `yaml:"measure"`
		Separator     *string `yaml:"separator"`
		LineN         *int    `yaml:"line_n"`
		LineSeparator *string `yaml:"line_separator"`
	} `yaml:"out"`
}

// resolve merges the config file (when given) with the flag values and
// builds the lineup formats. Flags explicitly set on the command line
// win over the file.
func (o *options) resolve(fs *pflag.FlagSet) (lineup.InFormat, lineup.OutFormat, error) {
	merged := *o
	if o.configPath != "" {
		if err := merged.applyFile(o.configPath, fs); err != nil {
			return lineup.InFormat{}, lineup.OutFormat{}, err
		}
	}
	return merged.formats()
}

func (o *options) applyFile(path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to load config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var fc fileConfig
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}

	apply := func(flag string, fn func()) {
		if !fs.Changed(flag) {
			fn()
		}
	}
	if fc.In.Separator != nil {
		apply("in-separator", func() { o.inSeparator = *fc.In.Separator })
	}
	if fc.In.LineN != nil {
		apply("in-line-n", func() { o.inLineN = *fc.In.LineN })
	}
	if fc.In.LineSeparator != nil {
		apply("in-line-separator", func() { o.inLineSeparator = *fc.In.LineSeparator })
	}
	if fc.In.Empty != nil {
		apply("in-empty", func() { o.inEmpty = *fc.In.Empty })
	}
	if fc.Out.Span != nil {
		apply("out-span", func() { o.outSpan = *fc.Out.Span })
	}
	if fc.Out.Pad != nil {
		apply("out-pad", func() { o.outPad = *fc.Out.Pad })
	}
	if fc.Out.Anchor != nil {
		apply("out-anchor", func() { o.outAnchor = *fc.Out.Anchor })
	}
	if fc.Out.Measure != nil {
		apply("out-measure", func() { o.outMeasure = *fc.Out.Measure })
	}
	if fc.Out.Separator != nil {
		apply("out-separator", func() { o.outSeparator = *fc.Out.Separator })
	}
	if fc.Out.LineN != nil {
		apply("out-line-n", func() { o.outLineN = *fc.Out.LineN })
	}
	if fc.Out.LineSeparator != nil {
		apply("out-line-separator", func() { o.outLineSeparator = *fc.Out.LineSeparator })
	}
	return nil
}

func (o *options) formats() (lineup.InFormat, lineup.OutFormat, error) {
	var in lineup.InFormat
	var out lineup.OutFormat

	sep, err := lineup.ParseItemSeparator(o.inSeparator)
	if err != nil {
		return in, out, fmt.Errorf("--in-separator: %w", err)
	}
	in.Separator = sep
	if o.inLineN > 0 {
		in.Line = &lineup.LineGrouping{ItemsPerLine: o.inLineN, Separator: o.inLineSeparator}
	}
	if in.Empty, err = lineup.ParseEmptyPolicy(o.inEmpty); err != nil {
		return in, out, fmt.Errorf("--in-empty: %w", err)
	}

	out.Separator = o.outSeparator
	if o.outLineN > 0 {
		out.Line = &lineup.LineGrouping{ItemsPerLine: o.outLineN, Separator: o.outLineSeparator}
	}
	if o.outSpan > 0 {
		if utf8.RuneCountInString(o.outPad) != 1 {
			return in, out, fmt.Errorf("--out-pad: %w: %q", lineup.ErrSpanPad, o.outPad)
		}
		pad, _ := utf8.DecodeRuneInString(o.outPad)
		anchor, err := lineup.ParseAnchor(o.outAnchor)
		if err != nil {
			return in, out, fmt.Errorf("--out-anchor: %w", err)
		}
		measure, err := lineup.ParseMeasure(o.outMeasure)
		if err != nil {
			return in, out, fmt.Errorf("--out-measure: %w", err)
		}
		out.Span = &lineup.ItemSpan{Width: o.outSpan, Pad: pad, Anchor: anchor, Measure: measure}
	}

	if err := in.Validate(); err != nil {
		return in, out, err
	}
	if err := out.Validate(); err != nil {
		return in, out, err
	}
	return in, out, nil
}
