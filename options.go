package numfmt

import "github.com/hongjr03/numfmt/internal/render"

// FormatterOptions controls the knobs a pattern can't express on its own:
// locale selection, overflow/invalid placeholders, grouping digit widths,
// non-breaking-space padding, and how out-of-range dates, bigints and
// malformed patterns are reported. The zero value is not ready to use;
// start from DefaultOptions and chain the With* builders.
type FormatterOptions struct {
	inner render.Options
}

// DefaultOptions returns the library defaults: six-hash overflow/invalid
// placeholders, throwing behavior on for parse errors, the 1900
// leap-year emulation on, indexed colors resolved to RGB strings, and
// primary/secondary grouping of three digits.
func DefaultOptions() FormatterOptions {
	return FormatterOptions{inner: render.DefaultOptions()}
}

// WithLocale sets the locale tag a pattern without its own "[$-xxx]"
// override resolves against. An empty tag (the default) resolves to the
// library's built-in default locale.
func (o FormatterOptions) WithLocale(tag string) FormatterOptions {
	o.inner.Locale = tag
	return o
}

// WithNbsp switches the blank filler of "?" placeholders (including the
// separator beside an unfilled "?" in a grouped integer) from a plain
// space to U+00A0 NO-BREAK SPACE. The locale's group separator is not
// changed.
func (o FormatterOptions) WithNbsp(nbsp bool) FormatterOptions {
	o.inner.Nbsp = nbsp
	return o
}

// WithGrouping sets the primary and secondary digit-group widths a
// grouped integer pattern splits on (Excel's own default is 3 and 3).
func (o FormatterOptions) WithGrouping(primary, secondary uint8) FormatterOptions {
	o.inner.Grouping = []uint8{primary, secondary}
	return o
}

// WithOverflow sets the placeholder text a value that overflows every
// partition's condition renders as.
func (o FormatterOptions) WithOverflow(text string) FormatterOptions {
	o.inner.Overflow = text
	return o
}

// WithInvalid sets the placeholder text an unparseable pattern renders as
// when Throws is false.
func (o FormatterOptions) WithInvalid(text string) FormatterOptions {
	o.inner.Invalid = text
	return o
}

// WithThrows controls whether an unparseable pattern returns an error
// (true, the default) or silently renders Invalid (false).
func (o FormatterOptions) WithThrows(throws bool) FormatterOptions {
	o.inner.Throws = throws
	return o
}

// WithDateErrorThrows controls whether a date value that overflows its
// section's representable range returns an error (true) or falls back to
// DateErrorNumber/Overflow behavior (false, the default).
func (o FormatterOptions) WithDateErrorThrows(throws bool) FormatterOptions {
	o.inner.DateErrorThrows = throws
	return o
}

// WithDateErrorNumber controls whether an out-of-range date falls back to
// rendering as a plain General-formatted number (true, the default) or as
// the Overflow placeholder (false), when DateErrorThrows is false.
func (o FormatterOptions) WithDateErrorNumber(number bool) FormatterOptions {
	o.inner.DateErrorNumber = number
	return o
}

// WithBigIntErrorNumber controls whether a *big.Int outside the
// float64-safe-integer range renders as its base-10 decimal string (true)
// or as the Overflow placeholder (false, the default).
func (o FormatterOptions) WithBigIntErrorNumber(number bool) FormatterOptions {
	o.inner.BigIntErrorNumber = number
	return o
}

// WithDateSpanLarge selects the wide 1317-epoch-spanning date range (the
// default) over the narrower historical range when checking whether a
// date value overflows.
func (o FormatterOptions) WithDateSpanLarge(large bool) FormatterOptions {
	o.inner.DateSpanLarge = large
	return o
}

// WithLeap1900 toggles emulation of the Lotus 1-2-3 1900 leap-year bug
// every spreadsheet reader's 1900 date system carries forward (on by
// default).
func (o FormatterOptions) WithLeap1900(leap bool) FormatterOptions {
	o.inner.Leap1900 = leap
	return o
}

// WithIgnoreTimezone is carried for interface parity with date values
// that originate from a timezone-aware source; this library's DateValue
// is always timezone-naive, so it has no effect on rendering.
func (o FormatterOptions) WithIgnoreTimezone(ignore bool) FormatterOptions {
	o.inner.IgnoreTimezone = ignore
	return o
}

// WithIndexColors controls whether an indexed "[Color n]" annotation
// resolves to its RGB hex string (true, the default) or is returned as
// the raw index.
func (o FormatterOptions) WithIndexColors(resolve bool) FormatterOptions {
	o.inner.IndexColors = resolve
	return o
}

// WithSkipChar sets the text an underscore-escape ("_x") renders as; by
// default a skip directive renders nothing, since this library has no
// fixed-width cell to pad a character's worth of blank space into.
func (o FormatterOptions) WithSkipChar(ch string) FormatterOptions {
	o.inner.SkipChar, o.inner.HasSkipChar = ch, true
	return o
}

// WithFillChar sets text that a "*x" fill directive renders, followed once
// by the directive's own character x; nothing is repeated to a width. By
// default fill directives render nothing, since this library has no fixed
// output width to fill.
func (o FormatterOptions) WithFillChar(ch string) FormatterOptions {
	o.inner.FillChar, o.inner.HasFillChar = ch, true
	return o
}
