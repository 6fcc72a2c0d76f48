// Package numfmt renders spreadsheet-style number-format patterns
// ("#,##0.00", "mm/dd/yyyy", "[Red]0.00;(0.00)") against a value, the way
// a spreadsheet application's cell display does. It tokenizes and
// assembles the pattern once per distinct string (memoized across calls),
// then walks the resolved section's token program to produce formatted
// text, an optional resolved color annotation, or both.
package numfmt

import (
	"math"
	"math/big"

	"github.com/hongjr03/numfmt/internal/calendar"
	"github.com/hongjr03/numfmt/internal/locale"
	"github.com/hongjr03/numfmt/internal/pattern"
	"github.com/hongjr03/numfmt/internal/render"
	"github.com/hongjr03/numfmt/internal/section"
	"github.com/hongjr03/numfmt/internal/token"
)

var defaultTextSection = func() *section.Section {
	sec := section.New()
	sec.Text = true
	tok := token.Token{Kind: token.KindText, Raw: "@", Text: "@"}
	sec.Tokens = []section.SectionToken{{Kind: section.STToken, Token: tok}}
	return sec
}()

// Format renders pattern against value using DefaultOptions.
func Format(pat string, value FormatValue) (string, error) {
	return FormatWithOptions(pat, value, DefaultOptions())
}

// FormatWithOptions renders pattern against value under the given
// options.
func FormatWithOptions(pat string, value FormatValue, opts FormatterOptions) (string, error) {
	parsed, err := pattern.Resolve(pat, opts.inner.Throws)
	if err != nil {
		return "", newParseError(err)
	}

	loc := localeFor(parsed, &opts)
	parts := parsed.Partitions
	textSection := defaultTextSection
	if len(parts) > 3 {
		textSection = parts[3]
	}

	switch value.Kind {
	case ValueNull:
		return "", nil
	case ValueBoolean:
		text := loc.BoolFalse()
		if value.Boolean {
			text = loc.BoolTrue()
		}
		return render.Part(render.TextValue(text), textSection, &opts.inner, loc)
	case ValueText:
		return render.Part(render.TextValue(value.Text), textSection, &opts.inner, loc)
	case ValueNumber:
		return formatNumber(value.Number, parts, &opts.inner, loc)
	case ValueBigInt:
		return formatBigInt(value.BigInt, parts, &opts.inner, loc)
	case ValueDate:
		if serial, ok := dateToSerial(value.Date, opts.inner.IgnoreTimezone); ok {
			return formatNumber(serial, parts, &opts.inner, loc)
		}
		return render.Part(render.TextValue(""), textSection, &opts.inner, loc)
	default:
		return "", nil
	}
}

func formatNumber(value float64, parts []*section.Section, opts *render.Options, loc *locale.Locale) (string, error) {
	if math.IsNaN(value) {
		return loc.NaN, nil
	}
	if math.IsInf(value, 0) {
		if value < 0 {
			return loc.Negative + loc.Infinity, nil
		}
		return loc.Infinity, nil
	}

	part := getPart(value, parts)
	if part == nil {
		return opts.Overflow, nil
	}
	result, err := render.Part(render.NumberValue(value), part, opts, loc)
	if err != nil {
		return "", newDateOutOfBoundsError()
	}
	return result, nil
}

func formatBigInt(value *big.Int, parts []*section.Section, opts *render.Options, loc *locale.Locale) (string, error) {
	conditionValue := bigintConditionValue(value)
	part := getPart(conditionValue, parts)
	if part == nil {
		return opts.Overflow, nil
	}
	result, err := render.Part(render.BigIntValue(value), part, opts, loc)
	if err != nil {
		return "", newDateOutOfBoundsError()
	}
	return result, nil
}

// Color is a resolved "[Red]" / "[Color n]" section annotation: either a
// named color (lowercased passthrough, e.g. "red") or an indexed color,
// resolved to its RGB hex string when FormatterOptions.IndexColors asked
// for it, or left as the raw index otherwise.
type Color struct {
	Name    string
	Index   uint32
	IsIndex bool
}

// FormatColor resolves the color annotation the section chosen for value
// under pattern carries, without rendering the text itself. It returns
// nil when the pattern's chosen section has no color annotation, or when
// no section matches (conditional exhaustion on a numeric/bigint value).
func FormatColor(pat string, value FormatValue, opts FormatterOptions) (*Color, error) {
	parsed, err := pattern.Resolve(pat, opts.inner.Throws)
	if err != nil {
		return nil, newParseError(err)
	}

	parts := parsed.Partitions
	var part *section.Section
	if len(parts) > 3 {
		part = parts[3]
	} else {
		part = defaultTextSection
	}

	switch value.Kind {
	case ValueNumber:
		if !math.IsNaN(value.Number) && !math.IsInf(value.Number, 0) {
			part = getPart(value.Number, parts)
		}
	case ValueBigInt:
		part = getPart(bigintConditionValue(value.BigInt), parts)
	}

	if part == nil {
		return nil, nil
	}
	return resolveColorFromSection(part, &opts), nil
}

func resolveColorFromSection(sec *section.Section, opts *FormatterOptions) *Color {
	if sec == nil || sec.Color == nil {
		return nil
	}
	if sec.Color.IsIndex {
		if opts.inner.IndexColors {
			return &Color{Name: render.ResolveIndexColor(sec.Color.Index)}
		}
		return &Color{IsIndex: true, Index: sec.Color.Index}
	}
	return &Color{Name: sec.Color.Named}
}

// getPart picks the first of parts' first three partitions whose
// condition matches value, or the first unconditional partition among
// them; it returns nil if every one of them carries a condition and none
// match (a conditional pattern with no fallback, exhausted).
func getPart(value float64, parts []*section.Section) *section.Section {
	limit := len(parts)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		sec := parts[i]
		if sec.Condition == nil {
			return sec
		}
		if conditionMatches(sec.Condition, value) {
			return sec
		}
	}
	return nil
}

func conditionMatches(cond *token.Condition, value float64) bool {
	switch cond.Operator {
	case token.OpEqual:
		return value == cond.Operand
	case token.OpGreater:
		return value > cond.Operand
	case token.OpGreaterEqual:
		return value >= cond.Operand
	case token.OpLess:
		return value < cond.Operand
	case token.OpLessEqual:
		return value <= cond.Operand
	case token.OpNotEqual:
		return value != cond.Operand
	default:
		return false
	}
}

// bigintConditionValue converts b to the float64 a partition's condition
// compares a value against, saturating to ±Inf when b falls outside
// float64's range rather than losing its sign.
func bigintConditionValue(b *big.Int) float64 {
	f, _ := new(big.Float).SetInt(b).Float64()
	return f
}

func localeFor(parsed *pattern.Pattern, opts *FormatterOptions) *locale.Locale {
	tag := parsed.Locale
	if !parsed.HasLocale {
		tag = opts.inner.Locale
	}
	return locale.GetLocaleOrDefault(tag)
}

// dateToSerial converts a decomposed calendar date into the spreadsheet
// serial number formatNumber's date section rendering expects. The
// timezone flag is accepted for interface parity with timezone-aware
// date sources; DateValue itself is always timezone-naive.
func dateToSerial(d DateValue, _ignoreTimezone bool) (float64, bool) {
	month := 1
	if d.HasMonth {
		month = int(d.Month)
	}
	day := 1
	if d.HasDay {
		day = int(d.Day)
	}
	var hour, minute, second float64
	if d.HasTime {
		hour, minute, second = float64(d.Hour), float64(d.Minute), float64(d.Second)
	}
	var millisecond float64
	if d.HasMillisecond {
		millisecond = float64(d.Millisecond)
	}
	return calendar.DateToSerial(d.Year, month, day, hour, minute, second, millisecond), true
}
