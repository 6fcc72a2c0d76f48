// Package render turns one resolved Section plus a concrete value into the
// final output string: it applies scaling, rounds to the section's digit
// budget, splits the result into integer/fraction/exponent/numerator/
// denominator digit runs, derives a date's calendar fields when the
// section carries date tokens, and then walks the section's token program
// emitting each piece (or its padding) in order.
package render

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/hongjr03/numfmt/internal/calendar"
	"github.com/hongjr03/numfmt/internal/locale"
	"github.com/hongjr03/numfmt/internal/mathutil"
	"github.com/hongjr03/numfmt/internal/section"
	"github.com/hongjr03/numfmt/internal/token"
)

const daysize = 86400.0

var maxSafeInteger = big.NewInt(9007199254740991)
var minSafeInteger = new(big.Int).Neg(maxSafeInteger)

// ValueKind discriminates the payload RunValue carries.
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueBigInt
	ValueText
)

// RunValue is the concrete value a single Section renders: a float64, an
// arbitrary-precision integer, or literal text (used for the text
// partition and for boolean values already converted to their locale
// literal).
type RunValue struct {
	Kind   ValueKind
	Number float64
	BigInt *big.Int
	Text   string
}

// NumberValue wraps a float64 render value.
func NumberValue(n float64) RunValue { return RunValue{Kind: ValueNumber, Number: n} }

// BigIntValue wraps an arbitrary-precision integer render value.
func BigIntValue(b *big.Int) RunValue { return RunValue{Kind: ValueBigInt, BigInt: b} }

// TextValue wraps a literal text render value.
func TextValue(s string) RunValue { return RunValue{Kind: ValueText, Text: s} }

// ErrDateOutOfBounds is returned when a date section's value falls outside
// the calendar range and Options.DateErrorThrows asks to fail instead of
// rendering as a number or an overflow placeholder.
var ErrDateOutOfBounds = fmt.Errorf("date out of bounds")

// Part renders value against part using opts and loc, producing the final
// output string for that section.
func Part(value RunValue, part *section.Section, opts *Options, loc *locale.Locale) (string, error) {
	var numericValue float64
	haveNumeric := false
	var textValue string
	haveText := false

	switch value.Kind {
	case ValueNumber:
		numericValue = value.Number
		haveNumeric = true
	case ValueBigInt:
		if value.BigInt.Cmp(minSafeInteger) >= 0 && value.BigInt.Cmp(maxSafeInteger) <= 0 {
			f := new(big.Float).SetInt(value.BigInt)
			numericValue, _ = f.Float64()
			haveNumeric = true
		} else if opts.BigIntErrorNumber {
			return value.BigInt.String(), nil
		} else {
			return opts.Overflow, nil
		}
	case ValueText:
		textValue = value.Text
		haveText = true
	}

	var mantissa, mantissaSign, numerator, denominator, fraction, integer string
	var exponent int32

	if !part.Text && !math.IsNaN(part.Scale) && math.Abs(part.Scale-1.0) > 2.220446049250313e-16 {
		if haveNumeric {
			numericValue = mathutil.Clamp(numericValue * part.Scale)
		}
	}

	if part.Exponential && haveNumeric {
		val := numericValue
		absVal := math.Abs(val)
		if absVal != 0.0 {
			exponent = int32(mathutil.GetExponent(absVal, part.IntMax))
		}
		if val != 0.0 && !part.Integer {
			exponent++
		}
		absVal = mathutil.GetSignificand(absVal, int(exponent))
		if part.IntMax == 1 && mathutil.Round(absVal, part.FracMax) == 10.0 {
			absVal = 1.0
			exponent++
		}
		if val < 0.0 {
			val = -absVal
		} else {
			val = absVal
		}
		numericValue = val
		mantissa = strconv.FormatInt(int64(abs32(exponent)), 10)
	}

	if part.Integer && haveNumeric {
		places := part.FracMax
		if part.Fractions {
			places = 1
		}
		rounded := mathutil.Round(numericValue, places)
		absRounded := math.Abs(rounded)
		if absRounded >= 1.0 {
			integer = strconv.FormatFloat(math.Trunc(absRounded), 'f', -1, 64)
		}
	}

	fracFull := strings.Join(part.FracPattern, "")

	if part.DecFractions && part.FracMax > 0 && haveNumeric {
		rounded := mathutil.Round(numericValue, part.FracMax)
		repr := strconv.FormatFloat(rounded, 'f', -1, 64)
		if idx := strings.IndexByte(repr, '.'); idx >= 0 {
			fracChars := []rune(repr[idx+1:])
			patternChars := []rune(fracFull)
			patternIdx := len(patternChars)
			for patternIdx > 0 && len(fracChars) > 0 {
				patternIdx--
				placeholder := patternChars[patternIdx]
				last := len(fracChars) - 1
				if (placeholder == '#' || placeholder == '?') &&
					fracChars[last] == '0' && len(fracChars) > part.FracMin {
					fracChars = fracChars[:last]
					continue
				}
				break
			}
			fraction = string(fracChars)
		}
	}

	fixedSlash := part.Error == "" && (strings.Contains(part.NumP, "0") || strings.Contains(part.DenP, "0"))
	haveFraction := fixedSlash

	if part.Fractions && haveNumeric {
		var fractional float64
		if part.Integer {
			fractional = math.Abs(fract(numericValue))
		} else {
			fractional = math.Abs(numericValue)
		}
		if fractional != 0.0 {
			haveFraction = true
			if part.HasDenom {
				denominator = strconv.FormatUint(uint64(part.Denominator), 10)
				numVal := int64(mathutil.Round(fractional*float64(part.Denominator), 0))
				numerator = strconv.FormatInt(numVal, 10)
				if numerator == "0" {
					numerator = ""
					denominator = ""
					haveFraction = fixedSlash
				}
			} else {
				numVal, denVal := mathutil.Dec2Frac(fractional, part.DenMax)
				numerator = strconv.FormatInt(numVal, 10)
				denominator = strconv.FormatInt(denVal, 10)
				if part.Integer && numerator == "0" {
					numerator = ""
					denominator = ""
					haveFraction = fixedSlash
				}
			}
		} else if numericValue == 0.0 && !part.Integer {
			haveFraction = true
			numerator = "0"
			denominator = "1"
		}
		if part.Integer && !haveFraction && math.Trunc(numericValue) == 0.0 {
			integer = "0"
		}
	}

	groupPri, groupSec := groupingWidths(opts)

	var year int32
	month := uint8(1)
	var day int32
	var weekday int
	var hour, minute, second int32
	var subsec float64
	var date, timeOfDay float64

	if !part.Date.IsEmpty() && haveNumeric {
		date = math.Trunc(numericValue)
		t := daysize * (numericValue - date)
		timeOfDay = math.Floor(t)
		subsec = t - timeOfDay
		if math.Abs(subsec) < 1e-6 {
			subsec = 0.0
		} else if subsec > 0.9999 {
			subsec = 0.0
			timeOfDay++
			if math.Abs(timeOfDay-daysize) < 2.220446049250313e-16 {
				timeOfDay = 0.0
				date++
			}
		}
		if subsec != 0.0 {
			var shouldRound bool
			switch {
			case part.Date.Contains(section.UnitMillisecond):
				shouldRound = subsec > 0.9995
			case part.Date.Contains(section.UnitCentisecond):
				shouldRound = subsec > 0.995
			case part.Date.Contains(section.UnitDecisecond):
				shouldRound = subsec > 0.95
			default:
				shouldRound = subsec >= 0.5
			}
			if shouldRound {
				timeOfDay++
				subsec = 0.0
			}
		}

		ymd := calendar.ToYMD(numericValue, part.DateSystem, opts.Leap1900)
		year, month, day = int32(ymd.Year), uint8(ymd.Month), int32(ymd.Day)

		if timeOfDay != 0.0 {
			x := timeOfDay
			if timeOfDay < 0.0 {
				x = daysize + timeOfDay
			}
			xi := int64(x)
			second = int32(xi % 60)
			minute = int32((xi / 60) % 60)
			hour = int32((xi / 60 / 60) % 60)
		}
		weekday = int(remEuclid(6.0+date, 7.0))

		overflowVal := date + (timeOfDay / daysize)
		if dateOverflows(numericValue, overflowVal, opts.DateSpanLarge) {
			switch {
			case opts.DateErrorThrows:
				return "", ErrDateOutOfBounds
			case opts.DateErrorNumber:
				var buffer strings.Builder
				if numericValue < 0.0 {
					buffer.WriteString(loc.Negative)
				}
				FormatGeneral(&buffer, numericValue, loc)
				return buffer.String(), nil
			default:
				return opts.Overflow, nil
			}
		}
	}

	padQ := pad('?', opts.Nbsp)

	if exponent < 0 {
		mantissaSign = loc.Negative
	} else if part.ExpPlus {
		mantissaSign = loc.Positive
	}

	integerChars := []rune(integer)
	fractionChars := []rune(fraction)
	mantissaChars := []rune(mantissa)
	numeratorChars := []rune(numerator)
	denominatorChars := []rune(denominator)

	negativeValue := haveNumeric && math.Signbit(numericValue)
	hasIntegerDigit := anyNonZero(integerChars)
	hasFractionDigit := anyNonZero(fractionChars)
	hasNumeratorDigit := anyNonZero(numeratorChars) || (part.Fractions && haveNumeric && numericValue != 0.0)
	usesGeneral := false
	for _, tok := range part.Tokens {
		if tok.Kind == section.STToken && tok.Token.Kind == token.KindGeneral {
			usesGeneral = true
			break
		}
	}
	generalHasValue := usesGeneral && haveNumeric && numericValue != 0.0
	hasValueDigits := hasIntegerDigit || hasFractionDigit || hasNumeratorDigit || generalHasValue
	showNegativeSign := negativeValue && hasValueDigits

	var output strings.Builder
	counterInt, counterFrac, counterMan, counterNum, counterDen := 0, 0, 0, 0, 0
	denominatorFixed := false

	for idx, tok := range part.Tokens {
		switch tok.Kind {
		case section.STString:
			output.WriteString(renderStringToken(tok.String, part, haveFraction, padQ))

		case section.STToken:
			renderPassthroughToken(&output, tok.Token, part, opts, loc, renderContext{
				haveFraction: haveFraction,
				idx:          idx,
				haveNumeric:  haveNumeric,
				numericValue: numericValue,
				haveText:     haveText,
				textValue:    textValue,
				integer:      integer,
				fraction:     fraction,
				showNegative: showNegativeSign,
				hour:         hour,
				padQ:         padQ,
			})

		case section.STDiv:
			switch {
			case haveFraction:
				output.WriteByte('/')
			case part.NumMin > 0 || part.DenMin > 0 || strings.Contains(part.NumP, "?") || strings.Contains(part.DenP, "?"):
				output.WriteString(padQ)
			default:
				output.WriteString(pad('#', opts.Nbsp))
			}

		case section.STNumber:
			switch tok.Number.Part {
			case section.PartInteger:
				if len(part.IntPattern) == 1 {
					counterInt += appendIntegerGrouped(&output, integerChars, part.IntP, part.IntMin, part.Grouping, groupPri, groupSec, opts.Nbsp, loc.Group)
				} else {
					counterInt += appendDigitSequence(&output, integerChars, part.IntP, tok.Number.Pattern, counterInt, opts.Nbsp, false)
				}
			case section.PartFraction:
				counterFrac += appendDigitSequence(&output, fractionChars, fracFull, tok.Number.Pattern, counterFrac, opts.Nbsp, true)
			case section.PartMantissa:
				if counterMan == 0 {
					output.WriteString(mantissaSign)
				}
				counterMan += appendDigitSequence(&output, mantissaChars, part.ManP, tok.Number.Pattern, counterMan, opts.Nbsp, false)
			case section.PartNumerator:
				counterNum += appendDigitSequence(&output, numeratorChars, part.NumP, tok.Number.Pattern, counterNum, opts.Nbsp, false)
			case section.PartDenominator:
				counterDen += appendFractionDenominator(&output, denominatorChars, tok.Number.Pattern, counterDen, opts.Nbsp, &denominatorFixed)
			}

		case section.STDate:
			appendDateToken(&output, tok.Date, part, loc, year, month, day, weekday, hour, minute, second, subsec, date, timeOfDay, numericValue)

		case section.STExp:
			output.WriteString(loc.Exponent)
		}
	}

	return output.String(), nil
}

func groupingWidths(opts *Options) (int, int) {
	pri := 3
	if len(opts.Grouping) > 0 {
		pri = int(opts.Grouping[0])
	}
	sec := pri
	if len(opts.Grouping) > 1 {
		sec = int(opts.Grouping[1])
	}
	return pri, sec
}

type renderContext struct {
	haveFraction bool
	idx          int
	haveNumeric  bool
	numericValue float64
	haveText     bool
	textValue    string
	integer      string
	fraction     string
	showNegative bool
	hour         int32
	padQ         string
}

func renderStringToken(tok *section.StringToken, part *section.Section, haveFraction bool, padQ string) string {
	switch tok.Rule {
	case section.RuleNum:
		switch {
		case haveFraction:
			return strings.ReplaceAll(tok.Value, " ", padQ)
		case part.NumMin > 0 || part.DenMin > 0:
			return strings.Repeat(padQ, len([]rune(tok.Value)))
		default:
			return strings.ReplaceAll(tok.Value, " ", padQ)
		}
	case section.RuleNumPlusInt:
		switch {
		case haveFraction && part.Integer:
			return strings.ReplaceAll(tok.Value, " ", padQ)
		case part.DenMin > 0 && (part.Integer || part.NumMin > 0):
			return strings.Repeat(padQ, len([]rune(tok.Value)))
		default:
			return strings.ReplaceAll(tok.Value, " ", padQ)
		}
	case section.RuleDen:
		switch {
		case haveFraction:
			return strings.ReplaceAll(tok.Value, " ", padQ)
		case part.DenMin > 0:
			return strings.Repeat(padQ, len([]rune(tok.Value)))
		default:
			return strings.ReplaceAll(tok.Value, " ", padQ)
		}
	default:
		return strings.ReplaceAll(tok.Value, " ", padQ)
	}
}

func renderPassthroughToken(output *strings.Builder, tok token.Token, part *section.Section, opts *Options, loc *locale.Locale, ctx renderContext) {
	switch tok.Kind {
	case token.KindSpace:
		if !shouldSkipFractionSpace(part, ctx.haveFraction, ctx.idx) {
			output.WriteString(ctx.padQ)
		}
	case token.KindError:
		output.WriteString(opts.Invalid)
	case token.KindPoint:
		if part.Date.IsEmpty() {
			output.WriteString(loc.Decimal)
		} else {
			output.WriteString(tokenDisplayRaw(tok))
		}
	case token.KindGeneral:
		if ctx.haveNumeric {
			FormatGeneral(output, ctx.numericValue, loc)
		} else if ctx.haveText {
			output.WriteString(ctx.textValue)
		}
	case token.KindMinus:
		renderMinus(output, tok, part, loc, ctx)
	case token.KindPlus:
		output.WriteString(loc.Positive)
	case token.KindText:
		if ctx.haveText {
			output.WriteString(ctx.textValue)
		} else if ctx.haveNumeric {
			output.WriteString(strconv.FormatFloat(ctx.numericValue, 'g', -1, 64))
		}
	case token.KindFill:
		if opts.HasFillChar {
			output.WriteString(opts.FillChar)
			output.WriteString(tokenDisplayRaw(tok))
		}
	case token.KindSkip:
		if opts.HasSkipChar {
			output.WriteString(opts.SkipChar)
		}
	case token.KindAmpm:
		idx := 0
		if ctx.hour >= 12 {
			idx = 1
		}
		if tok.Short && loc == locale.DefaultLocale() {
			if idx == 0 {
				output.WriteByte('A')
			} else {
				output.WriteByte('P')
			}
		} else if idx < len(loc.Ampm) {
			output.WriteString(loc.Ampm[idx])
		}
	default:
		output.WriteString(tokenDisplayRaw(tok))
	}
}

func renderMinus(output *strings.Builder, tok token.Token, part *section.Section, loc *locale.Locale, ctx renderContext) {
	switch {
	case tok.Volatile && !part.Date.IsEmpty():
		// a date section suppresses the synthetic minus entirely
	case tok.Volatile && (!ctx.haveNumeric || ctx.numericValue >= 0.0):
		// non-negative or non-numeric values never show the volatile minus
	case tok.Volatile && !part.Fractions && (part.Integer || part.DecFractions):
		if ctx.showNegative && ((ctx.integer != "" && ctx.integer != "0") || ctx.fraction != "") {
			output.WriteString(loc.Negative)
		}
	default:
		output.WriteString(loc.Negative)
	}
}

func tokenDisplayRaw(tok token.Token) string {
	if tok.HasChar {
		return string(tok.Char)
	}
	if tok.Text != "" {
		return tok.Text
	}
	return tok.Raw
}

func shouldSkipFractionSpace(part *section.Section, haveFraction bool, idx int) bool {
	if !part.Fractions || haveFraction {
		return false
	}
	requiresPadding := part.NumMin > 0 || part.DenMin > 0 || strings.Contains(part.NumP, "?") || strings.Contains(part.DenP, "?")
	if requiresPadding {
		return false
	}
	return spaceAdjacentToFraction(part.Tokens, idx)
}

func spaceAdjacentToFraction(tokens []section.SectionToken, idx int) bool {
	for i := idx - 1; i >= 0; i-- {
		if isTokenSpace(tokens[i]) {
			continue
		}
		return isFractionComponent(tokens[i])
	}
	for i := idx + 1; i < len(tokens); i++ {
		if isTokenSpace(tokens[i]) {
			continue
		}
		return isFractionComponent(tokens[i])
	}
	return false
}

func isTokenSpace(tok section.SectionToken) bool {
	return tok.Kind == section.STToken && tok.Token.Kind == token.KindSpace
}

func isFractionComponent(tok section.SectionToken) bool {
	switch tok.Kind {
	case section.STNumber:
		return tok.Number.Part == section.PartNumerator || tok.Number.Part == section.PartDenominator
	case section.STDiv:
		return true
	case section.STString:
		return tok.String.Rule == section.RuleNum || tok.String.Rule == section.RuleNumPlusInt || tok.String.Rule == section.RuleDen
	default:
		return false
	}
}

func appendDigitSequence(output *strings.Builder, digits []rune, fullPattern, chunkPattern string, offset int, nbsp bool, alignLeft bool) int {
	chunkChars := []rune(chunkPattern)
	fullLen := len([]rune(fullPattern))
	chunkLen := len(chunkChars)
	digitsLen := len(digits)

	length := chunkLen
	if offset == 0 && digitsLen > fullLen {
		length = chunkLen + digitsLen - fullLen
	}

	localOffset := offset
	if !alignLeft && digitsLen < fullLen {
		localOffset += digitsLen - fullLen
	}

	for i := 0; i < length; i++ {
		idx := localOffset + i
		if idx >= 0 && idx < len(digits) {
			output.WriteRune(digits[idx])
			continue
		}
		placeholder := rune('#')
		if i < len(chunkChars) {
			placeholder = chunkChars[i]
		}
		output.WriteString(pad(placeholder, nbsp))
	}

	return length
}

func appendIntegerGrouped(output *strings.Builder, integerChars []rune, intP string, intMin int, grouping bool, groupPri, groupSec int, nbsp bool, groupSep string) int {
	ptChars := []rune(intP)
	ptLen := len(ptChars)
	l := maxInt(maxInt(ptLen, intMin), len(integerChars))

	var digits strings.Builder
	for i := l; i >= 1; i-- {
		var digit rune
		haveDigit := false
		if i <= len(integerChars) {
			digit = integerChars[len(integerChars)-i]
			haveDigit = true
		}

		var placeholder rune
		havePlaceholder := false
		if !haveDigit {
			switch {
			case i <= ptLen:
				placeholder = ptChars[ptLen-i]
				havePlaceholder = true
			case ptLen > 0:
				placeholder = ptChars[0]
				havePlaceholder = true
			}
		}

		var piece string
		switch {
		case haveDigit:
			piece = string(digit)
		case havePlaceholder:
			piece = pad(placeholder, nbsp)
		default:
			piece = pad('#', nbsp)
		}

		var separator string
		if grouping {
			base := i - 1
			if base >= groupPri {
				n := base - groupPri
				if groupSec > 0 && n%groupSec == 0 {
					switch {
					case haveDigit || (havePlaceholder && placeholder == '0'):
						separator = groupSep
					case havePlaceholder && placeholder == '?':
						separator = pad('?', nbsp)
					}
				}
			}
		}

		digits.WriteString(piece)
		digits.WriteString(separator)
	}

	output.WriteString(digits.String())
	return l
}

func appendFractionDenominator(output *strings.Builder, digits []rune, chunkPattern string, offset int, nbsp bool, denominatorFixed *bool) int {
	chunkChars := []rune(chunkPattern)
	chunkLen := len(chunkChars)

	for i := 0; i < chunkLen; i++ {
		idx := offset + i
		if idx < len(digits) {
			output.WriteRune(digits[idx])
			continue
		}
		placeholder := rune('#')
		if i < len(chunkChars) {
			placeholder = chunkChars[i]
		}
		switch {
		case strings.ContainsRune("123456789", placeholder) || (*denominatorFixed && placeholder == '0'):
			*denominatorFixed = true
			output.WriteString(" ")
		case !*denominatorFixed && i == chunkLen-1 && placeholder == '0' && len(digits) == 0:
			output.WriteByte('1')
		default:
			output.WriteString(pad(placeholder, nbsp))
		}
	}

	return chunkLen
}

func appendDateToken(output *strings.Builder, tok *section.DateToken, part *section.Section, loc *locale.Locale,
	year int32, month uint8, day int32, weekday int, hour, minute, second int32, subsec float64, date, timeOfDay, numericValue float64) {
	switch tok.Kind {
	case section.DateYear:
		if year < 0 {
			output.WriteString(loc.Negative)
		}
		fmt.Fprintf(output, "%04d", abs32(year))
	case section.DateYearShort:
		y := year % 100
		fmt.Fprintf(output, "%02d", abs32(y))
	case section.DateEra:
		// era markers carry no output for the epoch systems this library supports
	case section.DateBuddhistYear:
		fmt.Fprintf(output, "%d", year+543)
	case section.DateBuddhistYearShort:
		y := (year + 543) % 100
		fmt.Fprintf(output, "%02d", y)
	case section.DateMonth:
		if tok.ZeroPad && month < 10 {
			output.WriteByte('0')
		}
		fmt.Fprintf(output, "%d", month)
	case section.DateMonthNameSingle:
		source := loc.Mmmm
		if part.DateSystem == calendar.Epoch1317 {
			source = loc.Mmmm6
		}
		if idx := int(month) - 1; idx >= 0 && idx < len(source) && len(source[idx]) > 0 {
			output.WriteRune([]rune(source[idx])[0])
		}
	case section.DateMonthNameShort:
		source := loc.Mmm
		if part.DateSystem == calendar.Epoch1317 {
			source = loc.Mmm6
		}
		if idx := int(month) - 1; idx >= 0 && idx < len(source) {
			output.WriteString(source[idx])
		}
	case section.DateMonthName:
		source := loc.Mmmm
		if part.DateSystem == calendar.Epoch1317 {
			source = loc.Mmmm6
		}
		if idx := int(month) - 1; idx >= 0 && idx < len(source) {
			output.WriteString(source[idx])
		}
	case section.DateWeekdayShort:
		if weekday < len(loc.Ddd) {
			output.WriteString(loc.Ddd[weekday])
		}
	case section.DateWeekday:
		if weekday < len(loc.Dddd) {
			output.WriteString(loc.Dddd[weekday])
		}
	case section.DateDay:
		if tok.ZeroPad && day < 10 {
			output.WriteByte('0')
		}
		fmt.Fprintf(output, "%d", day)
	case section.DateHour:
		clock := int32(part.Clock)
		h := hour % clock
		if h == 0 && clock < 24 {
			h = clock
		}
		if tok.ZeroPad && h < 10 {
			output.WriteByte('0')
		}
		fmt.Fprintf(output, "%d", h)
	case section.DateMinute:
		if tok.ZeroPad && minute < 10 {
			output.WriteByte('0')
		}
		fmt.Fprintf(output, "%d", minute)
	case section.DateSecond:
		if tok.ZeroPad && second < 10 {
			output.WriteByte('0')
		}
		fmt.Fprintf(output, "%d", second)
	case section.DateSubsecond:
		output.WriteString(loc.Decimal)
		frac := strconv.FormatFloat(subsec, 'f', int(part.SecDecimals), 64)
		if dotIdx := strings.IndexByte(frac, '.'); dotIdx >= 0 {
			fragment := frac[dotIdx+1:]
			length := int(tok.Decimals)
			if length > len(fragment) {
				length = len(fragment)
			}
			output.WriteString(fragment[:length])
		}
	case section.DateHourElapsed:
		if numericValue < 0.0 {
			output.WriteString(loc.Negative)
		}
		hh := (date * 24.0) + math.Trunc(timeOfDay/3600.0)
		width := 2
		if tok.HasWidth {
			width = tok.Width
		}
		fmt.Fprintf(output, "%0*d", width, int64(math.Abs(hh)))
	case section.DateMinuteElapsed:
		if numericValue < 0.0 {
			output.WriteString(loc.Negative)
		}
		mm := (date * 1440.0) + math.Floor(timeOfDay/60.0)
		width := 2
		if tok.HasWidth {
			width = tok.Width
		}
		fmt.Fprintf(output, "%0*d", width, int64(math.Abs(mm)))
	case section.DateSecondElapsed:
		if numericValue < 0.0 {
			output.WriteString(loc.Negative)
		}
		ss := (date * daysize) + timeOfDay
		width := 2
		if tok.HasWidth {
			width = tok.Width
		}
		fmt.Fprintf(output, "%0*d", width, int64(math.Abs(ss)))
	}
}

func dateOverflows(value, rounded float64, bigRange bool) bool {
	if bigRange {
		return value < calendar.MinLDate || rounded >= calendar.MaxLDate
	}
	return value < calendar.MinSDate || rounded >= calendar.MaxSDate
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func anyNonZero(chars []rune) bool {
	for _, c := range chars {
		if c != '0' {
			return true
		}
	}
	return false
}

func fract(f float64) float64 { return f - math.Trunc(f) }

func remEuclid(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += math.Abs(b)
	}
	return r
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
