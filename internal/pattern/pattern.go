// Package pattern assembles a tokenized format string into a complete
// Pattern of up to four partitions (positive, negative, zero, text),
// applying the implicit-condition and volatile-minus rules a pattern
// without explicit "[condition]" annotations relies on, and memoizes the
// result in a process-wide cache so repeated renders of the same pattern
// string skip re-parsing.
package pattern

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/hongjr03/numfmt/internal/section"
	"github.com/hongjr03/numfmt/internal/token"
)

// Pattern is a fully assembled format string: up to four Sections plus any
// locale override one of its partitions declared.
type Pattern struct {
	Source     string
	Partitions []*section.Section
	Locale     string
	HasLocale  bool
}

func parseSectionFromString(pattern string) (*section.Section, error) {
	toks, err := token.Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	sec, err := section.Parse(toks)
	if err != nil {
		return nil, err
	}
	sec.Generated = true
	return sec, nil
}

func clonePart(sec *section.Section, prefix *section.SectionToken) *section.Section {
	clone := *sec
	clone.Tokens = append([]section.SectionToken(nil), sec.Tokens...)
	if prefix != nil {
		clone.Tokens = append([]section.SectionToken{*prefix}, clone.Tokens...)
	}
	clone.Generated = true
	return &clone
}

func minusSectionToken(volatile bool) section.SectionToken {
	t := token.MinusToken(volatile)
	return section.SectionToken{Kind: section.STToken, Token: t}
}

func maybeAddMinus(sec *section.Section) {
	if cond := sec.Condition; cond != nil && cond.Operand < 0 &&
		(cond.Operator == token.OpLess || cond.Operator == token.OpLessEqual || cond.Operator == token.OpEqual) {
		return
	}
	sec.Tokens = append([]section.SectionToken{minusSectionToken(true)}, sec.Tokens...)
}

func makeCondition(operator token.ConditionOperator, operand float64) *token.Condition {
	return &token.Condition{Operator: operator, Operand: operand, RawOperand: strconv.FormatFloat(operand, 'g', -1, 64)}
}

// Parse assembles pattern into a complete Pattern, applying the
// conditional/non-conditional partitioning rules a pattern without
// explicit conditions on every section falls back to.
func Parse(pattern string) (*Pattern, error) {
	tokens, err := token.Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	totalTokens := len(tokens)

	var partitions []*section.Section
	offset := 0
	partIndex := 0
	conditions := 0
	conditional := false
	textIndex := -1
	var localeOverride string
	haveLocaleOverride := false
	lastHadBreak := false

	for partIndex < 4 && conditions < 3 {
		var slice []token.Token
		if offset < totalTokens {
			slice = tokens[offset:]
		}

		sec, err := section.Parse(slice)
		if err != nil {
			return nil, err
		}

		if (!sec.Date.IsEmpty() || sec.General) &&
			(len(sec.IntPattern) > 0 || len(sec.FracPattern) > 0 || absDiff(sec.Scale, 1.0) > 1e-12 || sec.Text) {
			return nil, errors.New("illegal format")
		}

		if sec.Condition != nil {
			conditions++
			conditional = true
		}
		if sec.Text {
			if textIndex >= 0 {
				return nil, errors.New("unexpected partition")
			}
			textIndex = len(partitions)
		}
		if sec.HasLocale {
			localeOverride = sec.Locale
			haveLocaleOverride = true
		}

		lastHadBreak = sec.TokensUsed < len(slice) && slice[sec.TokensUsed].Kind == token.KindBreak

		partitions = append(partitions, sec)
		partIndex++

		consumed := 0
		if len(slice) > 0 {
			consumed = partitions[len(partitions)-1].TokensUsed + 1
		}
		offset += consumed

		if !lastHadBreak {
			break
		}
	}

	if lastHadBreak {
		return nil, errors.New("unexpected partition")
	}
	if conditions > 2 {
		return nil, errors.New("unexpected condition")
	}
	if len(partitions) > 3 {
		part3 := partitions[3]
		if len(part3.IntPattern) > 0 || len(part3.FracPattern) > 0 || !part3.Date.IsEmpty() {
			return nil, errors.New("unexpected partition")
		}
	}

	if conditional {
		if len(partitions) == 1 {
			general, err := parseSectionFromString("General")
			if err != nil {
				return nil, err
			}
			partitions = append(partitions, general)
		}

		if len(partitions) < 3 {
			condFirst := partitions[0].Condition
			maybeAddMinus(partitions[0])
			if len(partitions) > 1 {
				second := partitions[1]
				if second.Condition != nil {
					maybeAddMinus(second)
				} else if condFirst != nil &&
					(condFirst.Operator == token.OpEqual ||
						(condFirst.Operand >= 0 && (condFirst.Operator == token.OpGreater || condFirst.Operator == token.OpGreaterEqual))) {
					second.Tokens = append([]section.SectionToken{minusSectionToken(true)}, second.Tokens...)
				}
			}
		} else {
			for _, part := range partitions {
				maybeAddMinus(part)
			}
		}
	} else {
		var textPart *section.Section
		if textIndex >= 0 {
			textPart = partitions[textIndex]
			partitions = append(partitions[:textIndex], partitions[textIndex+1:]...)
		}

		if len(partitions) == 0 {
			general, err := parseSectionFromString("General")
			if err != nil {
				return nil, err
			}
			partitions = append(partitions, general)
		}

		if len(partitions) < 2 {
			mt := minusSectionToken(true)
			partitions = append(partitions, clonePart(partitions[0], &mt))
		}

		if len(partitions) < 3 {
			partitions = append(partitions, clonePart(partitions[0], nil))
		}

		if len(partitions) < 4 {
			if textPart != nil {
				partitions = append(partitions, textPart)
			} else {
				text, err := parseSectionFromString("@")
				if err != nil {
					return nil, err
				}
				partitions = append(partitions, text)
			}
		}

		if len(partitions) > 0 {
			partitions[0].Condition = makeCondition(token.OpGreater, 0)
		}
		if len(partitions) > 1 {
			partitions[1].Condition = makeCondition(token.OpLess, 0)
		}
		if len(partitions) > 2 {
			partitions[2].Condition = nil
		}
	}

	return &Pattern{
		Source:     pattern,
		Partitions: partitions,
		Locale:     localeOverride,
		HasLocale:  haveLocaleOverride,
	}, nil
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
