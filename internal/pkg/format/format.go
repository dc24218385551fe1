// Package format holds text building blocks for the dialog windows: amount
// parsing and formatting, strict dates, progress bars, headers.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/finora/bot-service/internal/domain/errors"
)

// Separator visually splits sections inside a window.
const Separator = "━━━━━━━━━━━━━━━━"

// DateLayout is the canonical YYYY-MM-DD form used everywhere.
const DateLayout = "2006-01-02"

var emojiByKey = map[string]string{
	"income":   "💰",
	"expense":  "💸",
	"goal":     "🎯",
	"budget":   "📅",
	"progress": "📈",
	"insights": "📊",
	"smart":    "🤖",
	"tip":      "💡",
	"success":  "✅",
	"warning":  "⚠️",
	"info":     "ℹ️",
}

// Header renders a bold window title with an optional emoji key.
func Header(title, emojiKey string) string {
	if e, ok := emojiByKey[emojiKey]; ok {
		return e + " <b>" + title + "</b>"
	}
	return "<b>" + title + "</b>"
}

// Line renders a "label: value" row with an optional emoji key.
func Line(label, value, emojiKey string) string {
	prefix := ""
	if e, ok := emojiByKey[emojiKey]; ok {
		prefix = e + " "
	}
	return prefix + label + ": <b>" + value + "</b>"
}

// ParseAmount accepts a user-typed amount in minor currency units. Spaces and
// commas used as thousand separators are tolerated; anything non-integer or
// non-positive is a validation failure.
func ParseAmount(text string) (int64, error) {
	cleaned := strings.NewReplacer(" ", "", " ", "", ",", "").Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return 0, apperrors.NewValidationError("amount", "empty")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, apperrors.NewValidationError("amount", "not a number")
	}
	if !d.IsInteger() {
		return 0, apperrors.NewValidationError("amount", "fractional amounts not accepted")
	}
	if d.Sign() <= 0 {
		return 0, apperrors.NewValidationError("amount", "must be positive")
	}
	if !d.BigInt().IsInt64() {
		return 0, apperrors.NewValidationError("amount", "out of range")
	}
	return d.BigInt().Int64(), nil
}

// Amount renders an integer amount with thin-space thousand grouping.
func Amount(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, " ")
	if neg {
		out = "-" + out
	}
	return out
}

// Money renders an amount with the currency suffix.
func Money(v int64) string {
	return Amount(v) + " UZS"
}

// ParseDate validates a manually typed date against the canonical layout.
func ParseDate(text string) (string, error) {
	raw := strings.TrimSpace(text)
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", apperrors.NewValidationError("date", "want YYYY-MM-DD")
	}
	return d.Format(DateLayout), nil
}

// ProgressBar renders a ten-segment bar for a 0-100 percent value.
func ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
