// Package coerce implements the explicit conversions from a formula Value
// to the concrete scalar types operators and functions consume.  Every
// conversion is fallible and takes the evaluation context so that generic
// fallback parsing honors the active locale instead of process-global
// state.
//
// Coercing an in-band error value never yields a default; it always
// raises the fault carrying that value's error kind.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"

	"github.com/gridlang/fx"
)

// ToText renders v as formula-visible text: the empty value becomes empty
// text, booleans become upper-case TRUE/FALSE, and the remaining kinds use
// their canonical rendering.
func ToText(ctx *fx.Context, v fx.Value) (string, error) {
	switch v.Kind() {
	case fx.KindError:
		return "", errorFault(v)
	case fx.KindEmpty:
		return "", nil
	case fx.KindText:
		return v.Text(), nil
	case fx.KindBool:
		if v.Bool() {
			return "TRUE", nil
		}
		return "FALSE", nil
	case fx.KindNumber:
		return formatNumber(v.Number()), nil
	case fx.KindDateTime:
		return formatDateTime(v.DateTime()), nil
	case fx.KindDuration:
		return v.Duration().String(), nil
	case fx.KindObject:
		return fmt.Sprint(v.Object()), nil
	}
	return "", fx.Faultf(fx.CellValue, "cannot convert %s to text", v.Kind())
}

// ToNumber converts v to a float64.  Dates convert to their serial day
// number, durations to fractional days, and text is parsed numerically
// with a locale-aware fallback.
func ToNumber(ctx *fx.Context, v fx.Value) (float64, error) {
	switch v.Kind() {
	case fx.KindError:
		return 0, errorFault(v)
	case fx.KindNumber:
		return v.Number(), nil
	case fx.KindBool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	case fx.KindDateTime:
		return ctx.DateMode.FromTime(v.DateTime()), nil
	case fx.KindDuration:
		return v.Duration().Hours() / 24, nil
	case fx.KindEmpty:
		return 0, nil
	case fx.KindText:
		if f, ok := parseNumber(ctx, v.Text()); ok {
			return f, nil
		}
		return 0, fx.Faultf(fx.CellValue, "cannot convert %q to a number", v.Text())
	}
	return 0, fx.Faultf(fx.CellValue, "cannot convert %s to a number", v.Kind())
}

// ToNumeric is ToNumber generalized over the numeric Go types.
func ToNumeric[T constraints.Integer | constraints.Float](ctx *fx.Context, v fx.Value) (T, error) {
	f, err := ToNumber(ctx, v)
	return T(f), err
}

// ToBool converts v to a boolean: absent is false, numbers test nonzero,
// and everything else goes through the numeric conversion first.
func ToBool(ctx *fx.Context, v fx.Value) (bool, error) {
	switch v.Kind() {
	case fx.KindError:
		return false, errorFault(v)
	case fx.KindBool:
		return v.Bool(), nil
	case fx.KindEmpty:
		return false, nil
	case fx.KindNumber:
		return v.Number() != 0, nil
	}
	f, err := ToNumber(ctx, v)
	if err != nil {
		return false, err
	}
	return f != 0, nil
}

// ToDateTime converts v to a date/time: durations displace the epoch,
// numbers are read as serial days, and text falls back to generic date
// parsing.
func ToDateTime(ctx *fx.Context, v fx.Value) (time.Time, error) {
	switch v.Kind() {
	case fx.KindError:
		return time.Time{}, errorFault(v)
	case fx.KindDateTime:
		return v.DateTime(), nil
	case fx.KindDuration:
		return ctx.DateMode.Epoch().Add(v.Duration()), nil
	case fx.KindNumber:
		return ctx.DateMode.ToTime(v.Number()), nil
	case fx.KindText:
		if f, ok := parseNumber(ctx, v.Text()); ok {
			return ctx.DateMode.ToTime(f), nil
		}
		if t, err := dateparse.ParseIn(v.Text(), time.UTC); err == nil {
			return t, nil
		}
		return time.Time{}, fx.Faultf(fx.CellValue, "cannot convert %q to a date", v.Text())
	}
	return time.Time{}, fx.Faultf(fx.CellValue, "cannot convert %s to a date", v.Kind())
}

func errorFault(v fx.Value) error {
	return &fx.Fault{Kind: v.Err()}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatDateTime(t time.Time) string {
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

// parseNumber parses s as a number, first with the canonical syntax and
// then with the locale's separators (decimal comma locales drop "." group
// separators and read "," as the decimal point; others drop "," group
// separators).
func parseNumber(ctx *fx.Context, s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	var t string
	if usesDecimalComma(ctx.Locale) {
		t = strings.ReplaceAll(s, ".", "")
		t = strings.ReplaceAll(t, ",", ".")
	} else {
		t = strings.ReplaceAll(s, ",", "")
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return f, true
	}
	return 0, false
}

var commaDecimalMatcher = language.NewMatcher([]language.Tag{
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
	language.Swedish,
	language.Danish,
	language.Norwegian,
	language.Finnish,
	language.Polish,
	language.Russian,
	language.Turkish,
})

func usesDecimalComma(tag language.Tag) bool {
	if tag == language.Und {
		return false
	}
	_, _, conf := commaDecimalMatcher.Match(tag)
	return conf >= language.High
}
