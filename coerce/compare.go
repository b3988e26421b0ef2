package coerce

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"

	"github.com/gridlang/fx"
)

// Compare computes an ordering between two formula values, returning -1,
// 0, or 1.  The rules, in order:
//
//  1. Absent compares equal to absent and before any present value.
//  2. When the kinds differ: if either side is a date/time the other side
//     is converted to date/time; otherwise the right side is converted to
//     the left side's kind.  A failed conversion orders the left side
//     first without faulting.  This asymmetric fallback is pinned legacy
//     behavior; see the comparison tests.
//  3. Text compares case-insensitively in code point order.
//  4. Otherwise the natural ordering of the common kind applies.
//
// Comparison never faults: in-band error values order among themselves by
// kind, and a conversion that would fault counts as a failed conversion.
func Compare(ctx *fx.Context, a, b fx.Value) int {
	if a.IsEmpty() || b.IsEmpty() {
		switch {
		case a.IsEmpty() && b.IsEmpty():
			return 0
		case a.IsEmpty():
			return -1
		default:
			return 1
		}
	}
	if a.Kind() != b.Kind() {
		if a.Kind() == fx.KindDateTime || b.Kind() == fx.KindDateTime {
			at, err := ToDateTime(ctx, a)
			if err != nil {
				return -1
			}
			bt, err := ToDateTime(ctx, b)
			if err != nil {
				return -1
			}
			return compareTime(at, bt)
		}
		converted, err := convertTo(ctx, b, a.Kind())
		if err != nil {
			return -1
		}
		b = converted
	}
	return compareSameKind(a, b)
}

func compareSameKind(a, b fx.Value) int {
	switch a.Kind() {
	case fx.KindNumber:
		return compareOrdered(a.Number(), b.Number())
	case fx.KindText:
		return compareFolded(a.Text(), b.Text())
	case fx.KindBool:
		return compareBool(a.Bool(), b.Bool())
	case fx.KindDateTime:
		return compareTime(a.DateTime(), b.DateTime())
	case fx.KindDuration:
		return compareOrdered(a.Duration(), b.Duration())
	case fx.KindError:
		return compareOrdered(a.Err(), b.Err())
	case fx.KindObject:
		// Opaque handles have no natural ordering; fall back to their
		// printed form so the result is at least deterministic.
		return strings.Compare(fmt.Sprint(a.Object()), fmt.Sprint(b.Object()))
	}
	return 0
}

// convertTo rebuilds v as a value of the target kind, propagating any
// coercion fault as a plain error.
func convertTo(ctx *fx.Context, v fx.Value, kind fx.Kind) (fx.Value, error) {
	switch kind {
	case fx.KindNumber:
		f, err := ToNumber(ctx, v)
		if err != nil {
			return fx.Empty, err
		}
		return fx.NewNumber(f), nil
	case fx.KindText:
		s, err := ToText(ctx, v)
		if err != nil {
			return fx.Empty, err
		}
		return fx.NewText(s), nil
	case fx.KindBool:
		b, err := ToBool(ctx, v)
		if err != nil {
			return fx.Empty, err
		}
		return fx.NewBool(b), nil
	case fx.KindDateTime:
		t, err := ToDateTime(ctx, v)
		if err != nil {
			return fx.Empty, err
		}
		return fx.NewDateTime(t), nil
	case fx.KindDuration:
		days, err := ToNumber(ctx, v)
		if err != nil {
			return fx.Empty, err
		}
		return fx.NewDuration(time.Duration(days * 24 * float64(time.Hour))), nil
	}
	return fx.Empty, fmt.Errorf("no conversion to %s", kind)
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// compareFolded is the case-insensitive ordinal text comparison: both
// sides are case-folded and compared by code point.
func compareFolded(a, b string) int {
	folder := cases.Fold()
	return strings.Compare(folder.String(a), folder.String(b))
}
