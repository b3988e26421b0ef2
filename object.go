package fx

// Valuer is the "produces a value" capability an external handle may
// expose.  When a wrapped object implements Valuer, evaluating its
// XObject node yields the derived value instead of the handle itself;
// the workbook layer uses this to surface the contents of a live cell.
type Valuer interface {
	FormulaValue() Value
}

// Sequence is the capability that lets an external handle present itself
// as an ordered collection, e.g. a resolved range exposing its cells.
type Sequence interface {
	Len() int
	Index(int) any
}

// Iter iterates lazily over an external handle, normalizing it to a
// one-or-more-element sequence:
//
//   - a text value yields itself as a single item
//   - a Sequence (or []any) yields its elements in order
//   - anything else yields itself as a single item
//
// This lets callers treat a wrapped external object uniformly as either a
// scalar or a sequence without materializing the elements up front.
type Iter struct {
	seq    Sequence
	single any
	n      int
	done   bool
}

// NewIter returns an iterator over handle per the rules above.
func NewIter(handle any) *Iter {
	switch h := handle.(type) {
	case Sequence:
		return &Iter{seq: h}
	case []any:
		return &Iter{seq: anySlice(h)}
	default:
		return &Iter{single: handle}
	}
}

// Next returns the next item and true, or a zero item and false when the
// iteration is exhausted.
func (it *Iter) Next() (any, bool) {
	if it.seq != nil {
		if it.n >= it.seq.Len() {
			return nil, false
		}
		item := it.seq.Index(it.n)
		it.n++
		return item, true
	}
	if it.done {
		return nil, false
	}
	it.done = true
	return it.single, true
}

type anySlice []any

func (s anySlice) Len() int        { return len(s) }
func (s anySlice) Index(i int) any { return s[i] }
