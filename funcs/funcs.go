// Package funcs resolves function names to implementations ahead of tree
// construction.  The registry owns arity validation and nearest-name
// suggestions; the implementations themselves are ordinary ast.Function
// values, so an embedding engine can register its whole builtin library
// here or supply bindings from anywhere else.
package funcs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/gridlang/fx"
	"github.com/gridlang/fx/ast"
)

var (
	ErrTooFewArgs  = errors.New("too few arguments")
	ErrTooManyArgs = errors.New("too many arguments")
)

// maxSuggestDistance bounds how far a name may be from a registered one
// before the registry stops suggesting it.
const maxSuggestDistance = 2

type entry struct {
	fn     ast.Function
	argmin int
	argmax int // -1 means variadic
}

// Registry maps upper-cased function names to bound implementations.
// Register everything up front; lookups may then proceed concurrently.
type Registry struct {
	entries map[string]*entry
	logger  *zap.Logger
}

// NewRegistry returns a registry preloaded with the reference builtins.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		entries: make(map[string]*entry),
		logger:  logger,
	}
	r.Register("SUM", &sum{}, 1, -1)
	r.Register("CONCATENATE", &concatenate{}, 1, -1)
	r.Register("IF", &ifFn{}, 2, 3)
	r.Register("ISERROR", &isError{}, 1, 1)
	return r
}

// Register binds name (case-insensitive) to fn with the given argument
// count bounds; argmax of -1 accepts any number of arguments.
func (r *Registry) Register(name string, fn ast.Function, argmin, argmax int) {
	r.entries[strings.ToUpper(name)] = &entry{fn: fn, argmin: argmin, argmax: argmax}
}

// Lookup resolves name for a call site with narg arguments.  An unknown
// name produces a #NAME? fault carrying a nearest-name suggestion when a
// registered name is close enough.
func (r *Registry) Lookup(name string, narg int) (*ast.FuncRef, error) {
	e, ok := r.entries[strings.ToUpper(name)]
	if !ok {
		if hint := r.nearest(name); hint != "" {
			r.logger.Debug("unknown function",
				zap.String("name", name), zap.String("suggestion", hint))
			return nil, fx.Faultf(fx.NameNotRecognized,
				"no such function %q (did you mean %q?)", name, hint)
		}
		return nil, fx.Faultf(fx.NameNotRecognized, "no such function %q", name)
	}
	if narg < e.argmin {
		return nil, fmt.Errorf("%s: %w", name, ErrTooFewArgs)
	}
	if e.argmax != -1 && narg > e.argmax {
		return nil, fmt.Errorf("%s: %w", name, ErrTooManyArgs)
	}
	return ast.NewFuncRef(strings.ToUpper(name), e.fn), nil
}

func (r *Registry) nearest(name string) string {
	target := strings.ToUpper(name)
	best, bestDist := "", maxSuggestDistance+1
	for candidate := range r.entries {
		if d := levenshtein.ComputeDistance(target, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
