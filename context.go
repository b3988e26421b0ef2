package fx

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/gridlang/fx/pkg/oadate"
)

// Context carries the ambient state evaluation depends on: the locale
// used by generic fallback conversions, the serial-date mode, and a
// logger.  It is threaded explicitly through every Evaluate and coercion
// call instead of living in process-global state, so concurrent
// evaluations with different locales cannot interfere.
//
// A Context is immutable after construction and safe for concurrent use.
type Context struct {
	Locale   language.Tag
	DateMode oadate.Mode
	Logger   *zap.Logger
}

// NewContext returns a Context with the defaults the surrounding engine
// assumes absent any workbook settings: English locale, 1900 date system,
// no logging.
func NewContext() *Context {
	return &Context{
		Locale:   language.English,
		DateMode: oadate.Mode1900,
		Logger:   zap.NewNop(),
	}
}

// WithLocale returns a copy of the context bound to tag.
func (c *Context) WithLocale(tag language.Tag) *Context {
	out := *c
	out.Locale = tag
	return &out
}

// WithLogger returns a copy of the context using logger.
func (c *Context) WithLogger(logger *zap.Logger) *Context {
	out := *c
	out.Logger = logger
	return &out
}
