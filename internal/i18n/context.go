package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type localeKey struct{}

// WithLocale stores the request locale in ctx.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey{}, tag)
}

// FromContext returns the locale stored by WithLocale.
func FromContext(ctx context.Context) (language.Tag, bool) {
	if ctx == nil {
		return language.Und, false
	}
	tag, ok := ctx.Value(localeKey{}).(language.Tag)
	return tag, ok
}
