package i18n

import (
	"context"
	"fmt"
	"strings"

	"github.com/proyectozoo/zoo-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages with a message table.
var Supported = []language.Tag{language.Spanish, language.English}

var tables = map[language.Tag]map[Key]string{
	language.Spanish: spanish,
	language.English: english,
}

// numericFields use the value form of min/max messages.
var numericFields = map[string]bool{"capacity": true}

// rulesWithParam take the rule parameter as a second argument.
var rulesWithParam = map[string]bool{"min": true, "min_value": true, "max_value": true, "oneof": true}

// Translator resolves locales and renders messages.
type Translator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
}

// New builds a Translator whose fallback is the supported language closest to defaultLocale.
func New(defaultLocale string) (*Translator, error) {
	requested, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}
	_, idx, confidence := language.NewMatcher(Supported).Match(requested)
	if confidence == language.No {
		return nil, fmt.Errorf("default locale %q is not supported", defaultLocale)
	}
	fallback := Supported[idx]

	// The matcher falls back to its first tag, so the default goes first.
	tags := []language.Tag{fallback}
	for _, tag := range Supported {
		if tag != fallback {
			tags = append(tags, tag)
		}
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, table := range tables {
		for key, msg := range table {
			if err := b.SetString(tag, string(key), msg); err != nil {
				return nil, fmt.Errorf("failed to register message %s for %s: %w", key, tag, err)
			}
		}
	}

	return &Translator{
		catalog:  b,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
		fallback: fallback,
	}, nil
}

// Default returns the fallback language.
func (t *Translator) Default() language.Tag {
	return t.fallback
}

// Resolve picks the locale for a request: the explicit lang parameter wins,
// then the Accept-Language header, then the default.
func (t *Translator) Resolve(lang, acceptLanguage string) language.Tag {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if match, ok := t.match(tag); ok {
				return match
			}
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if match, ok := t.match(tags...); ok {
				return match
			}
		}
	}
	return t.fallback
}

func (t *Translator) match(tags ...language.Tag) (language.Tag, bool) {
	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback, false
	}
	return t.tags[idx], true
}

// Printer returns a message printer for tag.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

// Message renders key in tag.
func (t *Translator) Message(tag language.Tag, key Key, args ...any) string {
	return t.Printer(tag).Sprintf(string(key), args...)
}

// T renders key in the locale stored in ctx, or the default locale.
func (t *Translator) T(ctx context.Context, key Key, args ...any) string {
	return t.Message(t.LocaleOf(ctx), key, args...)
}

// LocaleOf returns the locale stored in ctx, or the default locale.
func (t *Translator) LocaleOf(ctx context.Context) language.Tag {
	if tag, ok := FromContext(ctx); ok {
		return tag
	}
	return t.fallback
}

// Field renders one validation failure in the locale stored in ctx.
func (t *Translator) Field(ctx context.Context, fe domain.FieldError) string {
	p := t.Printer(t.LocaleOf(ctx))

	field := fe.Field
	if _, ok := spanish[fieldKey(fe.Field)]; ok {
		field = p.Sprintf(string(fieldKey(fe.Field)))
	}

	rule := fe.Rule
	if numericFields[fe.Field] && (rule == "min" || rule == "max") {
		rule += "_value"
	}
	if _, ok := spanish[ruleKey(rule)]; !ok {
		rule = "invalid"
	}

	if rulesWithParam[rule] {
		return p.Sprintf(string(ruleKey(rule)), field, fe.Param)
	}
	return p.Sprintf(string(ruleKey(rule)), field)
}

// Fields renders every failure of a validation error.
func (t *Translator) Fields(ctx context.Context, verr *domain.ValidationError) []string {
	if verr == nil {
		return nil
	}
	out := make([]string, 0, len(verr.Fields))
	for _, fe := range verr.Fields {
		out = append(out, t.Field(ctx, fe))
	}
	return out
}
