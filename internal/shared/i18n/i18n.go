package i18n

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ContextKey is the gin context key holding the request's *message.Printer.
const ContextKey = "i18n_printer"

var supported = []language.Tag{language.English, language.Japanese}

// Translator resolves user facing messages for error codes.
type Translator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	fallback language.Tag
}

// New builds the message catalog. defaultLocale is used when the client sends no usable
// Accept-Language header.
func New(defaultLocale string) (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, m := range messages {
		if err := b.SetString(language.English, code, m.en); err != nil {
			return nil, fmt.Errorf("register en message %s: %w", code, err)
		}
		if err := b.SetString(language.Japanese, code, m.ja); err != nil {
			return nil, fmt.Errorf("register ja message %s: %w", code, err)
		}
	}

	matcher := language.NewMatcher(supported)

	fallback := language.English
	if defaultLocale != "" {
		tag, err := language.Parse(defaultLocale)
		if err != nil {
			return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
		}
		_, idx, _ := matcher.Match(tag)
		fallback = supported[idx]
	}

	return &Translator{catalog: b, matcher: matcher, fallback: fallback}, nil
}

// Resolve picks the supported language for an Accept-Language header value.
func (t *Translator) Resolve(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback
	}
	return supported[idx]
}

// Printer returns a printer bound to the catalog for tag.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

// Middleware stores the printer matching the request's Accept-Language in the gin context.
func (t *Translator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := t.Resolve(c.GetHeader("Accept-Language"))
		c.Set(ContextKey, t.Printer(tag))
		c.Header("Content-Language", tag.String())
		c.Next()
	}
}

var defaultTranslator, _ = New("en")

// Message translates code for the current request. Requests that did not pass through
// Middleware get English.
func Message(c *gin.Context, code string) string {
	if v, ok := c.Get(ContextKey); ok {
		if p, ok := v.(*message.Printer); ok {
			return p.Sprintf(code)
		}
	}
	return defaultTranslator.Printer(language.English).Sprintf(code)
}

// Has reports whether code has a catalog entry.
func Has(code string) bool {
	_, ok := messages[code]
	return ok
}
