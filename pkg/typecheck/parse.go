package typecheck

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrymomot/helpers/pkg/cache"
	"github.com/dmitrymomot/helpers/pkg/reflectx"
	"github.com/dmitrymomot/helpers/pkg/strcase"
)

const (
	separator        = "Or"
	notEmptyModifier = "NotEmpty"
	validatorPrefix  = "is"
	specCacheSize    = 256
)

// Entry is one alternative of a Spec.
type Entry struct {
	Token           Token
	RequireNonEmpty bool
}

// Human returns the display name, e.g. "non-empty string".
func (e Entry) Human() string {
	if e.RequireNonEmpty {
		return "non-empty " + e.Token.Human()
	}
	return e.Token.Human()
}

func (e Entry) String() string {
	if e.RequireNonEmpty {
		return notEmptyModifier + e.Token.Name
	}
	return e.Token.Name
}

// Spec is an ordered list of alternatives. Order is try order.
type Spec struct {
	Entries []Entry
}

// String renders the spec back into identifier form.
func (s Spec) String() string {
	parts := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, separator)
}

// Names returns the human-readable names of the entries.
func (s Spec) Names() []string {
	names := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		names[i] = e.Human()
	}
	return names
}

type specKey struct {
	registry   *reflectx.Registry
	identifier string
}

var specs = sync.OnceValue(func() *cache.LRUCache[specKey, Spec] {
	return cache.NewLRUCache[specKey, Spec](specCacheSize)
})

// Parse decodes an identifier such as "NullOrIntOrBool" or
// "isNotEmptyStringOrInt" into a Spec, resolving every token against the
// default registry. Results are memoised by identifier.
func Parse(identifier string) (Spec, error) {
	return parseWith(identifier, reflectx.Default())
}

// MustParse is like Parse but panics on a malformed identifier.
func MustParse(identifier string) Spec {
	spec, err := Parse(identifier)
	if err != nil {
		panic(err)
	}
	return spec
}

func parseWith(identifier string, registry *reflectx.Registry) (Spec, error) {
	key := specKey{registry: registry, identifier: identifier}
	return specs().GetOrLoad(key, func(k specKey) (Spec, error) {
		return parse(k.identifier, k.registry)
	})
}

func parse(identifier string, registry *reflectx.Registry) (Spec, error) {
	id := strings.TrimSpace(identifier)
	if strings.HasPrefix(id, validatorPrefix) && strcase.HasUpperAt(id, len(validatorPrefix)) {
		id = id[len(validatorPrefix):]
	}
	if id == "" {
		return Spec{}, fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
	}

	segments := splitAlternatives(id)
	entries := make([]Entry, 0, len(segments))
	for _, seg := range segments {
		entry, err := parseSegment(seg, registry)
		if err != nil {
			return Spec{}, fmt.Errorf("%w (in %q)", err, identifier)
		}
		entries = append(entries, entry)
	}
	return Spec{Entries: entries}, nil
}

// splitAlternatives splits on "Or" only where it follows a non-empty segment
// and is followed by an upper-case letter, so "Order" or "Color" stay whole.
func splitAlternatives(id string) []string {
	var parts []string
	start := 0
	for i := 1; i+len(separator) < len(id); i++ {
		if i > start && id[i:i+len(separator)] == separator && strcase.HasUpperAt(id, i+len(separator)) {
			parts = append(parts, id[start:i])
			start = i + len(separator)
			i = start
		}
	}
	return append(parts, id[start:])
}

func parseSegment(seg string, registry *reflectx.Registry) (Entry, error) {
	seg = strings.TrimSpace(seg)
	requireNonEmpty := false
	if strings.HasPrefix(seg, notEmptyModifier) {
		requireNonEmpty = true
		seg = seg[len(notEmptyModifier):]
	}
	if seg == "" {
		return Entry{}, fmt.Errorf("%w: empty alternative", ErrInvalidIdentifier)
	}

	token, err := ResolveToken(seg, registry)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Token: token, RequireNonEmpty: requireNonEmpty}, nil
}
