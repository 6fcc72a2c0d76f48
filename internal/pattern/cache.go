package pattern

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/hongjr03/numfmt/internal/section"
	"github.com/hongjr03/numfmt/internal/token"
)

// cachedPattern is one memoized parse outcome: either a valid Pattern, or
// the error message a failed parse produced together with the four-section
// fallback Pattern a caller that asked not to throw should render instead.
type cachedPattern struct {
	valid    *Pattern
	ok       bool
	message  string
	fallback *Pattern
}

// Cache memoizes Parse by pattern string behind a read-mostly RWMutex, so
// concurrent renders of the same handful of patterns a workbook typically
// reuses skip re-tokenizing and re-assembling on every call.
type Cache struct {
	mu sync.RWMutex
	m  map[string]cachedPattern
}

// NewCache returns an empty Cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{m: make(map[string]cachedPattern)}
}

// defaultCache is the process-wide cache package-level Resolve uses.
var defaultCache = NewCache()

func (c *Cache) lookup(key string) (cachedPattern, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, found := c.m[key]
	return entry, found
}

func (c *Cache) store(key string, entry cachedPattern) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.m[key]; !found {
		c.m[key] = entry
	}
}

// buildErrorPattern returns the four-identical-partition fallback a pattern
// that failed to parse renders as: each partition holds a single Error
// token carrying the failure message in its Text (the renderer writes
// Options.Invalid for an Error token).
func buildErrorPattern(raw, message string) *Pattern {
	errTok := token.Token{Kind: token.KindError, Raw: "", Text: message}
	sec := section.New()
	sec.Error = message
	sec.Tokens = []section.SectionToken{{Kind: section.STToken, Token: errTok}}

	partitions := make([]*section.Section, 4)
	for i := range partitions {
		clone := *sec
		clone.Tokens = append([]section.SectionToken(nil), sec.Tokens...)
		partitions[i] = &clone
	}

	return &Pattern{Source: raw, Partitions: partitions}
}

// Resolve returns the cached Pattern for raw, parsing and memoizing it on
// first use. When the pattern is invalid and throws is false, it returns
// the fallback error Pattern instead of an error, matching a non-throwing
// caller's expectation that formatting degrades rather than panics.
func (c *Cache) Resolve(raw string, throws bool) (*Pattern, error) {
	if entry, found := c.lookup(raw); found {
		return resolveEntry(entry, throws)
	}

	pat, err := Parse(raw)
	var entry cachedPattern
	if err != nil {
		entry = cachedPattern{ok: false, message: err.Error(), fallback: buildErrorPattern(raw, err.Error())}
	} else {
		entry = cachedPattern{ok: true, valid: pat}
	}
	c.store(raw, entry)
	return resolveEntry(entry, throws)
}

func resolveEntry(entry cachedPattern, throws bool) (*Pattern, error) {
	if entry.ok {
		return entry.valid, nil
	}
	if throws {
		return nil, errors.New(entry.message)
	}
	return entry.fallback, nil
}

// Resolve resolves raw against the package-level default cache.
func Resolve(raw string, throws bool) (*Pattern, error) {
	return defaultCache.Resolve(raw, throws)
}
