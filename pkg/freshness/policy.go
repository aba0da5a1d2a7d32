package freshness

import (
	"net/http"
	"strings"
)

// Header names used by list endpoints.
const (
	HeaderCollectionCount = "X-Collection-Count"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderETag            = "ETag"
)

// Check pairs a strategy with the headers that carry its signal.
// EntityTag checks quote the value they send and accept weak or quoted
// values, and lists, from the client.
type Check[T any] struct {
	RequestHeader  string
	ResponseHeader string
	Strategy       Strategy[T]
	EntityTag      bool
}

// CountCheck compares record counts through X-Collection-Count.
func CountCheck[T any]() Check[T] {
	return Check[T]{
		RequestHeader:  HeaderCollectionCount,
		ResponseHeader: HeaderCollectionCount,
		Strategy:       Count[T]{},
	}
}

// ETagCheck compares the strategy's signal through If-None-Match and ETag.
func ETagCheck[T any](s Strategy[T]) Check[T] {
	return Check[T]{
		RequestHeader:  HeaderIfNoneMatch,
		ResponseHeader: HeaderETag,
		Strategy:       s,
		EntityTag:      true,
	}
}

// Policy is the freshness configuration of one endpoint. The request is
// unchanged only when it is not bypassed and every check matches.
type Policy[T any] struct {
	Checks []Check[T]
	Bypass func(r *http.Request) bool
}

// Decision is the outcome of evaluating a policy against current records.
type Decision struct {
	Unchanged bool
	Bypassed  bool
	// Headers holds the current signal of every check, keyed by response header.
	Headers map[string]string
}

// Evaluate derives the current signals and compares them with the request.
func (p Policy[T]) Evaluate(r *http.Request, records []T) Decision {
	d := Decision{Headers: make(map[string]string, len(p.Checks))}
	d.Bypassed = p.Bypass != nil && p.Bypass(r)

	matched := len(p.Checks) > 0
	for _, c := range p.Checks {
		signal := c.Strategy.DeriveSignal(records)
		if signal == "" {
			matched = false
			continue
		}
		if c.EntityTag {
			d.Headers[c.ResponseHeader] = quote(signal)
		} else {
			d.Headers[c.ResponseHeader] = signal
		}
		if !c.matches(r.Header.Get(c.RequestHeader), signal) {
			matched = false
		}
	}

	d.Unchanged = matched && !d.Bypassed
	return d
}

func (c Check[T]) matches(client, signal string) bool {
	client = strings.TrimSpace(client)
	if client == "" {
		return false
	}
	if !c.EntityTag {
		return client == signal
	}
	for _, candidate := range strings.Split(client, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || unquote(candidate) == signal {
			return true
		}
	}
	return false
}

// Always bypasses every request.
func Always(*http.Request) bool { return true }

// AnyQueryParam bypasses requests carrying any of the named query parameters.
func AnyQueryParam(names ...string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		q := r.URL.Query()
		for _, name := range names {
			if q.Has(name) {
				return true
			}
		}
		return false
	}
}

func quote(s string) string {
	return `"` + s + `"`
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, "W/")
	return strings.Trim(s, `"`)
}
