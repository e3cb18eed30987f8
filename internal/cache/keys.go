package cache

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DeriveKey builds a query-cache key from a named prefix and a parameter
// mapping. Parameter names are sorted before serialization so mappings that
// differ only in insertion order derive the same key. The digest is xxhash,
// which is not cryptographic; it only needs a low collision rate across the
// parameter values actually seen.
func DeriveKey(prefix string, params map[string]any) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%v;", name, params[name])
	}

	return fmt.Sprintf("cache:%s:%016x", prefix, xxhash.Sum64String(b.String()))
}
