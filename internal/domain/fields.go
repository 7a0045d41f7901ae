package domain

import (
	"maps"
	"slices"
	"strings"
)

// NormalizeFieldNames rewrites snake_case payload keys to the camelCase names
// used in storage. Only an underscore followed by a lowercase ASCII letter is
// rewritten; every other character is kept as is. Reserved record keys are
// dropped after rewriting.
//
// When several keys normalize to the same name, a key already spelled that way
// wins over its rewritten twins; among rewritten twins the last in sorted
// order wins.
func NormalizeFieldNames(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for _, key := range slices.Sorted(maps.Keys(data)) {
		name := ToCamelCase(key)
		if IsReservedField(name) {
			continue
		}
		if _, exact := data[name]; exact && name != key {
			continue
		}
		out[name] = data[key]
	}
	return out
}

func ToCamelCase(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			b.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
