package reactid

import (
	"strconv"
	"strings"
)

// ParentString strips the last ".<n>" or ":<n>" segment of an address
// string. It returns false if s has no separator.
func ParentString(s string) (string, bool) {
	i := strings.LastIndexAny(s, ".:")
	if i < 0 || !isIndex(s[i+1:]) {
		return "", false
	}
	return s[:i], true
}

// WithNewIndexString rewrites the trailing numeric segment of s.
func WithNewIndexString(s string, index int) string {
	i := strings.LastIndexAny(s, ".:")
	if !isIndex(s[i+1:]) {
		return s
	}
	return s[:i+1] + strconv.Itoa(index)
}

// HasPrefixString reports whether the address string s equals prefix or
// addresses a slot below it.
func HasPrefixString(s, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(s, prefix) {
		return false
	}
	if len(s) == len(prefix) {
		return true
	}
	c := s[len(prefix)]
	return c == '.' || c == ':'
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
