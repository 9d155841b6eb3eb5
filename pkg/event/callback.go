package event

import (
	"strings"
	"unicode"

	"github.com/vango-dev/tiny/pkg/dom"
)

// Name returns the native event type for a prop key of the form
// "on<Name>", lower-cased. It reports false for every other key.
func Name(propKey string) (string, bool) {
	if len(propKey) < 3 || !strings.HasPrefix(propKey, "on") {
		return "", false
	}
	rest := propKey[2:]
	for _, r := range rest {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", false
		}
	}
	return strings.ToLower(rest), true
}

// AsCallback adapts a prop value to a Callback. Supported shapes are
// Callback, func(*dom.Event) and func().
func AsCallback(v any) (Callback, bool) {
	switch fn := v.(type) {
	case Callback:
		return fn, fn != nil
	case func(*dom.Event):
		return fn, fn != nil
	case func():
		if fn == nil {
			return nil, false
		}
		return func(*dom.Event) { fn() }, true
	default:
		return nil, false
	}
}
