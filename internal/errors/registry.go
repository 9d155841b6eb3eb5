package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Contract violations (E101-E199), raised while mounting.

	"E101": {
		Category:   CategoryContract,
		Message:    "DOM component requires a string element type",
		Suggestion: "Build native elements with vdom.CreateElement(\"div\", ...) or a tag helper such as vdom.Div(...).",
	},
	"E102": {
		Category:   CategoryContract,
		Message:    "Composite component requires a component class",
		Suggestion: "Declare the component with tiny.Define(name, constructor) and pass the returned *Class as the element type.",
	},
	"E103": {
		Category:   CategoryContract,
		Message:    "Component constructor returned no component",
		Detail:     "The component constructor returned nil or a value that does not implement Render.",
	},
	"E104": {
		Category:   CategoryContract,
		Message:    "Unsupported child value",
		Suggestion: "Children must be nil, strings, numbers, *vdom.Element values or slices of those.",
	},
	"E105": {
		Category: CategoryContract,
		Message:  "Render target container is nil",
	},
	"E106": {
		Category: CategoryContract,
		Message:  "Renderer is closed",
		Detail:   "Every root has been unmounted and no new tree can be mounted; create a new renderer.",
	},
	"E107": {
		Category:   CategoryContract,
		Message:    "Maximum update depth exceeded",
		Suggestion: "A component calls SetState from Render or ComponentDidUpdate on every update; guard the call with a condition.",
	},

	// Input errors (E201-E299), returned to CLI callers.

	"E201": {
		Category: CategoryInput,
		Message:  "Cannot read element description",
	},
	"E202": {
		Category:   CategoryInput,
		Message:    "Invalid element description",
		Suggestion: "Every element needs a 'type'; 'attrs' must be a mapping and 'children' a sequence.",
	},
	"E203": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
