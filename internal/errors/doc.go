// Package errors provides coded, actionable errors for tiny.
//
// Two kinds of failure exist in the renderer:
//
//   - contract: programmer errors detected while mounting (a DOM element
//     whose type is not a tag name, a composite whose type is not a
//     component class, a component without Render). These are raised as
//     panics carrying a *TinyError and are never recovered by the renderer.
//   - input: malformed element descriptions or configuration read by the
//     CLI. These are returned as ordinary error values.
//
// # Error Codes
//
// Each code maps to a registered template with a short message, a longer
// detail, and optionally a suggestion:
//
//	E101  DOM component mounted with a non-string type
//	E102  composite component mounted with a non-class type
//	E103  component class produced a value without Render
//	E104  unsupported child value
//	E105  render into a nil container
//	E106  render after the renderer was closed
//	E107  SetState loop exceeded the nested update limit
//	E201  description file could not be read
//	E202  description file is invalid
//	E203  configuration is invalid
//
// # Usage
//
//	panic(errors.New("E101").WithDetailf("got %T", el.Type))
//
//	if _, err := describe.ParseFile(path); err != nil {
//	    errors.PrintError(err)
//	}
package errors
