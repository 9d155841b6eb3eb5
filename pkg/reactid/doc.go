// Package reactid implements the address strings that identify mounted
// components.
//
// An identifier such as "0.1:2.0" encodes a position in the component tree.
// The first segment is the root index. Every following segment is either a
// DOM child slot ('.' followed by the index inside a real element) or a list
// slot (':' followed by the index inside an array child, which has no element
// of its own).
//
// Internally an ID is an ordered slice of segments; the string form only
// exists at the boundary, in the identity attribute written on every mounted
// element and read back during event dispatch.
//
// Because list slots never own a DOM element, the structure of an identifier
// alone determines which real element holds its nodes:
//
//	id, _ := reactid.Parse("0.1:2:0")
//	host, _ := id.HostParent() // "0"
package reactid
