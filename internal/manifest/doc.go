// Package manifest loads declarative variable lists from JSON or YAML files
// and turns them into envar bindings.
//
// A manifest looks like:
//
//	variables:
//	  - name: PORT
//	    type: int
//	    default: 8080
//	  - name: MODE
//	    type: enum
//	    allowed: [development, production]
//	    required: true
//
// Defaults are written as text and run through the variable's parser when
// the manifest is loaded, so a malformed default is reported up front.
package manifest
