// Package level turns puzzle descriptions into initial configurations.
//
// A level is one line of comma-separated tubes, top slot first, with 'E'
// marking empty space:
//
//	RY,YR,EE
//
// Levels are grouped in YAML packs:
//
//	colors:
//	  R: Red
//	  Y: Yellow
//	levels:
//	  - name: level1
//	    tubes: RY,YR,EE
//	    note: warm-up
//
// Builtin returns the pack shipped with the binary.
package level
