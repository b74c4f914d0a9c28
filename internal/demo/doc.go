// Package demo runs the pattern demonstrations.
//
// Each demonstration narrates its steps to an io.Writer and returns a
// report describing what happened, so callers can print either the
// narration or a structured result.
package demo
