// Package formatter defines how records are rendered into text lines.
//
// A Formatter is a plain function from a Record to a string without a
// trailing newline; the sink that writes the line owns line
// termination. The built-in Text formatter renders the classic layout
//
//	Mon Jan  2 15:04:05 2006 - warning: (main.go:42) -- disk almost full
//
// with a configurable timestamp format. Default returns a Text
// formatter with the ctime-style ANSIC timestamp.
package formatter
