// Package core defines the shared types that flow through the pipeline.
//
// It provides the Record type, the immutable unit of data every sink
// accepts, and the Severity type with its display-only named bands
// (info, warning, error, fatal). Records carry their timestamp as
// fractional seconds since the Unix epoch and are always passed by
// value, so a Record may be shared across goroutines without any
// synchronization.
//
// Severity is an open integer scale, not an enumeration: any value is
// legal, and the named bands exist only so that formatters can render
// something readable. Severities without an exact band entry fall back
// to the band at the nearest lower multiple of one hundred, and values
// outside every band render as "severity=<n>".
package core
