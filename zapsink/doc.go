// Package zapsink adapts the pipeline to go.uber.org/zap.
//
// It lets records flow into an existing zap logging setup: severity
// bands map to zap levels, and the record's context and raw severity
// travel as structured fields. Records at or above the fatal band log
// at zap's Error level — a sink must never terminate the process, so
// zap's Fatal (which calls os.Exit) is deliberately not used.
package zapsink
