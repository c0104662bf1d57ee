// Package extraction provides background content extraction for workspace
// documents. A Registry maps content types to ExtractorFuncs; a Pipeline
// consumes submitted documents on a worker goroutine and tracks each
// document's lifecycle independently of layout.
package extraction
