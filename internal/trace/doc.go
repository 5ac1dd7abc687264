// Package trace is the structured event layer of javapy.
//
// Spans are opened per phase (scan, translate, verify) and per file and are
// written as text or NDJSON to stderr or a file:
//
//	javapy translate --trace=- --trace-level=detail demo.java
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Child(ctx, trace.ScopePass, "scan")
//	defer span.End("")
package trace
