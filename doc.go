// Package logex formats log records with call-site metadata.
//
// Every log call locates the true caller on the stack, resolves a closed
// set of placeholders (class, method, file, line, ...) against that frame,
// and renders two independently configurable templates - one for the tag,
// one for the message - before handing the record to a Sink.
//
// Locating the caller and resolving names is not free, so callers that log
// on hot paths should consult IsLoggable before invoking a logging
// function; the dispatch path itself never filters.
package logex
