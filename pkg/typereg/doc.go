// Package typereg implements the process-wide type registry for the scene
// node hierarchy.
//
// Every node class registers itself once under a stable display name and
// receives a TypeHandle: a small, comparable identifier that stands in for
// native run-time type information. Generic format tooling (parsers,
// writers, validators) dispatches on handles and answers "is-a" questions
// with IsDerivedFrom, without knowing any concrete node type.
//
// Design goals:
//   - Small, copyable handles instead of reflected types or object graphs.
//   - Idempotent registration; duplicate calls are routine, not an error.
//   - Lock held only on the mutating path; queries are read-only and safe
//     to issue concurrently once registration has happened.
//   - Typed sentinel errors; an unknown handle is surfaced, never defaulted.
//
// This package has no dependencies beyond the standard library.
package typereg
