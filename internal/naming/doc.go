// Package naming provides the string-level case conversion rules behind the
// humps key transcoder.
//
// Functions include Camelize, Decamelize, RepairAcronyms and SplitWords, plus
// the IsUpperToken/IsNumericToken predicates that define the fixed points of
// both transforms. All-uppercase and purely numeric strings are treated as
// acronyms or identifiers and never rewritten.
//
// These functions only ever see one string at a time. Walking maps, slices and
// YAML documents is the job of the humps package.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
