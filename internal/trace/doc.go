// Package trace records what happened to an array or a sort call as an
// ordered list of events, and serializes that list deterministically.
//
// Every event is stamped with a logical sequence number from a Sequencer.
// Wall-clock time is never recorded, so the same operations against the
// same inputs always yield byte-identical canonical JSON and the same
// digest. Golden files and replay checks rely on that.
//
// Canonical JSON follows RFC 8785 closely enough for hashing: object keys
// are sorted by UTF-16 code units, strings are NFC-normalized, HTML
// characters are not escaped, and floats and nulls are rejected.
package trace
