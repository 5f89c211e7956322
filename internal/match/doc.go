// Package match finds the closest known name to a misspelled one. It backs
// the "did you mean" hints for unknown type names and near-miss tag keys.
package match
