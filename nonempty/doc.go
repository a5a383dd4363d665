// Package nonempty provides an ordered sequence type that is guaranteed to
// contain at least one element.
//
// The guarantee is structural: Seq stores its first element separately from
// the rest, so an empty sequence is not representable. The validation package
// uses Seq as its error container to make "a failure carrying zero errors"
// impossible by construction, but the type is self-contained and has no
// dependency on validation concerns.
//
// All operations are pure and total: Append and Map return fresh sequences
// and never mutate their operands, so values can be shared and reused freely
// across goroutines without synchronization.
package nonempty
