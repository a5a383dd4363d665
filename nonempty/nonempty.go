package nonempty

// Seq is an ordered sequence with at least one element. The first element is
// stored apart from the rest, so the invariant cannot be violated by any
// operation on the type. The zero value is a one-element sequence holding the
// zero value of E.
type Seq[E any] struct {
	head E
	tail []E
}

// Of builds a sequence from one or more elements, preserving argument order.
func Of[E any](head E, rest ...E) Seq[E] {
	var tail []E
	if len(rest) > 0 {
		tail = make([]E, len(rest))
		copy(tail, rest)
	}
	return Seq[E]{head: head, tail: tail}
}

// Head returns the first element.
func (s Seq[E]) Head() E {
	return s.head
}

// Tail returns a copy of every element after the first. Returns nil for a
// one-element sequence.
func (s Seq[E]) Tail() []E {
	if len(s.tail) == 0 {
		return nil
	}
	tail := make([]E, len(s.tail))
	copy(tail, s.tail)
	return tail
}

// Len returns the number of elements; always at least 1.
func (s Seq[E]) Len() int {
	return 1 + len(s.tail)
}

// All returns every element as a fresh slice, head first.
func (s Seq[E]) All() []E {
	all := make([]E, 0, s.Len())
	all = append(all, s.head)
	return append(all, s.tail...)
}

// Append concatenates two sequences: the receiver's elements followed by
// other's. Neither operand is mutated.
func (s Seq[E]) Append(other Seq[E]) Seq[E] {
	tail := make([]E, 0, len(s.tail)+other.Len())
	tail = append(tail, s.tail...)
	tail = append(tail, other.head)
	tail = append(tail, other.tail...)
	return Seq[E]{head: s.head, tail: tail}
}

// Map applies f to every element in order, preserving length. It is a
// package-level function because Go methods cannot introduce type parameters.
func Map[E, F any](s Seq[E], f func(E) F) Seq[F] {
	head := f(s.head)
	var tail []F
	if len(s.tail) > 0 {
		tail = make([]F, len(s.tail))
		for i, e := range s.tail {
			tail[i] = f(e)
		}
	}
	return Seq[F]{head: head, tail: tail}
}
