package progression

import (
	"fmt"
	"iter"
)

// Packet identifies one packet of a tile by its position in the progression.
type Packet struct {
	Layer      int
	Resolution int
	Component  int
	Precinct   int
}

func (p Packet) String() string {
	return fmt.Sprintf("L=%d R=%d C=%d P=%d", p.Layer, p.Resolution, p.Component, p.Precinct)
}

// PrecinctCounter returns the number of precincts of a component at a
// resolution level. It must return the same value for the same arguments for
// the lifetime of an iterator. Zero is a valid count.
type PrecinctCounter func(resolution, component int) int

// UniformPrecincts returns a PrecinctCounter that reports n precincts for
// every resolution level and component.
func UniformPrecincts(n int) PrecinctCounter {
	return func(int, int) int { return n }
}

// Iterator yields packets in progression order.
//
// Next must only be called when HasNext reports true; calling it on an
// exhausted iterator panics.
type Iterator interface {
	HasNext() bool
	Next() Packet
}

// Seq adapts an Iterator for use with range. Breaking out of the loop leaves
// the iterator positioned on the packet after the last one yielded.
func Seq(it Iterator) iter.Seq[Packet] {
	return func(yield func(Packet) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect(it Iterator) []Packet {
	var packets []Packet
	for it.HasNext() {
		packets = append(packets, it.Next())
	}
	return packets
}

// Count drains it and returns the number of packets it produced.
func Count(it Iterator) int {
	n := 0
	for it.HasNext() {
		it.Next()
		n++
	}
	return n
}

// sentinelFor returns the position both iterators rest on once every packet
// has been produced.
func sentinelFor(maxDecompLevels int) Packet {
	return Packet{Resolution: maxDecompLevels + 1}
}

func exhausted(order Order) error {
	return fmt.Errorf("%w: Next called on finished %s iterator", ErrExhausted, order)
}
