package progression

// LRCPIterator yields packets in layer-resolution-component-position order
// (ITU-T T.800 B.12.1.1):
//
//	for each l = 0,..., L-1
//	    for each r = 0,..., Nmax
//	        for each i = 0,..., Csiz-1
//	            for each k = 0,..., numprecincts-1
//
// The loops are kept as resumable counters. Each call to Next hands out the
// buffered packet and runs the loop body forward until the following packet is
// buffered or the outermost loop ends.
type LRCPIterator struct {
	layers     int
	levels     int // Nmax + 1
	components int
	count      PrecinctCounter

	// Loop counters, positioned on the packet after the buffered one.
	layer, res, comp, precinct int

	next     Packet
	buffered bool
}

// NewLRCPIterator returns an iterator over layers layers, resolution levels
// 0..maxDecompLevels and components components. The iterator is primed
// immediately, so count is called during construction.
func NewLRCPIterator(layers, maxDecompLevels, components int, count PrecinctCounter) *LRCPIterator {
	it := &LRCPIterator{
		layers:     layers,
		levels:     maxDecompLevels + 1,
		components: components,
		count:      count,
	}
	it.advance()
	return it
}

// HasNext reports whether a packet is buffered.
func (it *LRCPIterator) HasNext() bool {
	return it.buffered
}

// Next returns the buffered packet and buffers the one after it.
// It panics if HasNext is false.
func (it *LRCPIterator) Next() Packet {
	if !it.buffered {
		panic(exhausted(LRCP))
	}
	p := it.next
	it.advance()
	return p
}

// advance resumes the nested loops where the last packet was produced.
// Nmax is the tile-wide maximum, so a component with fewer decomposition
// levels reports zero precincts at the extra levels and the precinct loop
// runs zero times there.
func (it *LRCPIterator) advance() {
	for it.layer < it.layers {
		for it.res < it.levels {
			for it.comp < it.components {
				if it.precinct < it.count(it.res, it.comp) {
					it.next = Packet{
						Layer:      it.layer,
						Resolution: it.res,
						Component:  it.comp,
						Precinct:   it.precinct,
					}
					it.precinct++
					it.buffered = true
					return
				}
				it.precinct = 0
				it.comp++
			}
			it.comp = 0
			it.res++
		}
		it.res = 0
		it.layer++
	}
	it.buffered = false
}
