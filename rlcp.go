package progression

// RLCPIterator yields packets in resolution-layer-component-position order
// (ITU-T T.800 B.12.1.2):
//
//	for each r = 0,..., Nmax
//	    for each l = 0,..., L-1
//	        for each i = 0,..., Csiz-1
//	            for each k = 0,..., numprecincts-1
//
// The position is kept as an odometer over (resolution, layer, component,
// precinct) that is advanced one digit at a time. The precinct digit's radix
// depends on the current (resolution, component) pair and is cached in
// end.Precinct; it is recomputed whenever either of those digits changes.
type RLCPIterator struct {
	next Packet

	// end holds the radix of every digit: Layer, Resolution and Component are
	// the fixed bounds, Precinct is the bound for next's pair.
	end Packet

	// sentinel is the single position reached after the last packet.
	sentinel Packet

	count PrecinctCounter
}

// NewRLCPIterator returns an iterator over layers layers, resolution levels
// 0..maxDecompLevels and components components.
func NewRLCPIterator(layers, maxDecompLevels, components int, count PrecinctCounter) *RLCPIterator {
	it := &RLCPIterator{
		end: Packet{
			Layer:      layers,
			Resolution: maxDecompLevels + 1,
			Component:  components,
		},
		sentinel: sentinelFor(maxDecompLevels),
		count:    count,
	}
	if layers <= 0 || components <= 0 || maxDecompLevels < 0 {
		it.next = it.sentinel
		return it
	}
	it.end.Precinct = count(0, 0)
	it.settle()
	return it
}

// HasNext reports whether the odometer has not yet rolled over into the
// sentinel position.
func (it *RLCPIterator) HasNext() bool {
	return it.next != it.sentinel
}

// Next returns the current packet and advances to the following one.
// It panics if HasNext is false.
func (it *RLCPIterator) Next() Packet {
	if !it.HasNext() {
		panic(exhausted(RLCP))
	}
	p := it.next
	it.step()
	it.settle()
	return p
}

// step advances the odometer by one position. Every wrap resets the wrapped
// digits to zero, so after the last packet the odometer lands exactly on the
// sentinel.
func (it *RLCPIterator) step() {
	it.next.Precinct++
	if it.next.Precinct < it.end.Precinct {
		return
	}

	it.next.Precinct = 0
	it.next.Component++
	if it.next.Component < it.end.Component {
		it.end.Precinct = it.count(it.next.Resolution, it.next.Component)
		return
	}

	it.next.Component = 0
	it.next.Layer++
	if it.next.Layer < it.end.Layer {
		it.end.Precinct = it.count(it.next.Resolution, it.next.Component)
		return
	}

	it.next.Layer = 0
	it.next.Resolution++
	if it.HasNext() {
		it.end.Precinct = it.count(it.next.Resolution, it.next.Component)
	}
}

// settle moves off positions whose (resolution, component) pair has no
// precincts. Without it a pair with a zero count would still produce a packet
// with precinct 0, which the LRCP loops never do.
func (it *RLCPIterator) settle() {
	for it.HasNext() && it.next.Precinct >= it.end.Precinct {
		it.step()
	}
}
