// Package progression enumerates JPEG2000 packet identifiers in codestream
// progression order.
//
// A packet is identified by its (layer, resolution level, component,
// precinct) tuple. ITU-T T.800 Annex B.12 defines the nesting order in which
// a tile's packets appear in the codestream; this package implements the
// layer-resolution-component-position (LRCP) and
// resolution-layer-component-position (RLCP) orders as pull iterators that
// never materialize the full packet set.
//
// Iterating packets of a tile:
//
//	it, err := progression.New(progression.RLCP, numLayers, maxDecompLevels, numComps, precinctCount)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for it.HasNext() {
//	    p := it.Next()
//	    readPacket(p.Layer, p.Resolution, p.Component, p.Precinct)
//	}
//
// The precinct count for each (resolution, component) pair is supplied by the
// caller. TileGeometry computes it from tile bounds, subsampling and precinct
// sizes, and Seq adapts any iterator for range loops:
//
//	it, err := geom.Iterator(progression.LRCP, numLayers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for p := range progression.Seq(it) {
//	    readPacket(p.Layer, p.Resolution, p.Component, p.Precinct)
//	}
//
// Resolution levels are always iterated up to the maximum decomposition level
// of any component in the tile. Components with fewer levels report zero
// precincts for the extra levels and contribute no packets there.
package progression
