package progression

import "fmt"

// Default precinct size exponent when no precinct sizes are signalled in
// the COD/COC marker (Scod bit 0 clear): 2^15 covers any tile.
const defaultPrecinctExp = 15

// TileGeometry describes one tile on the reference grid and the coding
// parameters of its components that determine precinct partitioning.
// Its PrecinctCount method can be passed to New as the PrecinctCounter.
type TileGeometry struct {
	X0 int `yaml:"x0" json:"x0"` // tile origin (tx0, ty0)
	Y0 int `yaml:"y0" json:"y0"`
	X1 int `yaml:"x1" json:"x1"` // tile end, exclusive (tx1, ty1)
	Y1 int `yaml:"y1" json:"y1"`

	Components []ComponentGeometry `yaml:"components" json:"components"`
}

// ComponentGeometry holds the per-component parameters from SIZ and COD/COC.
type ComponentGeometry struct {
	XRsiz int `yaml:"xrsiz" json:"xrsiz"` // horizontal subsampling, 0 = 1
	YRsiz int `yaml:"yrsiz" json:"yrsiz"` // vertical subsampling, 0 = 1

	// DecompLevels is N_L, the number of decomposition levels of this
	// component. It has DecompLevels+1 resolution levels.
	DecompLevels int `yaml:"levels" json:"levels"`

	// PrecinctSizes holds (PPx, PPy) per resolution level, coarsest first.
	// Resolutions without an entry use 15, 15.
	PrecinctSizes [][2]int `yaml:"precincts" json:"precincts"`
}

// Validate checks that g describes a tile with at least one component and
// sane coding parameters.
func (g *TileGeometry) Validate() error {
	if g.X1 <= g.X0 || g.Y1 <= g.Y0 {
		return fmt.Errorf("%w: empty tile (%d,%d)-(%d,%d)", ErrInvalidGeometry, g.X0, g.Y0, g.X1, g.Y1)
	}
	if g.X0 < 0 || g.Y0 < 0 {
		return fmt.Errorf("%w: negative tile origin (%d,%d)", ErrInvalidGeometry, g.X0, g.Y0)
	}
	if len(g.Components) == 0 {
		return fmt.Errorf("%w: no components", ErrInvalidGeometry)
	}
	for c, cg := range g.Components {
		if cg.XRsiz < 0 || cg.YRsiz < 0 || cg.XRsiz > 255 || cg.YRsiz > 255 {
			return fmt.Errorf("%w: component %d subsampling %dx%d", ErrInvalidGeometry, c, cg.XRsiz, cg.YRsiz)
		}
		// Table A.13: at most 32 decomposition levels.
		if cg.DecompLevels < 0 || cg.DecompLevels > 32 {
			return fmt.Errorf("%w: component %d has %d decomposition levels", ErrInvalidGeometry, c, cg.DecompLevels)
		}
		for r, pp := range cg.PrecinctSizes {
			if pp[0] < 0 || pp[0] > 15 || pp[1] < 0 || pp[1] > 15 {
				return fmt.Errorf("%w: component %d resolution %d precinct exponents %v", ErrInvalidGeometry, c, r, pp)
			}
		}
	}
	return nil
}

// MaxDecompLevels returns Nmax, the largest number of decomposition levels
// used by any component of the tile.
func (g *TileGeometry) MaxDecompLevels() int {
	nmax := 0
	for _, cg := range g.Components {
		nmax = max(nmax, cg.DecompLevels)
	}
	return nmax
}

func (cg ComponentGeometry) subsampling() (int, int) {
	xrsiz, yrsiz := 1, 1
	if cg.XRsiz > 0 {
		xrsiz = cg.XRsiz
	}
	if cg.YRsiz > 0 {
		yrsiz = cg.YRsiz
	}
	return xrsiz, yrsiz
}

func (cg ComponentGeometry) precinctSize(res int) (int, int) {
	if res >= 0 && res < len(cg.PrecinctSizes) {
		return cg.PrecinctSizes[res][0], cg.PrecinctSizes[res][1]
	}
	return defaultPrecinctExp, defaultPrecinctExp
}

// ResolutionBounds returns the bounds (trx0, try0, trx1, try1) of resolution
// level res of component comp. Resolutions the component does not have
// return all zeros.
func (g *TileGeometry) ResolutionBounds(res, comp int) (int, int, int, int) {
	if comp < 0 || comp >= len(g.Components) {
		return 0, 0, 0, 0
	}
	cg := g.Components[comp]
	if res < 0 || res > cg.DecompLevels {
		return 0, 0, 0, 0
	}
	xrsiz, yrsiz := cg.subsampling()

	// B-12: tile-component bounds
	tcX0 := ceilDiv(g.X0, xrsiz)
	tcY0 := ceilDiv(g.Y0, yrsiz)
	tcX1 := ceilDiv(g.X1, xrsiz)
	tcY1 := ceilDiv(g.Y1, yrsiz)

	// B-14: trx = ceil(tcx / 2^(NL - r))
	scale := 1 << (cg.DecompLevels - res)
	return ceilDiv(tcX0, scale), ceilDiv(tcY0, scale), ceilDiv(tcX1, scale), ceilDiv(tcY1, scale)
}

// NumPrecincts returns the size of the precinct grid of resolution res of
// component comp per B-16:
//
//	numprecinctswide = ceil(trx1 / 2^PPx) - floor(trx0 / 2^PPx)
//	numprecinctshigh = ceil(try1 / 2^PPy) - floor(try0 / 2^PPy)
//
// An empty resolution has no precincts.
func (g *TileGeometry) NumPrecincts(res, comp int) (int, int) {
	trX0, trY0, trX1, trY1 := g.ResolutionBounds(res, comp)
	if trX1 <= trX0 || trY1 <= trY0 {
		return 0, 0
	}
	ppx, ppy := g.Components[comp].precinctSize(res)
	prcW, prcH := 1<<ppx, 1<<ppy
	return ceilDiv(trX1, prcW) - trX0/prcW, ceilDiv(trY1, prcH) - trY0/prcH
}

// PrecinctCount returns the number of precincts of resolution res of
// component comp. It is zero for resolution levels above the component's own
// decomposition level count.
func (g *TileGeometry) PrecinctCount(res, comp int) int {
	px, py := g.NumPrecincts(res, comp)
	return px * py
}

// Iterator validates g and returns an iterator over the packets of the tile
// with layers quality layers in the given order.
func (g *TileGeometry) Iterator(order Order, layers int) (Iterator, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return New(order, layers, g.MaxDecompLevels(), len(g.Components), g.PrecinctCount)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
