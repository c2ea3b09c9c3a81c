package progression

import (
	"fmt"
	"strconv"
	"strings"
)

// Order is a progression order as stored in the SGcod field of a COD marker.
type Order byte

const (
	LRCP Order = 0 // Layer, Resolution, Component, Position
	RLCP Order = 1 // Resolution, Layer, Component, Position
	RPCL Order = 2 // Resolution, Position, Component, Layer
	PCRL Order = 3 // Position, Component, Resolution, Layer
	CPRL Order = 4 // Component, Position, Resolution, Layer
)

var orderNames = [...]string{"LRCP", "RLCP", "RPCL", "PCRL", "CPRL"}

func (o Order) String() string {
	if o.Valid() {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", byte(o))
}

// Valid reports whether o is one of the five orders defined by ITU-T T.800
// Table A.16.
func (o Order) Valid() bool {
	return int(o) < len(orderNames)
}

// Supported reports whether this package can enumerate o.
func (o Order) Supported() bool {
	return o == LRCP || o == RLCP
}

// ParseOrder parses an order name such as "rlcp" or its SGcod value such
// as "1".
func ParseOrder(s string) (Order, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	if v, err := strconv.ParseUint(name, 10, 8); err == nil && Order(v).Valid() {
		return Order(v), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidProgression, s)
}

// New returns an iterator over the packets of one tile in the given order.
//
// layers is the number of quality layers, maxDecompLevels the largest number
// of decomposition levels used by any component of the tile and components
// the number of components. count reports the precinct count of each
// (resolution, component) pair.
func New(order Order, layers, maxDecompLevels, components int, count PrecinctCounter) (Iterator, error) {
	if layers < 0 || maxDecompLevels < 0 || components < 0 {
		return nil, fmt.Errorf("%w: layers=%d levels=%d components=%d",
			ErrInvalidBounds, layers, maxDecompLevels, components)
	}
	if count == nil {
		return nil, fmt.Errorf("%w: nil precinct counter", ErrInvalidBounds)
	}

	switch order {
	case LRCP:
		return NewLRCPIterator(layers, maxDecompLevels, components, count), nil
	case RLCP:
		return NewRLCPIterator(layers, maxDecompLevels, components, count), nil
	case RPCL, PCRL, CPRL:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProgression, order)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidProgression, byte(order))
	}
}
