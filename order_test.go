package progression

import (
	"errors"
	"testing"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{"LRCP", LRCP, false},
		{"rlcp", RLCP, false},
		{" Rpcl ", RPCL, false},
		{"PCRL", PCRL, false},
		{"cprl", CPRL, false},
		{"0", LRCP, false},
		{"1", RLCP, false},
		{"4", CPRL, false},
		{"5", 0, true},
		{"LRPC", 0, true},
		{"", 0, true},
		{"-1", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidProgression) {
				t.Errorf("ParseOrder(%q) error = %v, want ErrInvalidProgression", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOrder(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOrder(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOrder_String(t *testing.T) {
	if got := RLCP.String(); got != "RLCP" {
		t.Errorf("RLCP.String() = %q", got)
	}
	if got := Order(99).String(); got != "Order(99)" {
		t.Errorf("Order(99).String() = %q", got)
	}
	if Order(5).Valid() {
		t.Error("Order(5).Valid() = true")
	}
	if !LRCP.Supported() || !RLCP.Supported() || RPCL.Supported() {
		t.Error("Supported() mismatch")
	}
}

func TestNew(t *testing.T) {
	it, err := New(LRCP, 1, 0, 1, UniformPrecincts(1))
	if err != nil {
		t.Fatalf("New(LRCP) error: %v", err)
	}
	if _, ok := it.(*LRCPIterator); !ok {
		t.Errorf("New(LRCP) returned %T", it)
	}

	it, err = New(RLCP, 1, 0, 1, UniformPrecincts(1))
	if err != nil {
		t.Fatalf("New(RLCP) error: %v", err)
	}
	if _, ok := it.(*RLCPIterator); !ok {
		t.Errorf("New(RLCP) returned %T", it)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name       string
		order      Order
		layers     int
		levels     int
		components int
		count      PrecinctCounter
		want       error
	}{
		{"RPCL", RPCL, 1, 1, 1, UniformPrecincts(1), ErrUnsupportedProgression},
		{"PCRL", PCRL, 1, 1, 1, UniformPrecincts(1), ErrUnsupportedProgression},
		{"CPRL", CPRL, 1, 1, 1, UniformPrecincts(1), ErrUnsupportedProgression},
		{"invalid order", Order(7), 1, 1, 1, UniformPrecincts(1), ErrInvalidProgression},
		{"negative layers", LRCP, -1, 1, 1, UniformPrecincts(1), ErrInvalidBounds},
		{"negative levels", RLCP, 1, -1, 1, UniformPrecincts(1), ErrInvalidBounds},
		{"negative components", LRCP, 1, 1, -2, UniformPrecincts(1), ErrInvalidBounds},
		{"nil counter", RLCP, 1, 1, 1, nil, ErrInvalidBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := New(tt.order, tt.layers, tt.levels, tt.components, tt.count)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
			if it != nil {
				t.Errorf("New() returned iterator %T alongside error", it)
			}
		})
	}
}
