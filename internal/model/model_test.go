package model

import (
	"reflect"
	"testing"
)

func TestShapeNormalize(t *testing.T) {
	s := Shape{{3, 4}, {2, 4}, {2, 5}}
	got := s.Normalize()
	want := Shape{{0, 0}, {0, 1}, {1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
	// Receiver untouched.
	if s[0] != (Cell{3, 4}) {
		t.Errorf("Normalize() modified receiver: %v", s)
	}
}

func TestShapeNormalizeNegativeCoords(t *testing.T) {
	s := Shape{{0, 0}, {-1, 0}, {-1, -1}}
	got := s.Normalize()
	want := Shape{{0, 0}, {0, 1}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestShapeRotate90(t *testing.T) {
	// An L laid out down then right; rotating four times must return to
	// the original up to translation.
	s := Shape{{0, 0}, {1, 0}, {1, 1}}
	r := s
	for i := 0; i < 4; i++ {
		r = r.Rotate90()
	}
	if r.Normalize().Key() != s.Normalize().Key() {
		t.Errorf("four rotations changed shape: got %s, want %s", r.Normalize().Key(), s.Normalize().Key())
	}

	once := s.Rotate90().Normalize()
	want := Shape{{0, 0}, {0, 1}, {1, 0}}.Normalize()
	if once.Key() != want.Key() {
		t.Errorf("Rotate90() = %s, want %s", once.Key(), want.Key())
	}
}

func TestShapeReflectIsInvolution(t *testing.T) {
	s := Shape{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 1}}
	twice := s.Reflect().Reflect().Normalize()
	if twice.Key() != s.Normalize().Key() {
		t.Errorf("double reflection changed shape: got %s", twice.Key())
	}
}

func TestShapeBoundingBox(t *testing.T) {
	s := Shape{{1, 2}, {3, 0}, {2, 5}}
	min, max := s.BoundingBox()
	if min != (Cell{1, 0}) || max != (Cell{3, 5}) {
		t.Errorf("BoundingBox() = %v, %v; want {1 0}, {3 5}", min, max)
	}
}

func TestNewPiece(t *testing.T) {
	p, err := NewPiece("L", Shape{{1, 1}, {2, 1}, {2, 2}})
	if err != nil {
		t.Fatalf("NewPiece() error: %v", err)
	}
	want := Shape{{0, 0}, {1, 0}, {1, 1}}
	if !reflect.DeepEqual(p.Shape, want) {
		t.Errorf("NewPiece() shape = %v, want normalized %v", p.Shape, want)
	}
}

func TestNewPieceErrors(t *testing.T) {
	tests := []struct {
		name  string
		piece string
		shape Shape
	}{
		{"empty name", "", Shape{{0, 0}}},
		{"empty shape", "X", nil},
		{"duplicate cell", "X", Shape{{0, 0}, {0, 1}, {0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPiece(tt.piece, tt.shape); err == nil {
				t.Errorf("NewPiece(%q, %v) succeeded, want error", tt.piece, tt.shape)
			}
		})
	}
}

func TestPlacementCovers(t *testing.T) {
	p := NewPlacement("T", []Cell{{0, 0}, {0, 1}, {1, 0}})
	if !p.Covers(Cell{0, 1}) {
		t.Error("Covers() = false for an occupied cell")
	}
	if p.Covers(Cell{1, 1}) {
		t.Error("Covers() = true for a free cell")
	}

	// A placement without the precomputed set (e.g. decoded from JSON)
	// must still answer correctly.
	decoded := Placement{Piece: "T", Cells: []Cell{{0, 0}, {0, 1}}}
	if !decoded.Covers(Cell{0, 1}) || decoded.Covers(Cell{5, 5}) {
		t.Error("Covers() wrong for placement without cell set")
	}
}

func TestPlacementOverlaps(t *testing.T) {
	p := NewPlacement("T", []Cell{{0, 0}, {0, 1}})
	used := map[Cell]struct{}{{0, 1}: {}}
	if !p.Overlaps(used) {
		t.Error("Overlaps() = false, want true")
	}
	if p.Overlaps(map[Cell]struct{}{{9, 9}: {}}) {
		t.Error("Overlaps() = true, want false")
	}
}

func TestSolutionOwners(t *testing.T) {
	sol := &Solution{Placements: []Placement{
		NewPlacement("A", []Cell{{0, 0}, {0, 1}}),
		NewPlacement("B", []Cell{{1, 0}, {1, 1}}),
	}}
	owners := sol.Owners()
	if owners[Cell{0, 1}] != "A" || owners[Cell{1, 0}] != "B" {
		t.Errorf("Owners() = %v", owners)
	}
	if len(owners) != 4 {
		t.Errorf("Owners() has %d entries, want 4", len(owners))
	}
}
