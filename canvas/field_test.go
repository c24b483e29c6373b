package canvas

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"slope-field/engine"
)

func TestDrawField(t *testing.T) {
	rec := &Recorder{}
	d := NewDrawer(rec, surf)
	l := Lattice{Min: 0, Max: 2, ArrowLength: 0.5, HeadSize: 0.25}
	flat := engine.FieldOf(func(x, y float64) float64 { return 0 })
	DrawField(d, View{0, 0, 1}, l, flat, white)

	want := []Op{
		{Kind: OpLine, A: Pixel{400, 400}, B: Pixel{600, 400}, Color: white},
		{Kind: OpRect, A: Pixel{500, 300}, B: Pixel{200, 200}, Color: white},
		{Kind: OpLine, A: Pixel{400, 800}, B: Pixel{600, 800}, Color: white},
		{Kind: OpRect, A: Pixel{500, 700}, B: Pixel{200, 200}, Color: white},
	}
	if len(rec.Ops) != 2*l.Points() {
		t.Fatalf("got %d ops, want %d", len(rec.Ops), 2*l.Points())
	}
	if diff := cmp.Diff(want, rec.Ops[:4]); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawFieldLattice(t *testing.T) {
	rec := &Recorder{}
	d := NewDrawer(rec, surf)
	l := Lattice{Min: -10, Max: 10, ArrowLength: 0.3, HeadSize: 0.01}
	f := engine.SlopeField(func(x, _ float64) float64 { return math.Cos(x / math.Pi) })
	DrawField(d, View{0, 0, 1}, l, f, white)

	if l.Points() != 400 {
		t.Fatalf("Points() = %d, want 400", l.Points())
	}
	st := d.Stats()
	if st.Segments != 400 || st.Squares != 400 || st.Skipped != 0 {
		t.Errorf("stats = %+v", st)
	}
}

func TestLatticePoints(t *testing.T) {
	if n := (Lattice{Min: 3, Max: 3}).Points(); n != 0 {
		t.Errorf("empty lattice has %d points", n)
	}
	if n := (Lattice{Min: 5, Max: 2}).Points(); n != 0 {
		t.Errorf("inverted lattice has %d points", n)
	}
}

func TestDrawFieldSkipsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
	}{
		{"nan", math.NaN()},
		{"+inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			d := NewDrawer(rec, surf)
			l := Lattice{Min: 0, Max: 1, ArrowLength: 0.3, HeadSize: 0.01}
			bad := engine.FieldOf(func(x, y float64) float64 { return tt.angle })
			DrawField(d, View{0, 0, 1}, l, bad, white)
			if len(rec.Ops) != 0 {
				t.Errorf("drew %v for a non-finite angle", rec.Ops)
			}
			if st := d.Stats(); st != (Stats{}) {
				t.Errorf("stats = %+v", st)
			}
		})
	}
}

func TestDrawFieldPartiallyUndefined(t *testing.T) {
	rec := &Recorder{}
	d := NewDrawer(rec, surf)
	l := Lattice{Min: -2, Max: 2, ArrowLength: 0.3, HeadSize: 0.01}
	// undefined for x < 0, i.e. two of the four columns
	f := engine.FieldOf(func(x, y float64) float64 { return math.Sqrt(x) })
	DrawField(d, View{0, 0, 10}, l, f, white)
	if st := d.Stats(); st.Squares != 8 || st.Segments+st.Skipped != 8 {
		t.Errorf("stats = %+v, want 8 arrows", st)
	}
}
