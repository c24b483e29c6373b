package canvas

import "image/color"

// Op is one recorded rasterizer call.
type Op struct {
	Kind  OpKind
	A, B  Pixel // line endpoints, or rect origin and size
	Color color.RGBA
}

type OpKind int

const (
	OpLine OpKind = iota
	OpRect
)

// Recorder is a Rasterizer that keeps every call in memory.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) StrokeLine(a, b Pixel, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, A: a, B: b, Color: rgba(clr)})
}

func (r *Recorder) FillRect(x, y, w, h int, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, A: Pixel{X: x, Y: y}, B: Pixel{X: w, Y: h}, Color: rgba(clr)})
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func rgba(clr color.Color) color.RGBA {
	return color.RGBAModel.Convert(clr).(color.RGBA)
}
