package components

import (
	"image"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/theme"
)

// LoadingSpinner desenha um arco giratório para indicar operações em
// andamento. O próprio Layout agenda o próximo frame enquanto visível.
type LoadingSpinner struct {
	// Size é o diâmetro do spinner. Zero usa 24dp.
	Size unit.Dp
	// StrokeWidth é a espessura do traço. Zero usa 3dp.
	StrokeWidth unit.Dp

	start time.Time
}

const spinnerPeriod = 900 * time.Millisecond

func (ls *LoadingSpinner) Layout(gtx layout.Context) layout.Dimensions {
	size := ls.Size
	if size == 0 {
		size = unit.Dp(24)
	}
	strokeWidth := ls.StrokeWidth
	if strokeWidth == 0 {
		strokeWidth = unit.Dp(3)
	}

	if ls.start.IsZero() {
		ls.start = gtx.Now
	}
	elapsed := gtx.Now.Sub(ls.start)
	progress := float64(elapsed%spinnerPeriod) / float64(spinnerPeriod)
	startAngle := 2 * math.Pi * progress

	d := gtx.Dp(size)
	sw := float32(gtx.Dp(strokeWidth))
	radius := float32(d)/2 - sw/2
	center := f32.Pt(float32(d)/2, float32(d)/2)

	begin := f32.Pt(
		center.X+radius*float32(math.Cos(startAngle)),
		center.Y+radius*float32(math.Sin(startAngle)),
	)

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(begin)
	// Arco de 270 graus; a abertura restante dá a sensação de rotação.
	path.Arc(center.Sub(begin), center.Sub(begin), 3*math.Pi/2)

	paint.FillShape(gtx.Ops, theme.Colors.Primary, clip.Stroke{
		Path:  path.End(),
		Width: sw,
	}.Op())

	gtx.Execute(op.InvalidateCmd{})

	return layout.Dimensions{Size: image.Pt(d, d)}
}
