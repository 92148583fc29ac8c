package render

import (
	"fmt"
	"math"
)

// HandlePosition is the side of a node a handle sits on.
type HandlePosition string

const (
	Top    HandlePosition = "top"
	Right  HandlePosition = "right"
	Bottom HandlePosition = "bottom"
	Left   HandlePosition = "left"
)

// Curvature of edges whose control points would otherwise fold back.
const Curvature = 0.25

// EdgeGeometry holds the endpoints of an edge on the canvas.
type EdgeGeometry struct {
	SourceX, SourceY float64
	SourcePos        HandlePosition
	TargetX, TargetY float64
	TargetPos        HandlePosition
}

// Bezier is a cubic curve between two handles plus the point where its
// label (or button) is drawn.
type Bezier struct {
	Path           string
	LabelX, LabelY float64
}

// BezierPath computes the curve the canvas draws between two handles.
func BezierPath(geo EdgeGeometry) Bezier {
	scx, scy := controlPoint(geo.SourcePos, geo.SourceX, geo.SourceY, geo.TargetX, geo.TargetY)
	tcx, tcy := controlPoint(geo.TargetPos, geo.TargetX, geo.TargetY, geo.SourceX, geo.SourceY)

	return Bezier{
		Path: fmt.Sprintf("M%s,%s C%s,%s %s,%s %s,%s",
			num(geo.SourceX), num(geo.SourceY),
			num(scx), num(scy), num(tcx), num(tcy),
			num(geo.TargetX), num(geo.TargetY)),
		LabelX: geo.SourceX*0.125 + scx*0.375 + tcx*0.375 + geo.TargetX*0.125,
		LabelY: geo.SourceY*0.125 + scy*0.375 + tcy*0.375 + geo.TargetY*0.125,
	}
}

func controlPoint(pos HandlePosition, x1, y1, x2, y2 float64) (float64, float64) {
	switch pos {
	case Left:
		return x1 - controlOffset(x1-x2), y1
	case Right:
		return x1 + controlOffset(x2-x1), y1
	case Top:
		return x1, y1 - controlOffset(y1-y2)
	default:
		return x1, y1 + controlOffset(y2-y1)
	}
}

func controlOffset(distance float64) float64 {
	if distance >= 0 {
		return 0.5 * distance
	}
	return Curvature * 25 * math.Sqrt(-distance)
}
