package valueobjects

// Handles are the fixed connection ports on every node shape.
const (
	SourceHandle = "r1"
	TargetHandle = "l1"
)

// Viewport is the canvas pan/zoom transform at the time of a gesture.
// A zero Zoom is treated as 1.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// Rect is a client-space bounding box as reported by the rendering layer
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Project converts a point relative to the canvas origin into canvas space
func (v Viewport) Project(x, y float64) (Position, error) {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return NewPosition((x-v.X)/zoom, (y-v.Y)/zoom)
}

// ClientToCanvas translates pointer client coordinates into canvas space:
// subtract the canvas bounding box origin, then undo pan and zoom.
func ClientToCanvas(clientX, clientY float64, bounds Rect, v Viewport) (Position, error) {
	return v.Project(clientX-bounds.Left, clientY-bounds.Top)
}
