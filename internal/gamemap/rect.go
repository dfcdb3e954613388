package gamemap

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	X1, Y1, X2, Y2 int
}
