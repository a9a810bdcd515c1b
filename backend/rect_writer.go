package backend

// RectWriter is an optional optimization for bulk rectangle updates.
// The cells slice is row-major with the given stride between rows,
// so a sub-rectangle of a larger grid can be written without copying.
type RectWriter interface {
	SetRect(x, y, width, height int, cells []Cell, stride int)
}
