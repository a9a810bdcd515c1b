package backend

// RowWriter is an optional optimization for bulk row updates.
// Cells with a zero Rune are skipped.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}
