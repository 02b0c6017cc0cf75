package ports

import (
	"sheetex/domain/tabular"
)

// FrameDecoder turns raw file bytes into an in-memory tabular frame.
// Implementations dispatch on the file extension and must read every cell
// as a string, leaving null handling to the projector.
type FrameDecoder interface {
	Decode(content []byte, extension string) (*tabular.Frame, error)
}
