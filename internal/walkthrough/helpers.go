package walkthrough

// EchoValue returns d unchanged.
func EchoValue(d uint32) uint32 {
	return d
}

// Box is a plain width/height pair.
type Box struct {
	Width  uint32
	Height uint32
}

func (b Box) IsSquare() bool {
	return b.Width == b.Height
}
