package core

// Style is the brightness attribute of a drawn cell.
type Style uint8

// Brightness levels supported by the renderer.
const (
	StyleNormal Style = iota
	StyleDim
	StyleBold
)

// String returns a human-readable name for the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleDim:
		return "dim"
	case StyleBold:
		return "bold"
	default:
		return "unknown"
	}
}
