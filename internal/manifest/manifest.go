package manifest

// Manifest describes the frames written by one generation run
type Manifest struct {
	Version string  `yaml:"version"`
	Mode    string  `yaml:"mode"`
	Source  string  `yaml:"source"`
	Offset  int     `yaml:"offset"`
	Frames  []Frame `yaml:"frames"`
}

// Frame is one written file
type Frame struct {
	Index  int    `yaml:"index"`
	File   string `yaml:"file"`
	Angle  int    `yaml:"angle"` // Clockwise degrees
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// BySize groups frames by their target size, keeping generation order.
func (m *Manifest) BySize(width, height int) []Frame {
	var out []Frame
	for _, f := range m.Frames {
		if f.Width == width && f.Height == height {
			out = append(out, f)
		}
	}
	return out
}
