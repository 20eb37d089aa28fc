package spectate

import (
	"github.com/lixenwraith/snek/render"
)

// Snapshot is the JSON view of a frame sent to spectators
type Snapshot struct {
	Phase  string   `json:"phase"`
	Score  int      `json:"score"`
	Header string   `json:"header,omitempty"`
	Banner []string `json:"banner,omitempty"`
	Lines  []string `json:"lines"`
}

// NewSnapshot flattens f into text lines
func NewSnapshot(f render.Frame) Snapshot {
	s := Snapshot{
		Phase:  f.Phase.String(),
		Score:  f.Score,
		Header: f.Header,
		Banner: f.Banner,
		Lines:  make([]string, f.Rows),
	}
	for y := 0; y < f.Rows; y++ {
		s.Lines[y] = f.Row(y)
	}
	return s
}
