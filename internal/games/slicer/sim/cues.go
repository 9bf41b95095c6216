package sim

// CueKind identifies a sound-worthy moment.
type CueKind int

const (
	CueSlice CueKind = iota
	CueCombo
	CueHazard
	CueFreeze
	CueThrow
)

func (k CueKind) String() string {
	switch k {
	case CueSlice:
		return "slice"
	case CueCombo:
		return "combo"
	case CueHazard:
		return "hazard"
	case CueFreeze:
		return "freeze"
	case CueThrow:
		return "throw"
	default:
		return "unknown"
	}
}

// Cue is one audio event. Count is set for CueCombo.
type Cue struct {
	Kind  CueKind
	Count int
}

// Cues receives audio events. Implementations must not block.
type Cues interface {
	Cue(c Cue)
}

// CueFunc adapts a function to Cues.
type CueFunc func(Cue)

// Cue calls f(c).
func (f CueFunc) Cue(c Cue) { f(c) }

// CueRecorder keeps every cue it receives.
type CueRecorder struct {
	Cues []Cue
}

// Cue records c.
func (r *CueRecorder) Cue(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Count returns how many cues of kind k were recorded.
func (r *CueRecorder) Count(k CueKind) int {
	n := 0
	for _, c := range r.Cues {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Reset forgets all recorded cues.
func (r *CueRecorder) Reset() {
	r.Cues = r.Cues[:0]
}

type noCues struct{}

func (noCues) Cue(Cue) {}
