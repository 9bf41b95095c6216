package slicer

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/games/slicer/sim"
)

// logCues writes audio cues to the debug log. The terminal has no mixer, so
// the log stands in for the sound board.
type logCues struct {
	logger *log.Logger
}

func (l logCues) Cue(c sim.Cue) {
	if c.Kind == sim.CueCombo {
		l.logger.Debug("cue", "kind", c.Kind, "count", c.Count)
		return
	}
	l.logger.Debug("cue", "kind", c.Kind)
}

// gameCues logs every cue and asks the host for a bell on detonation.
type gameCues struct {
	g   *Game
	log logCues
}

func (c gameCues) Cue(cue sim.Cue) {
	if cue.Kind == sim.CueHazard {
		c.g.bell = true
	}
	c.log.Cue(cue)
}
