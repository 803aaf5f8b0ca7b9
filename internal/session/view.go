package session

import (
	"context"

	"github.com/robalobadob/versequest/internal/game"
	"github.com/robalobadob/versequest/internal/verses"
)

// Action names used by front ends; Actions in a View lists those valid now.
const (
	ActionStart     = "start"
	ActionLevel     = "level"
	ActionMode      = "mode"
	ActionBack      = "back"
	ActionHome      = "home"
	ActionQuit      = "quit"
	ActionPlayAgain = "play-again"
	ActionNextLevel = "next-level"
	ActionMenu      = "menu"
)

// SectionInfo is a section summary for menus.
type SectionInfo struct {
	Label      string `json:"label"`
	StartVerse int    `json:"startVerse"`
	EndVerse   int    `json:"endVerse"`
	VerseCount int    `json:"verseCount"`
}

// ModeInfo is a mode entry for menus.
type ModeInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// View is the serializable state of the controller.
type View struct {
	Screen      Screen         `json:"screen"`
	Actions     []string       `json:"actions"`
	Sections    []SectionInfo  `json:"sections,omitempty"`
	Section     string         `json:"section,omitempty"`
	Modes       []ModeInfo     `json:"modes,omitempty"`
	Mode        string         `json:"mode,omitempty"`
	SessionID   string         `json:"sessionId,omitempty"`
	Game        *game.Snapshot `json:"game,omitempty"`
	Score       int            `json:"score"`
	Best        int            `json:"best,omitempty"`
	IsLastLevel bool           `json:"isLastLevel,omitempty"`
}

// Summarize builds the menu entry for s.
func Summarize(s verses.Section) SectionInfo {
	return SectionInfo{
		Label:      s.Label,
		StartVerse: s.StartVerse,
		EndVerse:   s.EndVerse,
		VerseCount: len(s.Verses),
	}
}

// Sections summarizes the library.
func (c *Controller) Sections() []SectionInfo {
	list := c.lib.Sections()
	out := make([]SectionInfo, len(list))
	for i, s := range list {
		out[i] = Summarize(s)
	}
	return out
}

func modeInfos() []ModeInfo {
	var out []ModeInfo
	for _, m := range game.Modes() {
		out = append(out, ModeInfo{Name: m.String(), Title: m.Title()})
	}
	return out
}

// View renders the current state.
func (c *Controller) View() View {
	switch s := c.state.(type) {
	case LevelSelect:
		return View{
			Screen:   s.Screen(),
			Actions:  []string{ActionLevel, ActionBack, ActionHome},
			Sections: c.Sections(),
		}
	case ModeSelect:
		return View{
			Screen:  s.Screen(),
			Actions: []string{ActionMode, ActionBack, ActionHome},
			Section: s.Section.Label,
			Modes:   modeInfos(),
		}
	case Playing:
		snap := s.Engine.Snapshot()
		return View{
			Screen:    s.Screen(),
			Actions:   []string{ActionQuit, ActionHome},
			Section:   s.Section.Label,
			Mode:      s.Mode.String(),
			SessionID: s.SessionID,
			Game:      &snap,
			Score:     snap.Score,
		}
	case GameOver:
		v := View{
			Screen:      s.Screen(),
			Section:     s.Section.Label,
			Mode:        s.Mode.String(),
			SessionID:   s.SessionID,
			Score:       s.Score,
			IsLastLevel: s.IsLastLevel,
		}
		v.Actions = []string{ActionPlayAgain}
		if !s.IsLastLevel {
			v.Actions = append(v.Actions, ActionNextLevel)
		}
		v.Actions = append(v.Actions, ActionMenu, ActionHome)
		if c.results != nil {
			if best, ok, err := c.results.Best(context.Background(), s.Section.Label, s.Mode); err == nil && ok {
				v.Best = best.Score
			}
		}
		return v
	default:
		return View{Screen: ScreenWelcome, Actions: []string{ActionStart}}
	}
}
