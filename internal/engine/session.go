package engine

import (
	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/core"
)

// State is a screen of the session flow.
type State int

const (
	StateMenu State = iota
	StateCharacterSelect
	StateDifficultySelect
	StateRunning
	StateRunOver
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateCharacterSelect:
		return "character_select"
	case StateDifficultySelect:
		return "difficulty_select"
	case StateRunning:
		return "running"
	case StateRunOver:
		return "run_over"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Session holds the flow state and everything that outlives a single run.
type Session struct {
	State      State
	Character  catalog.CharacterID
	Difficulty catalog.DifficultyID
	Score      int
	HighScore  int
	GameSpeed  int
	FrameCount int
	NightMode  bool

	best      map[catalog.DifficultyID]int
	committed bool // Current run already committed its scores
}

func newSession(cat *catalog.Catalog) Session {
	s := Session{
		State: StateMenu,
		best:  make(map[catalog.DifficultyID]int, cat.NumDifficulties()),
	}
	for _, d := range cat.Difficulties() {
		s.best[d.ID] = d.BestScore
	}
	return s
}

// BestScore returns the best committed score for a difficulty.
func (s *Session) BestScore(id catalog.DifficultyID) int {
	return s.best[id]
}

// navigate applies a menu-level intent and returns the next state. It
// only changes selections; run setup and teardown belong to the caller.
// Intents that mean nothing in the current state leave it unchanged.
func (s *Session) navigate(in core.Intent, cat *catalog.Catalog) State {
	switch s.State {
	case StateMenu:
		switch in {
		case core.IntentConfirm:
			return StateCharacterSelect
		case core.IntentCancel:
			return StateTerminated
		}

	case StateCharacterSelect:
		switch in {
		case core.IntentMoveLeft:
			s.Character = cat.CycleCharacter(s.Character, -1)
		case core.IntentMoveRight:
			s.Character = cat.CycleCharacter(s.Character, 1)
		case core.IntentConfirm:
			return StateDifficultySelect
		case core.IntentCancel:
			return StateMenu
		}

	case StateDifficultySelect:
		switch in {
		case core.IntentMoveLeft:
			s.Difficulty = cat.CycleDifficulty(s.Difficulty, -1)
		case core.IntentMoveRight:
			s.Difficulty = cat.CycleDifficulty(s.Difficulty, 1)
		case core.IntentConfirm:
			return StateRunning
		case core.IntentCancel:
			return StateCharacterSelect
		}

	case StateRunning:
		if in == core.IntentCancel {
			return StateMenu
		}

	case StateRunOver:
		switch in {
		case core.IntentConfirm:
			return StateMenu
		case core.IntentCancel:
			return StateTerminated
		}
	}
	return s.State
}

// commit records the current run's score once. Abandoned runs only take
// part in the high score comparison.
func (s *Session) commit(abandoned bool) RunResult {
	res := RunResult{
		Character:  s.Character,
		Difficulty: s.Difficulty,
		Score:      s.Score,
		Frames:     s.FrameCount,
		Abandoned:  abandoned,
	}
	if !s.committed {
		s.committed = true
		if s.Score > s.HighScore {
			s.HighScore = s.Score
			res.NewRecord = true
		}
		if !abandoned && s.Score > s.best[s.Difficulty] {
			s.best[s.Difficulty] = s.Score
		}
	}
	res.HighScore = s.HighScore
	res.BestScore = s.best[s.Difficulty]
	return res
}
