// Package engine implements the runner simulation: the session state
// machine, player physics, the obstacle pool and its spawn scheduler, and
// collision and scoring. A Simulation owns all mutable state and one
// seeded random source, so independent sessions can run side by side and
// a fixed seed with a fixed intent sequence replays identically.
package engine

import (
	"math/rand"

	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Simulation is one independent game session.
type Simulation struct {
	cfg config.Config
	cat *catalog.Catalog
	rng *rand.Rand

	intents   core.IntentQueue
	observers []Observer

	session Session
	body    Body
	pool    Pool
	spawner Spawner
	clouds  cloudField
}

// New creates a session in the Menu state. cfg must be valid and cat is
// usually cfg.Catalog().
func New(cfg config.Config, cat *catalog.Catalog, seed int64) *Simulation {
	s := &Simulation{
		cfg:     cfg,
		cat:     cat,
		rng:     rand.New(rand.NewSource(seed)),
		session: newSession(cat),
		pool:    NewPool(),
		spawner: NewSpawner(cfg),
		clouds:  newCloudField(cfg),
	}
	s.body = NewBody(cfg, cat.Character(s.session.Character))
	s.clouds.scatter(s.rng)
	return s
}

// Config returns the engine configuration.
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Catalog returns the profile catalog.
func (s *Simulation) Catalog() *catalog.Catalog {
	return s.cat
}

// AddObserver registers o for state transitions.
func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// RestoreScores seeds the high score and per-difficulty best scores, for
// example from persistent storage. Scores only ever go up.
func (s *Simulation) RestoreScores(high int, best map[catalog.DifficultyID]int) {
	s.session.HighScore = max(s.session.HighScore, high)
	for id, score := range best {
		if _, ok := s.cat.LookupDifficulty(id); !ok {
			continue
		}
		s.session.best[id] = max(s.session.best[id], score)
	}
}

// SubmitIntent queues an intent for the next Tick.
func (s *Simulation) SubmitIntent(in core.Intent) {
	s.intents.Push(in)
}

// Preselect moves the character and difficulty cursors from the title
// screen and returns to it, the way a player would with the arrow keys.
// It does nothing outside the Menu state.
func (s *Simulation) Preselect(character catalog.CharacterID, difficulty catalog.DifficultyID) Snapshot {
	if s.session.State != StateMenu {
		return s.CurrentSnapshot()
	}

	s.SubmitIntent(core.IntentConfirm)
	for i := wrapSteps(int(character)-int(s.session.Character), s.cat.NumCharacters()); i > 0; i-- {
		s.SubmitIntent(core.IntentMoveRight)
	}
	s.SubmitIntent(core.IntentConfirm)
	for i := wrapSteps(int(difficulty)-int(s.session.Difficulty), s.cat.NumDifficulties()); i > 0; i-- {
		s.SubmitIntent(core.IntentMoveRight)
	}
	s.SubmitIntent(core.IntentCancel)
	s.SubmitIntent(core.IntentCancel)
	return s.Tick(0)
}

func wrapSteps(delta, n int) int {
	return ((delta % n) + n) % n
}

// Done reports whether the session reached Terminated.
func (s *Simulation) Done() bool {
	return s.session.State == StateTerminated
}

// Tick drains queued intents in arrival order, then advances up to frames
// logical frames while a run is in progress. It stops early when the run
// ends.
func (s *Simulation) Tick(frames int) Snapshot {
	for _, in := range s.intents.Drain() {
		s.apply(in)
	}
	for i := 0; i < frames && s.session.State == StateRunning; i++ {
		s.step()
	}
	return s.CurrentSnapshot()
}

// apply routes one intent to the body while running, and to the state
// machine otherwise.
func (s *Simulation) apply(in core.Intent) {
	if s.session.State == StateRunning {
		switch in {
		case core.IntentJumpPressed:
			s.body.Jump()
			return
		case core.IntentDuckPressed:
			s.body.SetDucking(true)
			return
		case core.IntentDuckReleased:
			s.body.SetDucking(false)
			return
		}
	}

	if next := s.session.navigate(in, s.cat); next != s.session.State {
		s.transition(next)
	}
}

// step advances one frame: body, obstacles and scoring, spawn, clouds,
// collision, then speed progression.
func (s *Simulation) step() {
	sess := &s.session
	sess.FrameCount++

	s.body.Step()

	passed, offscreen := s.pool.Advance(sess.GameSpeed, s.body.X)
	if offscreen > 0 {
		s.spawner.Prime()
	}
	oldScore := sess.Score
	sess.Score += passed * s.cfg.Scoring.PointsPerObstacle

	s.spawner.Update(s.rng, &s.pool, sess.GameSpeed, s.cat.Difficulty(sess.Difficulty))
	s.clouds.step(s.rng)

	hit := ResolveCollisions(&s.body, &s.pool)

	sess.GameSpeed = NextSpeed(s.cfg.Scoring, sess.GameSpeed, oldScore, sess.Score)

	if hit.Fatal {
		s.transition(StateRunOver)
	}
}

func (s *Simulation) transition(to State) {
	from := s.session.State
	var run *RunResult

	switch {
	case to == StateRunning:
		s.startRun()
	case to == StateRunOver:
		res := s.session.commit(false)
		run = &res
	case from == StateRunning:
		res := s.session.commit(true)
		run = &res
	}

	s.session.State = to
	t := Transition{From: from, To: to, Run: run}
	for _, o := range s.observers {
		o.OnTransition(t)
	}
}

// startRun discards the previous run and sets up a fresh one for the
// selected character and difficulty.
func (s *Simulation) startRun() {
	ch := s.cat.Character(s.session.Character)
	diff := s.cat.Difficulty(s.session.Difficulty)

	s.body = NewBody(s.cfg, ch)
	s.pool.Reset()
	s.clouds.scatter(s.rng)
	s.spawner.Reset(s.rng, diff.ObstacleDensity)

	s.session.Score = 0
	s.session.FrameCount = 0
	s.session.GameSpeed = InitialSpeed(s.cfg.Scoring, diff.BaseGameSpeed)
	s.session.NightMode = diff.Theme.Night()
	s.session.committed = false
}

// CurrentSnapshot returns the state without advancing it.
func (s *Simulation) CurrentSnapshot() Snapshot {
	sess := &s.session
	snap := Snapshot{
		State:      sess.State,
		Character:  sess.Character,
		Difficulty: sess.Difficulty,
		Score:      sess.Score,
		HighScore:  sess.HighScore,
		BestScore:  sess.BestScore(sess.Difficulty),
		GameSpeed:  sess.GameSpeed,
		Lives:      s.body.Lives,
		FrameCount: sess.FrameCount,
		NightMode:  sess.NightMode,
		Player: PlayerPose{
			X:         s.body.X,
			Y:         int(s.body.Y),
			Width:     s.body.Width,
			Height:    s.body.Height,
			VelocityY: s.body.VelocityY,
			Jumping:   s.body.Jumping,
			Ducking:   s.body.Ducking,
		},
		Obstacles: make([]ObstaclePose, 0, s.pool.ActiveCount()),
		Clouds:    make([]CloudPose, len(s.clouds.clouds)),
	}

	s.pool.Each(func(o *Obstacle) {
		snap.Obstacles = append(snap.Obstacles, ObstaclePose{
			Slot:   o.Slot,
			Type:   o.Type,
			X:      o.X,
			Y:      o.Y,
			Width:  o.Width,
			Height: o.Height,
			Scored: o.Scored,
		})
	})
	for i, c := range s.clouds.clouds {
		snap.Clouds[i] = CloudPose{X: c.X, Y: c.Y}
	}
	return snap
}
