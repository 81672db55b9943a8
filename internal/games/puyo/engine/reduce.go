package engine

import "time"

// Env is the read-only environment a reducer runs in.
type Env struct {
	Rules Rules
	Gen   *Generator
	// Now stamps high-score entries. Defaults to time.Now when nil.
	Now func() time.Time
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Reduce applies one action to a session and returns the next session together
// with the events the transition produced. Actions that do not apply to the
// current phase, and illegal moves, return the session unchanged with no events.
func Reduce(env Env, s Session, a Action) (Session, []Event) {
	r := &reducer{env: env, s: s}
	r.apply(a)
	return r.s, r.events
}

type reducer struct {
	env    Env
	s      Session
	events []Event
}

func (r *reducer) emit(ev Event) {
	r.events = append(r.events, ev)
}

func (r *reducer) setPhase(p Phase) {
	if r.s.Phase == p {
		return
	}
	r.emit(PhaseChangedEvent{From: r.s.Phase, To: p})
	r.s.Phase = p
}

func (r *reducer) live() bool {
	return (r.s.Phase == PhaseFalling || r.s.Phase == PhaseLocking) && r.s.Current != nil
}

func (r *reducer) apply(a Action) {
	switch a.Kind {
	case ActionStart:
		if r.s.Phase == PhaseIdle {
			r.newGame()
		}
	case ActionRestart:
		if r.s.Phase != PhaseIdle {
			if !r.s.Recorded {
				r.record()
			}
			r.newGame()
		}
	case ActionPause:
		r.pause()
	case ActionResume:
		r.resume()
	case ActionTogglePause:
		if r.s.Phase == PhasePaused {
			r.resume()
		} else {
			r.pause()
		}
	case ActionMoveLeft:
		r.move(-1)
	case ActionMoveRight:
		r.move(1)
	case ActionRotateCW:
		r.rotate(1)
	case ActionRotateCCW:
		r.rotate(-1)
	case ActionSoftDrop:
		r.softDrop()
	case ActionHardDrop:
		if r.live() {
			ghost := r.s.Board.Ghost(*r.s.Current)
			r.lock(ghost)
		}
	case ActionTick:
		r.tick(a.Delta)
	case ActionPopComplete:
		if r.s.Phase == PhasePopping {
			r.popComplete()
		}
	case ActionSettleComplete:
		if r.s.Phase == PhaseSettling {
			r.check()
		}
	case ActionToggleGhost:
		r.s.Settings.ShowGhost = !r.s.Settings.ShowGhost
		r.emit(SettingsChangedEvent{Settings: r.s.Settings})
	case ActionSetSFXVolume:
		r.s.Settings.SFXVolume = clampUnit(a.Volume)
		r.emit(SettingsChangedEvent{Settings: r.s.Settings})
		r.emit(VolumeChangedEvent{Volume: r.s.Settings.SFXVolume})
	}
}

// newGame resets all per-game state while carrying high scores and settings.
func (r *reducer) newGame() {
	prev := r.s.Phase
	fresh := NewSession(r.env.Rules, r.s.HighScores, r.s.Settings)
	piece := r.env.Gen.Piece()
	fresh.Current = &piece
	fresh.Next = r.env.Gen.NextPair()
	fresh.Phase = prev
	r.s = fresh
	r.setPhase(PhaseFalling)
}

func (r *reducer) pause() {
	if !r.s.Phase.Active() || r.s.Phase == PhasePaused {
		return
	}
	r.s.PrevPhase = r.s.Phase
	r.setPhase(PhasePaused)
}

func (r *reducer) resume() {
	if r.s.Phase != PhasePaused {
		return
	}
	r.setPhase(r.s.PrevPhase)
}

func (r *reducer) move(dir int) {
	if !r.live() {
		return
	}
	moved, ok := r.s.Board.TryMove(*r.s.Current, dir)
	if !ok {
		return
	}
	r.s.Current = &moved
	r.s.LockTimer = 0
	r.setPhase(PhaseFalling)
	r.emit(CueEvent{Cue: CueMove})
}

func (r *reducer) rotate(dir int) {
	if !r.live() {
		return
	}
	rotated, ok := r.s.Board.TryRotate(*r.s.Current, dir)
	if !ok {
		return
	}
	r.s.Current = &rotated
	r.s.LockTimer = 0
	r.setPhase(PhaseFalling)
}

func (r *reducer) softDrop() {
	if !r.live() || !r.s.Board.CanFallDown(*r.s.Current) {
		return
	}
	down := r.s.Current.Shift(1, 0)
	r.s.Current = &down
	r.s.DropTimer = 0
	r.setPhase(PhaseFalling)
}

func (r *reducer) tick(d time.Duration) {
	if d < 0 {
		d = 0
	}
	if !r.live() {
		return
	}

	switch r.s.Phase {
	case PhaseFalling:
		r.s.DropTimer += d
		interval := r.env.Rules.DropInterval(r.s.Level)
		if r.s.DropTimer < interval {
			return
		}
		if r.s.Board.CanFallDown(*r.s.Current) {
			down := r.s.Current.Shift(1, 0)
			r.s.Current = &down
			r.s.DropTimer -= interval
			return
		}
		r.s.DropTimer = 0
		r.s.LockTimer = 0
		r.setPhase(PhaseLocking)

	case PhaseLocking:
		if r.s.Board.CanFallDown(*r.s.Current) {
			r.s.LockTimer = 0
			r.setPhase(PhaseFalling)
			return
		}
		r.s.LockTimer += d
		if r.s.LockTimer >= r.env.Rules.LockDelay {
			r.lock(*r.s.Current)
		}
	}
}

// lock bakes the piece at its current position and enters checking.
func (r *reducer) lock(p Piece) {
	r.s.Board = r.s.Board.Place(p).ApplyGravity()
	r.s.Current = nil
	r.s.DropTimer = 0
	r.s.LockTimer = 0
	r.emit(CueEvent{Cue: CueDrop})
	r.check()
}

// check runs the chain detector. It either starts a clearing step or spawns
// the next piece.
func (r *reducer) check() {
	r.setPhase(PhaseChecking)

	rules := r.env.Rules
	groups := FindPoppableGroups(r.s.Board, rules.MinGroupSize)
	if len(groups) == 0 {
		r.s.CurrentChain = 0
		r.spawn()
		return
	}

	cells := GroupsToCells(groups)
	r.s.CurrentChain++
	step := ChainStep{
		ChainCount:  r.s.CurrentChain,
		PoppedCount: len(cells),
		ColorCount:  CountUniqueColors(groups),
	}
	gain := rules.ChainScore(step)

	r.s.Score += gain
	r.s.TotalCleared += step.PoppedCount
	r.s.Level = rules.Level(r.s.TotalCleared)
	if r.s.CurrentChain > r.s.MaxChain {
		r.s.MaxChain = r.s.CurrentChain
	}
	history := make([]ChainStep, len(r.s.ChainHistory), len(r.s.ChainHistory)+1)
	copy(history, r.s.ChainHistory)
	r.s.ChainHistory = append(history, step)
	r.s.PopCells = cells

	r.setPhase(PhasePopping)
	r.emit(ChainStepEvent{Step: step, Gain: gain, Score: r.s.Score, Level: r.s.Level})
	if step.ChainCount >= 2 {
		r.emit(CueEvent{Cue: CueChain, Chain: step.ChainCount})
	}
}

func (r *reducer) popComplete() {
	r.s.Board = r.s.Board.Pop(r.s.PopCells).ApplyGravity()
	r.s.PopCells = nil
	r.emit(CueEvent{Cue: CuePop, Chain: r.s.CurrentChain})
	r.setPhase(PhaseSettling)
}

// spawn takes the head of the queue. A blocked spawn position ends the game
// and leaves the queue as it was.
func (r *reducer) spawn() {
	piece := r.s.Next[0]
	if !r.s.Board.CanPlace(piece, 0, 0) {
		r.s.Current = nil
		r.setPhase(PhaseGameOver)
		r.emit(CueEvent{Cue: CueGameOver})
		r.record()
		return
	}

	r.s.Next = [2]Piece{r.s.Next[1], r.env.Gen.Piece()}
	r.s.Current = &piece
	r.s.DropTimer = 0
	r.s.LockTimer = 0
	r.setPhase(PhaseFalling)
}

// record merges the current game's entry into the high-score list.
func (r *reducer) record() {
	entry := HighScore{
		Score:     r.s.Score,
		Level:     r.s.Level,
		Chains:    r.s.MaxChain,
		Timestamp: r.env.now(),
	}
	r.s.HighScores = UpdateHighScores(r.s.HighScores, entry, r.env.Rules.HighScoreCount)
	r.s.Recorded = true
	r.emit(HighScoresChangedEvent{Entry: entry, HighScores: r.s.HighScores})
}
