package application

import (
	"slices"
	"sync"
	"time"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
)

const DefaultSettleGrace = 1000 * time.Millisecond

type AnimationState string

const (
	AnimationIdle     AnimationState = "idle"
	AnimationRunning  AnimationState = "running"
	AnimationSettling AnimationState = "settling"
)

const (
	labelSettledFR = "Recherche terminée"
	labelSettledEN = "Research complete"
)

// Progress is a snapshot of the research timeline. Current is -1 before the
// first step fires.
type Progress struct {
	Epoch   uint64
	State   AnimationState
	Steps   []domain.ResearchStep
	Label   string
	Current int
}

// ProgressAnimator plays the source catalog schedule for one request at a
// time. Every run has an epoch; timers from older epochs do nothing.
type ProgressAnimator struct {
	clock ports.Clock
	grace time.Duration

	mu              sync.Mutex
	epoch           uint64
	state           AnimationState
	steps           []domain.ResearchStep
	label           string
	current         int
	language        string
	scheduleDone    bool
	settleRequested bool
	timers          []ports.Timer
	observers       []func(Progress)
}

func NewProgressAnimator(clock ports.Clock, grace time.Duration) *ProgressAnimator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if grace <= 0 {
		grace = DefaultSettleGrace
	}

	return &ProgressAnimator{clock: clock, grace: grace, state: AnimationIdle, current: -1}
}

// OnChange registers fn to receive a snapshot after every transition.
// Observers run outside the animator lock.
func (a *ProgressAnimator) OnChange(fn func(Progress)) {
	if fn == nil {
		return
	}

	a.mu.Lock()
	a.observers = append(a.observers, fn)
	a.mu.Unlock()
}

// Start resets the animator for a new request and returns its epoch.
func (a *ProgressAnimator) Start(mode domain.SearchMode, language string) uint64 {
	entries := domain.EntriesFor(mode)

	a.mu.Lock()
	a.stopTimersLocked()
	a.epoch++
	epoch := a.epoch
	a.state = AnimationRunning
	a.steps = make([]domain.ResearchStep, len(entries))
	for i, entry := range entries {
		a.steps[i] = domain.ResearchStep{Name: entry.Name, Icon: entry.Icon, Status: domain.StepPending}
	}
	a.label = ""
	a.current = -1
	a.language = language
	a.scheduleDone = len(entries) == 0
	a.settleRequested = false

	for i, entry := range entries {
		index := i
		a.timers = append(a.timers, a.clock.AfterFunc(entry.Delay, func() {
			a.advance(epoch, index)
		}))
	}
	a.mu.Unlock()

	a.notify()
	return epoch
}

// Settle marks the request for epoch as finished. When the schedule is
// still playing, completion waits for its last step.
func (a *ProgressAnimator) Settle(epoch uint64) {
	a.mu.Lock()
	if epoch != a.epoch || a.state != AnimationRunning {
		a.mu.Unlock()
		return
	}

	a.settleRequested = true
	if !a.scheduleDone {
		a.mu.Unlock()
		return
	}
	a.completeLocked(epoch)
	a.mu.Unlock()

	a.notify()
}

// Stop drops any run in progress and returns to idle.
func (a *ProgressAnimator) Stop() {
	a.mu.Lock()
	a.stopTimersLocked()
	a.epoch++
	a.resetLocked()
	a.mu.Unlock()

	a.notify()
}

func (a *ProgressAnimator) Snapshot() Progress {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.snapshotLocked()
}

func (a *ProgressAnimator) advance(epoch uint64, index int) {
	a.mu.Lock()
	if epoch != a.epoch || a.state != AnimationRunning || index >= len(a.steps) {
		a.mu.Unlock()
		return
	}

	for j := 0; j < index; j++ {
		a.steps[j].Status = domain.StepDone
	}
	a.steps[index].Status = domain.StepSearching
	a.current = index
	a.label = a.steps[index].Name

	if index == len(a.steps)-1 {
		a.scheduleDone = true
		if a.settleRequested {
			a.completeLocked(epoch)
		}
	}
	a.mu.Unlock()

	a.notify()
}

func (a *ProgressAnimator) clear(epoch uint64) {
	a.mu.Lock()
	if epoch != a.epoch || a.state != AnimationSettling {
		a.mu.Unlock()
		return
	}
	a.timers = nil
	a.resetLocked()
	a.mu.Unlock()

	a.notify()
}

func (a *ProgressAnimator) completeLocked(epoch uint64) {
	for i := range a.steps {
		a.steps[i].Status = domain.StepDone
	}
	a.state = AnimationSettling
	a.label = settledLabel(a.language)
	a.timers = append(a.timers, a.clock.AfterFunc(a.grace, func() {
		a.clear(epoch)
	}))
}

func (a *ProgressAnimator) resetLocked() {
	a.state = AnimationIdle
	a.steps = nil
	a.label = ""
	a.current = -1
	a.scheduleDone = false
	a.settleRequested = false
}

func (a *ProgressAnimator) stopTimersLocked() {
	for _, timer := range a.timers {
		timer.Stop()
	}
	a.timers = nil
}

func (a *ProgressAnimator) snapshotLocked() Progress {
	return Progress{
		Epoch:   a.epoch,
		State:   a.state,
		Steps:   append([]domain.ResearchStep(nil), a.steps...),
		Label:   a.label,
		Current: a.current,
	}
}

func (a *ProgressAnimator) notify() {
	a.mu.Lock()
	snapshot := a.snapshotLocked()
	observers := slices.Clone(a.observers)
	a.mu.Unlock()

	for _, observer := range observers {
		observer(snapshot)
	}
}

func settledLabel(language string) string {
	if language == "fr" {
		return labelSettledFR
	}
	return labelSettledEN
}
