package export

import "sync"

// State is the export state of one format within one scope.
type State uint8

// Export states.
const (
	Idle State = iota
	InProgress
)

func (s State) String() string {
	if s == InProgress {
		return "in-progress"
	}
	return "idle"
}

type guardKey struct {
	scope  string
	format Format
}

// Guard tracks in-flight exports per scope and format. A scope is whatever
// identifies one client; single-user callers use "". The zero value is not
// usable, create one with NewGuard.
type Guard struct {
	active map[guardKey]struct{}
	mu     sync.Mutex
}

// NewGuard returns a guard with every format Idle.
func NewGuard() *Guard {
	return &Guard{active: make(map[guardKey]struct{})}
}

// Begin moves (scope, f) from Idle to InProgress. It returns
// ErrExportInProgress when the pair is already InProgress.
func (g *Guard) Begin(scope string, f Format) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := guardKey{scope: scope, format: f}
	if _, busy := g.active[k]; busy {
		return ErrExportInProgress
	}
	g.active[k] = struct{}{}
	return nil
}

// End moves (scope, f) back to Idle. It is safe to call for an Idle pair.
func (g *Guard) End(scope string, f Format) {
	g.mu.Lock()
	delete(g.active, guardKey{scope: scope, format: f})
	g.mu.Unlock()
}

// State reports the current state of (scope, f).
func (g *Guard) State(scope string, f Format) State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[guardKey{scope: scope, format: f}]; busy {
		return InProgress
	}
	return Idle
}

// Active returns the number of in-flight exports.
func (g *Guard) Active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.active)
}
