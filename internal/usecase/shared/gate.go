package shared

import "sync"

// OperationGate lets one state-changing parking operation run at a time.
type OperationGate struct {
	mu sync.Mutex
}

func NewOperationGate() *OperationGate {
	return &OperationGate{}
}

func (g *OperationGate) Do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
