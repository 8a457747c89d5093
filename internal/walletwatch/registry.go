package walletwatch

import "sync"

// registry maps wallet ids to their running poller.
type registry struct {
	mu      sync.Mutex
	pollers map[int64]*poller
}

func newRegistry() *registry {
	return &registry{pollers: make(map[int64]*poller)}
}

// add registers p unless its wallet already has a poller.
func (r *registry) add(p *poller) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pollers[p.target.WalletID]; ok {
		return false
	}

	r.pollers[p.target.WalletID] = p
	return true
}

// remove drops p only if it is still the registered poller for its wallet.
func (r *registry) remove(p *poller) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.pollers[p.target.WalletID]; ok && current == p {
		delete(r.pollers, p.target.WalletID)
	}
}

// take removes and returns the poller of walletID, or nil.
func (r *registry) take(walletID int64) *poller {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pollers[walletID]
	if !ok {
		return nil
	}

	delete(r.pollers, walletID)
	return p
}

// drain empties the registry and returns what it held.
func (r *registry) drain() []*poller {
	r.mu.Lock()
	defer r.mu.Unlock()

	pollers := make([]*poller, 0, len(r.pollers))
	for id, p := range r.pollers {
		pollers = append(pollers, p)
		delete(r.pollers, id)
	}

	return pollers
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pollers)
}
