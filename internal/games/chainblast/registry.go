package chainblast

import "fmt"

// Registry owns the live entity population. Entities added during an update
// wait in a pending queue until the next one.
type Registry struct {
	live    []Entity
	pending []Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		live:    make([]Entity, 0, 64),
		pending: make([]Entity, 0, 16),
	}
}

// Add queues e. It becomes live at the start of the next Update.
func (r *Registry) Add(e Entity) {
	if e.Kind() == KindPlayer {
		panic("chainblast: player cannot be added to the registry")
	}
	r.pending = append(r.pending, e)
}

// Update makes pending entities live, advances every live entity, drops the
// ones flagged for removal and resolves explosion hits.
func (r *Registry) Update(w *World) {
	r.flush()

	n := 0
	for _, e := range r.live {
		if e.MarkedForRemoval() {
			continue
		}
		e.Update(w)
		if e.MarkedForRemoval() {
			continue
		}
		r.live[n] = e
		n++
	}
	clear(r.live[n:])
	r.live = r.live[:n]

	r.collide()
}

// flush moves pending entities into the live list. Explosions go to the
// front so they are drawn underneath everything else.
func (r *Registry) flush() {
	if len(r.pending) == 0 {
		return
	}

	merged := make([]Entity, 0, len(r.live)+len(r.pending))
	for i := len(r.pending) - 1; i >= 0; i-- {
		if r.pending[i].Kind() == KindExplosion {
			merged = append(merged, r.pending[i])
		}
	}
	merged = append(merged, r.live...)
	for _, e := range r.pending {
		if e.Kind() != KindExplosion {
			merged = append(merged, e)
		}
	}

	r.live = merged
	clear(r.pending)
	r.pending = r.pending[:0]
}

// collide checks every live explosion against every live obstacle.
func (r *Registry) collide() {
	for _, a := range r.live {
		ex, ok := a.(*Explosion)
		if !ok {
			continue
		}
		for _, b := range r.live {
			strike(ex, b)
		}
	}
}

func strike(ex *Explosion, e Entity) {
	switch t := e.(type) {
	case *Obstacle:
		if Collides(ex, t) {
			t.StruckBy(ex)
		}
	case *Explosion, *Powerup, *Text:
	default:
		panic(fmt.Sprintf("chainblast: explosion cannot strike %T", e))
	}
}

// DrawAll draws live entities in order.
func (r *Registry) DrawAll(s Surface) {
	for _, e := range r.live {
		e.Draw(s)
	}
}

// Each calls fn for every live entity not flagged for removal until fn
// returns false.
func (r *Registry) Each(fn func(Entity) bool) {
	for _, e := range r.live {
		if e.MarkedForRemoval() {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Count returns the number of live entities of kind k.
func (r *Registry) Count(k Kind) int {
	n := 0
	for _, e := range r.live {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// Reset drops every entity, live and pending.
func (r *Registry) Reset() {
	clear(r.live)
	r.live = r.live[:0]
	clear(r.pending)
	r.pending = r.pending[:0]
}

// Len returns the number of live entities.
func (r *Registry) Len() int { return len(r.live) }

// Pending returns the number of queued entities.
func (r *Registry) Pending() int { return len(r.pending) }
