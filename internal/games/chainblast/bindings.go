package chainblast

import (
	"sync/atomic"

	"github.com/vovakirdan/chainblast/internal/core"
)

// binding reacts to one key event.
type binding func(g *Game, ev core.KeyEvent)

// bindingSet is the input table installed by a phase. Keys without an entry
// go to anyKey, presses only.
type bindingSet struct {
	keys   map[core.Action]binding
	anyKey binding
}

func (s *bindingSet) handle(g *Game, ev core.KeyEvent) {
	if b, ok := s.keys[ev.Action]; ok {
		b(g, ev)
		return
	}
	if s.anyKey != nil && ev.Pressed {
		s.anyKey(g, ev)
	}
}

func quit(g *Game, ev core.KeyEvent) {
	if ev.Pressed {
		g.quitReq.Store(true)
	}
}

func start(g *Game, ev core.KeyEvent) {
	if ev.Pressed {
		g.post(cmdStart)
	}
}

func hold(flag func(g *Game) *atomic.Bool) binding {
	return func(g *Game, ev core.KeyEvent) {
		flag(g).Store(ev.Pressed)
	}
}

var menuBindings = bindingSet{
	keys: map[core.Action]binding{
		core.ActionQuit: quit,
	},
	anyKey: start,
}

var playingBindings = bindingSet{
	keys: map[core.Action]binding{
		core.ActionUp:    hold(func(g *Game) *atomic.Bool { return &g.up }),
		core.ActionDown:  hold(func(g *Game) *atomic.Bool { return &g.down }),
		core.ActionLeft:  hold(func(g *Game) *atomic.Bool { return &g.left }),
		core.ActionRight: hold(func(g *Game) *atomic.Bool { return &g.right }),
		core.ActionExplode: func(g *Game, ev core.KeyEvent) {
			if ev.Pressed {
				g.explodeReq.Store(true)
			}
		},
		core.ActionQuit: quit,
	},
}

var endBindings = bindingSet{
	keys: map[core.Action]binding{
		core.ActionQuit: quit,
	},
	anyKey: start,
}
