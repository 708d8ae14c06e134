package chainblast

import "testing"

func TestChainSize(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		c := NewChain(nil)
		for i := 0; i < n; i++ {
			c.AddExplosion()
		}
		if c.Size() != n-1 {
			t.Errorf("chain of %d explosions has size %d, want %d", n, c.Size(), n-1)
		}
	}
}

func TestChainScoresEveryLink(t *testing.T) {
	l := NewLedger(200, 200, 1)
	c := NewChain(l)
	for i := 0; i < 4; i++ {
		c.AddExplosion()
	}

	// 0 + 1 + 2 + 3
	if l.Total() != 6 {
		t.Errorf("Total() = %d, want 6", l.Total())
	}
	if l.MaxChain() != 3 {
		t.Errorf("MaxChain() = %d, want 3", l.MaxChain())
	}
	if got := l.Stats().Destroyed; got != 3 {
		t.Errorf("Destroyed = %d, want 3", got)
	}
}

func TestChainsAreIndependent(t *testing.T) {
	l := NewLedger(200, 200, 1)
	a, b := NewChain(l), NewChain(l)
	a.AddExplosion()
	a.AddExplosion()
	b.AddExplosion()

	if a.Size() != 1 || b.Size() != 0 {
		t.Errorf("sizes = %d, %d, want 1, 0", a.Size(), b.Size())
	}
	if l.MaxChain() != 1 {
		t.Errorf("MaxChain() = %d, want 1", l.MaxChain())
	}
}
