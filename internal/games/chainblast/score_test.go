package chainblast

import "testing"

func TestLedgerPowerups(t *testing.T) {
	l := NewLedger(200, 200, 1)

	for i, want := range []int{200, 400, 600} {
		if got := l.AddPowerup(); got != want {
			t.Errorf("powerup %d awarded %d, want %d", i+1, got, want)
		}
	}
	if l.Total() != 1200 {
		t.Errorf("Total() = %d, want 1200", l.Total())
	}

	l.OnPlayerDeath()
	if got := l.AddPowerup(); got != 200 {
		t.Errorf("powerup after death awarded %d, want 200", got)
	}

	stats := l.Stats()
	if stats.Powerups != 4 || stats.LivesLost != 1 || stats.Total != 1400 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestLedgerChainFactor(t *testing.T) {
	l := NewLedger(200, 200, 10)
	c := NewChain(l)
	for i := 0; i < 3; i++ {
		c.AddExplosion()
	}
	// (0 + 1 + 2) * 10
	if l.Total() != 30 {
		t.Errorf("Total() = %d, want 30", l.Total())
	}
}
