package chainblast

// Ledger keeps the score of one game.
type Ledger struct {
	base, step, factor int

	total       int
	nextPowerup int
	maxChain    int

	powerups  int
	destroyed int
	livesLost int
}

// LedgerStats is a snapshot of a ledger for the end-of-game summary.
type LedgerStats struct {
	Total     int
	MaxChain  int
	Powerups  int
	Destroyed int
	LivesLost int
}

// NewLedger creates a ledger. Powerups are worth base points, then step more
// for each one collected until the player loses a life. Every link added to
// a chain is worth its position times chainFactor.
func NewLedger(base, step, chainFactor int) *Ledger {
	return &Ledger{
		base:        base,
		step:        step,
		factor:      chainFactor,
		nextPowerup: base,
	}
}

// AddPowerup awards the current powerup value and raises it.
// It returns the points awarded.
func (l *Ledger) AddPowerup() int {
	points := l.nextPowerup
	l.total += points
	l.nextPowerup += l.step
	l.powerups++
	return points
}

// AddChain scores the latest explosion of c.
func (l *Ledger) AddChain(c *Chain) {
	size := c.Size()
	l.total += size * l.factor
	if size > l.maxChain {
		l.maxChain = size
	}
	if size > 0 {
		l.destroyed++
	}
}

// OnPlayerDeath resets the powerup value.
func (l *Ledger) OnPlayerDeath() {
	l.nextPowerup = l.base
	l.livesLost++
}

// Total returns the score.
func (l *Ledger) Total() int {
	return l.total
}

// MaxChain returns the longest chain seen this game.
func (l *Ledger) MaxChain() int {
	return l.maxChain
}

// Stats returns a snapshot of the ledger.
func (l *Ledger) Stats() LedgerStats {
	return LedgerStats{
		Total:     l.total,
		MaxChain:  l.maxChain,
		Powerups:  l.powerups,
		Destroyed: l.destroyed,
		LivesLost: l.livesLost,
	}
}
