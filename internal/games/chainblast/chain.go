package chainblast

// Chain links the explosions of one cascade. The first explosion of a chain
// is the player's own and is worth nothing, so the count starts at -1.
type Chain struct {
	count  int
	ledger *Ledger
}

// NewChain starts an empty chain that reports to l. l may be nil.
func NewChain(l *Ledger) *Chain {
	return &Chain{count: -1, ledger: l}
}

// AddExplosion adds one explosion to the chain and scores it.
func (c *Chain) AddExplosion() {
	c.count++
	if c.ledger != nil {
		c.ledger.AddChain(c)
	}
}

// Size returns the number of explosions after the first.
func (c *Chain) Size() int {
	return c.count
}
