package session

import "github.com/abhisek/articlequest/internal/bank"

// DefaultRoundsPerSession is the number of rounds when Config leaves it unset.
const DefaultRoundsPerSession = 10

// ErrInvalidConfiguration is returned by Start when the session cannot be
// built from the given bank and options.
var ErrInvalidConfiguration = bank.ErrInvalidConfiguration

// Config controls how a session is built.
type Config struct {
	// RoundsPerSession is the number of questions in one playthrough.
	// Zero means DefaultRoundsPerSession. Must not exceed the bank size.
	RoundsPerSession int

	// RandomSeed makes question sampling deterministic when set.
	// Restart continues the same random stream, so a restarted session
	// still gets a new order.
	RandomSeed *uint64
}

// DefaultConfig returns the standard ten-round, randomly seeded config.
func DefaultConfig() Config {
	return Config{RoundsPerSession: DefaultRoundsPerSession}
}

// WithSeed returns a copy of c with RandomSeed set.
func (c Config) WithSeed(seed uint64) Config {
	c.RandomSeed = &seed
	return c
}

func (c Config) rounds() int {
	if c.RoundsPerSession == 0 {
		return DefaultRoundsPerSession
	}
	return c.RoundsPerSession
}
