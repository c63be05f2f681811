// Package exploration provides action selection policies that trade
// off exploration against exploitation.
package exploration

// Choice is the outcome of an exploration policy.
type Choice int

const (
	// Explore means take a random action.
	Explore Choice = iota
	// Exploit means take the best known action.
	Exploit
)
