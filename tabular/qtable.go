// Package tabular implements agents that learn a table of state-action
// values, for environments with discrete state and action spaces.
package tabular

import (
	"math"

	"github.com/benbaarber/rl/util"
)

// QTable is a string-keyed table of state-action values that can be
// saved to and loaded from disk for offline inspection.
type QTable struct {
	table map[string]map[string]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
	}
}

// Get returns the value of a state-action pair, registering def if the
// pair has not been seen.
func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	if _, ok := q.table[state][action]; !ok {
		q.table[state][action] = def
	}
	return q.table[state][action]
}

// Set overwrites the value of a state-action pair.
func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

// MaxAmong returns the best action among the given candidates for a
// state and its value, registering def for unseen pairs.
func (q *QTable) MaxAmong(state string, actions []string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for _, a := range actions {
		if _, ok := q.table[state][a]; !ok {
			q.table[state][a] = def
		}
		if val := q.table[state][a]; val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}

// Record saves the table as JSON.
func (q *QTable) Record(path string) error {
	return util.SaveJSON(path, q.table)
}

// Read loads a table previously saved with Record.
func (q *QTable) Read(path string) error {
	return util.LoadJSON(path, &q.table)
}
