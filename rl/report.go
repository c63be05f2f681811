package rl

// Report accumulates named metrics over an episode, preserving the
// order in which keys were registered.
type Report struct {
	keys   []string
	values map[string]float64
}

// NewReport creates a Report with the given metric keys.
func NewReport(keys ...string) *Report {
	values := make(map[string]float64, len(keys))
	for _, k := range keys {
		values[k] = 0
	}
	return &Report{keys: keys, values: values}
}

// Add accumulates a value into a metric. Unknown keys are registered
// on first use.
func (r *Report) Add(key string, v float64) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] += v
}

// Get returns the current value of a metric.
func (r *Report) Get(key string) float64 {
	return r.values[key]
}

// Keys returns the metric keys in registration order.
func (r *Report) Keys() []string {
	return r.keys
}

// Take returns the accumulated values and resets every metric to zero
// for the next episode.
func (r *Report) Take() map[string]float64 {
	out := r.values
	r.values = make(map[string]float64, len(r.keys))
	for _, k := range r.keys {
		r.values[k] = 0
	}
	return out
}
