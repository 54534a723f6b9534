package config

import "testing"

// SetCoreCounter replaces the physical core counter for the duration of t.
func SetCoreCounter(t testing.TB, fn func(logical bool) (int, error)) {
	t.Helper()
	old := countCores
	countCores = fn
	t.Cleanup(func() { countCores = old })
}
