package decorate

import "github.com/yaklabco/livemark/pkg/element"

// Oracle answers whether a span should show its raw markup instead of its
// rendered decoration, given the host's current cursor/selection state.
// Implementations must be pure: no side effects, called many times a pass.
type Oracle interface {
	ShouldReveal(from, to int, kind element.Kind) bool
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(from, to int, kind element.Kind) bool

// ShouldReveal calls f.
func (f OracleFunc) ShouldReveal(from, to int, kind element.Kind) bool {
	return f(from, to, kind)
}

// NoReveal never reveals; every element renders its formatted form.
//
//nolint:gochecknoglobals // Stateless sentinel oracle
var NoReveal Oracle = OracleFunc(func(int, int, element.Kind) bool {
	return false
})

// CursorOracle reveals spans containing a single cursor offset. The span
// edges count as inside, so clicking directly before an opening marker
// reveals the construct.
func CursorOracle(cursor int) Oracle {
	return OracleFunc(func(from, to int, _ element.Kind) bool {
		return cursor >= from && cursor <= to
	})
}
