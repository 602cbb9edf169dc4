package access

// Strategy identifies how a path was resolved.
type Strategy uint8

const (
	// StrategyNone means nothing resolved the path.
	StrategyNone Strategy = iota
	// StrategyOverride is a Func path callback.
	StrategyOverride
	// StrategyAccessor covers map keys, slice indexes, accessor methods and
	// exported fields.
	StrategyAccessor
	// StrategyReflection reads or writes unexported struct fields. Only used
	// when WithReflection is given.
	StrategyReflection
)

func (s Strategy) String() string {
	switch s {
	case StrategyOverride:
		return "override"
	case StrategyAccessor:
		return "accessor"
	case StrategyReflection:
		return "reflection"
	default:
		return "none"
	}
}

// Resolution is the outcome of resolving a path once.
type Resolution struct {
	Strategy Strategy
	Value    any
	Err      error
}

// OK reports whether the path resolved.
func (r Resolution) OK() bool {
	return r.Err == nil
}
