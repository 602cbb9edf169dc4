package coerce

import "strings"

// Kind is a scalar conversion target.
type Kind uint8

const (
	Invalid Kind = iota
	Integer
	Float
	String
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	default:
		return "Invalid"
	}
}

var kindNames = map[string]Kind{
	"integer": Integer,
	"int":     Integer,
	"float":   Float,
	"double":  Float,
	"string":  String,
	"str":     String,
	"boolean": Boolean,
	"bool":    Boolean,
}

// ParseKind maps a kind name or one of its aliases (int, bool, double, str)
// to a Kind, ignoring case.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}
