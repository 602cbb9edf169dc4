package access

import (
	"fmt"
	"strings"
)

// Path addresses a member of a container. It is one of Expr or Func.
type Path interface {
	String() string
	isPath()
}

// Expr is a structured path such as "[a][b]", "user.email" or "items[0].id".
// Bracketed segments may contain dots; bare segments are separated by dots.
type Expr string

func (e Expr) String() string { return string(e) }
func (Expr) isPath()          {}

// Func is a path backed by callbacks. Get is required for reads and Set for
// writes; a nil callback makes the matching operation fail with
// ErrInvalidPath.
type Func struct {
	Name string
	Get  func(container any) (any, error)
	Set  func(container any, value any) error
}

func (f Func) String() string {
	if f.Name != "" {
		return f.Name
	}
	return "func"
}

func (Func) isPath() {}

// Getter wraps a single get-closure into a Func path.
func Getter(name string, get func(container any) (any, error)) Func {
	return Func{Name: name, Get: get}
}

// Segment is one step of a parsed Expr.
type Segment struct {
	Key string
	// Bracketed is true for "[key]" segments.
	Bracketed bool
}

func (s Segment) String() string {
	if s.Bracketed {
		return "[" + s.Key + "]"
	}
	return s.Key
}

// ParsePath splits an expression into segments. Get and Set apply it to bare
// expressions only when the container is a struct.
//
//	ParsePath("[a][b]")        // a, b
//	ParsePath("items[0].name") // items, 0, name
//	ParsePath("[a.b]")         // a.b
func ParsePath(expr string) ([]Segment, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidPath)
	}

	var segs []Segment
	for i := 0; i < len(expr); {
		switch expr[i] {
		case '[':
			end := strings.IndexByte(expr[i+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated bracket in %q", ErrInvalidPath, expr)
			}
			key := expr[i+1 : i+1+end]
			if key == "" {
				return nil, fmt.Errorf("%w: empty brackets in %q", ErrInvalidPath, expr)
			}
			if strings.IndexByte(key, '[') >= 0 {
				return nil, fmt.Errorf("%w: nested bracket in %q", ErrInvalidPath, expr)
			}
			segs = append(segs, Segment{Key: key, Bracketed: true})
			i += end + 2
			if i == len(expr) || expr[i] == '[' {
				continue
			}
			if expr[i] != '.' {
				return nil, fmt.Errorf("%w: missing dot after %q in %q", ErrInvalidPath, "["+key+"]", expr)
			}
			i++
			if i == len(expr) {
				return nil, fmt.Errorf("%w: trailing dot in %q", ErrInvalidPath, expr)
			}
		case '.', ']':
			return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrInvalidPath, expr[i], i, expr)
		default:
			end := strings.IndexAny(expr[i:], ".[]")
			if end < 0 {
				end = len(expr) - i
			}
			segs = append(segs, Segment{Key: expr[i : i+end]})
			i += end
			if i < len(expr) && expr[i] == '.' {
				i++
				if i == len(expr) {
					return nil, fmt.Errorf("%w: trailing dot in %q", ErrInvalidPath, expr)
				}
			}
		}
	}
	return segs, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(expr string) []Segment {
	segs, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}
	return segs
}
