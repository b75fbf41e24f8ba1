// Package event defines the tagged redraw-event variants the UI state
// machine consumes, and decodes them from the generic values the RPC
// codec hands back for each "redraw" batch element.
//
// Field-level wire contracts for individual variants are out of scope per
// the decode boundary described in the design overview: this package
// trusts that each params tuple already decoded from MessagePack into
// plain Go values (int64, float64, string, bool, []interface{},
// map[string]interface{}) and only reshapes those into typed structs.
package event

import "fmt"

// Args is a positional cursor over one event's decoded parameter tuple,
// mirroring the "pull the next value and convert it" idiom used to parse
// fixed-shape MessagePack arrays.
type Args struct {
	values []interface{}
	pos    int
}

// NewArgs wraps a decoded parameter tuple for positional reads.
func NewArgs(values []interface{}) *Args {
	return &Args{values: values}
}

func (a *Args) next() (interface{}, bool) {
	if a.pos >= len(a.values) {
		return nil, false
	}
	v := a.values[a.pos]
	a.pos++
	return v, true
}

// Remaining returns values not yet consumed.
func (a *Args) Remaining() []interface{} {
	if a.pos >= len(a.values) {
		return nil
	}
	return a.values[a.pos:]
}

// Int reads the next value as an integer (MessagePack ints decode as
// int64, but some sources yield float64; both are accepted).
func (a *Args) Int() (int, error) {
	v, ok := a.next()
	if !ok {
		return 0, fmt.Errorf("event: expected int, got end of args")
	}
	return toInt(v)
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("event: expected int, got %T", v)
	}
}

// String reads the next value as a string.
func (a *Args) String() (string, error) {
	v, ok := a.next()
	if !ok {
		return "", fmt.Errorf("event: expected string, got end of args")
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("event: expected string, got %T", v)
	}
	return s, nil
}

// Bool reads the next value as a bool.
func (a *Args) Bool() (bool, error) {
	v, ok := a.next()
	if !ok {
		return false, fmt.Errorf("event: expected bool, got end of args")
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("event: expected bool, got %T", v)
	}
	return b, nil
}

// Float reads the next value as a float64.
func (a *Args) Float() (float64, error) {
	v, ok := a.next()
	if !ok {
		return 0, fmt.Errorf("event: expected float, got end of args")
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("event: expected float, got %T", v)
	}
}

// Any reads the next value without conversion.
func (a *Args) Any() (interface{}, error) {
	v, ok := a.next()
	if !ok {
		return nil, fmt.Errorf("event: expected value, got end of args")
	}
	return v, nil
}

// Array reads the next value as a []interface{}.
func (a *Args) Array() ([]interface{}, error) {
	v, ok := a.next()
	if !ok {
		return nil, fmt.Errorf("event: expected array, got end of args")
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("event: expected array, got %T", v)
	}
	return arr, nil
}

// Map reads the next value as a map[string]interface{}.
func (a *Args) Map() (map[string]interface{}, error) {
	v, ok := a.next()
	if !ok {
		return nil, fmt.Errorf("event: expected map, got end of args")
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("event: expected map, got %T", v)
	}
	return m, nil
}

// OptInt reads the next value as *int, treating -1 or absence as nil --
// the "positive integer with -1 sentinel" convention used by several
// events (e.g. win_float_pos's anchor_grid).
func (a *Args) OptInt() (*int, error) {
	if len(a.Remaining()) == 0 {
		return nil, nil
	}
	n, err := a.Int()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, nil
	}
	return &n, nil
}
