// Package coerce converts loosely typed values to one of four scalar kinds:
// Integer (int), Float (float64), String (string) and Boolean (bool).
//
// The rules are strict and ordered. Textual input is trimmed before numeric and
// boolean conversion; numbers must pass a strict filter (no leading zeros, no
// trailing garbage, no NaN or infinities); booleans only accept a small set of
// literals. A value that cannot be converted is rejected with an error that
// wraps ErrRejected, so a failed conversion can never be mistaken for a
// legitimate zero value.
//
// # Rules
//
//   - String: strings pass through, booleans become "true"/"false", every other
//     value goes through github.com/spf13/cast. Values without a string form
//     (structs, maps, slices) are rejected.
//   - Boolean: "0", "false" (any case) and numeric zero are false; "true", "1",
//     "yes" and "on" (any case) are true; anything else is rejected.
//   - Integer: optional sign followed by decimal digits without leading zeros,
//     integral floats, and true (1).
//   - Float: decimal and exponent notation, any integer, and true (1.0).
//
// Coercion is idempotent: converting an already converted value to the same
// kind returns it unchanged.
//
// # Usage
//
//	v, err := coerce.To(" 42 ", coerce.Integer) // 42, nil
//	b, err := coerce.ToBool("maybe")            // false, error wrapping coerce.ErrRejected
//
//	if errors.Is(err, coerce.ErrRejected) {
//	    // bad input
//	}
package coerce
