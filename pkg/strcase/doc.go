// Package strcase provides the small set of string helpers the rest of the
// module builds on: splitting identifiers into words, converting between
// naming conventions, case-insensitive comparison of identifiers and
// human-readable joining of word lists.
//
// The helpers are stateless and safe for concurrent use. Case mapping for
// display strings goes through golang.org/x/text/cases so that multi-byte
// letters are handled correctly.
//
// # Usage
//
//	strcase.SplitWords("NotEmptyString")  // []string{"Not", "Empty", "String"}
//	strcase.ToPascalCase("first_name")    // "FirstName"
//	strcase.Humanize("NotEmptyString")    // "not empty string"
//	strcase.SameIdentifier("first_name", "FirstName") // true
//	strcase.JoinOr([]string{"null", "integer", "string"}) // "null, integer or string"
package strcase
