// Package predicate provides named boolean checks over string input.
//
// Predicates are looked up by name (for example "isEmail" or "isUUID") and are
// used by the validator's type constraint. A Registry maps names to Func values
// and is safe for concurrent use; Default returns the shared registry that comes
// pre-filled with the built-in predicates:
//
//	isAscii, isBase64, isBoolean, isCreditCard, isCurrency, isDataURI,
//	isDecimal, isEmail, isFloat, isHexColor, isHexadecimal, isIP, isInt,
//	isJSON, isMACAddress, isNumeric, isURL, isUUID
//
// Register adds application specific checks:
//
//	predicate.Register("isSlug", func(s string) bool {
//		return slugRegex.MatchString(s)
//	})
//
// Every built-in predicate answers false for an empty string. Callers that treat
// empty values as "not provided" must check for emptiness before calling.
package predicate
