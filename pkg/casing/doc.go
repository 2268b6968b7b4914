// Package casing converts word sequences into identifier casings.
//
// Input words may already be joined in any common style (camelCase, PascalCase,
// snake_case, kebab-case or space separated); they are split on separators and
// case boundaries before being reassembled:
//
//	casing.Camel("validateError", "age")        // "validateErrorAge"
//	casing.Camel("validateError", "first_name") // "validateErrorFirstName"
//	casing.Camel("validateError", "HTTPPort")   // "validateErrorHttpPort"
//
// Title casing goes through golang.org/x/text/cases so non-ASCII letters are
// handled with the Unicode rules of the language-neutral tag.
package casing
