// Package schemafile loads validator schemas from YAML (or JSON) documents.
//
// A document declares schemas in order; a schema may extend one declared
// before it:
//
//	schemas:
//	  - name: person
//	    fields:
//	      - name: name
//	        rules:
//	          - required: true
//	          - lengths: [2, 32]
//	            before: trim
//	      - name: age
//	        rules:
//	          - max: 130
//	            message: "age looks wrong"
//	  - name: employee
//	    extends: person
//	    fields:
//	      - name: email
//	        rules:
//	          - type: isEmail
//
// Rule keys are the constraint names (required, max, min, pattern, lengths,
// type) plus message, before and custom. Keys inside a rule keep their order
// from the file, which is the order the constraints are checked in.
//
// before names a transform: trim, lower, upper, squish, digits, strip-html,
// email, number, or one added with WithTransform. custom names a function registered with WithCustom.
// Anything the loader cannot resolve is reported as an error wrapping one of
// the package's sentinel errors, with the line it was found on.
package schemafile
