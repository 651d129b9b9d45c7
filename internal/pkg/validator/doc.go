// Package validator provides declarative field validation for request
// structs.
//
// Constraints are declared as a Schema: plain data tuples binding a struct
// field to a go-playground/validator v10 tag and a message catalog id. A
// generic Executor evaluates the schema and reports Violations carrying the
// message id plus an untranslated fallback text; localization happens later
// at response-mapping time.
package validator
