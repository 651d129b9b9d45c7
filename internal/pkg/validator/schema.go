package validator

import "strings"

// Rule binds one constraint on one struct field to a message catalog id.
//
// Tag is a go-playground/validator v10 baked-in tag (required, min, max,
// email, ...); Param is its argument, empty when the tag takes none. Distinct
// rules on the same field carry their own MessageID so each failure mode can
// produce its own text.
type Rule struct {
	Field     string
	Tag       string
	Param     string
	MessageID string
}

// Schema is an ordered set of Rules for one input struct. It is pure data;
// evaluation belongs to the Executor.
type Schema []Rule

// MapRules renders the schema as per-field tag expressions in declaration
// order, the form RegisterStructValidationMapRules consumes.
func (s Schema) MapRules() map[string]string {
	exprs := make(map[string][]string)
	fields := make([]string, 0)

	for _, r := range s {
		if _, seen := exprs[r.Field]; !seen {
			fields = append(fields, r.Field)
		}

		tag := r.Tag
		if r.Param != "" {
			tag += "=" + r.Param
		}
		exprs[r.Field] = append(exprs[r.Field], tag)
	}

	rules := make(map[string]string, len(fields))
	for _, f := range fields {
		rules[f] = strings.Join(exprs[f], ",")
	}

	return rules
}

// index arranges the schema for (field, tag) -> Rule lookups.
func (s Schema) index() map[string]map[string]Rule {
	idx := make(map[string]map[string]Rule)
	for _, r := range s {
		if idx[r.Field] == nil {
			idx[r.Field] = make(map[string]Rule)
		}
		idx[r.Field][r.Tag] = r
	}
	return idx
}

// Violation records one constraint failing for one field.
type Violation struct {
	// Field is the failing field in snake_case.
	Field string
	// MessageID references the message catalog entry for this failure.
	MessageID string
	// Fallback is untranslated default text used when the catalog has no
	// template for MessageID.
	Fallback string
}

// Violations is the ordered result of one validation run. It implements
// error so usecases can return it directly.
type Violations []Violation

// Error implements the error interface.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Field+": "+v.Fallback)
	}
	return strings.Join(parts, "; ")
}
