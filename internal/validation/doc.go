// Package validation evaluates declarative per-field rule tables against
// records.
//
// A [RuleSet] is an ordered list of [Rule] values, each naming a field, a
// [Predicate] over that field's value and the message to report when the
// predicate fails. [Validate] walks the table in declaration order and keeps
// the first failing message per field; once a field has a message its later
// rules are skipped.
//
//	rules := validation.RuleSet{
//		validation.Required("email", "Email is required"),
//		validation.Email("email", "Invalid email address"),
//	}
//	result := validation.Validate(validation.Record{"email": "nope"}, rules)
//	// result == Result{"email": "Invalid email address"}
//
// Validation failures are data. Validate never returns an error and never
// panics: absent fields read as the empty string and values of the wrong
// type fail whatever predicate inspects them.
//
// [Reporter] renders a Result as colored text or JSON for the CLI.
package validation
