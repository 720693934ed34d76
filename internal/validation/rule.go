package validation

// Record maps field names to scalar values (string or bool).
type Record map[string]any

// Get returns the value stored under field. Absent fields read as "".
func (r Record) Get(field string) any {
	if v, ok := r[field]; ok && v != nil {
		return v
	}
	return ""
}

// Predicate reports whether a field value satisfies a rule.
type Predicate func(value any) bool

// Rule names.
const (
	RuleRequired = "required"
	RuleEmail    = "email"
	RuleIn       = "in"
)

// Rule binds a predicate to a field and the message reported when it fails.
type Rule struct {
	// Field is the record key the rule inspects.
	Field string
	// Name identifies the kind of check, e.g. RuleRequired.
	Name string
	// Check is evaluated against the field's value.
	Check Predicate
	// Message is recorded for Field when Check returns false.
	Message string
}

// Required is the required-ness rule for text fields: blank strings, absent
// values and non-string values fail.
func Required(field, message string) Rule {
	return Rule{Field: field, Name: RuleRequired, Check: NonEmpty, Message: message}
}

// RequiredTrue is the required-ness rule for boolean consent fields: only
// the boolean true passes.
func RequiredTrue(field, message string) Rule {
	return Rule{Field: field, Name: RuleRequired, Check: IsTrue, Message: message}
}

// Email fails values not shaped like local@domain.tld.
func Email(field, message string) Rule {
	return Rule{Field: field, Name: RuleEmail, Check: EmailFormat, Message: message}
}

// In fails values outside allowed (exact, case-sensitive).
func In(field, message string, allowed ...string) Rule {
	return Rule{Field: field, Name: RuleIn, Check: OneOf(allowed...), Message: message}
}

// RuleSet is an ordered rule table.
type RuleSet []Rule

// Fields returns the distinct fields in first-declaration order.
func (rs RuleSet) Fields() []string {
	seen := make(map[string]bool, len(rs))
	var fields []string
	for _, r := range rs {
		if !seen[r.Field] {
			seen[r.Field] = true
			fields = append(fields, r.Field)
		}
	}
	return fields
}

// For returns the rules declared for field, in order.
func (rs RuleSet) For(field string) RuleSet {
	var out RuleSet
	for _, r := range rs {
		if r.Field == field {
			out = append(out, r)
		}
	}
	return out
}

// Validate evaluates rules against rec. The first failing rule per field
// wins; later rules for that field are not evaluated.
func Validate(rec Record, rules RuleSet) Result {
	result := Result{}
	for _, rule := range rules {
		if _, failed := result[rule.Field]; failed {
			continue
		}
		if !safeCheck(rule.Check, rec.Get(rule.Field)) {
			result[rule.Field] = rule.Message
		}
	}
	return result
}

// safeCheck treats a nil or panicking predicate as a failure.
func safeCheck(check Predicate, value any) (ok bool) {
	if check == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return check(value)
}
