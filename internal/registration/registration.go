// Package registration defines the conference registration record, the rule
// table the registration form enforces and the newsletter sign-up rules.
//
// Records usually arrive as files (YAML, TOML or JSON) decoded by [Decode];
// [Registration] is the typed form used when building a record in code.
// Submission is simulated: [Submit] validates and returns a [Receipt]
// without storing anything.
package registration

import (
	"github.com/thoreinstein/munconf/internal/validation"
)

// Registration form field names.
const (
	FieldFirstName           = "firstName"
	FieldLastName            = "lastName"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldSchool              = "school"
	FieldGrade               = "grade"
	FieldExperience          = "experience"
	FieldCommittee1          = "committee1"
	FieldCommittee2          = "committee2"
	FieldCommittee3          = "committee3"
	FieldDietaryRestrictions = "dietaryRestrictions"
	FieldEmergencyContact    = "emergencyContact"
	FieldEmergencyPhone      = "emergencyPhone"
	FieldAgreement           = "agreement"
)

// Registration is one delegate's form submission.
type Registration struct {
	FirstName           string `json:"firstName" yaml:"firstName" toml:"firstName"`
	LastName            string `json:"lastName" yaml:"lastName" toml:"lastName"`
	Email               string `json:"email" yaml:"email" toml:"email"`
	Phone               string `json:"phone" yaml:"phone" toml:"phone"`
	School              string `json:"school" yaml:"school" toml:"school"`
	Grade               string `json:"grade" yaml:"grade" toml:"grade"`
	Experience          string `json:"experience" yaml:"experience" toml:"experience"`
	Committee1          string `json:"committee1" yaml:"committee1" toml:"committee1"`
	Committee2          string `json:"committee2" yaml:"committee2" toml:"committee2"`
	Committee3          string `json:"committee3" yaml:"committee3" toml:"committee3"`
	DietaryRestrictions string `json:"dietaryRestrictions" yaml:"dietaryRestrictions" toml:"dietaryRestrictions"`
	EmergencyContact    string `json:"emergencyContact" yaml:"emergencyContact" toml:"emergencyContact"`
	EmergencyPhone      string `json:"emergencyPhone" yaml:"emergencyPhone" toml:"emergencyPhone"`
	Agreement           bool   `json:"agreement" yaml:"agreement" toml:"agreement"`
}

// Record converts r to the generic record the rule table evaluates.
func (r Registration) Record() validation.Record {
	return validation.Record{
		FieldFirstName:           r.FirstName,
		FieldLastName:            r.LastName,
		FieldEmail:               r.Email,
		FieldPhone:               r.Phone,
		FieldSchool:              r.School,
		FieldGrade:               r.Grade,
		FieldExperience:          r.Experience,
		FieldCommittee1:          r.Committee1,
		FieldCommittee2:          r.Committee2,
		FieldCommittee3:          r.Committee3,
		FieldDietaryRestrictions: r.DietaryRestrictions,
		FieldEmergencyContact:    r.EmergencyContact,
		FieldEmergencyPhone:      r.EmergencyPhone,
		FieldAgreement:           r.Agreement,
	}
}

// Fields lists every form field in the order the form shows them.
var Fields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldSchool,
	FieldGrade,
	FieldExperience,
	FieldCommittee1,
	FieldCommittee2,
	FieldCommittee3,
	FieldDietaryRestrictions,
	FieldEmergencyContact,
	FieldEmergencyPhone,
	FieldAgreement,
}

// Rules is the registration form's rule table. committee2, committee3 and
// dietaryRestrictions are optional and carry no rules.
var Rules = validation.RuleSet{
	validation.Required(FieldFirstName, "First name is required"),
	validation.Required(FieldLastName, "Last name is required"),
	validation.Required(FieldEmail, "Email is required"),
	validation.Email(FieldEmail, "Invalid email address"),
	validation.Required(FieldPhone, "Phone number is required"),
	validation.Required(FieldSchool, "School name is required"),
	validation.Required(FieldGrade, "Grade/Year is required"),
	validation.Required(FieldExperience, "Experience level is required"),
	validation.Required(FieldCommittee1, "First choice is required"),
	validation.Required(FieldEmergencyContact, "Emergency contact is required"),
	validation.Required(FieldEmergencyPhone, "Emergency contact phone is required"),
	validation.RequiredTrue(FieldAgreement, "You must agree to the terms"),
}

// Validate checks rec against Rules.
func Validate(rec validation.Record) validation.Result {
	return validation.Validate(rec, Rules)
}

// NewsletterRules gates the footer sign-up.
var NewsletterRules = validation.RuleSet{
	validation.Required(FieldEmail, "Email is required"),
	validation.Email(FieldEmail, "Invalid email address"),
}

// ValidateNewsletter checks a newsletter sign-up address.
func ValidateNewsletter(email string) validation.Result {
	return validation.Validate(validation.Record{FieldEmail: email}, NewsletterRules)
}
