package registration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/munconf/internal/validation"
)

func filled() validation.Record {
	return Registration{
		FirstName:        "Ana",
		LastName:         "Lee",
		Email:            "ana.lee@school.edu",
		Phone:            "555-0100",
		School:           "Central High",
		Grade:            "11",
		Experience:       "intermediate",
		Committee1:       "unsc",
		EmergencyContact: "Mia Lee",
		EmergencyPhone:   "555-0199",
		Agreement:        true,
	}.Record()
}

func TestValidate_Filled(t *testing.T) {
	res := Validate(filled())
	assert.True(t, res.Valid(), "unexpected violations: %v", res)
}

func TestValidate_MixedFailures(t *testing.T) {
	rec := filled()
	rec[FieldFirstName] = ""
	rec[FieldEmail] = "bad-email"
	rec[FieldAgreement] = false

	res := Validate(rec)

	assert.Equal(t, validation.Result{
		FieldFirstName: "First name is required",
		FieldEmail:     "Invalid email address",
		FieldAgreement: "You must agree to the terms",
	}, res)
	assert.False(t, res.Has(FieldLastName))
}

func TestValidate_EmptyRecord(t *testing.T) {
	res := Validate(validation.Record{})

	// Every required field reports its required message, email included.
	assert.Len(t, res, 11)
	assert.Equal(t, "Email is required", res[FieldEmail])
	assert.Equal(t, "You must agree to the terms", res[FieldAgreement])
	assert.False(t, res.Has(FieldCommittee2))
	assert.False(t, res.Has(FieldCommittee3))
	assert.False(t, res.Has(FieldDietaryRestrictions))
}

func TestValidate_WhitespaceIsBlank(t *testing.T) {
	rec := filled()
	rec[FieldSchool] = "   \t"
	res := Validate(rec)
	assert.Equal(t, validation.Result{FieldSchool: "School name is required"}, res)
}

func TestValidate_AgreementMustBeBool(t *testing.T) {
	rec := filled()
	rec[FieldAgreement] = "true"
	res := Validate(rec)
	assert.Equal(t, "You must agree to the terms", res[FieldAgreement])
}

func TestRules_OneRequiredRulePerField(t *testing.T) {
	counts := map[string]int{}
	for _, r := range Rules {
		if r.Name == validation.RuleRequired {
			counts[r.Field]++
		}
	}
	for field, n := range counts {
		assert.Equal(t, 1, n, "field %s", field)
	}
	assert.Len(t, counts, 11)
}

func TestRules_FieldsAreKnown(t *testing.T) {
	for _, field := range Rules.Fields() {
		assert.Contains(t, Fields, field)
	}
}

func TestValidateNewsletter(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "valid", email: "a@b.co", want: ""},
		{name: "blank", email: "  ", want: "Email is required"},
		{name: "malformed", email: "a@b", want: "Invalid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateNewsletter(tt.email)
			assert.Equal(t, tt.want, res[FieldEmail])
		})
	}
}

func TestSubmit(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))

	receipt, res := Submit(filled(), now)

	require.True(t, res.Valid())
	assert.NotEqual(t, uuid.Nil, receipt.ID)
	assert.Equal(t, now.UTC(), receipt.SubmittedAt)
	assert.Equal(t, "Ana Lee", receipt.Name)
	assert.Equal(t, "ana.lee@school.edu", receipt.Email)
	assert.Equal(t, "unsc", receipt.Committee)
	assert.Contains(t, receipt.String(), receipt.ID.String())
}

func TestSubmit_Invalid(t *testing.T) {
	rec := filled()
	delete(rec, FieldCommittee1)

	receipt, res := Submit(rec, time.Now())

	assert.Equal(t, Receipt{}, receipt)
	assert.Equal(t, validation.Result{FieldCommittee1: "First choice is required"}, res)
}

func TestSubscribe(t *testing.T) {
	msg, res := Subscribe("delegate@example.org")
	assert.True(t, res.Valid())
	assert.Equal(t, SubscribedMessage, msg)

	msg, res = Subscribe("nope")
	assert.Empty(t, msg)
	assert.Equal(t, "Invalid email address", res[FieldEmail])
}
