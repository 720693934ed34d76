package registration

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thoreinstein/munconf/internal/validation"
)

// Confirmation messages shown after a successful submission.
const (
	ThankYouMessage   = "Thank you for registering! We'll send you a confirmation email shortly."
	SubscribedMessage = "Subscribed!"
)

// Receipt acknowledges an accepted registration.
type Receipt struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Committee   string    `json:"committee"`
}

// String renders the receipt as a single line.
func (r Receipt) String() string {
	return fmt.Sprintf("%s  %s <%s>  %s  %s",
		r.ID, r.Name, r.Email, r.Committee, r.SubmittedAt.Format(time.RFC3339))
}

// Submit validates rec and, when it passes, issues a receipt stamped with
// now. Nothing is sent or stored. The receipt is zero when the result is
// not valid.
func Submit(rec validation.Record, now time.Time) (Receipt, validation.Result) {
	result := Validate(rec)
	if !result.Valid() {
		return Receipt{}, result
	}

	name := strings.TrimSpace(text(rec, FieldFirstName) + " " + text(rec, FieldLastName))
	return Receipt{
		ID:          uuid.New(),
		SubmittedAt: now.UTC(),
		Name:        name,
		Email:       strings.TrimSpace(text(rec, FieldEmail)),
		Committee:   text(rec, FieldCommittee1),
	}, result
}

// Subscribe validates a newsletter address. The returned message is
// SubscribedMessage on success.
func Subscribe(email string) (string, validation.Result) {
	result := ValidateNewsletter(email)
	if !result.Valid() {
		return "", result
	}
	return SubscribedMessage, result
}

func text(rec validation.Record, field string) string {
	s, _ := rec.Get(field).(string)
	return strings.TrimSpace(s)
}
