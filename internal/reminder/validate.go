package reminder

import (
	"math"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"bloodconnect/pkg/types"
)

var phoneReg = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)

const (
	minNameLength  = 2
	minPhoneLength = 10
)

// Validate checks every request field and reports all failures at once.
// now decides what "today" is for the donation date check.
func Validate(req *types.ReminderRequest, now time.Time) error {
	errs := types.NewValidationError()

	if req == nil {
		errs.Add("request", "Reminder request is required.")
		return errs
	}

	if len([]rune(strings.TrimSpace(req.DonorName))) < minNameLength {
		errs.Add("donorName", "Donor name is required.")
	}

	if !ValidEmail(req.DonorEmail) {
		errs.Add("donorEmail", "Invalid email address.")
	}

	phone := strings.TrimSpace(req.DonorPhone)
	if len(phone) < minPhoneLength {
		errs.Add("donorPhone", "Invalid phone number.")
	} else if !ValidPhone(phone) {
		errs.Add("donorPhone", "Invalid phone number format.")
	}

	if msg := validateDonationDate(req.LastDonationDate, now); msg != "" {
		errs.Add("lastDonationDate", msg)
	}

	if !req.BloodType.Valid() {
		errs.Add("bloodType", "Please select a valid blood type.")
	}

	if req.DaysSinceLastDonation < 0 {
		errs.Add("daysSinceLastDonation", "Days since last donation cannot be negative.")
	}

	return errs.OrNil()
}

// ValidEmail accepts a single bare address with a local part and a domain.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}

// ValidPhone accepts at least ten characters of digits, spaces, dashes and
// parentheses with an optional leading "+".
func ValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	return len(phone) >= minPhoneLength && phoneReg.MatchString(phone)
}

func validateDonationDate(value string, now time.Time) string {
	if strings.TrimSpace(value) == "" {
		return "Last donation date is required."
	}

	date, err := ParseDate(value, now.Location())
	if err != nil {
		return "Last donation date must be a valid date (YYYY-MM-DD)."
	}

	if date.After(startOfDay(now)) {
		return "Last donation date cannot be in the future."
	}

	if date.Before(time.Date(1900, time.January, 1, 0, 0, 0, 0, date.Location())) {
		return "Last donation date cannot be before 1900-01-01."
	}

	return ""
}

// ParseDate parses an ISO calendar date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(value), loc)
}

// DaysSince counts whole calendar days between date and now's date.
func DaysSince(date, now time.Time) int {
	today := startOfDay(now)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location())
	return int(math.Round(today.Sub(d).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
