// Package validate implements form-level validation for company records:
// required fields, email shape, phone normalization and contract date
// ordering. Messages are fixed strings the console UI displays verbatim.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tigaron/partner-admin/internal/console/domain"
)

// Display messages for form validation.
const (
	MsgCompanyNameRequired = "Company Name is required."
	MsgPICNameRequired     = "PIC Name is required."
	MsgPICEmailRequired    = "PIC Email is required."
	MsgPICEmailInvalid     = "PIC Email is invalid."
	MsgPhoneTooLong        = "Phone number must be maximum 13 digits"
	MsgContractOrder       = "Contract end date must be after start date"
)

// MaxPhoneDigits is the longest accepted phone number after normalization.
const MaxPhoneDigits = 13

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps form field names to display messages.
type FieldErrors map[string]string

// NormalizePhone strips every non-digit character from a phone number.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// CompanyForm validates a create/edit form. It returns the form with
// whitespace trimmed and the phone normalized, plus any field errors.
// Contract ordering is only checked when both dates parse.
func CompanyForm(f domain.CreateCompanyForm) (domain.CreateCompanyForm, FieldErrors) {
	errs := FieldErrors{}

	f.CompanyName = strings.TrimSpace(f.CompanyName)
	f.CompanyID = strings.TrimSpace(f.CompanyID)
	f.PICName = strings.TrimSpace(f.PICName)
	f.PICEmail = strings.TrimSpace(f.PICEmail)
	f.PICPhone = NormalizePhone(f.PICPhone)

	if f.CompanyName == "" {
		errs["company_name"] = MsgCompanyNameRequired
	}
	if f.PICName == "" {
		errs["pic_name"] = MsgPICNameRequired
	}

	switch {
	case f.PICEmail == "":
		errs["pic_email"] = MsgPICEmailRequired
	case !ValidEmail(f.PICEmail):
		errs["pic_email"] = MsgPICEmailInvalid
	}

	if len(f.PICPhone) > MaxPhoneDigits {
		errs["pic_phone"] = MsgPhoneTooLong
	}

	if f.ContractStart != "" && f.ContractEnd != "" {
		start, errStart := time.Parse("2006-01-02", f.ContractStart)
		end, errEnd := time.Parse("2006-01-02", f.ContractEnd)
		if errStart == nil && errEnd == nil && start.After(end) {
			errs["contract_end"] = MsgContractOrder
		}
	}

	if len(errs) == 0 {
		return f, nil
	}
	return f, errs
}

// MissingRequired returns the proxy-level error for the first missing
// required create field, or "" when all are present. These messages match
// the backend's field naming rather than the display form.
func MissingRequired(f domain.CreateCompanyForm) string {
	if strings.TrimSpace(f.CompanyName) == "" {
		return fmt.Sprintf("%s is required", "company_name")
	}
	if strings.TrimSpace(f.PICName) == "" {
		return fmt.Sprintf("%s is required", "pic_name")
	}
	if strings.TrimSpace(f.PICEmail) == "" {
		return fmt.Sprintf("%s is required", "pic_email")
	}
	return ""
}
