package domain

// Backend status codes and their display forms. The backend stores "Y"/"N";
// the console surface speaks "active"/"inactive".
const (
	StatusActive   = "Y"
	StatusInactive = "N"

	StatusDisplayActive   = "active"
	StatusDisplayInactive = "inactive"
)

// StatusToDisplay maps a backend status code to its display form.
// Anything other than "Y" is treated as inactive.
func StatusToDisplay(status string) string {
	if status == StatusActive {
		return StatusDisplayActive
	}
	return StatusDisplayInactive
}

// StatusToBackend maps a display status to the backend code.
// Anything other than "active" is treated as "N".
func StatusToBackend(display string) string {
	if display == StatusDisplayActive {
		return StatusActive
	}
	return StatusInactive
}

// CreateCompanyForm is the console-side create payload before shaping.
// Optional fields are carried as plain strings; empty means unset.
type CreateCompanyForm struct {
	CompanyName   string          `json:"company_name"`
	Name          string          `json:"name"`
	CompanyID     string          `json:"company_id"`
	PICName       string          `json:"pic_name"`
	PICEmail      string          `json:"pic_email"`
	PICPhone      string          `json:"pic_phone"`
	Notes         string          `json:"notes"`
	ContractStart string          `json:"contract_start"`
	ContractEnd   string          `json:"contract_end"`
	Scopes        map[string]bool `json:"scopes"`
}
