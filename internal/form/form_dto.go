package form

type WeekInput struct {
	StartDate string   `json:"start_date"`
	Days      []string `json:"days"`
}

type PaymentInput struct {
	Date    string   `json:"date"`
	Amount  *float64 `json:"amount"`
	Balance *float64 `json:"balance"`
}

// SignFormRequest is the guardian submission. ID is set when re-opening an
// existing fiche from its link; empty means a new fiche. The signature is
// checked in BuildSigned rather than by a binding tag so the model owns the
// validation error.
type SignFormRequest struct {
	ID              string         `json:"id"`
	Office          string         `json:"office"`
	ChildName       string         `json:"child_name"`
	ParentName      string         `json:"parent_name"`
	ProviderName    string         `json:"provider_name"`
	EndDate         string         `json:"end_date"`
	Attendance      []WeekInput    `json:"attendance"`
	Payments        []PaymentInput `json:"payments"`
	ParentSignature string         `json:"parent_signature"`
}

type FormResponse struct {
	ID                string         `json:"id"`
	Office            string         `json:"office"`
	ChildName         string         `json:"child_name"`
	ParentName        string         `json:"parent_name"`
	ProviderName      string         `json:"provider_name"`
	EndDate           string         `json:"end_date"`
	Attendance        []WeekEntry    `json:"attendance"`
	Payments          []PaymentEntry `json:"payments"`
	ParentSignature   string         `json:"parent_signature,omitempty"`
	ProviderSignature string         `json:"provider_signature,omitempty"`
	CreatedAt         string         `json:"created_at"`
	Status            string         `json:"status"`
	Signed            bool           `json:"signed"`
	SignedAt          string         `json:"signed_at,omitempty"`
}

// FormSummary is the admin list row: scalars only, no signature payloads.
type FormSummary struct {
	ID           string `json:"id"`
	ChildName    string `json:"child_name"`
	ParentName   string `json:"parent_name"`
	ProviderName string `json:"provider_name"`
	Office       string `json:"office"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	Signed       bool   `json:"signed"`
}
