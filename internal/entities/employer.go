package entities

// Employer mirrors the JSON shape persisted under the simple_employers key.
// The collection has no UI-reachable write path but stays part of the
// persisted layout.
type Employer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company"`
	CompanyLogo string `json:"companyLogo,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Website     string `json:"website,omitempty"`
}
