package clientservice

// ClientCard модель клиента из ClientService
type ClientCard struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"is_active"`
}
