package login

import "time"

// LoginRequest HTTP request model
type LoginRequest struct {
	Supplier string `json:"supplier"`
	Secret   string `json:"secret"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token        string   `json:"token"`
	SupplierID   string   `json:"supplierId"`
	PrimaryEmail string   `json:"primaryEmail,omitempty"`
	CCEmails     []string `json:"ccEmails,omitempty"`
	ExpiresAt    string   `json:"expiresAt"`
}

// formatExpiry форматирует срок жизни сессии для ответа
func formatExpiry(t time.Time) string {
	return t.Format(time.RFC3339)
}
