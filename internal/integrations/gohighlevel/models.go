package gohighlevel

// BookingContact is the booking summary pushed to the CRM after a confirmed
// deposit
type BookingContact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	RoomID        string
	RoomName      string
	EngineerName  string
	BookingDate   string // YYYY-MM-DD
	BookingTime   string // HH:MM
	DurationHours int
	TotalPrice    float64
	DepositPaid   float64
	Remaining     float64
	PaymentID     string
	ProjectType   string
	Message       string
}

// contactPayload is the wire format for the contacts upsert endpoint.
// Booking details ride in custom fields plus the tag list.
type contactPayload struct {
	LocationID   string            `json:"locationId"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName,omitempty"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Tags         []string          `json:"tags"`
	Source       string            `json:"source"`
	CustomFields map[string]string `json:"customFields"`
}

// errorResponse is the CRM error body
type errorResponse struct {
	Message string `json:"message"`
}
