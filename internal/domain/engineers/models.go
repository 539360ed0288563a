package engineers

import "time"

type Engineer struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	CurrentRole    string     `json:"currentRole"`
	CurrentLevel   string     `json:"currentLevel"`
	Department     string     `json:"department"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	TimeInRole     *int       `json:"timeInRole,omitempty"`
	LastYearRating string     `json:"lastYearRating"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Profile holds the editable fields of an engineer. TimeInRole is in months.
type Profile struct {
	FirstName      string     `json:"firstName" validate:"required,max=100"`
	LastName       string     `json:"lastName" validate:"required,max=100"`
	Email          string     `json:"email" validate:"required,email,max=254"`
	CurrentRole    string     `json:"currentRole" validate:"required,max=100"`
	CurrentLevel   string     `json:"currentLevel" validate:"required,max=50"`
	Department     string     `json:"department" validate:"max=100"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	TimeInRole     *int       `json:"timeInRole,omitempty" validate:"omitempty,gte=0"`
	LastYearRating string     `json:"lastYearRating" validate:"max=50"`
}
