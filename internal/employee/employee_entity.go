package employee

import "time"

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Employee struct {
	ID             string
	EmployeeNumber string
	Name           string
	Email          string
	Phone          string
	Position       string
	Department     string
	JoinDate       time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
