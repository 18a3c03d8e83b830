package models

import "time"

// AuthToken is the opaque key handed out on a successful credential exchange.
// There is at most one token per employee.
type AuthToken struct {
	Key        string    `json:"key"`
	EmployeeID int       `json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
