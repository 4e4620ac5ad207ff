package entity

import "time"

// Customer representa un cliente final de la agencia.
type Customer struct {
	ID           string
	EnterpriseID string
	FullName     string
	Phone        string
	Email        string
	CreatedAt    time.Time
}
