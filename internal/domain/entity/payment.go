package entity

import "time"

// Payment representa un pago registrado para una agencia. Solo se consume en
// agregaciones del dashboard; no hay rutas de escritura directa.
type Payment struct {
	ID           string
	EnterpriseID string
	AmountCents  int64
	Method       string // cash, card, transfer
	PaidAt       time.Time
}
