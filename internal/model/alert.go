package model

import "time"

type AlertEvent struct {
	ID        string
	RiskScore float64
	Manual    bool
	SentAt    time.Time
}
