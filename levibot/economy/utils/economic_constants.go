package utils

import "time"

// Transaction Constants
const (
	DefaultTxTimeout = 30 * time.Second // Default transaction timeout
	MaxTxRetries     = 3                // Retries for serialization failures
	RetryBackoff     = 50 * time.Millisecond
)

// Pack and reward Constants
const (
	MinCardLevel = 1 // Level of every newly granted card
	StarterExp   = 0
)
