package models

import (
	"errors"
	"strings"
)

// ConnectionStatus is the connection state of a trading account
type ConnectionStatus string

const (
	ConnectionStatusConnected    ConnectionStatus = "Connected"
	ConnectionStatusDisconnected ConnectionStatus = "Disconnected"
	ConnectionStatusError        ConnectionStatus = "Error"
	ConnectionStatusPending      ConnectionStatus = "Pending"
)

var ErrInvalidConnectionStatus = errors.New("invalid connection status")

// StatusClass is the semantic classification of a status string, independent of how it is rendered
type StatusClass string

const (
	StatusClassActive   StatusClass = "active"
	StatusClassInactive StatusClass = "inactive"
	StatusClassError    StatusClass = "error"
	StatusClassPending  StatusClass = "pending"
	StatusClassUnknown  StatusClass = "unknown"
)

// IsValidConnectionStatus checks the status against the known connection states, ignoring case
func IsValidConnectionStatus(status string) bool {
	_, ok := ParseConnectionStatus(status)
	return ok
}

// ParseConnectionStatus returns the canonical connection status for s
func ParseConnectionStatus(s string) (ConnectionStatus, bool) {
	for _, cs := range []ConnectionStatus{
		ConnectionStatusConnected,
		ConnectionStatusDisconnected,
		ConnectionStatusError,
		ConnectionStatusPending,
	} {
		if strings.EqualFold(strings.TrimSpace(s), string(cs)) {
			return cs, true
		}
	}
	return "", false
}

// ClassifyStatus maps a CSP or trading account status string to its semantic class.
// Both vocabularies in use are understood: connection states (Connected, Disconnected, ...)
// and CSP lifecycle states (active, inactive, ...).
func ClassifyStatus(status string) StatusClass {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "connected", "active", "online", "running":
		return StatusClassActive
	case "disconnected", "inactive", "offline", "stopped", "disabled":
		return StatusClassInactive
	case "error", "failed", "invalid":
		return StatusClassError
	case "pending", "connecting", "syncing":
		return StatusClassPending
	default:
		return StatusClassUnknown
	}
}

// ToggledConnectionStatus returns the status a toggle moves the account to:
// Connected goes to Disconnected, everything else goes to Connected.
func ToggledConnectionStatus(current string) ConnectionStatus {
	if cs, ok := ParseConnectionStatus(current); ok && cs == ConnectionStatusConnected {
		return ConnectionStatusDisconnected
	}
	return ConnectionStatusConnected
}
