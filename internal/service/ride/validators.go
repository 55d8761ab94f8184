package ride

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidRideID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidDriverID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidCustomerName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidLocation(location entities.Location) bool {
	return strings.TrimSpace(location.Address) != ""
}

func isValidPriority(priority string) bool {
	switch priority {
	case "NORMAL", "HIGH", "URGENT":
		return true
	default:
		return false
	}
}
