package driver

import "strings"

func isValidDriverID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// Транспорт хранится свободной строкой ("Toyota Prius - ABC123"),
// валидируем только непустоту.
func isValidVehicle(vehicle string) bool {
	return strings.TrimSpace(vehicle) != ""
}

func isValidRating(rating float64) bool {
	return rating >= 0 && rating <= 5
}

func isValidStatus(status string) bool {
	switch status {
	case "available", "busy", "offline":
		return true
	default:
		return false
	}
}
