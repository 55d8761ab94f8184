package gemini

import "dispatch/internal/entities"

// candidateView то, что модель видит про водителя. Телефоны и имена
// в промпт не попадают.
type candidateView struct {
	ID       string  `json:"id"`
	Vehicle  string  `json:"vehicle"`
	Rating   float64 `json:"rating"`
	Location string  `json:"location"`
}

type rideView struct {
	PickupAddress  string  `json:"pickup_address"`
	DropoffAddress string  `json:"dropoff_address"`
	Priority       string  `json:"priority"`
	Notes          *string `json:"notes"`
}

type suggestionResponse struct {
	DriverID  string `json:"driver_id"`
	Reasoning string `json:"reasoning"`
}

type draftResponse struct {
	CustomerName   string  `json:"customer_name"`
	PickupAddress  string  `json:"pickup_address"`
	DropoffAddress string  `json:"dropoff_address"`
	Priority       string  `json:"priority"`
	Notes          *string `json:"notes"`
}

func toCandidateViews(drivers []entities.Driver) []candidateView {
	views := make([]candidateView, 0, len(drivers))
	for _, driverEntity := range drivers {
		views = append(views, candidateView{
			ID:       driverEntity.ID,
			Vehicle:  driverEntity.VehicleType,
			Rating:   driverEntity.Rating,
			Location: driverEntity.Location.Address,
		})
	}
	return views
}

func toRideView(rideEntity entities.Ride) rideView {
	return rideView{
		PickupAddress:  rideEntity.Pickup.Address,
		DropoffAddress: rideEntity.Dropoff.Address,
		Priority:       rideEntity.Priority.String(),
		Notes:          rideEntity.Notes,
	}
}

func toSuggestionDomain(resp *suggestionResponse) *entities.DriverSuggestion {
	if resp == nil {
		return nil
	}
	return &entities.DriverSuggestion{
		DriverID:  resp.DriverID,
		Reasoning: resp.Reasoning,
	}
}

func toDraftDomain(resp *draftResponse) *entities.RideDraft {
	if resp == nil {
		return nil
	}
	return &entities.RideDraft{
		CustomerName:   resp.CustomerName,
		PickupAddress:  resp.PickupAddress,
		DropoffAddress: resp.DropoffAddress,
		Priority:       entities.RidePriorityType(resp.Priority),
		Notes:          resp.Notes,
	}
}
