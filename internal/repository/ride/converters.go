package ride

import "dispatch/internal/entities"

func ToDomain(r *RideDB) *entities.Ride {
	if r == nil {
		return nil
	}
	return &entities.Ride{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		CustomerID:   r.CustomerID,
		StoreID:      r.StoreID,
		Pickup: entities.Location{
			Lat:     r.PickupLat,
			Lng:     r.PickupLng,
			Address: r.PickupAddress,
		},
		Dropoff: entities.Location{
			Lat:     r.DropoffLat,
			Lng:     r.DropoffLng,
			Address: r.DropoffAddress,
		},
		Status:      entities.RideStatusType(r.Status),
		DriverID:    r.DriverID,
		Price:       r.Price,
		Priority:    entities.RidePriorityType(r.Priority),
		Notes:       r.Notes,
		RequestedAt: r.RequestedAt,
		AssignedAt:  r.AssignedAt,
		CompletedAt: r.CompletedAt,
		CancelledAt: r.CancelledAt,
	}
}

func FromDomain(r *entities.Ride) *RideDB {
	if r == nil {
		return nil
	}
	return &RideDB{
		ID:             r.ID,
		CustomerName:   r.CustomerName,
		CustomerID:     r.CustomerID,
		StoreID:        r.StoreID,
		PickupLat:      r.Pickup.Lat,
		PickupLng:      r.Pickup.Lng,
		PickupAddress:  r.Pickup.Address,
		DropoffLat:     r.Dropoff.Lat,
		DropoffLng:     r.Dropoff.Lng,
		DropoffAddress: r.Dropoff.Address,
		Status:         r.Status.String(),
		DriverID:       r.DriverID,
		Price:          r.Price,
		Priority:       r.Priority.String(),
		Notes:          r.Notes,
		RequestedAt:    r.RequestedAt,
		AssignedAt:     r.AssignedAt,
		CompletedAt:    r.CompletedAt,
		CancelledAt:    r.CancelledAt,
	}
}

func ToDomainList(rideModels []RideDB) []entities.Ride {
	rideEntities := make([]entities.Ride, 0, len(rideModels))
	for i := range rideModels {
		rideEntities = append(rideEntities, *ToDomain(&rideModels[i]))
	}
	return rideEntities
}
