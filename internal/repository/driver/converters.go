package driver

import "dispatch/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		VehicleType: d.VehicleType,
		Rating:      d.Rating,
		Location: entities.Location{
			Lat:     d.LocationLat,
			Lng:     d.LocationLng,
			Address: d.LocationAddress,
		},
		Status:        entities.DriverStatusType(d.Status),
		CurrentRideID: d.CurrentRideID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func FromDomain(d *entities.Driver) *DriverDB {
	if d == nil {
		return nil
	}
	return &DriverDB{
		ID:              d.ID,
		Name:            d.Name,
		Phone:           d.Phone,
		VehicleType:     d.VehicleType,
		Rating:          d.Rating,
		LocationLat:     d.Location.Lat,
		LocationLng:     d.Location.Lng,
		LocationAddress: d.Location.Address,
		Status:          d.Status.String(),
		CurrentRideID:   d.CurrentRideID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func FromDomainModify(d *entities.DriverModify) *DriverModifyDB {
	if d == nil {
		return nil
	}
	driverModifyDB := &DriverModifyDB{}

	if d.ID != nil {
		driverModifyDB.ID = d.ID
	}
	if d.Name != nil {
		driverModifyDB.Name = d.Name
	}
	if d.Phone != nil {
		driverModifyDB.Phone = d.Phone
	}
	if d.VehicleType != nil {
		driverModifyDB.VehicleType = d.VehicleType
	}
	if d.Rating != nil {
		driverModifyDB.Rating = d.Rating
	}
	if d.Location != nil {
		driverModifyDB.LocationLat = &d.Location.Lat
		driverModifyDB.LocationLng = &d.Location.Lng
		driverModifyDB.LocationAddress = &d.Location.Address
	}
	if d.Status != nil {
		status := d.Status.String()
		driverModifyDB.Status = &status
	}
	if d.CurrentRideID != nil {
		driverModifyDB.CurrentRideID = d.CurrentRideID
	}

	return driverModifyDB
}

func ToDomainList(driverModels []DriverDB) []entities.Driver {
	driverEntities := make([]entities.Driver, 0, len(driverModels))
	for i := range driverModels {
		driverEntities = append(driverEntities, *ToDomain(&driverModels[i]))
	}
	return driverEntities
}
