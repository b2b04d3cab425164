package models

// VehicleStatusCounts breaks the fleet down by operational state.
type VehicleStatusCounts struct {
	Available   int `json:"available"`
	InUse       int `json:"inUse"`
	Maintenance int `json:"maintenance"`
	ServiceDue  int `json:"serviceDue"`
}

// DashboardSummary is the aggregated view composed from the vehicle,
// user, alert and maintenance collections. It is recomputed on every
// request; nothing here is cached.
type DashboardSummary struct {
	TotalVehicles       int                 `json:"totalVehicles"`
	ActiveRiders        int                 `json:"activeRiders"`
	MaintenanceDue      int                 `json:"maintenanceDue"`
	Alerts              int                 `json:"alerts"`
	VehicleStatusCounts VehicleStatusCounts `json:"vehicleStatusCounts"`
}
