package models

import "time"

// FuelReport is an append-only fuel purchase record. Amount is in
// milliliters, Cost in cents, Odometer in kilometers. ReportDate is
// assigned server-side at insertion.
type FuelReport struct {
	ID         int64     `json:"id" db:"id"`
	VehicleID  int64     `json:"vehicleId" db:"vehicle_id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Amount     int64     `json:"amount" db:"amount"`
	Cost       int64     `json:"cost" db:"cost"`
	Odometer   int64     `json:"odometer" db:"odometer"`
	Notes      string    `json:"notes" db:"notes"`
	ReportDate time.Time `json:"reportDate" db:"report_date"`
}

// CreateFuelReportRequest is the payload for recording a fuel purchase.
// The reporting user is taken from the session, never from the payload.
type CreateFuelReportRequest struct {
	VehicleID int64  `json:"vehicleId" validate:"required,gt=0"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Cost      int64  `json:"cost" validate:"required,gt=0"`
	Odometer  int64  `json:"odometer" validate:"required,gte=0"`
	Notes     string `json:"notes"`
}
