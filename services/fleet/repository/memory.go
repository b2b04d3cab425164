package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// MemoryStore is the in-memory reference implementation of
// fleet.Repository: maps keyed by auto-incrementing ids behind a single
// RWMutex. Composite operations hold the write lock for all of their
// writes, so they are atomic with respect to concurrent callers. All
// data is lost on restart.
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users        map[int64]*models.User
	vehicles     map[int64]*models.Vehicle
	gpsLocations map[int64]*models.GpsLocation
	maintenance  map[int64]*models.Maintenance
	activityLogs map[int64]*models.ActivityLog
	fuelReports  map[int64]*models.FuelReport
	geofences    map[int64]*models.Geofence
	alerts       map[int64]*models.Alert

	nextUserID        int64
	nextVehicleID     int64
	nextGpsLocationID int64
	nextMaintenanceID int64
	nextActivityLogID int64
	nextFuelReportID  int64
	nextGeofenceID    int64
	nextAlertID       int64
}

var _ fleet.Repository = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:               time.Now,
		users:             make(map[int64]*models.User),
		vehicles:          make(map[int64]*models.Vehicle),
		gpsLocations:      make(map[int64]*models.GpsLocation),
		maintenance:       make(map[int64]*models.Maintenance),
		activityLogs:      make(map[int64]*models.ActivityLog),
		fuelReports:       make(map[int64]*models.FuelReport),
		geofences:         make(map[int64]*models.Geofence),
		alerts:            make(map[int64]*models.Alert),
		nextUserID:        1,
		nextVehicleID:     1,
		nextGpsLocationID: 1,
		nextMaintenanceID: 1,
		nextActivityLogID: 1,
		nextFuelReportID:  1,
		nextAlertID:       1,
		nextGeofenceID:    1,
	}
}

// --- Users ---

func (m *MemoryStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneUser(m.users[id]), nil
}

func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, fleet.ErrDuplicateEmail
		}
	}

	stored := cloneUser(user)
	stored.ID = m.nextUserID
	m.nextUserID++
	stored.UUID = uuid.New()
	stored.CreatedAt = m.now()
	m.users[stored.ID] = stored

	return cloneUser(stored), nil
}

func (m *MemoryStore) UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.users[id]
	if !ok {
		return nil, nil
	}

	if patch.Email != nil {
		for _, u := range m.users {
			if u.ID != id && u.Email == *patch.Email {
				return nil, fleet.ErrDuplicateEmail
			}
		}
		existing.Email = *patch.Email
	}
	if patch.FirstName != nil {
		existing.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		existing.LastName = *patch.LastName
	}
	if patch.Role != nil {
		existing.Role = *patch.Role
	}
	if patch.Phone != nil {
		existing.Phone = *patch.Phone
	}
	if patch.ProfileImage != nil {
		existing.ProfileImage = *patch.ProfileImage
	}
	if patch.Active != nil {
		existing.Active = *patch.Active
	}

	return cloneUser(existing), nil
}

func (m *MemoryStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- Vehicles ---

func (m *MemoryStore) GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneVehicle(m.vehicles[id]), nil
}

func (m *MemoryStore) GetVehicleByCode(ctx context.Context, code string) (*models.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.vehicles {
		if v.Code == code {
			return cloneVehicle(v), nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.vehicles {
		if v.Code == vehicle.Code {
			return nil, fleet.ErrDuplicateVehicle
		}
	}

	stored := cloneVehicle(vehicle)
	stored.ID = m.nextVehicleID
	m.nextVehicleID++
	stored.UUID = uuid.New()
	stored.CreatedAt = m.now()
	if stored.Status == "" {
		stored.Status = models.VehicleAvailable
	}
	m.vehicles[stored.ID] = stored

	return cloneVehicle(stored), nil
}

func (m *MemoryStore) UpdateVehicle(ctx context.Context, id int64, patch *models.VehiclePatch) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateVehicleLocked(id, patch)
}

func (m *MemoryStore) updateVehicleLocked(id int64, patch *models.VehiclePatch) (*models.Vehicle, error) {
	existing, ok := m.vehicles[id]
	if !ok {
		return nil, nil
	}

	if patch.Code != nil {
		for _, v := range m.vehicles {
			if v.ID != id && v.Code == *patch.Code {
				return nil, fleet.ErrDuplicateVehicle
			}
		}
		existing.Code = *patch.Code
	}
	if patch.Make != nil {
		existing.Make = *patch.Make
	}
	if patch.Model != nil {
		existing.Model = *patch.Model
	}
	if patch.Year != nil {
		existing.Year = *patch.Year
	}
	if patch.LicensePlate != nil {
		existing.LicensePlate = *patch.LicensePlate
	}
	if patch.VIN != nil {
		existing.VIN = *patch.VIN
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.FuelCapacity != nil {
		existing.FuelCapacity = *patch.FuelCapacity
	}
	if patch.AssignedTo != nil {
		existing.AssignedTo = patch.AssignedTo
	}
	if patch.LastMaintenanceDate != nil {
		existing.LastMaintenanceDate = patch.LastMaintenanceDate
	}
	if patch.NextMaintenanceDate != nil {
		existing.NextMaintenanceDate = patch.NextMaintenanceDate
	}

	return cloneVehicle(existing), nil
}

func (m *MemoryStore) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		out = append(out, cloneVehicle(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) ListVehiclesByStatus(ctx context.Context, status models.VehicleStatus) ([]*models.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Vehicle, 0)
	for _, v := range m.vehicles {
		if v.Status == status {
			out = append(out, cloneVehicle(v))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) AssignVehicleToUser(ctx context.Context, vehicleID, userID int64) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	vehicle, ok := m.vehicles[vehicleID]
	if !ok {
		return nil, nil
	}

	vehicle.AssignedTo = &userID
	vehicle.Status = models.VehicleInUse

	uid := userID
	vid := vehicleID
	m.appendActivityLocked(&models.ActivityLog{
		UserID:      &uid,
		VehicleID:   &vid,
		Action:      models.ActionVehicleAssigned,
		Description: fmt.Sprintf("Vehicle %s assigned to user ID %d", vehicle.Code, userID),
	})

	return cloneVehicle(vehicle), nil
}

// --- GPS locations ---

func (m *MemoryStore) CreateGpsLocation(ctx context.Context, loc *models.GpsLocation) (*models.GpsLocation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *loc
	stored.ID = m.nextGpsLocationID
	m.nextGpsLocationID++
	stored.Timestamp = m.now()
	m.gpsLocations[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (m *MemoryStore) GetLatestGpsLocation(ctx context.Context, vehicleID int64) (*models.GpsLocation, error) {
	locations, err := m.ListGpsLocationsForVehicle(ctx, vehicleID, 1)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, nil
	}
	return locations[0], nil
}

func (m *MemoryStore) ListGpsLocationsForVehicle(ctx context.Context, vehicleID int64, limit int) ([]*models.GpsLocation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.GpsLocation, 0)
	for _, loc := range m.gpsLocations {
		if loc.VehicleID == vehicleID {
			c := *loc
			out = append(out, &c)
		}
	}
	// Newest first; ids break ties for points recorded within the same
	// clock tick.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- Maintenance ---

func (m *MemoryStore) CreateMaintenance(ctx context.Context, rec *models.Maintenance) (*models.Maintenance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := cloneMaintenance(rec)
	stored.ID = m.nextMaintenanceID
	m.nextMaintenanceID++
	stored.CreatedAt = m.now()
	m.maintenance[stored.ID] = stored

	return cloneMaintenance(stored), nil
}

func (m *MemoryStore) UpdateMaintenance(ctx context.Context, id int64, patch *models.MaintenancePatch) (*models.Maintenance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateMaintenanceLocked(id, patch)
}

func (m *MemoryStore) updateMaintenanceLocked(id int64, patch *models.MaintenancePatch) (*models.Maintenance, error) {
	existing, ok := m.maintenance[id]
	if !ok {
		return nil, nil
	}

	if patch.Type != nil {
		existing.Type = *patch.Type
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.ScheduledDate != nil {
		existing.ScheduledDate = *patch.ScheduledDate
	}
	if patch.CompletedDate != nil {
		existing.CompletedDate = patch.CompletedDate
	}
	if patch.Cost != nil {
		existing.Cost = *patch.Cost
	}
	if patch.Technician != nil {
		existing.Technician = *patch.Technician
	}
	if patch.Notes != nil {
		existing.Notes = *patch.Notes
	}

	return cloneMaintenance(existing), nil
}

func (m *MemoryStore) GetMaintenance(ctx context.Context, id int64) (*models.Maintenance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneMaintenance(m.maintenance[id]), nil
}

func (m *MemoryStore) ListMaintenanceForVehicle(ctx context.Context, vehicleID int64) ([]*models.Maintenance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Maintenance, 0)
	for _, rec := range m.maintenance {
		if rec.VehicleID == vehicleID {
			out = append(out, cloneMaintenance(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) ListUpcomingMaintenance(ctx context.Context) ([]*models.Maintenance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	out := make([]*models.Maintenance, 0)
	for _, rec := range m.maintenance {
		// Strictly after now: a record scheduled exactly now, or overdue,
		// is not "upcoming".
		if rec.ScheduledDate.After(now) && rec.CompletedDate == nil {
			out = append(out, cloneMaintenance(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	return out, nil
}

func (m *MemoryStore) CompleteMaintenance(ctx context.Context, id int64, completedDate time.Time, notes string) (*models.Maintenance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.maintenance[id]
	if !ok {
		return nil, nil
	}

	d := completedDate
	rec.CompletedDate = &d
	if notes != "" {
		rec.Notes = notes
	}

	if vehicle, ok := m.vehicles[rec.VehicleID]; ok {
		vehicle.LastMaintenanceDate = &d
		vehicle.Status = models.VehicleAvailable
	}

	vid := rec.VehicleID
	m.appendActivityLocked(&models.ActivityLog{
		VehicleID:   &vid,
		Action:      models.ActionMaintenanceCompleted,
		Description: fmt.Sprintf("Maintenance completed for vehicle ID %d", rec.VehicleID),
	})

	return cloneMaintenance(rec), nil
}

// --- Activity logs ---

func (m *MemoryStore) CreateActivityLog(ctx context.Context, entry *models.ActivityLog) (*models.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneActivity(m.appendActivityLocked(entry)), nil
}

func (m *MemoryStore) appendActivityLocked(entry *models.ActivityLog) *models.ActivityLog {
	stored := cloneActivity(entry)
	stored.ID = m.nextActivityLogID
	m.nextActivityLogID++
	stored.Timestamp = m.now()
	m.activityLogs[stored.ID] = stored
	return stored
}

func (m *MemoryStore) ListRecentActivity(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.ActivityLog, 0, len(m.activityLogs))
	for _, entry := range m.activityLogs {
		out = append(out, cloneActivity(entry))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- Fuel reports ---

func (m *MemoryStore) CreateFuelReport(ctx context.Context, report *models.FuelReport) (*models.FuelReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *report
	stored.ID = m.nextFuelReportID
	m.nextFuelReportID++
	stored.ReportDate = m.now()
	m.fuelReports[stored.ID] = &stored

	uid := stored.UserID
	vid := stored.VehicleID
	m.appendActivityLocked(&models.ActivityLog{
		UserID:      &uid,
		VehicleID:   &vid,
		Action:      models.ActionFuelReported,
		Description: fmt.Sprintf("Fuel report submitted for vehicle ID %d", stored.VehicleID),
	})

	out := stored
	return &out, nil
}

func (m *MemoryStore) ListFuelReportsForVehicle(ctx context.Context, vehicleID int64) ([]*models.FuelReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.FuelReport, 0)
	for _, r := range m.fuelReports {
		if r.VehicleID == vehicleID {
			c := *r
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReportDate.Equal(out[j].ReportDate) {
			return out[i].ID > out[j].ID
		}
		return out[i].ReportDate.After(out[j].ReportDate)
	})
	return out, nil
}

// --- Geofences ---

func (m *MemoryStore) CreateGeofence(ctx context.Context, fence *models.Geofence) (*models.Geofence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := cloneGeofence(fence)
	stored.ID = m.nextGeofenceID
	m.nextGeofenceID++
	stored.CreatedAt = m.now()
	m.geofences[stored.ID] = stored

	return cloneGeofence(stored), nil
}

func (m *MemoryStore) UpdateGeofence(ctx context.Context, id int64, patch *models.GeofencePatch) (*models.Geofence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.geofences[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Coordinates != nil {
		existing.Coordinates = *patch.Coordinates
	}
	if patch.Active != nil {
		existing.Active = *patch.Active
	}

	return cloneGeofence(existing), nil
}

func (m *MemoryStore) GetGeofence(ctx context.Context, id int64) (*models.Geofence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneGeofence(m.geofences[id]), nil
}

func (m *MemoryStore) ListGeofences(ctx context.Context) ([]*models.Geofence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Geofence, 0, len(m.geofences))
	for _, g := range m.geofences {
		out = append(out, cloneGeofence(g))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- Alerts ---

func (m *MemoryStore) CreateAlert(ctx context.Context, alert *models.Alert) (*models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := cloneAlert(alert)
	stored.ID = m.nextAlertID
	m.nextAlertID++
	stored.Timestamp = m.now()
	m.alerts[stored.ID] = stored

	return cloneAlert(stored), nil
}

func (m *MemoryStore) MarkAlertRead(ctx context.Context, id int64) (*models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	alert, ok := m.alerts[id]
	if !ok {
		return nil, nil
	}

	alert.Read = true
	return cloneAlert(alert), nil
}

func (m *MemoryStore) ListUnreadAlerts(ctx context.Context) ([]*models.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Alert, 0)
	for _, a := range m.alerts {
		if !a.Read {
			out = append(out, cloneAlert(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// --- clone helpers ---
//
// The store hands out copies so callers can never mutate shared state
// outside the lock.

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneVehicle(v *models.Vehicle) *models.Vehicle {
	if v == nil {
		return nil
	}
	c := *v
	if v.AssignedTo != nil {
		id := *v.AssignedTo
		c.AssignedTo = &id
	}
	if v.LastMaintenanceDate != nil {
		t := *v.LastMaintenanceDate
		c.LastMaintenanceDate = &t
	}
	if v.NextMaintenanceDate != nil {
		t := *v.NextMaintenanceDate
		c.NextMaintenanceDate = &t
	}
	return &c
}

func cloneMaintenance(rec *models.Maintenance) *models.Maintenance {
	if rec == nil {
		return nil
	}
	c := *rec
	if rec.CompletedDate != nil {
		t := *rec.CompletedDate
		c.CompletedDate = &t
	}
	if rec.CreatedBy != nil {
		id := *rec.CreatedBy
		c.CreatedBy = &id
	}
	return &c
}

func cloneActivity(entry *models.ActivityLog) *models.ActivityLog {
	if entry == nil {
		return nil
	}
	c := *entry
	if entry.UserID != nil {
		id := *entry.UserID
		c.UserID = &id
	}
	if entry.VehicleID != nil {
		id := *entry.VehicleID
		c.VehicleID = &id
	}
	return &c
}

func cloneGeofence(g *models.Geofence) *models.Geofence {
	if g == nil {
		return nil
	}
	c := *g
	if g.CreatedBy != nil {
		id := *g.CreatedBy
		c.CreatedBy = &id
	}
	return &c
}

func cloneAlert(a *models.Alert) *models.Alert {
	if a == nil {
		return nil
	}
	c := *a
	if a.VehicleID != nil {
		id := *a.VehicleID
		c.VehicleID = &id
	}
	return &c
}
