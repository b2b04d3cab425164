package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// PostgresStore implements fleet.Repository over PostgreSQL. Composite
// operations run inside a transaction so their side effects apply
// together or not at all.
type PostgresStore struct {
	db *sqlx.DB
}

var _ fleet.Repository = (*PostgresStore)(nil)

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	uuid UUID NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	role TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	profile_image TEXT NOT NULL DEFAULT '',
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS vehicles (
	id BIGSERIAL PRIMARY KEY,
	uuid UUID NOT NULL UNIQUE,
	vehicle_code TEXT NOT NULL UNIQUE,
	make TEXT NOT NULL,
	model TEXT NOT NULL,
	year INT NOT NULL,
	license_plate TEXT NOT NULL,
	vin TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'available',
	fuel_capacity INT NOT NULL DEFAULT 0,
	assigned_to BIGINT REFERENCES users(id),
	last_maintenance_date TIMESTAMPTZ,
	next_maintenance_date TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS gps_locations (
	id BIGSERIAL PRIMARY KEY,
	vehicle_id BIGINT NOT NULL REFERENCES vehicles(id),
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	speed INT NOT NULL DEFAULT 0,
	geohash TEXT NOT NULL DEFAULT '',
	timestamp TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_gps_locations_vehicle ON gps_locations (vehicle_id, timestamp DESC);

CREATE TABLE IF NOT EXISTS maintenance (
	id BIGSERIAL PRIMARY KEY,
	vehicle_id BIGINT NOT NULL REFERENCES vehicles(id),
	type TEXT NOT NULL,
	description TEXT NOT NULL,
	scheduled_date TIMESTAMPTZ NOT NULL,
	completed_date TIMESTAMPTZ,
	cost BIGINT NOT NULL DEFAULT 0,
	technician TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	created_by BIGINT REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS activity_logs (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT REFERENCES users(id),
	vehicle_id BIGINT REFERENCES vehicles(id),
	action TEXT NOT NULL,
	description TEXT NOT NULL,
	timestamp TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS fuel_reports (
	id BIGSERIAL PRIMARY KEY,
	vehicle_id BIGINT NOT NULL REFERENCES vehicles(id),
	user_id BIGINT NOT NULL REFERENCES users(id),
	amount BIGINT NOT NULL,
	cost BIGINT NOT NULL,
	odometer BIGINT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	report_date TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS geofences (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	coordinates TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_by BIGINT REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS alerts (
	id BIGSERIAL PRIMARY KEY,
	vehicle_id BIGINT REFERENCES vehicles(id),
	type TEXT NOT NULL,
	message TEXT NOT NULL,
	read BOOLEAN NOT NULL DEFAULT FALSE,
	timestamp TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the tables when they do not exist yet.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// --- Users ---

func (p *PostgresStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := p.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (p *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := p.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (p *PostgresStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	created := *user
	created.UUID = uuid.New()
	created.CreatedAt = time.Now()

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, created.Email); err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return nil, fleet.ErrDuplicateEmail
	}

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO users (uuid, email, password, first_name, last_name, role, phone, profile_image, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		created.UUID, created.Email, created.Password, created.FirstName, created.LastName,
		created.Role, created.Phone, created.ProfileImage, created.Active, created.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &created, nil
}

func (p *PostgresStore) UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	set, args := buildPatch(map[string]interface{}{
		"email":         strPtrValue(patch.Email),
		"first_name":    strPtrValue(patch.FirstName),
		"last_name":     strPtrValue(patch.LastName),
		"role":          rolePtrValue(patch.Role),
		"phone":         strPtrValue(patch.Phone),
		"profile_image": strPtrValue(patch.ProfileImage),
		"active":        boolPtrValue(patch.Active),
	})
	return p.applyUserPatch(ctx, id, set, args)
}

func (p *PostgresStore) applyUserPatch(ctx context.Context, id int64, set []string, args []interface{}) (*models.User, error) {
	if len(set) == 0 {
		return p.GetUser(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING *`,
		strings.Join(set, ", "), len(args)+1)
	args = append(args, id)

	var user models.User
	err := p.db.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fleet.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

func (p *PostgresStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}
	if err := p.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// --- Vehicles ---

func (p *PostgresStore) GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := p.db.GetContext(ctx, &vehicle, `SELECT * FROM vehicles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

func (p *PostgresStore) GetVehicleByCode(ctx context.Context, code string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := p.db.GetContext(ctx, &vehicle, `SELECT * FROM vehicles WHERE vehicle_code = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle by code: %w", err)
	}
	return &vehicle, nil
}

func (p *PostgresStore) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	created := *vehicle
	created.UUID = uuid.New()
	created.CreatedAt = time.Now()
	if created.Status == "" {
		created.Status = models.VehicleAvailable
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_code = $1)`, created.Code); err != nil {
		return nil, fmt.Errorf("failed to check vehicle code uniqueness: %w", err)
	}
	if exists {
		return nil, fleet.ErrDuplicateVehicle
	}

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO vehicles (uuid, vehicle_code, make, model, year, license_plate, vin, status,
			fuel_capacity, assigned_to, last_maintenance_date, next_maintenance_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		created.UUID, created.Code, created.Make, created.Model, created.Year,
		created.LicensePlate, created.VIN, created.Status, created.FuelCapacity,
		created.AssignedTo, created.LastMaintenanceDate, created.NextMaintenanceDate, created.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vehicle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &created, nil
}

func (p *PostgresStore) UpdateVehicle(ctx context.Context, id int64, patch *models.VehiclePatch) (*models.Vehicle, error) {
	values := map[string]interface{}{
		"vehicle_code":  strPtrValue(patch.Code),
		"make":          strPtrValue(patch.Make),
		"model":         strPtrValue(patch.Model),
		"license_plate": strPtrValue(patch.LicensePlate),
		"vin":           strPtrValue(patch.VIN),
	}
	if patch.Year != nil {
		values["year"] = *patch.Year
	}
	if patch.Status != nil {
		values["status"] = string(*patch.Status)
	}
	if patch.FuelCapacity != nil {
		values["fuel_capacity"] = *patch.FuelCapacity
	}
	if patch.AssignedTo != nil {
		values["assigned_to"] = *patch.AssignedTo
	}
	if patch.LastMaintenanceDate != nil {
		values["last_maintenance_date"] = *patch.LastMaintenanceDate
	}
	if patch.NextMaintenanceDate != nil {
		values["next_maintenance_date"] = *patch.NextMaintenanceDate
	}

	set, args := buildPatch(values)
	if len(set) == 0 {
		return p.GetVehicle(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE vehicles SET %s WHERE id = $%d RETURNING *`,
		strings.Join(set, ", "), len(args)+1)
	args = append(args, id)

	var vehicle models.Vehicle
	err := p.db.GetContext(ctx, &vehicle, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fleet.ErrDuplicateVehicle
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return &vehicle, nil
}

func (p *PostgresStore) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	vehicles := []*models.Vehicle{}
	if err := p.db.SelectContext(ctx, &vehicles, `SELECT * FROM vehicles ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (p *PostgresStore) ListVehiclesByStatus(ctx context.Context, status models.VehicleStatus) ([]*models.Vehicle, error) {
	vehicles := []*models.Vehicle{}
	err := p.db.SelectContext(ctx, &vehicles,
		`SELECT * FROM vehicles WHERE status = $1 ORDER BY id`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles by status: %w", err)
	}
	return vehicles, nil
}

func (p *PostgresStore) AssignVehicleToUser(ctx context.Context, vehicleID, userID int64) (*models.Vehicle, error) {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var vehicle models.Vehicle
	err = tx.GetContext(ctx, &vehicle, `
		UPDATE vehicles SET assigned_to = $1, status = $2 WHERE id = $3 RETURNING *`,
		userID, models.VehicleInUse, vehicleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assign vehicle: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO activity_logs (user_id, vehicle_id, action, description, timestamp)
		VALUES ($1, $2, $3, $4, $5)`,
		userID, vehicleID, models.ActionVehicleAssigned,
		fmt.Sprintf("Vehicle %s assigned to user ID %d", vehicle.Code, userID), time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to append assignment activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &vehicle, nil
}

// --- GPS locations ---

func (p *PostgresStore) CreateGpsLocation(ctx context.Context, loc *models.GpsLocation) (*models.GpsLocation, error) {
	created := *loc
	created.Timestamp = time.Now()

	err := p.db.QueryRowxContext(ctx, `
		INSERT INTO gps_locations (vehicle_id, latitude, longitude, speed, geohash, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		created.VehicleID, created.Latitude, created.Longitude, created.Speed,
		created.Geohash, created.Timestamp,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert gps location: %w", err)
	}
	return &created, nil
}

func (p *PostgresStore) GetLatestGpsLocation(ctx context.Context, vehicleID int64) (*models.GpsLocation, error) {
	locations, err := p.ListGpsLocationsForVehicle(ctx, vehicleID, 1)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, nil
	}
	return locations[0], nil
}

func (p *PostgresStore) ListGpsLocationsForVehicle(ctx context.Context, vehicleID int64, limit int) ([]*models.GpsLocation, error) {
	query := `SELECT * FROM gps_locations WHERE vehicle_id = $1 ORDER BY timestamp DESC, id DESC`
	args := []interface{}{vehicleID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	locations := []*models.GpsLocation{}
	if err := p.db.SelectContext(ctx, &locations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list gps locations: %w", err)
	}
	return locations, nil
}

// --- Maintenance ---

func (p *PostgresStore) CreateMaintenance(ctx context.Context, rec *models.Maintenance) (*models.Maintenance, error) {
	created := *rec
	created.CreatedAt = time.Now()

	err := p.db.QueryRowxContext(ctx, `
		INSERT INTO maintenance (vehicle_id, type, description, scheduled_date, completed_date,
			cost, technician, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		created.VehicleID, created.Type, created.Description, created.ScheduledDate,
		created.CompletedDate, created.Cost, created.Technician, created.Notes,
		created.CreatedBy, created.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert maintenance: %w", err)
	}
	return &created, nil
}

func (p *PostgresStore) UpdateMaintenance(ctx context.Context, id int64, patch *models.MaintenancePatch) (*models.Maintenance, error) {
	values := map[string]interface{}{
		"type":        strPtrValue(patch.Type),
		"description": strPtrValue(patch.Description),
		"technician":  strPtrValue(patch.Technician),
		"notes":       strPtrValue(patch.Notes),
	}
	if patch.ScheduledDate != nil {
		values["scheduled_date"] = *patch.ScheduledDate
	}
	if patch.CompletedDate != nil {
		values["completed_date"] = *patch.CompletedDate
	}
	if patch.Cost != nil {
		values["cost"] = *patch.Cost
	}

	set, args := buildPatch(values)
	if len(set) == 0 {
		return p.GetMaintenance(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE maintenance SET %s WHERE id = $%d RETURNING *`,
		strings.Join(set, ", "), len(args)+1)
	args = append(args, id)

	var rec models.Maintenance
	err := p.db.GetContext(ctx, &rec, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance: %w", err)
	}
	return &rec, nil
}

func (p *PostgresStore) GetMaintenance(ctx context.Context, id int64) (*models.Maintenance, error) {
	var rec models.Maintenance
	err := p.db.GetContext(ctx, &rec, `SELECT * FROM maintenance WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance: %w", err)
	}
	return &rec, nil
}

func (p *PostgresStore) ListMaintenanceForVehicle(ctx context.Context, vehicleID int64) ([]*models.Maintenance, error) {
	records := []*models.Maintenance{}
	err := p.db.SelectContext(ctx, &records,
		`SELECT * FROM maintenance WHERE vehicle_id = $1 ORDER BY created_at DESC, id DESC`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance: %w", err)
	}
	return records, nil
}

func (p *PostgresStore) ListUpcomingMaintenance(ctx context.Context) ([]*models.Maintenance, error) {
	records := []*models.Maintenance{}
	err := p.db.SelectContext(ctx, &records, `
		SELECT * FROM maintenance
		WHERE scheduled_date > NOW() AND completed_date IS NULL
		ORDER BY scheduled_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming maintenance: %w", err)
	}
	return records, nil
}

func (p *PostgresStore) CompleteMaintenance(ctx context.Context, id int64, completedDate time.Time, notes string) (*models.Maintenance, error) {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var rec models.Maintenance
	if notes != "" {
		err = tx.GetContext(ctx, &rec, `
			UPDATE maintenance SET completed_date = $1, notes = $2 WHERE id = $3 RETURNING *`,
			completedDate, notes, id)
	} else {
		err = tx.GetContext(ctx, &rec, `
			UPDATE maintenance SET completed_date = $1 WHERE id = $2 RETURNING *`,
			completedDate, id)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete maintenance: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE vehicles SET last_maintenance_date = $1, status = $2 WHERE id = $3`,
		completedDate, models.VehicleAvailable, rec.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle after maintenance: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO activity_logs (vehicle_id, action, description, timestamp)
		VALUES ($1, $2, $3, $4)`,
		rec.VehicleID, models.ActionMaintenanceCompleted,
		fmt.Sprintf("Maintenance completed for vehicle ID %d", rec.VehicleID), time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to append completion activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &rec, nil
}

// --- Activity logs ---

func (p *PostgresStore) CreateActivityLog(ctx context.Context, entry *models.ActivityLog) (*models.ActivityLog, error) {
	created := *entry
	created.Timestamp = time.Now()

	err := p.db.QueryRowxContext(ctx, `
		INSERT INTO activity_logs (user_id, vehicle_id, action, description, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		created.UserID, created.VehicleID, created.Action, created.Description, created.Timestamp,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert activity log: %w", err)
	}
	return &created, nil
}

func (p *PostgresStore) ListRecentActivity(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	query := `SELECT * FROM activity_logs ORDER BY timestamp DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	entries := []*models.ActivityLog{}
	if err := p.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}
	return entries, nil
}

// --- Fuel reports ---

func (p *PostgresStore) CreateFuelReport(ctx context.Context, report *models.FuelReport) (*models.FuelReport, error) {
	created := *report
	created.ReportDate = time.Now()

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO fuel_reports (vehicle_id, user_id, amount, cost, odometer, notes, report_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		created.VehicleID, created.UserID, created.Amount, created.Cost,
		created.Odometer, created.Notes, created.ReportDate,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert fuel report: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO activity_logs (user_id, vehicle_id, action, description, timestamp)
		VALUES ($1, $2, $3, $4, $5)`,
		created.UserID, created.VehicleID, models.ActionFuelReported,
		fmt.Sprintf("Fuel report submitted for vehicle ID %d", created.VehicleID), time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to append fuel activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &created, nil
}

func (p *PostgresStore) ListFuelReportsForVehicle(ctx context.Context, vehicleID int64) ([]*models.FuelReport, error) {
	reports := []*models.FuelReport{}
	err := p.db.SelectContext(ctx, &reports,
		`SELECT * FROM fuel_reports WHERE vehicle_id = $1 ORDER BY report_date DESC, id DESC`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel reports: %w", err)
	}
	return reports, nil
}

// --- Geofences ---

func (p *PostgresStore) CreateGeofence(ctx context.Context, fence *models.Geofence) (*models.Geofence, error) {
	created := *fence
	created.CreatedAt = time.Now()

	err := p.db.QueryRowxContext(ctx, `
		INSERT INTO geofences (name, description, coordinates, active, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		created.Name, created.Description, created.Coordinates, created.Active,
		created.CreatedBy, created.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert geofence: %w", err)
	}
	return &created, nil
}

func (p *PostgresStore) UpdateGeofence(ctx context.Context, id int64, patch *models.GeofencePatch) (*models.Geofence, error) {
	values := map[string]interface{}{
		"name":        strPtrValue(patch.Name),
		"description": strPtrValue(patch.Description),
		"coordinates": strPtrValue(patch.Coordinates),
		"active":      boolPtrValue(patch.Active),
	}

	set, args := buildPatch(values)
	if len(set) == 0 {
		return p.GetGeofence(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE geofences SET %s WHERE id = $%d RETURNING *`,
		strings.Join(set, ", "), len(args)+1)
	args = append(args, id)

	var fence models.Geofence
	err := p.db.GetContext(ctx, &fence, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update geofence: %w", err)
	}
	return &fence, nil
}

func (p *PostgresStore) GetGeofence(ctx context.Context, id int64) (*models.Geofence, error) {
	var fence models.Geofence
	err := p.db.GetContext(ctx, &fence, `SELECT * FROM geofences WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get geofence: %w", err)
	}
	return &fence, nil
}

func (p *PostgresStore) ListGeofences(ctx context.Context) ([]*models.Geofence, error) {
	fences := []*models.Geofence{}
	if err := p.db.SelectContext(ctx, &fences, `SELECT * FROM geofences ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	return fences, nil
}

// --- Alerts ---

func (p *PostgresStore) CreateAlert(ctx context.Context, alert *models.Alert) (*models.Alert, error) {
	created := *alert
	created.Timestamp = time.Now()

	err := p.db.QueryRowxContext(ctx, `
		INSERT INTO alerts (vehicle_id, type, message, read, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		created.VehicleID, created.Type, created.Message, created.Read, created.Timestamp,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert alert: %w", err)
	}
	return &created, nil
}

func (p *PostgresStore) MarkAlertRead(ctx context.Context, id int64) (*models.Alert, error) {
	var alert models.Alert
	err := p.db.GetContext(ctx, &alert,
		`UPDATE alerts SET read = TRUE WHERE id = $1 RETURNING *`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark alert read: %w", err)
	}
	return &alert, nil
}

func (p *PostgresStore) ListUnreadAlerts(ctx context.Context) ([]*models.Alert, error) {
	alerts := []*models.Alert{}
	err := p.db.SelectContext(ctx, &alerts,
		`SELECT * FROM alerts WHERE read = FALSE ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread alerts: %w", err)
	}
	return alerts, nil
}

// --- patch helpers ---

// buildPatch turns non-nil patch values into a SET clause with ordered
// placeholders.
func buildPatch(values map[string]interface{}) ([]string, []interface{}) {
	columns := make([]string, 0, len(values))
	for col, val := range values {
		if val != nil {
			columns = append(columns, col)
		}
	}
	// Stable placeholder order.
	sort.Strings(columns)

	set := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, values[col])
	}
	return set, args
}

func strPtrValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func boolPtrValue(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return *b
}

func rolePtrValue(r *models.Role) interface{} {
	if r == nil {
		return nil
	}
	return string(*r)
}

// isUniqueViolation reports whether err is a unique-constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
