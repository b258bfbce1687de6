package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"eonpeers/internal/domain"
)

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// find runs a single-row lookup and reports absence through found.
func find[T any](row pgx.Row, scan func(pgx.Row, *T) error, what string) (T, bool, error) {
	var out T
	err := scan(row, &out)
	if errors.Is(err, pgx.ErrNoRows) {
		return out, false, nil
	}
	if err != nil {
		return out, false, mapErr(err, what)
	}
	return out, true, nil
}

func collect[T any](rows pgx.Rows, err error, scan func(pgx.Row, *T) error, what string) ([]T, error) {
	if err != nil {
		return nil, mapErr(err, what)
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, mapErr(err, what)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err, what)
	}
	return out, nil
}

// Companies

const companyColumns = `id, name, vat_number, base_url, public_key, is_local, created_at`

func scanCompany(row pgx.Row, c *domain.Company) error {
	return row.Scan(&c.ID, &c.Name, &c.VATNumber, &c.BaseURL, &c.PublicKey, &c.IsLocal, &c.CreatedAt)
}

func (db *DB) CreateCompany(ctx context.Context, c *domain.Company) error {
	newID(&c.ID)
	err := db.conn(ctx).QueryRow(ctx, `
		INSERT INTO companies (id, name, vat_number, base_url, public_key, is_local)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, c.ID, c.Name, c.VATNumber, c.BaseURL, c.PublicKey, c.IsLocal).Scan(&c.CreatedAt)
	return mapErr(err, "company "+c.VATNumber)
}

func (db *DB) GetCompany(ctx context.Context, id string) (domain.Company, error) {
	var c domain.Company
	err := scanCompany(db.conn(ctx).QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id), &c)
	return c, mapErr(err, "company "+id)
}

func (db *DB) FindCompanyByVAT(ctx context.Context, vat string) (domain.Company, bool, error) {
	row := db.conn(ctx).QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE vat_number = $1`, vat)
	return find(row, scanCompany, "company")
}

func (db *DB) FindCompanyByPublicKey(ctx context.Context, publicKey string) (domain.Company, bool, error) {
	if publicKey == "" {
		return domain.Company{}, false, nil
	}
	row := db.conn(ctx).QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE public_key = $1 LIMIT 1`, publicKey)
	return find(row, scanCompany, "company")
}

func (db *DB) LocalCompany(ctx context.Context) (domain.Company, bool, error) {
	row := db.conn(ctx).QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE is_local`)
	return find(row, scanCompany, "company")
}

func (db *DB) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := db.conn(ctx).Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at`)
	return collect(rows, err, scanCompany, "companies")
}

func (db *DB) UpdateCompany(ctx context.Context, c domain.Company) error {
	tag, err := db.conn(ctx).Exec(ctx, `
		UPDATE companies SET name = $2, vat_number = $3, base_url = $4, public_key = $5
		WHERE id = $1
	`, c.ID, c.Name, c.VATNumber, c.BaseURL, c.PublicKey)
	return affected(tag, err, "company "+c.ID)
}

func (db *DB) DeleteCompany(ctx context.Context, id string) error {
	tag, err := db.conn(ctx).Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return domain.Conflict("company %s is still referenced", id)
	}
	return affected(tag, err, "company "+id)
}

func affected(tag pgconn.CommandTag, err error, what string) error {
	if err != nil {
		return mapErr(err, what)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("%s not found", what)
	}
	return nil
}

// Locations

const locationColumns = `id, name, location_data, location_key, company_id, created_at`

func scanLocation(row pgx.Row, l *domain.Location) error {
	return row.Scan(&l.ID, &l.Name, &l.LocationData, &l.LocationKey, &l.CompanyID, &l.CreatedAt)
}

func (db *DB) CreateLocation(ctx context.Context, l *domain.Location) error {
	newID(&l.ID)
	err := db.conn(ctx).QueryRow(ctx, `
		INSERT INTO locations (id, name, location_data, location_key, company_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, l.ID, l.Name, l.LocationData, l.LocationKey, l.CompanyID).Scan(&l.CreatedAt)
	return mapErr(err, "location")
}

func (db *DB) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	var l domain.Location
	err := scanLocation(db.conn(ctx).QueryRow(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id), &l)
	return l, mapErr(err, "location "+id)
}

func (db *DB) FindLocationByKey(ctx context.Context, locationKey string) (domain.Location, bool, error) {
	row := db.conn(ctx).QueryRow(ctx, `SELECT `+locationColumns+` FROM locations WHERE location_key = $1`, locationKey)
	return find(row, scanLocation, "location")
}

func (db *DB) FindLocationByName(ctx context.Context, companyID, name string) (domain.Location, bool, error) {
	row := db.conn(ctx).QueryRow(ctx, `
		SELECT `+locationColumns+` FROM locations WHERE company_id = $1 AND name = $2 LIMIT 1
	`, companyID, name)
	return find(row, scanLocation, "location")
}

func (db *DB) ListLocationsByCompany(ctx context.Context, companyID string) ([]domain.Location, error) {
	rows, err := db.conn(ctx).Query(ctx, `
		SELECT `+locationColumns+` FROM locations WHERE company_id = $1 ORDER BY created_at
	`, companyID)
	return collect(rows, err, scanLocation, "locations")
}

// Shipments

const shipmentColumns = `id, hash_id, name, created_at, shipment_date, origin, destination, hs_code,
	description, current_company_id, waybill_number, custom_reference_number`

func scanShipment(row pgx.Row, s *domain.Shipment) error {
	err := row.Scan(&s.ID, &s.HashID, &s.Name, &s.CreatedAt, &s.ShipmentDate, &s.Origin, &s.Destination,
		&s.HSCode, &s.Description, &s.CurrentCompanyID, &s.WaybillNumber, &s.CustomReferenceNumber)
	s.CreatedAt = s.CreatedAt.UTC()
	s.ShipmentDate = s.ShipmentDate.UTC()
	return err
}

func (db *DB) CreateShipment(ctx context.Context, s *domain.Shipment) error {
	newID(&s.ID)
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	_, err := db.conn(ctx).Exec(ctx, `
		INSERT INTO shipments (id, hash_id, name, created_at, shipment_date, origin, destination, hs_code,
			description, current_company_id, waybill_number, custom_reference_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, s.ID, s.HashID, s.Name, s.CreatedAt, s.ShipmentDate, s.Origin, s.Destination, s.HSCode,
		s.Description, s.CurrentCompanyID, s.WaybillNumber, s.CustomReferenceNumber)
	return mapErr(err, "shipment "+s.HashID)
}

func (db *DB) GetShipment(ctx context.Context, id string) (domain.Shipment, error) {
	var s domain.Shipment
	err := scanShipment(db.conn(ctx).QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id), &s)
	return s, mapErr(err, "shipment "+id)
}

// LockShipment takes the shipment's row lock, which every chain change takes
// first. Outside a transaction the lock ends with the statement.
func (db *DB) LockShipment(ctx context.Context, id string) (domain.Shipment, error) {
	var s domain.Shipment
	err := scanShipment(db.conn(ctx).QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1 FOR UPDATE`, id), &s)
	return s, mapErr(err, "shipment "+id)
}

func (db *DB) FindShipmentByHash(ctx context.Context, hashID string) (domain.Shipment, bool, error) {
	row := db.conn(ctx).QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE hash_id = $1`, hashID)
	return find(row, scanShipment, "shipment")
}

func (db *DB) FindShipmentByName(ctx context.Context, name string) (domain.Shipment, bool, error) {
	row := db.conn(ctx).QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE name = $1 LIMIT 1`, name)
	return find(row, scanShipment, "shipment")
}

func (db *DB) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	rows, err := db.conn(ctx).Query(ctx, `SELECT `+shipmentColumns+` FROM shipments ORDER BY created_at`)
	return collect(rows, err, scanShipment, "shipments")
}

func (db *DB) UpdateShipmentHolder(ctx context.Context, shipmentID, companyID string) error {
	tag, err := db.conn(ctx).Exec(ctx, `UPDATE shipments SET current_company_id = $2 WHERE id = $1`, shipmentID, companyID)
	return affected(tag, err, "shipment "+shipmentID)
}

// Positions

const positionColumns = `id, hash_id, signed_hash, created_at, company_id, shipment_id, position, role`

func scanPosition(row pgx.Row, p *domain.Position) error {
	var role int
	err := row.Scan(&p.ID, &p.HashID, &p.SignedHash, &p.CreatedAt, &p.CompanyID, &p.ShipmentID, &p.Index, &role)
	p.Role = domain.Role(role)
	return err
}

func (db *DB) CreatePosition(ctx context.Context, p *domain.Position) error {
	newID(&p.ID)
	err := db.conn(ctx).QueryRow(ctx, `
		INSERT INTO positions (id, hash_id, signed_hash, company_id, shipment_id, position, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, p.ID, p.HashID, p.SignedHash, p.CompanyID, p.ShipmentID, p.Index, int(p.Role)).Scan(&p.CreatedAt)
	return mapErr(err, "position")
}

func (db *DB) GetPosition(ctx context.Context, id string) (domain.Position, error) {
	var p domain.Position
	err := scanPosition(db.conn(ctx).QueryRow(ctx, `SELECT `+positionColumns+` FROM positions WHERE id = $1`, id), &p)
	return p, mapErr(err, "position "+id)
}

func (db *DB) FindPosition(ctx context.Context, companyID, shipmentID string, index int) (domain.Position, bool, error) {
	row := db.conn(ctx).QueryRow(ctx, `
		SELECT `+positionColumns+` FROM positions
		WHERE company_id = $1 AND shipment_id = $2 AND position = $3
	`, companyID, shipmentID, index)
	return find(row, scanPosition, "position")
}

func (db *DB) ListPositions(ctx context.Context, shipmentID string) ([]domain.Position, error) {
	rows, err := db.conn(ctx).Query(ctx, `
		SELECT `+positionColumns+` FROM positions WHERE shipment_id = $1 ORDER BY position, created_at
	`, shipmentID)
	return collect(rows, err, scanPosition, "positions")
}

func (db *DB) ListAllPositions(ctx context.Context) ([]domain.Position, error) {
	rows, err := db.conn(ctx).Query(ctx, `SELECT `+positionColumns+` FROM positions ORDER BY shipment_id, position`)
	return collect(rows, err, scanPosition, "positions")
}

func (db *DB) SetPositionSignature(ctx context.Context, id, signedHash string) error {
	tag, err := db.conn(ctx).Exec(ctx, `UPDATE positions SET signed_hash = $2 WHERE id = $1`, id, signedHash)
	return affected(tag, err, "position "+id)
}

// Validations

const validationColumns = `id, created_at, expires_at, signed_location_key, COALESCE(signer_company_id, ''),
	signer_validation_id, location_id`

func scanValidation(row pgx.Row, v *domain.Validation) error {
	return row.Scan(&v.ID, &v.CreatedAt, &v.ExpiresAt, &v.SignedLocationKey, &v.SignerCompanyID,
		&v.SignerValidationID, &v.LocationID)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (db *DB) CreateValidation(ctx context.Context, v *domain.Validation) error {
	newID(&v.ID)
	err := db.conn(ctx).QueryRow(ctx, `
		INSERT INTO validations (id, expires_at, signed_location_key, signer_company_id, signer_validation_id, location_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, v.ID, v.ExpiresAt, v.SignedLocationKey, nullable(v.SignerCompanyID), v.SignerValidationID, v.LocationID).Scan(&v.CreatedAt)
	return mapErr(err, "validation")
}

func (db *DB) GetValidation(ctx context.Context, id string) (domain.Validation, error) {
	var v domain.Validation
	err := scanValidation(db.conn(ctx).QueryRow(ctx, `SELECT `+validationColumns+` FROM validations WHERE id = $1`, id), &v)
	return v, mapErr(err, "validation "+id)
}

func (db *DB) FindValidationBySigner(ctx context.Context, signerCompanyID, signerValidationID string) (domain.Validation, bool, error) {
	row := db.conn(ctx).QueryRow(ctx, `
		SELECT `+validationColumns+` FROM validations
		WHERE signer_company_id = $1 AND signer_validation_id = $2
	`, signerCompanyID, signerValidationID)
	return find(row, scanValidation, "validation")
}

func (db *DB) ListValidationsByLocation(ctx context.Context, locationID string) ([]domain.Validation, error) {
	rows, err := db.conn(ctx).Query(ctx, `
		SELECT `+validationColumns+` FROM validations WHERE location_id = $1 ORDER BY created_at
	`, locationID)
	return collect(rows, err, scanValidation, "validations")
}

// MarkValidationSigned only touches pending rows, so a second signature is a
// conflict even under concurrent callers.
func (db *DB) MarkValidationSigned(ctx context.Context, id, signedLocationKey, signerCompanyID string) error {
	tag, err := db.conn(ctx).Exec(ctx, `
		UPDATE validations SET signed_location_key = $2, signer_company_id = $3
		WHERE id = $1 AND signed_location_key = ''
	`, id, signedLocationKey, signerCompanyID)
	if err != nil {
		return mapErr(err, "validation "+id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if _, err := db.GetValidation(ctx, id); err != nil {
		return err
	}
	return domain.Conflict("validation %s is already signed", id)
}
