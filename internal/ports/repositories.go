package ports

import (
	"context"

	"eonpeers/internal/domain"
)

// Repositories must enforce the uniqueness constraints of the data model and
// report violations as domain conflicts. Get* methods return a domain NotFound
// error for unknown ids; Find* methods report absence through found.

// CompanyRepository stores companies keyed by VAT number.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, c *domain.Company) error
	GetCompany(ctx context.Context, id string) (domain.Company, error)
	FindCompanyByVAT(ctx context.Context, vat string) (c domain.Company, found bool, err error)
	FindCompanyByPublicKey(ctx context.Context, publicKey string) (c domain.Company, found bool, err error)
	LocalCompany(ctx context.Context) (c domain.Company, found bool, err error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, c domain.Company) error
	DeleteCompany(ctx context.Context, id string) error
}

// LocationRepository stores locations keyed by location key.
type LocationRepository interface {
	CreateLocation(ctx context.Context, l *domain.Location) error
	GetLocation(ctx context.Context, id string) (domain.Location, error)
	FindLocationByKey(ctx context.Context, locationKey string) (l domain.Location, found bool, err error)
	FindLocationByName(ctx context.Context, companyID, name string) (l domain.Location, found bool, err error)
	ListLocationsByCompany(ctx context.Context, companyID string) ([]domain.Location, error)
}

// ShipmentRepository stores shipments keyed by hash id.
type ShipmentRepository interface {
	CreateShipment(ctx context.Context, s *domain.Shipment) error
	GetShipment(ctx context.Context, id string) (domain.Shipment, error)
	// LockShipment reads a shipment and keeps its chain from changing in other
	// transactions until the transaction in ctx ends. Call it inside InTx
	// before touching the shipment's positions.
	LockShipment(ctx context.Context, id string) (domain.Shipment, error)
	FindShipmentByHash(ctx context.Context, hashID string) (s domain.Shipment, found bool, err error)
	FindShipmentByName(ctx context.Context, name string) (s domain.Shipment, found bool, err error)
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
	UpdateShipmentHolder(ctx context.Context, shipmentID, companyID string) error
}

// PositionRepository stores chain entries, unique per (company, shipment, index).
type PositionRepository interface {
	CreatePosition(ctx context.Context, p *domain.Position) error
	GetPosition(ctx context.Context, id string) (domain.Position, error)
	FindPosition(ctx context.Context, companyID, shipmentID string, index int) (p domain.Position, found bool, err error)
	// ListPositions returns a shipment's chain in ascending index order.
	ListPositions(ctx context.Context, shipmentID string) ([]domain.Position, error)
	ListAllPositions(ctx context.Context) ([]domain.Position, error)
	SetPositionSignature(ctx context.Context, id, signedHash string) error
}

// ValidationRepository stores validation records. They are never deleted.
type ValidationRepository interface {
	CreateValidation(ctx context.Context, v *domain.Validation) error
	GetValidation(ctx context.Context, id string) (domain.Validation, error)
	FindValidationBySigner(ctx context.Context, signerCompanyID, signerValidationID string) (v domain.Validation, found bool, err error)
	ListValidationsByLocation(ctx context.Context, locationID string) ([]domain.Validation, error)
	// MarkValidationSigned moves a pending record to signed and fails with a
	// conflict if it was already signed.
	MarkValidationSigned(ctx context.Context, id, signedLocationKey, signerCompanyID string) error
}

// Transactor runs fn so that every repository call made with the ctx it
// receives commits or rolls back together.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repository is the node's whole entity store.
type Repository interface {
	Transactor
	CompanyRepository
	LocationRepository
	ShipmentRepository
	PositionRepository
	ValidationRepository
}
