package ports

import (
	"context"

	api "eonpeers/internal/api"
	"eonpeers/internal/domain"
)

// Companies keeps the registry of participating companies.
type Companies interface {
	Register(ctx context.Context, req api.NewCompany) (domain.Company, error)
	Get(ctx context.Context, id string) (domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Locations(ctx context.Context, companyID string) ([]domain.Location, error)
	NodeOwner(ctx context.Context) (domain.Company, error)
}

// Locations creates and reads locations.
type Locations interface {
	Create(ctx context.Context, req api.NewLocation) (domain.Location, error)
	Get(ctx context.Context, id string) (domain.Location, error)
}

// Ledger owns shipments and their position chains.
type Ledger interface {
	CreateShipment(ctx context.Context, req api.NewShipment) (domain.Shipment, error)
	GetShipment(ctx context.Context, id string) (domain.Shipment, error)
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
	CreateLocalPosition(ctx context.Context, req api.NewPosition) (domain.Position, error)
	SignLocalPosition(ctx context.Context, positionID string) (domain.Position, error)
	OrderedPositions(ctx context.Context, shipmentID string) ([]domain.Position, error)
	GetPosition(ctx context.Context, id string) (domain.Position, error)
	ListPositions(ctx context.Context) ([]domain.Position, error)
}

// Validations runs both sides of the location validation handshake.
type Validations interface {
	Request(ctx context.Context, req api.ValidationRequest) (domain.Validation, error)
	Invite(ctx context.Context, locationID, signerCompanyID string) (jobID string, err error)
	Sign(ctx context.Context, id string) (v domain.Validation, jobID string, err error)
	Receive(ctx context.Context, res api.ValidationResult) (domain.Validation, error)
	Get(ctx context.Context, id string) (domain.Validation, error)
	ListByLocation(ctx context.Context, locationID string) ([]domain.Validation, error)
}

// Gossip moves shipments between custodians.
type Gossip interface {
	SendToNextPeer(ctx context.Context, shipmentID string) (jobID string, err error)
	ReceiveTransfer(ctx context.Context, payload api.TransferPayload) (domain.Shipment, error)
}
