package domain

import "time"

// Core domain models used internally. Wire shapes exchanged with peers live in
// internal/api; keep these decoupled where helpful.

// Company is a participating organisation. VATNumber is the business key shared
// across nodes; exactly one Company per node has IsLocal set.
type Company struct {
	ID        string
	Name      string
	VATNumber string
	BaseURL   string
	PublicKey string // hex, empty until learned
	IsLocal   bool
	CreatedAt time.Time
}

type Location struct {
	ID           string
	Name         string
	LocationData string
	LocationKey  string // owner's signature over the digest of LocationData, hex
	CompanyID    string
	CreatedAt    time.Time
}

// Shipment is one tracked parcel. HashID is its identity on the network and is
// never recomputed once received from a peer.
type Shipment struct {
	ID                    string
	HashID                string
	Name                  string
	CreatedAt             time.Time
	ShipmentDate          time.Time
	Origin                string
	Destination           string
	HSCode                string
	Description           string
	CurrentCompanyID      string
	WaybillNumber         string
	CustomReferenceNumber string
}

// Position is one entry of a shipment's custody chain.
type Position struct {
	ID         string
	HashID     string
	SignedHash string
	CreatedAt  time.Time
	CompanyID  string
	ShipmentID string
	Index      int
	Role       Role
}

func (p Position) Signed() bool { return p.SignedHash != "" }

type Validation struct {
	ID                 string
	CreatedAt          time.Time
	ExpiresAt          *time.Time
	SignedLocationKey  string
	SignerCompanyID    string
	SignerValidationID string
	LocationID         string
}

type ValidationStatus string

const (
	ValidationPending ValidationStatus = "pending"
	ValidationSigned  ValidationStatus = "signed"
)

func (v Validation) Status() ValidationStatus {
	if v.SignedLocationKey == "" {
		return ValidationPending
	}
	return ValidationSigned
}

// Role is the integer code of the part a company plays at a position.
type Role int

const (
	RoleBrandOwner Role = 1
	RoleProducer   Role = 2
	RoleCarrier    Role = 3
	RoleForwarder  Role = 4
	RoleCustoms    Role = 5
	RoleConsignee  Role = 6
)

var roleNames = map[Role]string{
	RoleBrandOwner: "brand_owner",
	RoleProducer:   "producer",
	RoleCarrier:    "carrier",
	RoleForwarder:  "forwarder",
	RoleCustoms:    "customs",
	RoleConsignee:  "consignee",
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "unknown"
}
