// Package ledger builds and orders the custody chain of each shipment.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	api "eonpeers/internal/api"
	"eonpeers/internal/attest"
	"eonpeers/internal/digest"
	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
)

type Service struct {
	repo     ports.Repository
	attestor *attest.Attestor
	log      logrus.FieldLogger
	now      func() time.Time
}

func New(repo ports.Repository, attestor *attest.Attestor, log logrus.FieldLogger) *Service {
	return &Service{
		repo:     repo,
		attestor: attestor,
		log:      log,
		now:      time.Now,
	}
}

// PositionInput describes a chain entry. ExternalDigest and ExternalSignature
// are set when the entry arrives from another node.
type PositionInput struct {
	CompanyID         string
	ShipmentID        string
	Index             int
	Role              domain.Role
	ExternalDigest    string
	ExternalSignature string
}

// CreateShipment registers a shipment originating at this node and computes
// its digest. Names are unique among shipments of this node.
func (s *Service) CreateShipment(ctx context.Context, req api.NewShipment) (domain.Shipment, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Shipment{}, domain.Invalid("shipment name is required")
	}
	var out domain.Shipment
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		if _, found, err := s.repo.FindShipmentByName(ctx, req.Name); err != nil {
			return err
		} else if found {
			return domain.Conflict("another shipment already exists with name %s", req.Name)
		}

		holderID := req.CurrentCompanyID
		if holderID == "" {
			local, found, err := s.repo.LocalCompany(ctx)
			if err != nil {
				return err
			}
			if !found {
				return domain.Invalid("node owner not configured")
			}
			holderID = local.ID
		} else if _, err := s.repo.GetCompany(ctx, holderID); err != nil {
			return err
		}

		// Storage keeps microseconds; the digest must survive a round trip.
		createdAt := s.now().UTC().Truncate(time.Microsecond)
		shipmentDate := req.ShipmentDate.UTC().Truncate(time.Microsecond)
		out = domain.Shipment{
			Name:                  req.Name,
			CreatedAt:             createdAt,
			ShipmentDate:          shipmentDate,
			Origin:                req.Origin,
			Destination:           req.Destination,
			HSCode:                req.HSCode,
			Description:           req.Description,
			CurrentCompanyID:      holderID,
			WaybillNumber:         req.WaybillNumber,
			CustomReferenceNumber: req.CustomReferenceNumber,
		}
		out.HashID = digest.Shipment(out.Name, createdAt, shipmentDate, out.Origin, out.Destination, out.HSCode, out.Description)
		return s.repo.CreateShipment(ctx, &out)
	})
	if err != nil {
		return domain.Shipment{}, err
	}
	s.log.WithFields(logrus.Fields{"shipment_id": out.ID, "hash_id": out.HashID}).Info("shipment created")
	return out, nil
}

// ImportShipment stores a shipment received from a peer. Its digest is kept
// as received.
func (s *Service) ImportShipment(ctx context.Context, sh domain.Shipment) (domain.Shipment, error) {
	if sh.HashID == "" {
		return domain.Shipment{}, domain.Invalid("shipment hash_id is required")
	}
	if _, err := digest.ParseHex(sh.HashID); err != nil {
		return domain.Shipment{}, domain.Invalid("shipment hash_id: %v", err)
	}
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		if _, found, err := s.repo.FindShipmentByHash(ctx, sh.HashID); err != nil {
			return err
		} else if found {
			return domain.Conflict("shipment %s already exists", sh.HashID)
		}
		sh.ID = ""
		sh.CreatedAt = s.now().UTC()
		return s.repo.CreateShipment(ctx, &sh)
	})
	if err != nil {
		return domain.Shipment{}, err
	}
	return sh, nil
}

// CreateLocalPosition adds an unsigned chain entry built on this node.
func (s *Service) CreateLocalPosition(ctx context.Context, req api.NewPosition) (domain.Position, error) {
	return s.CreatePosition(ctx, PositionInput{
		CompanyID:  req.CompanyID,
		ShipmentID: req.ShipmentID,
		Index:      req.Position,
		Role:       domain.Role(req.Role),
	})
}

// CreatePosition adds one entry to a shipment's chain. The digest is always
// recomputed; a supplied digest that differs is rejected as tampered, and a
// supplied signature must verify against the holder's key. The shipment stays
// locked until the transaction commits.
func (s *Service) CreatePosition(ctx context.Context, in PositionInput) (domain.Position, error) {
	if in.Index < 0 {
		return domain.Position{}, domain.Invalid("position index must not be negative")
	}
	var out domain.Position
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		sh, err := s.repo.LockShipment(ctx, in.ShipmentID)
		if err != nil {
			return err
		}
		holder, err := s.repo.GetCompany(ctx, in.CompanyID)
		if err != nil {
			return err
		}
		if _, found, err := s.repo.FindPosition(ctx, holder.ID, sh.ID, in.Index); err != nil {
			return err
		} else if found {
			return domain.Conflict("position %d of shipment %s already exists for company %s", in.Index, sh.HashID, holder.VATNumber)
		}

		hashID := digest.Position(in.Index, int(in.Role), holder.VATNumber, sh.HashID)
		if in.ExternalDigest != "" && in.ExternalDigest != hashID {
			return domain.Integrity("position %d of shipment %s: digest %s does not match recomputed %s", in.Index, sh.HashID, in.ExternalDigest, hashID)
		}
		if in.ExternalSignature != "" {
			if err := s.attestor.VerifyPosition(hashID, in.ExternalSignature, holder); err != nil {
				return err
			}
		}

		out = domain.Position{
			HashID:     hashID,
			SignedHash: in.ExternalSignature,
			CompanyID:  holder.ID,
			ShipmentID: sh.ID,
			Index:      in.Index,
			Role:       in.Role,
		}
		return s.repo.CreatePosition(ctx, &out)
	})
	if err != nil {
		return domain.Position{}, err
	}
	return out, nil
}

// SignLocalPosition attests a position held by the node owner. Signing again
// replaces the previous signature.
func (s *Service) SignLocalPosition(ctx context.Context, positionID string) (domain.Position, error) {
	var out domain.Position
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetPosition(ctx, positionID)
		if err != nil {
			return err
		}
		if _, err := s.repo.LockShipment(ctx, p.ShipmentID); err != nil {
			return err
		}
		// Re-read under the lock.
		if p, err = s.repo.GetPosition(ctx, positionID); err != nil {
			return err
		}

		holder, err := s.repo.GetCompany(ctx, p.CompanyID)
		if err != nil {
			return err
		}
		sig, err := s.attestor.AttestPosition(p, holder)
		if err != nil {
			return err
		}
		if err := s.repo.SetPositionSignature(ctx, p.ID, sig); err != nil {
			return err
		}
		p.SignedHash = sig
		out = p
		return nil
	})
	if err != nil {
		return domain.Position{}, err
	}
	s.log.WithFields(logrus.Fields{"position_id": out.ID, "shipment_id": out.ShipmentID}).Debug("position signed")
	return out, nil
}

// OrderedPositions returns the chain of a shipment by ascending index.
func (s *Service) OrderedPositions(ctx context.Context, shipmentID string) ([]domain.Position, error) {
	if _, err := s.repo.GetShipment(ctx, shipmentID); err != nil {
		return nil, err
	}
	return s.repo.ListPositions(ctx, shipmentID)
}

// NextHolder returns the company of the entry following the current holder's
// last entry. found is false when the current holder closes the chain.
func (s *Service) NextHolder(ctx context.Context, shipmentID string) (next domain.Company, found bool, err error) {
	sh, err := s.repo.GetShipment(ctx, shipmentID)
	if err != nil {
		return domain.Company{}, false, err
	}
	chain, err := s.repo.ListPositions(ctx, sh.ID)
	if err != nil {
		return domain.Company{}, false, err
	}
	at := HolderEntry(chain, sh.CurrentCompanyID)
	if at < 0 {
		return domain.Company{}, false, domain.Invalid("current holder of shipment %s is not part of its chain", sh.HashID)
	}
	if at == len(chain)-1 {
		return domain.Company{}, false, nil
	}
	next, err = s.repo.GetCompany(ctx, chain[at+1].CompanyID)
	if err != nil {
		return domain.Company{}, false, err
	}
	return next, true, nil
}

// HolderEntry is the offset in an ordered chain of companyID's last entry, or
// -1 when it holds none.
func HolderEntry(chain []domain.Position, companyID string) int {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].CompanyID == companyID {
			return i
		}
	}
	return -1
}

func (s *Service) GetShipment(ctx context.Context, id string) (domain.Shipment, error) {
	return s.repo.GetShipment(ctx, id)
}

func (s *Service) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	return s.repo.ListShipments(ctx)
}

func (s *Service) GetPosition(ctx context.Context, id string) (domain.Position, error) {
	return s.repo.GetPosition(ctx, id)
}

func (s *Service) ListPositions(ctx context.Context) ([]domain.Position, error) {
	return s.repo.ListAllPositions(ctx)
}
