// Package gossip hands shipments over to the next custodian's node and takes
// them in from the previous one.
package gossip

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/sirupsen/logrus"

	api "eonpeers/internal/api"
	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
	"eonpeers/internal/services/ledger"
)

// MinChain is the shortest chain that can be transferred: the current holder
// and the one it hands over to.
const MinChain = 2

type Service struct {
	repo   ports.Repository
	ledger *ledger.Service
	jobs   ports.Dispatcher
	log    logrus.FieldLogger
}

func New(repo ports.Repository, ledger *ledger.Service, jobs ports.Dispatcher, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, ledger: ledger, jobs: jobs, log: log}
}

// PrepareTransfer renders a shipment and its ordered chain for the next
// holder. Unsigned entries of the node owner are signed first, under the
// shipment lock. A shipment that cannot be resolved is a validation error.
func (s *Service) PrepareTransfer(ctx context.Context, shipmentID string) (api.TransferPayload, domain.Company, error) {
	var (
		payload api.TransferPayload
		next    domain.Company
	)
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		sh, err := s.repo.LockShipment(ctx, shipmentID)
		if domain.KindOf(err) == domain.KindNotFound {
			return domain.Invalid("shipment %s cannot be resolved", shipmentID)
		}
		if err != nil {
			return err
		}
		chain, err := s.ledger.OrderedPositions(ctx, sh.ID)
		if err != nil {
			return err
		}
		if len(chain) < MinChain {
			return domain.Invalid("shipment %s needs at least %d positions to be transferred, has %d", sh.HashID, MinChain, len(chain))
		}
		holder, err := s.repo.GetCompany(ctx, sh.CurrentCompanyID)
		if err != nil {
			return err
		}

		entries := make([]api.TransferPosition, 0, len(chain))
		for _, p := range chain {
			company, err := s.repo.GetCompany(ctx, p.CompanyID)
			if err != nil {
				return err
			}
			if company.IsLocal && !p.Signed() {
				if p, err = s.ledger.SignLocalPosition(ctx, p.ID); err != nil {
					return err
				}
			}
			entries = append(entries, api.TransferPosition{
				CompanyVAT: company.VATNumber,
				Position:   p.Index,
				Role:       int(p.Role),
				HashID:     p.HashID,
				SignedHash: p.SignedHash,
			})
		}

		var found bool
		next, found, err = s.ledger.NextHolder(ctx, sh.ID)
		if err != nil {
			return err
		}
		if !found {
			return domain.Invalid("shipment %s has no holder after %s", sh.HashID, holder.VATNumber)
		}

		payload = api.TransferPayload{
			HashID:                sh.HashID,
			Name:                  sh.Name,
			ShipmentDate:          sh.ShipmentDate,
			Origin:                sh.Origin,
			Destination:           sh.Destination,
			HSCode:                sh.HSCode,
			Description:           sh.Description,
			CurrentCompanyVAT:     holder.VATNumber,
			WaybillNumber:         sh.WaybillNumber,
			CustomReferenceNumber: sh.CustomReferenceNumber,
			Positions:             entries,
		}
		return nil
	})
	if err != nil {
		return api.TransferPayload{}, domain.Company{}, err
	}
	return payload, next, nil
}

// SendToNextPeer queues the transfer of a shipment to its next holder's node.
// Delivery happens in the background.
func (s *Service) SendToNextPeer(ctx context.Context, shipmentID string) (string, error) {
	payload, next, err := s.PrepareTransfer(ctx, shipmentID)
	if err != nil {
		return "", err
	}
	if next.IsLocal {
		return "", domain.Invalid("next holder of shipment %s is the node owner", payload.HashID)
	}
	if next.BaseURL == "" {
		return "", domain.Invalid("company %s has no base url", next.VATNumber)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.Internal("encode transfer", err)
	}
	jobID, err := s.jobs.Submit(ctx, ports.WorkRequest{
		Kind:    ports.WorkPost,
		URL:     api.Endpoint(next.BaseURL, api.PathImportShipment),
		Payload: body,
		Subject: shipmentID,
	})
	if err != nil {
		return "", err
	}
	s.log.WithFields(logrus.Fields{"shipment_id": shipmentID, "peer": next.VATNumber, "job_id": jobID}).Info("transfer queued")
	return jobID, nil
}

// ReceiveTransfer ingests a shipment sent by its current holder. The whole
// import is one transaction: any rejected position discards the shipment.
func (s *Service) ReceiveTransfer(ctx context.Context, payload api.TransferPayload) (domain.Shipment, error) {
	var out domain.Shipment
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		sender, found, err := s.repo.FindCompanyByVAT(ctx, payload.CurrentCompanyVAT)
		if err != nil {
			return err
		}
		if !found {
			return domain.Invalid("sending company %s is not known", payload.CurrentCompanyVAT)
		}
		if _, found, err := s.repo.FindShipmentByHash(ctx, payload.HashID); err != nil {
			return err
		} else if found {
			return domain.Conflict("shipment %s already exists", payload.HashID)
		}

		sh, err := s.ledger.ImportShipment(ctx, domain.Shipment{
			HashID:                payload.HashID,
			Name:                  payload.Name,
			ShipmentDate:          payload.ShipmentDate,
			Origin:                payload.Origin,
			Destination:           payload.Destination,
			HSCode:                payload.HSCode,
			Description:           payload.Description,
			CurrentCompanyID:      sender.ID,
			WaybillNumber:         payload.WaybillNumber,
			CustomReferenceNumber: payload.CustomReferenceNumber,
		})
		if err != nil {
			return err
		}
		if len(payload.Positions) < MinChain {
			return domain.Invalid("transfer of shipment %s carries %d positions, need at least %d", payload.HashID, len(payload.Positions), MinChain)
		}

		chain := make([]domain.Position, 0, len(payload.Positions))
		for _, tp := range payload.Positions {
			holder, found, err := s.repo.FindCompanyByVAT(ctx, tp.CompanyVAT)
			if err != nil {
				return err
			}
			if !found {
				return domain.Invalid("holder %s of position %d is not known", tp.CompanyVAT, tp.Position)
			}
			p, err := s.ledger.CreatePosition(ctx, ledger.PositionInput{
				CompanyID:         holder.ID,
				ShipmentID:        sh.ID,
				Index:             tp.Position,
				Role:              domain.Role(tp.Role),
				ExternalDigest:    tp.HashID,
				ExternalSignature: tp.SignedHash,
			})
			if err != nil {
				return err
			}
			chain = append(chain, p)
		}

		if err := s.takeCustody(ctx, &sh, sender, chain); err != nil {
			return err
		}
		out = sh
		return nil
	})
	if err != nil {
		s.log.WithError(err).WithField("hash_id", payload.HashID).Warn("transfer rejected")
		return domain.Shipment{}, err
	}
	s.log.WithFields(logrus.Fields{"shipment_id": out.ID, "hash_id": out.HashID}).Info("transfer received")
	return out, nil
}

// takeCustody makes the node owner the current holder when it follows the
// sender in the chain.
func (s *Service) takeCustody(ctx context.Context, sh *domain.Shipment, sender domain.Company, chain []domain.Position) error {
	sort.Slice(chain, func(i, j int) bool { return chain[i].Index < chain[j].Index })
	at := ledger.HolderEntry(chain, sender.ID)
	if at < 0 || at == len(chain)-1 {
		return nil
	}
	local, found, err := s.repo.LocalCompany(ctx)
	if err != nil || !found {
		return err
	}
	if chain[at+1].CompanyID != local.ID {
		return nil
	}
	if err := s.repo.UpdateShipmentHolder(ctx, sh.ID, local.ID); err != nil {
		return err
	}
	sh.CurrentCompanyID = local.ID
	return nil
}
