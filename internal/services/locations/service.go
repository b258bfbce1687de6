package locations

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	api "eonpeers/internal/api"
	"eonpeers/internal/attest"
	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
)

type Service struct {
	repo     ports.Repository
	attestor *attest.Attestor
	log      logrus.FieldLogger
}

func New(repo ports.Repository, attestor *attest.Attestor, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, attestor: attestor, log: log}
}

// External is a location learned from the node of its owner.
type External struct {
	Name         string
	LocationData string
	LocationKey  string
	CompanyID    string
}

// Create stores a location owned by the node owner and signs its data. An
// empty company id means the node owner.
func (s *Service) Create(ctx context.Context, req api.NewLocation) (domain.Location, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Location{}, domain.Invalid("location name is required")
	}
	var out domain.Location
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		owner, err := s.owner(ctx, req.CompanyID)
		if err != nil {
			return err
		}
		if !owner.IsLocal {
			return domain.Invalid("locations of company %s must be imported from its node", owner.VATNumber)
		}
		if _, found, err := s.repo.FindLocationByName(ctx, owner.ID, req.Name); err != nil {
			return err
		} else if found {
			return domain.Conflict("company %s already has a location named %s", owner.VATNumber, req.Name)
		}
		key, err := s.attestor.SignLocationData(req.LocationData)
		if err != nil {
			return err
		}
		out = domain.Location{
			Name:         req.Name,
			LocationData: req.LocationData,
			LocationKey:  key,
			CompanyID:    owner.ID,
		}
		return s.repo.CreateLocation(ctx, &out)
	})
	if err != nil {
		return domain.Location{}, err
	}
	s.log.WithField("location_id", out.ID).Info("location created")
	return out, nil
}

func (s *Service) owner(ctx context.Context, companyID string) (domain.Company, error) {
	if companyID != "" {
		return s.repo.GetCompany(ctx, companyID)
	}
	local, found, err := s.repo.LocalCompany(ctx)
	if err != nil {
		return domain.Company{}, err
	}
	if !found {
		return domain.Company{}, domain.Invalid("node owner not configured")
	}
	return local, nil
}

// Import stores a remote company's location after checking that the owner
// signed its data.
func (s *Service) Import(ctx context.Context, ext External) (domain.Location, error) {
	if strings.TrimSpace(ext.Name) == "" || ext.LocationKey == "" {
		return domain.Location{}, domain.Invalid("location name and key are required")
	}
	var out domain.Location
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		owner, err := s.repo.GetCompany(ctx, ext.CompanyID)
		if err != nil {
			return err
		}
		if owner.IsLocal {
			return domain.Invalid("locations of the node owner cannot be imported")
		}
		if err := s.attestor.VerifyLocationKey(ext.LocationData, ext.LocationKey, owner); err != nil {
			return err
		}
		if _, found, err := s.repo.FindLocationByKey(ctx, ext.LocationKey); err != nil {
			return err
		} else if found {
			return domain.Conflict("location key already known")
		}
		out = domain.Location{
			Name:         ext.Name,
			LocationData: ext.LocationData,
			LocationKey:  ext.LocationKey,
			CompanyID:    owner.ID,
		}
		return s.repo.CreateLocation(ctx, &out)
	})
	if err != nil {
		return domain.Location{}, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Location, error) {
	return s.repo.GetLocation(ctx, id)
}

func (s *Service) ListByCompany(ctx context.Context, companyID string) ([]domain.Location, error) {
	return s.repo.ListLocationsByCompany(ctx, companyID)
}
