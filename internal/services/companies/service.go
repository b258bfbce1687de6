package companies

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	api "eonpeers/internal/api"
	"eonpeers/internal/attest"
	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
)

// Service keeps the registry of known companies and the node owner.
type Service struct {
	companies ports.CompanyRepository
	locations ports.LocationRepository
	jobs      ports.Dispatcher
	attestor  *attest.Attestor
	log       logrus.FieldLogger
}

func New(companies ports.CompanyRepository, locations ports.LocationRepository, jobs ports.Dispatcher, attestor *attest.Attestor, log logrus.FieldLogger) *Service {
	return &Service{companies: companies, locations: locations, jobs: jobs, attestor: attestor, log: log}
}

// Owner is the configured identity of the company running this node.
type Owner struct {
	Name      string
	VATNumber string
	BaseURL   string
}

// Register records a remote company. When a base URL is given the node owner
// record of that URL is fetched in the background and reconciled.
func (s *Service) Register(ctx context.Context, req api.NewCompany) (domain.Company, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.VATNumber) == "" {
		return domain.Company{}, domain.Invalid("name and vat_number are required")
	}
	if _, found, err := s.companies.FindCompanyByVAT(ctx, req.VATNumber); err != nil {
		return domain.Company{}, err
	} else if found {
		return domain.Company{}, domain.Conflict("another company already exists with vat %s", req.VATNumber)
	}

	c := domain.Company{
		Name:      req.Name,
		VATNumber: req.VATNumber,
		BaseURL:   req.BaseURL,
		PublicKey: req.PublicKey,
	}
	if err := s.companies.CreateCompany(ctx, &c); err != nil {
		return domain.Company{}, err
	}

	if c.BaseURL != "" {
		jobID, err := s.jobs.Submit(ctx, ports.WorkRequest{
			Kind:    ports.WorkVerifyCompany,
			URL:     api.Endpoint(c.BaseURL, api.PathNodeOwner),
			Subject: c.ID,
		})
		if err != nil {
			s.log.WithError(err).WithField("company_id", c.ID).Warn("could not queue company verification")
		} else {
			s.log.WithFields(logrus.Fields{"company_id": c.ID, "job_id": jobID}).Debug("queued company verification")
		}
	}
	return c, nil
}

// Reconcile compares a company with the owner record its node reported. Empty
// local fields are filled in; any disagreement removes the local company.
func (s *Service) Reconcile(ctx context.Context, companyID string, remote api.NodeOwner) error {
	c, err := s.companies.GetCompany(ctx, companyID)
	if err != nil {
		return err
	}
	fields := []struct {
		name   string
		local  *string
		remote string
	}{
		{"name", &c.Name, remote.Name},
		{"vat_number", &c.VATNumber, remote.VATNumber},
		{"public_key", &c.PublicKey, remote.PublicKey},
	}
	for _, f := range fields {
		if *f.local == "" {
			*f.local = f.remote
		}
		if *f.local != f.remote {
			if err := s.companies.DeleteCompany(ctx, c.ID); err != nil {
				return err
			}
			s.log.WithFields(logrus.Fields{"company_id": c.ID, "field": f.name}).Warn("company does not match its node owner, removed")
			return domain.Integrity("company %s: %s does not match the node owner record", c.VATNumber, f.name)
		}
	}
	return s.companies.UpdateCompany(ctx, c)
}

// ReconcilePayload decodes a node owner body and reconciles it.
func (s *Service) ReconcilePayload(ctx context.Context, companyID string, body []byte) error {
	var remote api.NodeOwner
	if err := json.Unmarshal(body, &remote); err != nil {
		return domain.Invalid("malformed node owner record: %v", err)
	}
	return s.Reconcile(ctx, companyID, remote)
}

// EnsureOwner creates or refreshes the single local company. Its public key
// always follows the node's signer.
func (s *Service) EnsureOwner(ctx context.Context, owner Owner) (domain.Company, error) {
	publicKey := s.attestor.PublicKeyHex()
	local, found, err := s.companies.LocalCompany(ctx)
	if err != nil {
		return domain.Company{}, err
	}
	if found {
		if owner.VATNumber != "" && owner.VATNumber != local.VATNumber {
			return domain.Company{}, domain.Invalid("configured vat %s differs from node owner %s", owner.VATNumber, local.VATNumber)
		}
		changed := local.PublicKey != publicKey
		local.PublicKey = publicKey
		if owner.Name != "" && owner.Name != local.Name {
			local.Name, changed = owner.Name, true
		}
		if owner.BaseURL != "" && owner.BaseURL != local.BaseURL {
			local.BaseURL, changed = owner.BaseURL, true
		}
		if changed {
			if err := s.companies.UpdateCompany(ctx, local); err != nil {
				return domain.Company{}, err
			}
		}
		return local, nil
	}

	if owner.VATNumber == "" || owner.Name == "" {
		return domain.Company{}, domain.Invalid("node owner name and vat_number must be configured")
	}
	c := domain.Company{
		Name:      owner.Name,
		VATNumber: owner.VATNumber,
		BaseURL:   owner.BaseURL,
		PublicKey: publicKey,
		IsLocal:   true,
	}
	if err := s.companies.CreateCompany(ctx, &c); err != nil {
		return domain.Company{}, err
	}
	s.log.WithField("vat_number", c.VATNumber).Info("node owner created")
	return c, nil
}

func (s *Service) NodeOwner(ctx context.Context) (domain.Company, error) {
	c, found, err := s.companies.LocalCompany(ctx)
	if err != nil {
		return domain.Company{}, err
	}
	if !found {
		return domain.Company{}, domain.NotFound("node owner not configured")
	}
	c.PublicKey = s.attestor.PublicKeyHex()
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Company, error) {
	return s.companies.GetCompany(ctx, id)
}

// List returns the remote companies known to this node.
func (s *Service) List(ctx context.Context) ([]domain.Company, error) {
	all, err := s.companies.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Company, 0, len(all))
	for _, c := range all {
		if !c.IsLocal {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) Locations(ctx context.Context, companyID string) ([]domain.Location, error) {
	if _, err := s.companies.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.locations.ListLocationsByCompany(ctx, companyID)
}
