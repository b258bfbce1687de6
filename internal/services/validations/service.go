// Package validations runs the handshake by which one company asks another to
// vouch for one of its locations.
//
// The requester invites a signer; the signer records the request as pending,
// signs it once, and posts the result back, where it is stored as signed.
package validations

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	api "eonpeers/internal/api"
	"eonpeers/internal/attest"
	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
	"eonpeers/internal/services/locations"
)

type Service struct {
	repo      ports.Repository
	locations *locations.Service
	jobs      ports.Dispatcher
	attestor  *attest.Attestor
	log       logrus.FieldLogger
}

func New(repo ports.Repository, locs *locations.Service, jobs ports.Dispatcher, attestor *attest.Attestor, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, locations: locs, jobs: jobs, attestor: attestor, log: log}
}

// Invite asks signerCompanyID's node to validate a location of the node owner.
func (s *Service) Invite(ctx context.Context, locationID, signerCompanyID string) (string, error) {
	loc, err := s.repo.GetLocation(ctx, locationID)
	if err != nil {
		return "", err
	}
	owner, err := s.repo.GetCompany(ctx, loc.CompanyID)
	if err != nil {
		return "", err
	}
	if !owner.IsLocal {
		return "", domain.Invalid("only locations of the node owner can be put up for validation")
	}
	signer, err := s.repo.GetCompany(ctx, signerCompanyID)
	if err != nil {
		return "", err
	}
	if signer.IsLocal {
		return "", domain.Invalid("the node owner cannot validate its own location")
	}
	if signer.BaseURL == "" {
		return "", domain.Invalid("company %s has no base url", signer.VATNumber)
	}

	body, err := json.Marshal(api.ValidationRequest{
		LocationName:     loc.Name,
		LocationData:     loc.LocationData,
		LocationKey:      loc.LocationKey,
		CompanyPublicKey: s.attestor.PublicKeyHex(),
	})
	if err != nil {
		return "", domain.Internal("encode validation request", err)
	}
	jobID, err := s.jobs.Submit(ctx, ports.WorkRequest{
		Kind:    ports.WorkPost,
		URL:     api.Endpoint(signer.BaseURL, api.PathRequestValidation),
		Payload: body,
		Subject: loc.ID,
	})
	if err != nil {
		return "", err
	}
	s.log.WithFields(logrus.Fields{"location_id": loc.ID, "peer": signer.VATNumber, "job_id": jobID}).Info("validation requested")
	return jobID, nil
}

// Request records a pending validation of the requesting company's location,
// importing the location when it is not known yet.
func (s *Service) Request(ctx context.Context, req api.ValidationRequest) (domain.Validation, error) {
	if req.CompanyPublicKey == "" || req.LocationKey == "" {
		return domain.Validation{}, domain.Invalid("company_public_key and location_key are required")
	}
	var out domain.Validation
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		requester, found, err := s.repo.FindCompanyByPublicKey(ctx, req.CompanyPublicKey)
		if err != nil {
			return err
		}
		if !found || requester.VATNumber == "" {
			return domain.Invalid("requesting company is not known")
		}
		if requester.IsLocal {
			return domain.Invalid("the node owner cannot validate its own location")
		}

		loc, found, err := s.repo.FindLocationByKey(ctx, req.LocationKey)
		if err != nil {
			return err
		}
		if found && loc.CompanyID != requester.ID {
			return domain.Conflict("location key belongs to another company")
		}
		if !found {
			loc, err = s.locations.Import(ctx, locations.External{
				Name:         req.LocationName,
				LocationData: req.LocationData,
				LocationKey:  req.LocationKey,
				CompanyID:    requester.ID,
			})
			if err != nil {
				return err
			}
		}

		out = domain.Validation{LocationID: loc.ID}
		return s.repo.CreateValidation(ctx, &out)
	})
	if err != nil {
		return domain.Validation{}, err
	}
	s.log.WithFields(logrus.Fields{"validation_id": out.ID, "location_id": out.LocationID}).Info("validation pending")
	return out, nil
}

// Sign attests a pending validation on behalf of the node owner and queues the
// result for the location's owner. A validation is signed at most once.
func (s *Service) Sign(ctx context.Context, id string) (domain.Validation, string, error) {
	var (
		out   domain.Validation
		jobID string
	)
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		v, err := s.repo.GetValidation(ctx, id)
		if err != nil {
			return err
		}
		if v.Status() == domain.ValidationSigned {
			return domain.Conflict("validation %s is already signed", v.ID)
		}
		local, found, err := s.repo.LocalCompany(ctx)
		if err != nil {
			return err
		}
		if !found {
			return domain.Invalid("node owner not configured")
		}
		loc, err := s.repo.GetLocation(ctx, v.LocationID)
		if err != nil {
			return err
		}
		requester, err := s.repo.GetCompany(ctx, loc.CompanyID)
		if err != nil {
			return err
		}
		if requester.IsLocal {
			return domain.Invalid("the node owner cannot validate its own location")
		}

		sig, err := s.attestor.AttestLocation(loc)
		if err != nil {
			return err
		}
		if err := s.repo.MarkValidationSigned(ctx, v.ID, sig, local.ID); err != nil {
			return err
		}
		v.SignedLocationKey = sig
		v.SignerCompanyID = local.ID
		out = v

		if requester.BaseURL == "" {
			s.log.WithField("validation_id", v.ID).Warn("requester has no base url, result not sent")
			return nil
		}
		body, err := json.Marshal(api.ValidationResult{
			LocationKey:        loc.LocationKey,
			SignedLocationKey:  sig,
			SignerPublicKey:    s.attestor.PublicKeyHex(),
			SignerValidationID: v.ID,
		})
		if err != nil {
			return domain.Internal("encode validation result", err)
		}
		jobID, err = s.jobs.Submit(ctx, ports.WorkRequest{
			Kind:    ports.WorkPost,
			URL:     api.Endpoint(requester.BaseURL, api.PathValidations),
			Payload: body,
			Subject: v.ID,
		})
		return err
	})
	if err != nil {
		return domain.Validation{}, "", err
	}
	s.log.WithFields(logrus.Fields{"validation_id": out.ID, "job_id": jobID}).Info("validation signed")
	return out, jobID, nil
}

// Receive records the attestation a signer sent back for one of our locations.
// Each result becomes its own signed row; redelivery of the same result is a
// conflict.
func (s *Service) Receive(ctx context.Context, res api.ValidationResult) (domain.Validation, error) {
	if res.LocationKey == "" || res.SignedLocationKey == "" || res.SignerValidationID == "" {
		return domain.Validation{}, domain.Invalid("location_key, signed_location_key and signer_validation_id are required")
	}
	var out domain.Validation
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		loc, found, err := s.repo.FindLocationByKey(ctx, res.LocationKey)
		if err != nil {
			return err
		}
		if !found {
			return domain.NotFound("no location with the given key")
		}
		signer, found, err := s.repo.FindCompanyByPublicKey(ctx, res.SignerPublicKey)
		if err != nil {
			return err
		}
		if !found || signer.VATNumber == "" {
			return domain.Invalid("signing company is not known")
		}
		if err := s.attestor.VerifyLocationAttestation(loc, res.SignedLocationKey, signer); err != nil {
			return err
		}
		if _, dup, err := s.repo.FindValidationBySigner(ctx, signer.ID, res.SignerValidationID); err != nil {
			return err
		} else if dup {
			return domain.Conflict("validation %s of company %s already recorded", res.SignerValidationID, signer.VATNumber)
		}

		out = domain.Validation{
			SignedLocationKey:  res.SignedLocationKey,
			SignerCompanyID:    signer.ID,
			SignerValidationID: res.SignerValidationID,
			LocationID:         loc.ID,
		}
		return s.repo.CreateValidation(ctx, &out)
	})
	if err != nil {
		return domain.Validation{}, err
	}
	s.log.WithFields(logrus.Fields{"validation_id": out.ID, "location_id": out.LocationID}).Info("validation received")
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Validation, error) {
	return s.repo.GetValidation(ctx, id)
}

func (s *Service) ListByLocation(ctx context.Context, locationID string) ([]domain.Validation, error) {
	if _, err := s.repo.GetLocation(ctx, locationID); err != nil {
		return nil, err
	}
	return s.repo.ListValidationsByLocation(ctx, locationID)
}
