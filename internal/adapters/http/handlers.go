package httpadapter

import (
	"context"
	"time"

	api "eonpeers/internal/api"
	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
	"eonpeers/internal/workers/gossiprunner"
)

var errMissingBody = domain.Invalid("missing body")

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

// Companies

func (s *Server) ListCompanies(ctx context.Context, _ api.ListCompaniesRequestObject) (api.ListCompaniesResponseObject, error) {
	all, err := s.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.ListCompanies200JSONResponse, 0, len(all))
	for _, c := range all {
		out = append(out, toCompany(c))
	}
	return out, nil
}

func (s *Server) RegisterCompany(ctx context.Context, req api.RegisterCompanyRequestObject) (api.RegisterCompanyResponseObject, error) {
	if req.Body == nil {
		return nil, errMissingBody
	}
	c, err := s.Companies.Register(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.RegisterCompany201JSONResponse(created(c.ID, "company registered")), nil
}

func (s *Server) GetNodeOwner(ctx context.Context, _ api.GetNodeOwnerRequestObject) (api.GetNodeOwnerResponseObject, error) {
	c, err := s.Companies.NodeOwner(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetNodeOwner200JSONResponse{
		PublicID:  c.ID,
		Name:      c.Name,
		VATNumber: c.VATNumber,
		BaseURL:   c.BaseURL,
		PublicKey: c.PublicKey,
	}, nil
}

func (s *Server) GetCompany(ctx context.Context, req api.GetCompanyRequestObject) (api.GetCompanyResponseObject, error) {
	c, err := s.Companies.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetCompany200JSONResponse(toCompany(c)), nil
}

func (s *Server) ListCompanyLocations(ctx context.Context, req api.ListCompanyLocationsRequestObject) (api.ListCompanyLocationsResponseObject, error) {
	locs, err := s.Companies.Locations(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	out := make(api.ListCompanyLocations200JSONResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, toLocation(l))
	}
	return out, nil
}

// Locations

func (s *Server) CreateLocation(ctx context.Context, req api.CreateLocationRequestObject) (api.CreateLocationResponseObject, error) {
	if req.Body == nil {
		return nil, errMissingBody
	}
	l, err := s.Locations.Create(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.CreateLocation201JSONResponse(created(l.ID, "location created")), nil
}

func (s *Server) GetLocation(ctx context.Context, req api.GetLocationRequestObject) (api.GetLocationResponseObject, error) {
	l, err := s.Locations.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetLocation200JSONResponse(toLocation(l)), nil
}

func (s *Server) ListLocationValidations(ctx context.Context, req api.ListLocationValidationsRequestObject) (api.ListLocationValidationsResponseObject, error) {
	vs, err := s.Validations.ListByLocation(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	out := make(api.ListLocationValidations200JSONResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toValidation(v))
	}
	return out, nil
}

func (s *Server) InviteValidation(ctx context.Context, req api.InviteValidationRequestObject) (api.InviteValidationResponseObject, error) {
	if req.Body == nil {
		return nil, errMissingBody
	}
	jobID, err := s.Validations.Invite(ctx, req.Id, req.Body.SignerCompanyID)
	if err != nil {
		return nil, err
	}
	job, waited, err := s.await(ctx, req.Params.Wait, jobID)
	if err != nil {
		return nil, err
	}
	if waited {
		return api.InviteValidation200JSONResponse(job), nil
	}
	return api.InviteValidation202JSONResponse{Status: "queued", JobID: jobID}, nil
}

// Validations

func (s *Server) RequestValidation(ctx context.Context, req api.RequestValidationRequestObject) (api.RequestValidationResponseObject, error) {
	if req.Body == nil {
		return nil, errMissingBody
	}
	v, err := s.Validations.Request(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.RequestValidation201JSONResponse(created(v.ID, "validation pending")), nil
}

func (s *Server) ReceiveValidation(ctx context.Context, req api.ReceiveValidationRequestObject) (api.ReceiveValidationResponseObject, error) {
	if req.Body == nil {
		return nil, errMissingBody
	}
	v, err := s.Validations.Receive(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.ReceiveValidation201JSONResponse(created(v.ID, "validation recorded")), nil
}

func (s *Server) GetValidation(ctx context.Context, req api.GetValidationRequestObject) (api.GetValidationResponseObject, error) {
	v, err := s.Validations.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetValidation200JSONResponse(toValidation(v)), nil
}

func (s *Server) SignValidation(ctx context.Context, req api.SignValidationRequestObject) (api.SignValidationResponseObject, error) {
	_, jobID, err := s.Validations.Sign(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	job, waited, err := s.await(ctx, req.Params.Wait, jobID)
	if err != nil {
		return nil, err
	}
	if waited {
		return api.SignValidation200JSONResponse(job), nil
	}
	return api.SignValidation202JSONResponse{Status: "signed", JobID: jobID}, nil
}

// Shipments

func (s *Server) ListShipments(ctx context.Context, _ api.ListShipmentsRequestObject) (api.ListShipmentsResponseObject, error) {
	all, err := s.Ledger.ListShipments(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.ListShipments200JSONResponse, 0, len(all))
	for _, sh := range all {
		out = append(out, toShipment(sh))
	}
	return out, nil
}

func (s *Server) CreateShipment(ctx context.Context, req api.CreateShipmentRequestObject) (api.CreateShipmentResponseObject, error) {
	if req.Body == nil {
		return nil, errMissingBody
	}
	sh, err := s.Ledger.CreateShipment(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.CreateShipment201JSONResponse(created(sh.ID, "shipment created")), nil
}

func (s *Server) ImportShipment(ctx context.Context, req api.ImportShipmentRequestObject) (api.ImportShipmentResponseObject, error) {
	if req.Body == nil {
		return nil, errMissingBody
	}
	sh, err := s.Gossip.ReceiveTransfer(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.ImportShipment201JSONResponse(created(sh.ID, "shipment imported")), nil
}

func (s *Server) GetShipment(ctx context.Context, req api.GetShipmentRequestObject) (api.GetShipmentResponseObject, error) {
	sh, err := s.Ledger.GetShipment(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetShipment200JSONResponse(toShipment(sh)), nil
}

func (s *Server) ListShipmentPositions(ctx context.Context, req api.ListShipmentPositionsRequestObject) (api.ListShipmentPositionsResponseObject, error) {
	chain, err := s.Ledger.OrderedPositions(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.ListShipmentPositions200JSONResponse(toPositions(chain)), nil
}

func (s *Server) SendShipment(ctx context.Context, req api.SendShipmentRequestObject) (api.SendShipmentResponseObject, error) {
	jobID, err := s.Gossip.SendToNextPeer(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	job, waited, err := s.await(ctx, req.Params.Wait, jobID)
	if err != nil {
		return nil, err
	}
	if waited {
		return api.SendShipment200JSONResponse(job), nil
	}
	return api.SendShipment202JSONResponse{Status: "queued", JobID: jobID}, nil
}

// Positions

func (s *Server) ListPositions(ctx context.Context, _ api.ListPositionsRequestObject) (api.ListPositionsResponseObject, error) {
	all, err := s.Ledger.ListPositions(ctx)
	if err != nil {
		return nil, err
	}
	return api.ListPositions200JSONResponse(toPositions(all)), nil
}

func (s *Server) CreatePosition(ctx context.Context, req api.CreatePositionRequestObject) (api.CreatePositionResponseObject, error) {
	if req.Body == nil {
		return nil, errMissingBody
	}
	p, err := s.Ledger.CreateLocalPosition(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.CreatePosition201JSONResponse(created(p.ID, "position created")), nil
}

func (s *Server) GetPosition(ctx context.Context, req api.GetPositionRequestObject) (api.GetPositionResponseObject, error) {
	p, err := s.Ledger.GetPosition(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetPosition200JSONResponse(toPosition(p)), nil
}

func (s *Server) SignPosition(ctx context.Context, req api.SignPositionRequestObject) (api.SignPositionResponseObject, error) {
	p, err := s.Ledger.SignLocalPosition(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.SignPosition200JSONResponse(toPosition(p)), nil
}

// Jobs

func (s *Server) GetJob(ctx context.Context, req api.GetJobRequestObject) (api.GetJobResponseObject, error) {
	job, err := s.jobs.GetJob(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetJob200JSONResponse(toJob(job)), nil
}

// await drains the queue inline when the caller asked to wait, as the workers
// would, and returns the outcome of jobID. A drain cut short by the timeout
// leaves its job queued for the workers.
func (s *Server) await(ctx context.Context, wait *bool, jobID string) (api.Job, bool, error) {
	if jobID == "" || wait == nil || !*wait || s.processor == nil {
		return api.Job{}, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if _, err := gossiprunner.ProcessPending(ctx, s.jobs, s.processor, s.log); err != nil {
		return api.Job{}, false, domain.Internal("process jobs", err)
	}
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return api.Job{}, false, err
	}
	return toJob(job), true, nil
}

// Mapping

func toCompany(c domain.Company) api.Company {
	return api.Company{PublicID: c.ID, Name: c.Name, VATNumber: c.VATNumber, BaseURL: c.BaseURL, PublicKey: c.PublicKey}
}

func toLocation(l domain.Location) api.Location {
	return api.Location{
		PublicID:     l.ID,
		Name:         l.Name,
		LocationData: l.LocationData,
		LocationKey:  l.LocationKey,
		CompanyID:    l.CompanyID,
	}
}

func toValidation(v domain.Validation) api.Validation {
	return api.Validation{
		PublicID:           v.ID,
		CreatedOn:          v.CreatedAt,
		ExpiresOn:          v.ExpiresAt,
		Status:             string(v.Status()),
		SignedLocationKey:  v.SignedLocationKey,
		SignerCompanyID:    v.SignerCompanyID,
		SignerValidationID: v.SignerValidationID,
		LocationID:         v.LocationID,
	}
}

func toShipment(sh domain.Shipment) api.Shipment {
	return api.Shipment{
		PublicID:              sh.ID,
		HashID:                sh.HashID,
		Name:                  sh.Name,
		CreatedOn:             sh.CreatedAt,
		ShipmentDate:          sh.ShipmentDate,
		Origin:                sh.Origin,
		Destination:           sh.Destination,
		HSCode:                sh.HSCode,
		Description:           sh.Description,
		CurrentCompanyID:      sh.CurrentCompanyID,
		WaybillNumber:         sh.WaybillNumber,
		CustomReferenceNumber: sh.CustomReferenceNumber,
	}
}

func toPosition(p domain.Position) api.Position {
	return api.Position{
		PublicID:   p.ID,
		HashID:     p.HashID,
		SignedHash: p.SignedHash,
		CreatedOn:  p.CreatedAt,
		CompanyID:  p.CompanyID,
		ShipmentID: p.ShipmentID,
		Position:   p.Index,
		Role:       int(p.Role),
	}
}

func toPositions(ps []domain.Position) []api.Position {
	out := make([]api.Position, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPosition(p))
	}
	return out
}

func toJob(j ports.Job) api.Job {
	return api.Job{
		ID:         j.ID,
		Kind:       string(j.Request.Kind),
		URL:        j.Request.URL,
		Status:     string(j.Status),
		Attempts:   j.Attempts,
		LastError:  j.LastError,
		QueuedAt:   j.QueuedAt,
		StartedAt:  j.StartedAt,
		FinishedAt: j.FinishedAt,
	}
}
