// Package memory is an in-process Repository for development nodes and tests.
// It enforces the same uniqueness constraints as the Postgres schema.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"eonpeers/internal/domain"
)

type txKey struct{}

// Store keeps every entity in maps guarded by mu. Writes are serialised by
// txMu, which InTx holds for the whole transaction so a rollback cannot lose a
// concurrent write.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	companies   map[string]domain.Company
	locations   map[string]domain.Location
	shipments   map[string]domain.Shipment
	positions   map[string]domain.Position
	validations map[string]domain.Validation

	now func() time.Time
}

func New() *Store {
	return &Store{
		companies:   make(map[string]domain.Company),
		locations:   make(map[string]domain.Location),
		shipments:   make(map[string]domain.Shipment),
		positions:   make(map[string]domain.Position),
		validations: make(map[string]domain.Validation),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type snapshot struct {
	companies   map[string]domain.Company
	locations   map[string]domain.Location
	shipments   map[string]domain.Shipment
	positions   map[string]domain.Position
	validations map[string]domain.Validation
}

func clone[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// InTx runs fn with all of its writes applied atomically: on error the store
// is restored to its state before fn ran. Nested calls join the outer one.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snap := snapshot{
		companies:   clone(s.companies),
		locations:   clone(s.locations),
		shipments:   clone(s.shipments),
		positions:   clone(s.positions),
		validations: clone(s.validations),
	}
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.companies = snap.companies
		s.locations = snap.locations
		s.shipments = snap.shipments
		s.positions = snap.positions
		s.validations = snap.validations
		s.mu.Unlock()
		return err
	}
	return nil
}

// write takes the write lock, and the tx lock unless ctx already holds it.
func (s *Store) write(ctx context.Context) func() {
	inTx := ctx.Value(txKey{}) != nil
	if !inTx {
		s.txMu.Lock()
	}
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		if !inTx {
			s.txMu.Unlock()
		}
	}
}

func (s *Store) stamp(id *string, at *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if at.IsZero() {
		*at = s.now()
	}
}

// Companies

func (s *Store) CreateCompany(ctx context.Context, c *domain.Company) error {
	defer s.write(ctx)()
	for _, existing := range s.companies {
		if existing.VATNumber == c.VATNumber {
			return domain.Conflict("company with vat %s already exists", c.VATNumber)
		}
		if c.IsLocal && existing.IsLocal {
			return domain.Conflict("node already has a local company")
		}
	}
	s.stamp(&c.ID, &c.CreatedAt)
	s.companies[c.ID] = *c
	return nil
}

func (s *Store) GetCompany(ctx context.Context, id string) (domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[id]
	if !ok {
		return c, domain.NotFound("company %s not found", id)
	}
	return c, nil
}

func (s *Store) findCompany(match func(domain.Company) bool) (domain.Company, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.companies {
		if match(c) {
			return c, true, nil
		}
	}
	return domain.Company{}, false, nil
}

func (s *Store) FindCompanyByVAT(ctx context.Context, vat string) (domain.Company, bool, error) {
	return s.findCompany(func(c domain.Company) bool { return c.VATNumber == vat })
}

func (s *Store) FindCompanyByPublicKey(ctx context.Context, publicKey string) (domain.Company, bool, error) {
	if publicKey == "" {
		return domain.Company{}, false, nil
	}
	return s.findCompany(func(c domain.Company) bool { return c.PublicKey == publicKey })
}

func (s *Store) LocalCompany(ctx context.Context) (domain.Company, bool, error) {
	return s.findCompany(func(c domain.Company) bool { return c.IsLocal })
}

func (s *Store) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateCompany(ctx context.Context, c domain.Company) error {
	defer s.write(ctx)()
	if _, ok := s.companies[c.ID]; !ok {
		return domain.NotFound("company %s not found", c.ID)
	}
	for id, existing := range s.companies {
		if id != c.ID && existing.VATNumber == c.VATNumber {
			return domain.Conflict("company with vat %s already exists", c.VATNumber)
		}
	}
	s.companies[c.ID] = c
	return nil
}

func (s *Store) DeleteCompany(ctx context.Context, id string) error {
	defer s.write(ctx)()
	if _, ok := s.companies[id]; !ok {
		return domain.NotFound("company %s not found", id)
	}
	for _, l := range s.locations {
		if l.CompanyID == id {
			return domain.Conflict("company %s still owns locations", id)
		}
	}
	for _, p := range s.positions {
		if p.CompanyID == id {
			return domain.Conflict("company %s still holds positions", id)
		}
	}
	for _, sh := range s.shipments {
		if sh.CurrentCompanyID == id {
			return domain.Conflict("company %s still holds shipments", id)
		}
	}
	delete(s.companies, id)
	return nil
}

// Locations

func (s *Store) CreateLocation(ctx context.Context, l *domain.Location) error {
	defer s.write(ctx)()
	if _, ok := s.companies[l.CompanyID]; !ok {
		return domain.NotFound("company %s not found", l.CompanyID)
	}
	for _, existing := range s.locations {
		if existing.LocationKey == l.LocationKey {
			return domain.Conflict("location key already registered")
		}
	}
	s.stamp(&l.ID, &l.CreatedAt)
	s.locations[l.ID] = *l
	return nil
}

func (s *Store) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.locations[id]
	if !ok {
		return l, domain.NotFound("location %s not found", id)
	}
	return l, nil
}

func (s *Store) FindLocationByKey(ctx context.Context, locationKey string) (domain.Location, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.locations {
		if l.LocationKey == locationKey {
			return l, true, nil
		}
	}
	return domain.Location{}, false, nil
}

func (s *Store) FindLocationByName(ctx context.Context, companyID, name string) (domain.Location, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.locations {
		if l.CompanyID == companyID && l.Name == name {
			return l, true, nil
		}
	}
	return domain.Location{}, false, nil
}

func (s *Store) ListLocationsByCompany(ctx context.Context, companyID string) ([]domain.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Location
	for _, l := range s.locations {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Shipments

func (s *Store) CreateShipment(ctx context.Context, sh *domain.Shipment) error {
	defer s.write(ctx)()
	for _, existing := range s.shipments {
		if existing.HashID == sh.HashID {
			return domain.Conflict("shipment %s already exists", sh.HashID)
		}
	}
	s.stamp(&sh.ID, &sh.CreatedAt)
	s.shipments[sh.ID] = *sh
	return nil
}

func (s *Store) GetShipment(ctx context.Context, id string) (domain.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.shipments[id]
	if !ok {
		return sh, domain.NotFound("shipment %s not found", id)
	}
	return sh, nil
}

// LockShipment only reads: InTx already runs one transaction at a time.
func (s *Store) LockShipment(ctx context.Context, id string) (domain.Shipment, error) {
	return s.GetShipment(ctx, id)
}

func (s *Store) findShipment(match func(domain.Shipment) bool) (domain.Shipment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shipments {
		if match(sh) {
			return sh, true, nil
		}
	}
	return domain.Shipment{}, false, nil
}

func (s *Store) FindShipmentByHash(ctx context.Context, hashID string) (domain.Shipment, bool, error) {
	return s.findShipment(func(sh domain.Shipment) bool { return sh.HashID == hashID })
}

func (s *Store) FindShipmentByName(ctx context.Context, name string) (domain.Shipment, bool, error) {
	return s.findShipment(func(sh domain.Shipment) bool { return sh.Name == name })
}

func (s *Store) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Shipment, 0, len(s.shipments))
	for _, sh := range s.shipments {
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateShipmentHolder(ctx context.Context, shipmentID, companyID string) error {
	defer s.write(ctx)()
	sh, ok := s.shipments[shipmentID]
	if !ok {
		return domain.NotFound("shipment %s not found", shipmentID)
	}
	sh.CurrentCompanyID = companyID
	s.shipments[shipmentID] = sh
	return nil
}

// Positions

func (s *Store) CreatePosition(ctx context.Context, p *domain.Position) error {
	defer s.write(ctx)()
	for _, existing := range s.positions {
		if existing.CompanyID == p.CompanyID && existing.ShipmentID == p.ShipmentID && existing.Index == p.Index {
			return domain.Conflict("position %d of shipment %s already held by company %s", p.Index, p.ShipmentID, p.CompanyID)
		}
		if existing.HashID == p.HashID {
			return domain.Conflict("position %s already exists", p.HashID)
		}
	}
	s.stamp(&p.ID, &p.CreatedAt)
	s.positions[p.ID] = *p
	return nil
}

func (s *Store) GetPosition(ctx context.Context, id string) (domain.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.positions[id]
	if !ok {
		return p, domain.NotFound("position %s not found", id)
	}
	return p, nil
}

func (s *Store) FindPosition(ctx context.Context, companyID, shipmentID string, index int) (domain.Position, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.positions {
		if p.CompanyID == companyID && p.ShipmentID == shipmentID && p.Index == index {
			return p, true, nil
		}
	}
	return domain.Position{}, false, nil
}

func (s *Store) ListPositions(ctx context.Context, shipmentID string) ([]domain.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Position
	for _, p := range s.positions {
		if p.ShipmentID == shipmentID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func (s *Store) ListAllPositions(ctx context.Context) ([]domain.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Position, 0, len(s.positions))
	for _, p := range s.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ShipmentID != out[j].ShipmentID {
			return out[i].ShipmentID < out[j].ShipmentID
		}
		return out[i].Index < out[j].Index
	})
	return out, nil
}

func (s *Store) SetPositionSignature(ctx context.Context, id, signedHash string) error {
	defer s.write(ctx)()
	p, ok := s.positions[id]
	if !ok {
		return domain.NotFound("position %s not found", id)
	}
	p.SignedHash = signedHash
	s.positions[id] = p
	return nil
}

// Validations

func (s *Store) CreateValidation(ctx context.Context, v *domain.Validation) error {
	defer s.write(ctx)()
	if _, ok := s.locations[v.LocationID]; !ok {
		return domain.NotFound("location %s not found", v.LocationID)
	}
	if v.SignerValidationID != "" {
		for _, existing := range s.validations {
			if existing.SignerCompanyID == v.SignerCompanyID && existing.SignerValidationID == v.SignerValidationID {
				return domain.Conflict("validation %s of the signer already recorded", v.SignerValidationID)
			}
		}
	}
	s.stamp(&v.ID, &v.CreatedAt)
	s.validations[v.ID] = *v
	return nil
}

func (s *Store) GetValidation(ctx context.Context, id string) (domain.Validation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.validations[id]
	if !ok {
		return v, domain.NotFound("validation %s not found", id)
	}
	return v, nil
}

func (s *Store) FindValidationBySigner(ctx context.Context, signerCompanyID, signerValidationID string) (domain.Validation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.validations {
		if v.SignerCompanyID == signerCompanyID && v.SignerValidationID == signerValidationID {
			return v, true, nil
		}
	}
	return domain.Validation{}, false, nil
}

func (s *Store) ListValidationsByLocation(ctx context.Context, locationID string) ([]domain.Validation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Validation
	for _, v := range s.validations {
		if v.LocationID == locationID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) MarkValidationSigned(ctx context.Context, id, signedLocationKey, signerCompanyID string) error {
	defer s.write(ctx)()
	v, ok := s.validations[id]
	if !ok {
		return domain.NotFound("validation %s not found", id)
	}
	if v.Status() == domain.ValidationSigned {
		return domain.Conflict("validation %s is already signed", id)
	}
	v.SignedLocationKey = signedLocationKey
	v.SignerCompanyID = signerCompanyID
	s.validations[id] = v
	return nil
}
