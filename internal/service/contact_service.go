package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/mueed25/new-nahcon/internal/domain"
	"github.com/mueed25/new-nahcon/internal/models"
	"github.com/mueed25/new-nahcon/internal/repository"

	"go.uber.org/zap"
)

const (
	// DefaultLimit applies when the client sends no (or a non-numeric)
	// limit; DefaultExportLimit is the export endpoint's equivalent.
	DefaultLimit       = 50
	DefaultExportLimit = 1000
	MaxLimit           = 1000

	// UnknownLabel is the sentinel for records with no resolvable
	// category and for empty names.
	UnknownLabel = "Unknown"
)

// ContactService reshapes directory rows into flat contacts.
type ContactService struct {
	repo   repository.ContactsRepo
	logger *zap.Logger
}

func NewContactService(repo repository.ContactsRepo, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// ListContactsRequest carries the raw (already integer-parsed) query
// parameters of the list endpoint.
type ListContactsRequest struct {
	Search   string
	Province string
	State    string
	Location string
	Limit    int
	Offset   int
}

type ListContactsResponse struct {
	Contacts   []*domain.Contact
	Pagination models.Pagination
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// buildFilter trims the string filters and resolves the location name to an
// id. A location name that matches nothing keeps LocationSet with a zero id,
// which the repositories treat as an unsatisfiable predicate.
func (s *ContactService) buildFilter(ctx context.Context, req ListContactsRequest) (repository.ContactFilter, error) {
	f := repository.ContactFilter{
		Search:   strings.TrimSpace(req.Search),
		Province: strings.TrimSpace(req.Province),
		State:    strings.TrimSpace(req.State),
		Limit:    clampLimit(req.Limit),
		Offset:   clampOffset(req.Offset),
	}

	if loc := strings.TrimSpace(req.Location); loc != "" {
		id, found, err := s.repo.FindLocationID(ctx, loc)
		if err != nil {
			return f, err
		}
		f.LocationSet = true
		if found {
			f.LocationID = id
		}
	}
	return f, nil
}

// ListContacts applies the filter + pagination, assembles the page, and
// counts the full match set with the same predicate.
func (s *ContactService) ListContacts(ctx context.Context, req ListContactsRequest) (*ListContactsResponse, error) {
	f, err := s.buildFilter(ctx, req)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListRecords(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountRecords(ctx, f)
	if err != nil {
		return nil, err
	}

	contacts := make([]*domain.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, s.assembleContact(ctx, rec))
	}

	return &ListContactsResponse{
		Contacts: contacts,
		Pagination: models.Pagination{
			Total:   total,
			Limit:   f.Limit,
			Offset:  f.Offset,
			HasMore: f.Offset+len(contacts) < total,
		},
	}, nil
}

// GetContact fetches and assembles a single contact.
// repository.ErrNotFound passes through for the handler's 404.
func (s *ContactService) GetContact(ctx context.Context, recordID int64) (*domain.Contact, error) {
	rec, err := s.repo.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	return s.assembleContact(ctx, rec), nil
}

// ListLocations unions the distinct non-empty labels of every category
// table into one deduplicated, ascibetically sorted list. A table that
// fails to read is logged and skipped; the listing still succeeds.
func (s *ContactService) ListLocations(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	for _, fam := range repository.CategoryOrder {
		labels, err := s.repo.CategoryLabels(ctx, fam)
		if err != nil {
			s.logger.Warn("skipping category table in locations listing",
				zap.String("family", string(fam)),
				zap.Error(err),
			)
			continue
		}
		for _, label := range labels {
			if strings.TrimSpace(label) == "" {
				continue
			}
			seen[label] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)
	return out, nil
}

func (s *ContactService) ListProvinces(ctx context.Context) ([]*domain.Province, error) {
	return s.repo.ListProvinces(ctx)
}

func (s *ContactService) ListStates(ctx context.Context) ([]*domain.State, error) {
	return s.repo.ListStates(ctx)
}

// Ping reports store reachability for the health endpoint.
func (s *ContactService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// assembleContact flattens one joined row into the client representation.
// Location and Category carry the same resolved label.
func (s *ContactService) assembleContact(ctx context.Context, rec *domain.PhoneRecord) *domain.Contact {
	name := strings.TrimSpace(rec.FirstName.String + " " + rec.LastName.String)
	if name == "" {
		name = UnknownLabel
	}

	phone := firstNonEmpty(rec.Phone.String, rec.Phone1.String, rec.Phone2.String)
	label := s.resolveCategory(ctx, rec)

	return &domain.Contact{
		ID:       strconv.FormatInt(rec.RecordID, 10),
		Name:     name,
		Location: label,
		Category: label,
		Phone:    phone,
		WhatsApp: NormalizeWhatsApp(phone),
		Rank:     rec.Rank.String,
		Province: rec.ProvinceName.String,
		State:    rec.StateName.String,
	}
}

// resolveCategory walks the fixed family order and stops at the first
// strictly positive foreign key. A key whose id has no row yields
// UnknownLabel immediately (first-match, not best-match); a lookup failure
// is absorbed and the walk moves to the next family.
func (s *ContactService) resolveCategory(ctx context.Context, rec *domain.PhoneRecord) string {
	for _, fam := range repository.CategoryOrder {
		id := repository.CategoryKey(rec, fam)
		if id <= 0 {
			continue
		}
		label, found, err := s.repo.CategoryLabel(ctx, fam, id)
		if err != nil {
			s.logger.Warn("category lookup failed",
				zap.String("family", string(fam)),
				zap.Int64("id", id),
				zap.Error(err),
			)
			continue
		}
		if !found {
			return UnknownLabel
		}
		return label
	}
	return UnknownLabel
}
