package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/mueed25/new-nahcon/internal/domain"
)

// MemoryContactsRepository: in-memory ContactsRepo used when the store is
// unreachable at startup (the API stays up and serves an empty directory)
// and as the backend for unit tests. Matching semantics mirror the Postgres
// implementation: case-insensitive substring filters, exact-id category
// lookups, limit/offset pagination.
type MemoryContactsRepository struct {
	mu sync.RWMutex

	records   map[int64]*domain.PhoneRecord
	labels    map[CategoryFamily]map[int64]string
	provinces []*domain.Province
	states    []*domain.State
	pingErr   error
}

func NewMemoryContactsRepository() *MemoryContactsRepository {
	labels := map[CategoryFamily]map[int64]string{}
	for _, fam := range CategoryOrder {
		labels[fam] = map[int64]string{}
	}
	return &MemoryContactsRepository{
		records: map[int64]*domain.PhoneRecord{},
		labels:  labels,
	}
}

// ---- seeding (dev fallback bootstrap and tests) ----

func (r *MemoryContactsRepository) AddRecord(rec *domain.PhoneRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.RecordID] = rec
}

func (r *MemoryContactsRepository) SetLabel(fam CategoryFamily, id int64, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels[fam][id] = label
}

func (r *MemoryContactsRepository) AddProvince(p *domain.Province) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.provinces = append(r.provinces, p)
}

func (r *MemoryContactsRepository) AddState(s *domain.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

// SetPingError makes Ping report the store as unreachable, so the health
// endpoint shows disconnected while the rest of the API keeps serving.
func (r *MemoryContactsRepository) SetPingError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pingErr = err
}

// ---- ContactsRepo ----

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (r *MemoryContactsRepository) matches(rec *domain.PhoneRecord, f ContactFilter) bool {
	if f.Search != "" {
		hit := containsFold(rec.FirstName.String, f.Search) ||
			containsFold(rec.LastName.String, f.Search) ||
			containsFold(rec.Phone.String, f.Search) ||
			containsFold(rec.Phone1.String, f.Search) ||
			containsFold(rec.Phone2.String, f.Search)
		if !hit {
			return false
		}
	}
	if f.Province != "" && !containsFold(rec.ProvinceName.String, f.Province) {
		return false
	}
	if f.State != "" && !containsFold(rec.StateName.String, f.State) {
		return false
	}
	if f.LocationSet {
		if f.LocationID <= 0 {
			return false
		}
		if !rec.LocationID.Valid || rec.LocationID.Int64 != f.LocationID {
			return false
		}
	}
	return true
}

func (r *MemoryContactsRepository) filtered(f ContactFilter) []*domain.PhoneRecord {
	ids := make([]int64, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*domain.PhoneRecord{}
	for _, id := range ids {
		if r.matches(r.records[id], f) {
			out = append(out, r.records[id])
		}
	}
	return out
}

func (r *MemoryContactsRepository) ListRecords(_ context.Context, f ContactFilter) ([]*domain.PhoneRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.filtered(f)
	if f.Offset >= len(all) {
		return []*domain.PhoneRecord{}, nil
	}
	end := f.Offset + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[f.Offset:end], nil
}

func (r *MemoryContactsRepository) CountRecords(_ context.Context, f ContactFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.filtered(f)), nil
}

func (r *MemoryContactsRepository) GetRecord(_ context.Context, recordID int64) (*domain.PhoneRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[recordID]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryContactsRepository) FindLocationID(_ context.Context, name string) (int64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// map iteration order stands in for the store's arbitrary first match
	for id, label := range r.labels[FamilyLocation] {
		if containsFold(label, name) {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (r *MemoryContactsRepository) CategoryLabel(_ context.Context, fam CategoryFamily, id int64) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	label, ok := r.labels[fam][id]
	if !ok {
		return "", false, nil
	}
	return label, true, nil
}

func (r *MemoryContactsRepository) CategoryLabels(_ context.Context, fam CategoryFamily) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]struct{}{}
	out := []string{}
	for _, label := range r.labels[fam] {
		if strings.TrimSpace(label) == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out, nil
}

func (r *MemoryContactsRepository) ListProvinces(_ context.Context) ([]*domain.Province, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Province, len(r.provinces))
	copy(out, r.provinces)
	sort.Slice(out, func(i, j int) bool { return out[i].ProvinceName < out[j].ProvinceName })
	return out, nil
}

func (r *MemoryContactsRepository) ListStates(_ context.Context) ([]*domain.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.State, len(r.states))
	copy(out, r.states)
	sort.Slice(out, func(i, j int) bool { return out[i].StateName < out[j].StateName })
	return out, nil
}

func (r *MemoryContactsRepository) Ping(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pingErr
}
