// Package repository provides the in-memory product store. State is
// process-local and reset on restart; that is a property of the design,
// not a gap to fill with a database.
package repository

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"catalog_service/internal/domain"
	"catalog_service/pkg/textutil"
)

type memoryProductRepository struct {
	mu        sync.RWMutex
	items     map[uuid.UUID]domain.Product
	nameIndex map[string]uuid.UUID
	order     []uuid.UUID
	log       *logrus.Logger
}

// NewMemoryProductRepository constructs an empty in-memory repository.
func NewMemoryProductRepository(logger *logrus.Logger) domain.ProductRepository {
	return &memoryProductRepository{
		items:     make(map[uuid.UUID]domain.Product),
		nameIndex: make(map[string]uuid.UUID),
		log:       logger,
	}
}

// compile-time assertion that the repository satisfies the domain interface
var _ domain.ProductRepository = (*memoryProductRepository)(nil)

// normName builds the uniqueness key: case folded only. Accents are NOT
// stripped here; only the search filter strips them.
func normName(name string) string {
	return strings.ToLower(name)
}

func (r *memoryProductRepository) Create(candidate domain.ProductCandidate) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normName(candidate.Name)
	if _, taken := r.nameIndex[key]; taken {
		r.log.Warnf("Repository: Attempted to create duplicate product name '%s'", candidate.Name)
		return nil, domain.NewDuplicateNameError(candidate.Name)
	}

	product := domain.Product{
		ID:         uuid.New(),
		Name:       candidate.Name,
		Price:      candidate.Price,
		Categories: copyCategories(candidate.Categories),
	}
	r.items[product.ID] = product
	r.nameIndex[key] = product.ID
	r.order = append(r.order, product.ID)

	r.log.Infof("Repository: Product created with ID %s, Name '%s'", product.ID, product.Name)
	return snapshot(product), nil
}

func (r *memoryProductRepository) GetByID(id uuid.UUID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		r.log.Warnf("Repository: Product with ID %s not found", id)
		return nil, domain.NewNotFoundError(id)
	}
	return snapshot(product), nil
}

func (r *memoryProductRepository) Replace(id uuid.UUID, candidate domain.ProductCandidate) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replaceLocked(id, candidate)
}

// replaceLocked overwrites the stored record keeping its id and position.
// Caller must hold the write lock.
func (r *memoryProductRepository) replaceLocked(id uuid.UUID, candidate domain.ProductCandidate) (*domain.Product, error) {
	current, ok := r.items[id]
	if !ok {
		r.log.Warnf("Repository: Product with ID %s not found for replace", id)
		return nil, domain.NewNotFoundError(id)
	}

	newKey := normName(candidate.Name)
	if owner, taken := r.nameIndex[newKey]; taken && owner != id {
		r.log.Warnf("Repository: Replace of product ID %s rejected, name '%s' already taken", id, candidate.Name)
		return nil, domain.NewDuplicateNameError(candidate.Name)
	}

	delete(r.nameIndex, normName(current.Name))
	r.nameIndex[newKey] = id

	product := domain.Product{
		ID:         id,
		Name:       candidate.Name,
		Price:      candidate.Price,
		Categories: copyCategories(candidate.Categories),
	}
	r.items[id] = product

	r.log.Infof("Repository: Product replaced for ID %s, Name '%s'", id, product.Name)
	return snapshot(product), nil
}

func (r *memoryProductRepository) Patch(id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		r.log.Warnf("Repository: Product with ID %s not found for patch", id)
		return nil, domain.NewNotFoundError(id)
	}

	merged := domain.ProductCandidate{
		Name:       current.Name,
		Price:      current.Price,
		Categories: copyCategories(current.Categories),
	}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Categories != nil {
		merged.Categories = copyCategories(*patch.Categories)
	}

	// When the case-folded name actually changes, the new key is by
	// definition not this record's own entry, so check the whole index.
	if normName(merged.Name) != normName(current.Name) {
		if _, taken := r.nameIndex[normName(merged.Name)]; taken {
			r.log.Warnf("Repository: Patch of product ID %s rejected, name '%s' already taken", id, merged.Name)
			return nil, domain.NewDuplicateNameError(merged.Name)
		}
	}

	return r.replaceLocked(id, merged)
}

func (r *memoryProductRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		r.log.Warnf("Repository: Product with ID %s not found for delete", id)
		return domain.NewNotFoundError(id)
	}

	delete(r.items, id)
	// Release the index entry only if it still points at this record, so a
	// newer owner of the key is never evicted.
	key := normName(current.Name)
	if r.nameIndex[key] == id {
		delete(r.nameIndex, key)
	}
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.log.Infof("Repository: Product deleted with ID %s", id)
	return nil
}

// List applies the filters in a fixed order (text, category, minimum price,
// maximum price), counts the survivors, then slices the requested page out
// of the insertion-ordered sequence.
func (r *memoryProductRepository) List(filter domain.ListFilter) ([]domain.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	working := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		working = append(working, r.items[id])
	}

	if filter.Query != "" {
		key := textutil.Fold(strings.TrimSpace(filter.Query))
		kept := working[:0]
		for _, p := range working {
			if strings.Contains(textutil.Fold(p.Name), key) {
				kept = append(kept, p)
			}
		}
		working = kept
	}

	if filter.Category != "" {
		key := textutil.Fold(textutil.CollapseWhitespace(filter.Category))
		kept := working[:0]
		for _, p := range working {
			if containsCategory(p.Categories, key) {
				kept = append(kept, p)
			}
		}
		working = kept
	}

	if filter.MinPrice != nil {
		kept := working[:0]
		for _, p := range working {
			if p.Price.GreaterThanOrEqual(*filter.MinPrice) {
				kept = append(kept, p)
			}
		}
		working = kept
	}

	if filter.MaxPrice != nil {
		kept := working[:0]
		for _, p := range working {
			if p.Price.LessThanOrEqual(*filter.MaxPrice) {
				kept = append(kept, p)
			}
		}
		working = kept
	}

	total := len(working)

	start := filter.Offset
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	page := make([]domain.Product, 0, end-start)
	for _, p := range working[start:end] {
		page = append(page, *snapshot(p))
	}

	r.log.Infof("Repository: Listed %d of %d products (limit: %d, offset: %d)", len(page), total, filter.Limit, filter.Offset)
	return page, total, nil
}

func containsCategory(categories []string, key string) bool {
	for _, c := range categories {
		if c == key {
			return true
		}
	}
	return false
}

func copyCategories(categories []string) []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// snapshot returns a detached copy of the record so callers cannot mutate
// stored state through the returned pointer.
func snapshot(p domain.Product) *domain.Product {
	p.Categories = copyCategories(p.Categories)
	return &p
}
