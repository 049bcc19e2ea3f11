// domain/product.go
package domain

import "github.com/google/uuid"

// ProductRepository owns the canonical records and the normalized-name
// uniqueness index. Candidates passed in must already be validated; every
// operation that checks uniqueness and mutates state does so atomically.
type ProductRepository interface {
	Create(candidate ProductCandidate) (*Product, error)
	GetByID(id uuid.UUID) (*Product, error)
	Replace(id uuid.UUID, candidate ProductCandidate) (*Product, error)
	Patch(id uuid.UUID, patch ProductPatch) (*Product, error)
	Delete(id uuid.UUID) error
	List(filter ListFilter) ([]Product, int, error)
}
