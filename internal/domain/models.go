package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the canonical stored record. The repository hands out copies;
// callers never hold a reference into the store.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"nombre"`
	Price      decimal.Decimal `json:"precio"`
	Categories []string        `json:"categorias"`
}

// ProductCandidate carries the caller-submitted fields of a product before
// validation. All fields are required for create and replace.
type ProductCandidate struct {
	Name       string
	Price      decimal.Decimal
	Categories []string
}

// ProductPatch carries a partial update. A nil field means "leave the
// stored value untouched", which is distinct from a present-but-invalid
// value (still rejected by validation).
type ProductPatch struct {
	Name       *string
	Price      *decimal.Decimal
	Categories *[]string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Categories == nil
}

// ListFilter holds the list query criteria. Price bounds are optional;
// nil means the bound is not applied.
type ListFilter struct {
	Query    string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Limit    int
	Offset   int
}

// allowedCategories is the fixed set of category tags a product may carry,
// keyed by their normalized (lower-cased, accent-stripped) form.
var allowedCategories = map[string]struct{}{
	"fruta":     {},
	"verdura":   {},
	"grano":     {},
	"legumbre":  {},
	"lacteo":    {},
	"carnico":   {},
	"procesado": {},
	"organico":  {},
	"bebida":    {},
	"especia":   {},
}

// AllowedCategories returns the fixed category tags in a stable order.
func AllowedCategories() []string {
	return []string{
		"fruta", "verdura", "grano", "legumbre", "lacteo",
		"carnico", "procesado", "organico", "bebida", "especia",
	}
}
