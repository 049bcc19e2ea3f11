package domain

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"catalog_service/pkg/textutil"
)

// nameRe matches a whitespace-collapsed name: 3-80 runes of letters
// (including accented Latin), digits, space, '-', '_' and '.', starting
// with an alphanumeric rune.
var nameRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ0-9][A-Za-zÁÉÍÓÚáéíóúÑñ0-9 \-_.]{2,79}$`)

var maxPrice = decimal.NewFromInt(1_000_000)

// ValidateName trims raw, collapses internal whitespace runs and checks the
// length and character-class rules. Returns the collapsed form; casing is
// preserved for display.
func ValidateName(raw string) (string, error) {
	name := textutil.CollapseWhitespace(raw)
	if !nameRe.MatchString(name) {
		return "", NewValidationError("nombre", "must be 3-80 characters of letters/digits/space/-_. starting with a letter or digit")
	}
	return name, nil
}

// ValidatePrice checks the declared bounds and quantizes raw to exactly two
// fractional digits using round-half-up. The upper bound is checked against
// the raw value, before quantization; positivity is re-checked after.
func ValidatePrice(raw decimal.Decimal) (decimal.Decimal, error) {
	if raw.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, NewValidationError("precio", "must be greater than 0")
	}
	if raw.GreaterThan(maxPrice) {
		return decimal.Decimal{}, NewValidationError("precio", "must not exceed 1000000")
	}
	// Round is half away from zero, which for positive prices is half-up.
	q := raw.Round(2)
	if q.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, NewValidationError("precio", "must be greater than 0")
	}
	return q, nil
}

// ValidateCategories normalizes every entry (trim, whitespace-collapse,
// lower-case, accent-strip), checks it against the fixed allow-list and
// drops duplicates keeping the first occurrence's normalized form and the
// original relative order.
func ValidateCategories(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, NewValidationError("categorias", "at least one category is required")
	}
	if len(raw) > 10 {
		return nil, NewValidationError("categorias", "at most 10 categories are allowed")
	}
	cleaned := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, c := range raw {
		normalized := textutil.Fold(textutil.CollapseWhitespace(c))
		if _, ok := allowedCategories[normalized]; normalized == "" || !ok {
			return nil, NewValidationError("categorias", fmt.Sprintf("category not allowed: %s", c))
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		cleaned = append(cleaned, normalized)
	}
	return cleaned, nil
}

// ValidateCandidate runs every field validator over a full candidate and
// returns the normalized form ready for storage.
func ValidateCandidate(candidate ProductCandidate) (ProductCandidate, error) {
	name, err := ValidateName(candidate.Name)
	if err != nil {
		return ProductCandidate{}, err
	}
	price, err := ValidatePrice(candidate.Price)
	if err != nil {
		return ProductCandidate{}, err
	}
	categories, err := ValidateCategories(candidate.Categories)
	if err != nil {
		return ProductCandidate{}, err
	}
	return ProductCandidate{Name: name, Price: price, Categories: categories}, nil
}

// ValidatePatch validates only the fields the patch carries. Absent fields
// pass through unchanged; a present field with an invalid value is still
// rejected.
func ValidatePatch(patch ProductPatch) (ProductPatch, error) {
	out := ProductPatch{}
	if patch.Name != nil {
		name, err := ValidateName(*patch.Name)
		if err != nil {
			return ProductPatch{}, err
		}
		out.Name = &name
	}
	if patch.Price != nil {
		price, err := ValidatePrice(*patch.Price)
		if err != nil {
			return ProductPatch{}, err
		}
		out.Price = &price
	}
	if patch.Categories != nil {
		categories, err := ValidateCategories(*patch.Categories)
		if err != nil {
			return ProductPatch{}, err
		}
		out.Categories = &categories
	}
	return out, nil
}
