package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidateName_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain", "Manzana Roja", "Manzana Roja", false},
		{"collapses whitespace", "  Manzana   Roja ", "Manzana Roja", false},
		{"accented letters kept", "Café Molido", "Café Molido", false},
		{"digits and punctuation", "Arroz 1.5kg - Int_egral", "Arroz 1.5kg - Int_egral", false},
		{"too short", "ab", "", true},
		{"too long", strings.Repeat("a", 81), "", true},
		{"max length ok", strings.Repeat("a", 80), strings.Repeat("a", 80), false},
		{"leading punctuation", "-Manzana", "", true},
		{"disallowed character", "Caf€ Molido", "", true},
		{"empty", "", "", true},
		{"only whitespace", "   ", "", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateName(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidatePrice_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"two decimals kept", "10.00", "10.00", false},
		{"rounds half up", "2.005", "2.01", false},
		{"rounds down below half", "2.004", "2.00", false},
		{"pads fraction", "5", "5.00", false},
		{"zero rejected", "0", "", true},
		{"negative rejected", "-1.50", "", true},
		{"rounds to zero rejected", "0.004", "", true},
		{"upper bound inclusive", "1000000", "1000000.00", false},
		{"above upper bound", "1000000.01", "", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			raw := decimal.RequireFromString(tc.raw)
			got, err := ValidatePrice(raw)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.StringFixed(2))
			// stored prices always carry exactly two fractional digits
			require.Equal(t, int32(-2), got.Exponent())
		})
	}
}

func TestValidateCategories_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		raw     []string
		want    []string
		wantErr bool
	}{
		{"single", []string{"fruta"}, []string{"fruta"}, false},
		{"normalizes case and accents", []string{"Lácteo", "ORGÁNICO"}, []string{"lacteo", "organico"}, false},
		{"dedup keeps first, order preserved", []string{"Fruta", "FRUTA ", "verdura"}, []string{"fruta", "verdura"}, false},
		{"collapses whitespace", []string{"  fruta  "}, []string{"fruta"}, false},
		{"empty list", []string{}, nil, true},
		{"unknown category", []string{"fruta", "pescado"}, nil, true},
		{"blank entry", []string{""}, nil, true},
		{"too many", []string{"fruta", "verdura", "grano", "legumbre", "lacteo", "carnico", "procesado", "organico", "bebida", "especia", "fruta"}, nil, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateCategories(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidateCandidate(t *testing.T) {
	candidate := ProductCandidate{
		Name:       "  Manzana   Roja ",
		Price:      decimal.RequireFromString("10.005"),
		Categories: []string{"Fruta", "fruta", "Orgánico"},
	}

	validated, err := ValidateCandidate(candidate)
	require.NoError(t, err)
	require.Equal(t, "Manzana Roja", validated.Name)
	require.Equal(t, "10.01", validated.Price.StringFixed(2))
	require.Equal(t, []string{"fruta", "organico"}, validated.Categories)
}

func TestValidatePatch_AbsentFieldsPassThrough(t *testing.T) {
	price := decimal.RequireFromString("12.5")

	validated, err := ValidatePatch(ProductPatch{Price: &price})
	require.NoError(t, err)
	require.Nil(t, validated.Name)
	require.Nil(t, validated.Categories)
	require.NotNil(t, validated.Price)
	require.Equal(t, "12.50", validated.Price.StringFixed(2))
}

func TestValidatePatch_PresentInvalidFieldRejected(t *testing.T) {
	empty := []string{}
	_, err := ValidatePatch(ProductPatch{Categories: &empty})
	require.Error(t, err)
	require.True(t, IsValidationError(err))

	name := "ab"
	_, err = ValidatePatch(ProductPatch{Name: &name})
	require.Error(t, err)
	require.True(t, IsValidationError(err))
}
