package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront_service/internal/domain"
)

func validForm() RawProductForm {
	return RawProductForm{
		Name:        "Desk Lamp",
		Company:     "Acme",
		Price:       "1999",
		Description: "a sturdy desk lamp with a warm light and a long cord included",
		Featured:    "true",
	}
}

func TestValidateProduct_Valid(t *testing.T) {
	input, err := ValidateProduct(validForm())
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", input.Name)
	assert.Equal(t, "Acme", input.Company)
	assert.Equal(t, 1999, input.Price)
	assert.True(t, input.Featured)
}

func TestValidateProduct_FieldViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RawProductForm)
		message string
	}{
		{
			name:    "name too short",
			mutate:  func(f *RawProductForm) { f.Name = "AB" },
			message: "name must be at least 3 characters long",
		},
		{
			name:    "name too long",
			mutate:  func(f *RawProductForm) { f.Name = strings.Repeat("x", 101) },
			message: "name must be at most 100 characters long",
		},
		{
			name:    "company empty",
			mutate:  func(f *RawProductForm) { f.Company = "  " },
			message: "company cannot be empty",
		},
		{
			name:    "price negative",
			mutate:  func(f *RawProductForm) { f.Price = "-5" },
			message: "price must be a positive number",
		},
		{
			name:    "price not an integer",
			mutate:  func(f *RawProductForm) { f.Price = "19.99" },
			message: "price must be a positive number",
		},
		{
			name:    "price not a number",
			mutate:  func(f *RawProductForm) { f.Price = "cheap" },
			message: "price must be a positive number",
		},
		{
			name:    "description too short",
			mutate:  func(f *RawProductForm) { f.Description = "nine words is one too few for this rule" },
			message: "description must be between 10 and 1000 words",
		},
		{
			name: "description too long",
			mutate: func(f *RawProductForm) {
				f.Description = strings.TrimSpace(strings.Repeat("word ", 1001))
			},
			message: "description must be between 10 and 1000 words",
		},
		{
			name:    "featured unrecognized",
			mutate:  func(f *RawProductForm) { f.Featured = "maybe" },
			message: "featured must be a boolean value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := ValidateProduct(form)
			require.Error(t, err)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Messages, tt.message)
		})
	}
}

func TestValidateProduct_AggregatesAllViolations(t *testing.T) {
	form := RawProductForm{
		Name:        "AB",
		Company:     "",
		Price:       "-1",
		Description: "too short",
		Featured:    "",
	}

	_, err := ValidateProduct(form)
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Messages, 4)
	assert.Equal(t,
		"name must be at least 3 characters long, company cannot be empty, "+
			"price must be a positive number, description must be between 10 and 1000 words",
		err.Error())
}

func TestValidateProduct_DescriptionWordBoundaries(t *testing.T) {
	form := validForm()

	form.Description = strings.TrimSpace(strings.Repeat("word ", 10))
	_, err := ValidateProduct(form)
	assert.NoError(t, err, "exactly 10 words should pass")

	form.Description = strings.TrimSpace(strings.Repeat("word ", 1000))
	_, err = ValidateProduct(form)
	assert.NoError(t, err, "exactly 1000 words should pass")
}

func TestParsePrice(t *testing.T) {
	price, err := ParsePrice(" 1999 ")
	require.NoError(t, err)
	assert.Equal(t, 1999, price)

	price, err = ParsePrice("0")
	require.NoError(t, err)
	assert.Equal(t, 0, price)

	_, err = ParsePrice("-1")
	assert.Error(t, err)

	_, err = ParsePrice("12.5")
	assert.Error(t, err)

	_, err = ParsePrice("")
	assert.Error(t, err)
}

func TestParseFeatured(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "1", "on", "yes"} {
		featured, err := ParseFeatured(raw)
		require.NoError(t, err, raw)
		assert.True(t, featured, raw)
	}
	for _, raw := range []string{"", "false", "0", "off", "no"} {
		featured, err := ParseFeatured(raw)
		require.NoError(t, err, raw)
		assert.False(t, featured, raw)
	}
	_, err := ParseFeatured("maybe")
	assert.Error(t, err)
}
