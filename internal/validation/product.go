package validation

import (
	"errors"
	"strconv"
	"strings"

	"storefront_service/internal/domain"
)

const (
	minNameLen          = 3
	maxNameLen          = 100
	minDescriptionWords = 10
	maxDescriptionWords = 1000
)

// RawProductForm holds the untyped form fields exactly as submitted.
type RawProductForm struct {
	Name        string
	Company     string
	Price       string
	Description string
	Featured    string
}

var (
	errPriceNotInteger = errors.New("price is not an integer")
	errPriceNegative   = errors.New("price is negative")
	errBoolUnknown     = errors.New("unrecognized boolean value")
)

// ParsePrice parses a submitted price into a non-negative integer amount
// in the smallest currency unit.
func ParsePrice(raw string) (int, error) {
	price, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errPriceNotInteger
	}
	if price < 0 {
		return 0, errPriceNegative
	}
	return price, nil
}

// ParseFeatured parses a submitted checkbox value. An absent value is
// false; anything unrecognized is a parse failure rather than a silent
// true, unlike a bare truthiness coercion.
func ParseFeatured(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return false, nil
	case "true", "1", "on", "yes":
		return true, nil
	case "false", "0", "off", "no":
		return false, nil
	}
	return false, errBoolUnknown
}

// ValidateProduct checks every field of the form and returns either the
// typed input or a ValidationError carrying all violation messages.
func ValidateProduct(form RawProductForm) (*domain.NewProductInput, error) {
	var messages []string

	if len(form.Name) < minNameLen {
		messages = append(messages, "name must be at least 3 characters long")
	} else if len(form.Name) > maxNameLen {
		messages = append(messages, "name must be at most 100 characters long")
	}

	if strings.TrimSpace(form.Company) == "" {
		messages = append(messages, "company cannot be empty")
	}

	price, err := ParsePrice(form.Price)
	if err != nil {
		messages = append(messages, "price must be a positive number")
	}

	if words := len(strings.Fields(form.Description)); words < minDescriptionWords || words > maxDescriptionWords {
		messages = append(messages, "description must be between 10 and 1000 words")
	}

	featured, err := ParseFeatured(form.Featured)
	if err != nil {
		messages = append(messages, "featured must be a boolean value")
	}

	if len(messages) > 0 {
		return nil, &domain.ValidationError{Messages: messages}
	}

	return &domain.NewProductInput{
		Name:        form.Name,
		Company:     form.Company,
		Price:       price,
		Description: form.Description,
		Featured:    featured,
	}, nil
}
