package catalog

import (
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(itemStructValidation, Item{})
	return v
}

// itemStructValidation covers the decimal fields the tag rules cannot see.
func itemStructValidation(sl validatorv10.StructLevel) {
	it := sl.Current().Interface().(Item)

	if it.Price.IsNegative() {
		sl.ReportError(it.Price, "price", "Price", "price_non_negative", it.Price.String())
	}
	if it.Weight.Valid && !it.Weight.Decimal.IsPositive() {
		sl.ReportError(it.Weight, "weight_kg", "Weight", "weight_positive", it.Weight.Decimal.String())
	}
}

// Validate reports every rule the item breaks, wrapped in ErrInvalidItem.
func Validate(it *Item) error {
	if it == nil {
		return fmt.Errorf("%w: nil item", ErrInvalidItem)
	}
	if err := validate.Struct(*it); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidItem, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Field()+" failed "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
