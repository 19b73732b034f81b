package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks catalog data before a Catalog is built and reports every
// problem found. The returned error wraps domain.ErrInvalidCatalog.
func Validate(ref domain.Reference, metals []domain.Metal) error {
	var errs []error

	if err := validate.Struct(ref); err != nil {
		errs = append(errs, fieldErrors("reference", err)...)
	}
	if len(metals) == 0 {
		errs = append(errs, errors.New("metals: at least one metal is required"))
	}

	seen := make(map[string]int, len(metals))
	for i, m := range metals {
		prefix := fmt.Sprintf("metals[%d]", i)
		if err := validate.Struct(m); err != nil {
			errs = append(errs, fieldErrors(prefix, err)...)
		}
		if m.Symbol != "" {
			key := symbolKey(m.Symbol)
			if j, dup := seen[key]; dup {
				errs = append(errs, fmt.Errorf("%s.symbol: %q duplicates metals[%d]", prefix, m.Symbol, j))
			} else {
				seen[key] = i
			}
		}
		// The EN difference must never be negative downstream.
		if m.Electronegativity > ref.Electronegativity {
			errs = append(errs, fmt.Errorf("%s.electronegativity: %.2f exceeds reference %s (%.2f)",
				prefix, m.Electronegativity, ref.Symbol, ref.Electronegativity))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(errs...))
}

func fieldErrors(prefix string, err error) []error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{fmt.Errorf("%s: %w", prefix, err)}
	}
	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			out = append(out, fmt.Errorf("%s.%s: failed %s=%s (got %v)", prefix, fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		out = append(out, fmt.Errorf("%s.%s: failed %s (got %v)", prefix, fe.Field(), fe.Tag(), fe.Value()))
	}
	return out
}
