package order

import (
	"fmt"
	"sort"
	"strings"

	"garment-orders/internal/models"
)

// ValidationError carries per-field messages for the order form. It is raised
// before any store call; a submission that fails validation never leaves the
// service.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func validLegacyType(t string) bool {
	return t == models.SweatshirtDefault || t == models.SweatshirtZip
}

func validServiceType(t string) bool {
	return t == ServiceBasic || t == ServicePremium
}

// ValidateSubmit checks an order-form payload. Cart submissions need at least
// one well-formed item; legacy submissions need a garment type and a service
// tier. Messages match the ones the form always showed.
func ValidateSubmit(req models.SubmitRequest) *ValidationError {
	fields := map[string]string{}

	if len(strings.TrimSpace(req.Name)) < 2 {
		fields["name"] = "Il nome è obbligatorio."
	}
	if len(strings.TrimSpace(req.Phone)) < 5 {
		fields["phone"] = "Il numero di telefono è obbligatorio."
	}

	if len(req.Items) > 0 {
		for i, item := range req.Items {
			if item.ProductID == "" {
				fields[fmt.Sprintf("items.%d.productId", i)] = "Seleziona un prodotto."
			}
			if item.Quantity < 1 {
				fields[fmt.Sprintf("items.%d.quantity", i)] = "La quantità deve essere almeno 1."
			}
		}
	} else {
		if !validLegacyType(req.SweatshirtType) {
			fields["sweatshirtType"] = "Devi selezionare un tipo di felpa."
		}
		if !validServiceType(req.ServiceType) {
			fields["serviceType"] = "Devi selezionare un tipo di servizio."
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
