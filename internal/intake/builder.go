package intake

import (
	"strings"
	"time"

	"quoteintake/internal/entity"
)

// Meta carries the server-assigned attributes of a new record.
type Meta struct {
	CreatedAt time.Time
	ClientIP  string
}

// Build constructs a pending QuoteRequest from already-normalized fields.
func Build(f Fields, meta Meta) *entity.QuoteRequest {
	return &entity.QuoteRequest{
		Name:         f.Name,
		Email:        f.Email,
		Phone:        f.Phone,
		Street:       f.Street,
		Number:       f.Number,
		Complement:   f.Complement,
		Neighborhood: f.Neighborhood,
		City:         f.City,
		State:        f.State,
		PostalCode:   f.PostalCode,
		Product:      f.Product,
		ProductType:  ProductType(f.MugType, f.NotebookType),
		Color:        f.Color,
		PageCount:    f.PageCount,
		Quantity:     f.Quantity,
		Print:        f.Print,
		Notes:        f.Notes,
		CreatedAt:    meta.CreatedAt.UTC(),
		ClientIP:     meta.ClientIP,
		Status:       entity.StatusPending,
	}
}

// ProductType collapses the two product selectors into one value; the mug
// selector wins when both are filled.
func ProductType(mugType, notebookType string) string {
	if m := strings.TrimSpace(mugType); m != "" {
		return m
	}
	return strings.TrimSpace(notebookType)
}
