package intake

import (
	"strings"

	"quoteintake/internal/entity"
)

type RequiredField struct {
	Name  string
	Label string
}

// RequiredFields is ordered: missing labels are reported in this order.
var RequiredFields = []RequiredField{
	{FieldName, "Nome completo"},
	{FieldEmail, "Email"},
	{FieldPhone, "Telefone"},
	{FieldStreet, "Rua"},
	{FieldNumber, "Número"},
	{FieldNeighborhood, "Bairro"},
	{FieldCity, "Cidade"},
	{FieldState, "UF"},
	{FieldPostalCode, "CEP"},
	{FieldProduct, "Produto"},
	{FieldQuantity, "Quantidade"},
	{FieldPrint, "Estampa"},
}

// CheckRequired fails with *entity.MissingFieldsError naming every required
// field that is absent or blank after trimming.
func CheckRequired(form Form) error {
	var missing []string
	for _, rf := range RequiredFields {
		if v, ok := form[rf.Name]; !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, rf.Label)
		}
	}
	if len(missing) > 0 {
		return &entity.MissingFieldsError{Labels: missing}
	}
	return nil
}
