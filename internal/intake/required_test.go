package intake_test

import (
	"errors"
	"reflect"
	"testing"

	"quoteintake/internal/entity"
	"quoteintake/internal/intake"
)

func validForm() intake.Form {
	return intake.Form{
		intake.FieldName:         "Maria da Silva",
		intake.FieldEmail:        "maria@example.com",
		intake.FieldPhone:        "11987654321",
		intake.FieldStreet:       "Av. Paulista",
		intake.FieldNumber:       "1000",
		intake.FieldNeighborhood: "Bela Vista",
		intake.FieldCity:         "Rio de Janeiro",
		intake.FieldState:        "rj",
		intake.FieldPostalCode:   "01310100",
		intake.FieldProduct:      "caneca",
		intake.FieldQuantity:     "5",
		intake.FieldPrint:        "Logo da empresa",
	}
}

func TestCheckRequired(t *testing.T) {
	testCases := []struct {
		desc     string
		setup    func() intake.Form
		expected []string
	}{
		{
			desc:     "Complete",
			setup:    validForm,
			expected: nil,
		},
		{
			desc: "NameAndPostalCodeMissing",
			setup: func() intake.Form {
				form := validForm()
				delete(form, intake.FieldName)
				delete(form, intake.FieldPostalCode)
				return form
			},
			expected: []string{"Nome completo", "CEP"},
		},
		{
			desc: "WhitespaceIsMissing",
			setup: func() intake.Form {
				form := validForm()
				form[intake.FieldPrint] = "   "
				form[intake.FieldEmail] = "\t"
				return form
			},
			expected: []string{"Email", "Estampa"},
		},
		{
			desc:  "EmptyForm",
			setup: func() intake.Form { return intake.Form{} },
			expected: []string{
				"Nome completo", "Email", "Telefone", "Rua", "Número", "Bairro",
				"Cidade", "UF", "CEP", "Produto", "Quantidade", "Estampa",
			},
		},
		{
			desc: "OptionalFieldsIgnored",
			setup: func() intake.Form {
				form := validForm()
				form[intake.FieldComplement] = ""
				form[intake.FieldNotes] = " "
				return form
			},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			err := intake.CheckRequired(tc.setup())

			if tc.expected == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var missing *entity.MissingFieldsError
			if !errors.As(err, &missing) {
				t.Fatalf("expected *entity.MissingFieldsError, got %v", err)
			}
			if !reflect.DeepEqual(missing.Labels, tc.expected) {
				t.Fatalf("expected labels %v, got %v", tc.expected, missing.Labels)
			}
			if !errors.Is(err, entity.ErrInvalidData) {
				t.Fatal("expected missing fields to match ErrInvalidData")
			}
		})
	}
}
