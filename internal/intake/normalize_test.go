package intake_test

import (
	"errors"
	"testing"

	"quoteintake/internal/entity"
	"quoteintake/internal/intake"
)

type normalizeStringExpected struct {
	value string
	err   error
}

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected normalizeStringExpected
	}{
		{"Mobile", "11987654321", normalizeStringExpected{"(11) 98765-4321", nil}},
		{"Landline", "1133334444", normalizeStringExpected{"(11) 3333-4444", nil}},
		{"AlreadyFormatted", "(11) 98765-4321", normalizeStringExpected{"(11) 98765-4321", nil}},
		{"Punctuated", " 21 9.8765-4321 ", normalizeStringExpected{"(21) 98765-4321", nil}},
		{"TooShort", "119876543", normalizeStringExpected{"", entity.ErrInvalidPhone}},
		{"TooLong", "551198765432", normalizeStringExpected{"", entity.ErrInvalidPhone}},
		{"NoDigits", "abc", normalizeStringExpected{"", entity.ErrInvalidPhone}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := intake.NormalizePhone(tc.input)
			if !errors.Is(err, tc.expected.err) {
				t.Fatalf("expected error %v, got %v", tc.expected.err, err)
			}
			if got != tc.expected.value {
				t.Fatalf("expected %q, got %q", tc.expected.value, got)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	first, err := intake.NormalizePhone("11987654321")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := intake.NormalizePhone(first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected %q on re-normalization, got %q", first, second)
	}
}

func TestNormalizePostalCode(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected normalizeStringExpected
	}{
		{"Digits", "01310100", normalizeStringExpected{"01310-100", nil}},
		{"Formatted", "01310-100", normalizeStringExpected{"01310-100", nil}},
		{"Dotted", "01.310-100", normalizeStringExpected{"01310-100", nil}},
		{"SevenDigits", "1234567", normalizeStringExpected{"", entity.ErrInvalidPostalCode}},
		{"NineDigits", "123456789", normalizeStringExpected{"", entity.ErrInvalidPostalCode}},
		{"Empty", "", normalizeStringExpected{"", entity.ErrInvalidPostalCode}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := intake.NormalizePostalCode(tc.input)
			if !errors.Is(err, tc.expected.err) {
				t.Fatalf("expected error %v, got %v", tc.expected.err, err)
			}
			if got != tc.expected.value {
				t.Fatalf("expected %q, got %q", tc.expected.value, got)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected normalizeStringExpected
	}{
		{"Plain", "cliente@example.com", normalizeStringExpected{"cliente@example.com", nil}},
		{"TrimAndLowerDomain", "  Cliente@Example.COM ", normalizeStringExpected{"Cliente@example.com", nil}},
		{"Subdomain", "a.b+tag@mail.example.com.br", normalizeStringExpected{"a.b+tag@mail.example.com.br", nil}},
		{"NoAt", "cliente.example.com", normalizeStringExpected{"", entity.ErrInvalidEmail}},
		{"NoDomainDot", "cliente@localhost", normalizeStringExpected{"", entity.ErrInvalidEmail}},
		{"DisplayName", "Cliente <cliente@example.com>", normalizeStringExpected{"", entity.ErrInvalidEmail}},
		{"Blank", "   ", normalizeStringExpected{"", entity.ErrInvalidEmail}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := intake.NormalizeEmail(tc.input)
			if !errors.Is(err, tc.expected.err) {
				t.Fatalf("expected error %v, got %v", tc.expected.err, err)
			}
			if got != tc.expected.value {
				t.Fatalf("expected %q, got %q", tc.expected.value, got)
			}
		})
	}
}

func TestNormalizeState(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected normalizeStringExpected
	}{
		{"Lower", "sp", normalizeStringExpected{"SP", nil}},
		{"Mixed", " Rj ", normalizeStringExpected{"RJ", nil}},
		{"Upper", "TO", normalizeStringExpected{"TO", nil}},
		{"Unknown", "XX", normalizeStringExpected{"", entity.ErrInvalidState}},
		{"TooLong", "SPX", normalizeStringExpected{"", entity.ErrInvalidState}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := intake.NormalizeState(tc.input)
			if !errors.Is(err, tc.expected.err) {
				t.Fatalf("expected error %v, got %v", tc.expected.err, err)
			}
			if got != tc.expected.value {
				t.Fatalf("expected %q, got %q", tc.expected.value, got)
			}
		})
	}
}

func TestNormalizeQuantity(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		value int
		err   error
	}{
		{"Positive", "5", 5, nil},
		{"Padded", " 12 ", 12, nil},
		{"Zero", "0", 0, entity.ErrInvalidQuantity},
		{"Negative", "-3", 0, entity.ErrInvalidQuantity},
		{"Decimal", "2.5", 0, entity.ErrInvalidQuantity},
		{"Text", "cinco", 0, entity.ErrInvalidQuantity},
		{"Int4 max", "2147483647", 2147483647, nil},
		{"Above int4", "3000000000", 0, entity.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := intake.NormalizeQuantity(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected error %v, got %v", tc.err, err)
			}
			if got != tc.value {
				t.Fatalf("expected %d, got %d", tc.value, got)
			}
		})
	}
}

func TestNormalizePageCount(t *testing.T) {
	got, err := intake.NormalizePageCount("  ")
	if err != nil || got != nil {
		t.Fatalf("expected nil page count for blank input, got %v, %v", got, err)
	}

	got, err = intake.NormalizePageCount("96")
	if err != nil || got == nil || *got != 96 {
		t.Fatalf("expected 96, got %v, %v", got, err)
	}

	for _, raw := range []string{"0", "3000000000"} {
		if _, err = intake.NormalizePageCount(raw); !errors.Is(err, entity.ErrInvalidPageCount) {
			t.Fatalf("expected ErrInvalidPageCount for %q, got %v", raw, err)
		}
	}
}

func TestNormalize_JoinsFieldErrors(t *testing.T) {
	form := validForm()
	form[intake.FieldPhone] = "123"
	form[intake.FieldPostalCode] = "1234567"

	_, err := intake.Normalize(form)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, entity.ErrInvalidPhone) || !errors.Is(err, entity.ErrInvalidPostalCode) {
		t.Fatalf("expected phone and postal code errors, got %v", err)
	}
	if errors.Is(err, entity.ErrInvalidEmail) {
		t.Fatalf("unexpected e-mail error in %v", err)
	}
	if !errors.Is(err, entity.ErrInvalidData) {
		t.Fatalf("expected errors to match ErrInvalidData, got %v", err)
	}

	var fieldErr *entity.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected a *entity.FieldError in %v", err)
	}
}

func TestNormalize_DropsUnknownKeys(t *testing.T) {
	form := validForm()
	form["csrf_token"] = "abc"
	form["status"] = "concluido"

	fields, err := intake.Normalize(form)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fields.Phone != "(11) 98765-4321" || fields.PostalCode != "01310-100" || fields.State != "RJ" {
		t.Fatalf("unexpected normalized fields: %+v", fields)
	}
	if fields.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", fields.Quantity)
	}
}
