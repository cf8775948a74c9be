package intake

import (
	"errors"
	"strconv"
	"strings"

	"quoteintake/internal/entity"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

const (
	_landlineDigits   = 10
	_mobileDigits     = 11
	_postalCodeDigits = 8
)

var emailValidator = validator.New()

// Fields is the normalized view of a submission. MugType and NotebookType
// are kept apart; Build merges them.
type Fields struct {
	Name         string
	Email        string
	Phone        string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	Product      string
	MugType      string
	NotebookType string
	Color        string
	PageCount    *int
	Quantity     int
	Print        string
	Notes        string
}

// Normalize canonicalizes every known field of form. All field failures are
// joined so the caller can report them together; each one is a
// *entity.FieldError wrapping one of the entity.ErrInvalid* sentinels.
func Normalize(form Form) (Fields, error) {
	form = FilterKnown(form)

	f := Fields{
		Name:         form.trimmed(FieldName),
		Street:       form.trimmed(FieldStreet),
		Number:       form.trimmed(FieldNumber),
		Complement:   form.trimmed(FieldComplement),
		Neighborhood: form.trimmed(FieldNeighborhood),
		City:         form.trimmed(FieldCity),
		Product:      form.trimmed(FieldProduct),
		MugType:      form.trimmed(FieldMugType),
		NotebookType: form.trimmed(FieldNotebookType),
		Color:        form.trimmed(FieldMugColor),
		Print:        form.trimmed(FieldPrint),
		Notes:        form.trimmed(FieldNotes),
	}

	var errs []error
	fail := func(field string, err error) {
		errs = append(errs, &entity.FieldError{Field: field, Err: err})
	}

	var err error
	if f.Email, err = NormalizeEmail(form[FieldEmail]); err != nil {
		fail(FieldEmail, err)
	}
	if f.Phone, err = NormalizePhone(form[FieldPhone]); err != nil {
		fail(FieldPhone, err)
	}
	if f.State, err = NormalizeState(form[FieldState]); err != nil {
		fail(FieldState, err)
	}
	if f.PostalCode, err = NormalizePostalCode(form[FieldPostalCode]); err != nil {
		fail(FieldPostalCode, err)
	}
	if f.Quantity, err = NormalizeQuantity(form[FieldQuantity]); err != nil {
		fail(FieldQuantity, err)
	}
	if f.PageCount, err = NormalizePageCount(form[FieldPageCount]); err != nil {
		fail(FieldPageCount, err)
	}

	if len(errs) > 0 {
		return Fields{}, errors.Join(errs...)
	}
	return f, nil
}

// NormalizePhone formats 10 digits as "(DD) DDDD-DDDD" and 11 digits as
// "(DD) DDDDD-DDDD". Any non-digit input characters are ignored.
func NormalizePhone(raw string) (string, error) {
	d := digits(raw)
	switch len(d) {
	case _landlineDigits:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:], nil
	case _mobileDigits:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:], nil
	default:
		return "", entity.ErrInvalidPhone
	}
}

// NormalizePostalCode formats an 8-digit CEP as "DDDDD-DDD".
func NormalizePostalCode(raw string) (string, error) {
	d := digits(raw)
	if len(d) != _postalCodeDigits {
		return "", entity.ErrInvalidPostalCode
	}
	return d[:5] + "-" + d[5:], nil
}

// NormalizeEmail validates the address syntax and returns it in NFC form
// with a lower-cased domain. The local part keeps its case.
func NormalizeEmail(raw string) (string, error) {
	s := norm.NFC.String(strings.TrimSpace(raw))
	if s == "" || emailValidator.Var(s, "email") != nil {
		return "", entity.ErrInvalidEmail
	}

	at := strings.LastIndexByte(s, '@')
	local, domain := s[:at], strings.ToLower(s[at+1:])
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", entity.ErrInvalidEmail
	}
	return local + "@" + domain, nil
}

// NormalizeState matches raw against entity.States ignoring case.
func NormalizeState(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !entity.IsState(code) {
		return "", entity.ErrInvalidState
	}
	return code, nil
}

// NormalizeQuantity accepts a positive integer that fits the int4 column.
func NormalizeQuantity(raw string) (int, error) {
	n, err := parseCount(raw)
	if err != nil {
		return 0, entity.ErrInvalidQuantity
	}
	return n, nil
}

// NormalizePageCount treats a blank value as "not applicable".
func NormalizePageCount(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := parseCount(raw)
	if err != nil {
		return nil, entity.ErrInvalidPageCount
	}
	return &n, nil
}

// parseCount parses a positive integer no larger than math.MaxInt32.
func parseCount(raw string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return int(n), nil
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
