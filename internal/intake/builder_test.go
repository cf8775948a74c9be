package intake_test

import (
	"testing"
	"time"

	"quoteintake/internal/entity"
	"quoteintake/internal/intake"
)

func TestProductType(t *testing.T) {
	testCases := []struct {
		desc     string
		mug      string
		notebook string
		expected string
	}{
		{"MugOnly", "mágica", "", "mágica"},
		{"NotebookOnly", "", "espiral", "espiral"},
		{"BothMugWins", "porcelana", "brochura", "porcelana"},
		{"BlankMugFallsBack", "  ", "brochura", "brochura"},
		{"Neither", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := intake.ProductType(tc.mug, tc.notebook); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	form := validForm()
	form[intake.FieldMugType] = "porcelana"
	form[intake.FieldNotebookType] = "espiral"
	form[intake.FieldMugColor] = " azul "
	form[intake.FieldNotes] = "Entregar à tarde"

	fields, err := intake.Normalize(form)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2025, 4, 22, 15, 0, 0, 0, loc)

	q := intake.Build(fields, intake.Meta{CreatedAt: now, ClientIP: "203.0.113.7"})

	if q.Status != entity.StatusPending {
		t.Fatalf("expected status %q, got %q", entity.StatusPending, q.Status)
	}
	if q.CreatedAt.Location() != time.UTC || !q.CreatedAt.Equal(now) {
		t.Fatalf("expected UTC creation time equal to %v, got %v", now, q.CreatedAt)
	}
	if q.ProductType != "porcelana" {
		t.Fatalf("expected mug type to win, got %q", q.ProductType)
	}
	if q.Color != "azul" || q.Notes != "Entregar à tarde" || q.ClientIP != "203.0.113.7" {
		t.Fatalf("unexpected optional fields: %+v", q)
	}
	if q.ID != 0 {
		t.Fatalf("expected unassigned id, got %d", q.ID)
	}
}
