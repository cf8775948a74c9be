//nolint:mnd
package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"quoteintake/internal/entity"
	"quoteintake/internal/intake"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

type submitResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrcamentoID int64  `json:"orcamento_id,omitempty"`
}

func seedCmd() *cobra.Command {
	var (
		baseURL  string
		count    int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Submit fake quote requests to a running instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := resty.New().
				SetBaseURL(baseURL).
				SetTimeout(10*time.Second).
				SetHeader("Accept", "application/json")

			return runSeed(cmd.Context(), client, count, interval)
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:5000", "Base URL of the quote service")
	cmd.Flags().IntVar(&count, "count", 1, "Number of quote requests to send")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Interval between requests")

	return cmd
}

func runSeed(ctx context.Context, client *resty.Client, count int, interval time.Duration) error {
	log.Printf("Submitting %d quote requests to %s every %v\n", count, client.BaseURL, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sent := 0
	for {
		submitFakeQuote(ctx, client)
		sent++
		if sent >= count {
			log.Printf("Sent all %d quote requests. Exiting.\n", count)
			return nil
		}

		select {
		case <-ctx.Done():
			log.Println("Shutting down seeder...")
			return nil
		case <-ticker.C:
		}
	}
}

func submitFakeQuote(ctx context.Context, client *resty.Client) {
	var result submitResponse

	resp, err := client.R().
		SetContext(ctx).
		SetFormData(generateFakeForm()).
		SetResult(&result).
		SetError(&result).
		Post("/enviar_orcamento")
	if err != nil {
		log.Printf("Failed to submit quote request: %v", err)
		return
	}

	if !result.Success {
		log.Printf("Quote request rejected (status %d): %s", resp.StatusCode(), result.Message)
		return
	}

	log.Printf("Successfully submitted quote request id: %d", result.OrcamentoID)
}

func generateFakeForm() map[string]string {
	form := map[string]string{
		intake.FieldName:         gofakeit.Name(),
		intake.FieldEmail:        gofakeit.Email(),
		intake.FieldPhone:        gofakeit.Numerify("(##) 9####-####"),
		intake.FieldStreet:       gofakeit.Street(),
		intake.FieldNumber:       strconv.Itoa(gofakeit.Number(1, 9999)),
		intake.FieldNeighborhood: gofakeit.Word(),
		intake.FieldCity:         gofakeit.City(),
		intake.FieldState:        gofakeit.RandomString(entity.States),
		intake.FieldPostalCode:   gofakeit.Numerify("#####-###"),
		intake.FieldQuantity:     strconv.Itoa(gofakeit.Number(1, 100)),
		intake.FieldPrint:        gofakeit.HipsterWord(),
		intake.FieldNotes:        gofakeit.Sentence(8),
	}

	if gofakeit.Bool() {
		form[intake.FieldProduct] = "caneca"
		form[intake.FieldMugType] = gofakeit.RandomString([]string{"porcelana", "magica", "chopp"})
		form[intake.FieldMugColor] = gofakeit.SafeColor()
	} else {
		form[intake.FieldProduct] = "caderno"
		form[intake.FieldNotebookType] = gofakeit.RandomString([]string{"espiral", "brochura"})
		form[intake.FieldPageCount] = gofakeit.RandomString([]string{"80", "100", "200"})
	}

	return form
}
