package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"

	"quoteintake/internal/config"
	"quoteintake/internal/entity"
	"quoteintake/internal/intake"
	"quoteintake/internal/notify"
	"quoteintake/internal/repository"
	"quoteintake/internal/service"
	"quoteintake/pkg/cache"
	"quoteintake/pkg/logger"
	"quoteintake/pkg/mailer"
	mock_mailer "quoteintake/pkg/mailer/mock"
	"quoteintake/pkg/metric"
	"quoteintake/pkg/storage/postgres"
	"quoteintake/pkg/storage/postgres/transaction"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type IntegrationTestSuite struct {
	suite.Suite

	db  *postgres.Postgres
	cfg *config.Config
	log logger.Logger
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load("")
	s.Require().NoError(err, "Failed to load configuration")
	s.cfg = cfg

	testLogger, err := logger.NewAdapter(cfg)
	s.Require().NoError(err)
	s.log = testLogger

	db, err := postgres.NewPostgres(ctx, &cfg.Postgres, testLogger,
		postgres.MaxConnAttempts(10),
		postgres.MaxRetryDelay(5*time.Second),
	)
	s.Require().NoError(err, "Failed to connect to postgres after retries")
	s.db = db

	s.Require().NoError(postgres.ApplyMigrations(ctx, cfg.Postgres.DSN()))
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Pool.Close()
	}
}

func (s *IntegrationTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.Pool.Exec(ctx, "TRUNCATE TABLE orcamentos RESTART IDENTITY;")
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) newService(m mailer.Mailer) *service.QuoteService {
	metrics := metric.NewFactory()

	txManager, err := transaction.NewManager(s.db.Pool, s.log, metrics.Transaction())
	s.Require().NoError(err)

	quoteCache, err := cache.NewLRUCache[int64, *entity.QuoteRequest](
		"quote",
		s.cfg.Cache.Capacity,
		s.log,
		metrics.Cache(),
	)
	s.Require().NoError(err)

	renderer, err := notify.NewRenderer("")
	s.Require().NoError(err)

	dispatcher, err := notify.NewDispatcher(
		m,
		renderer,
		"operador@example.com",
		s.log,
		metrics.Notification(),
	)
	s.Require().NoError(err)

	return service.NewQuoteService(
		repository.NewQuoteRepository(s.db),
		txManager,
		dispatcher,
		m,
		s.log,
		metrics.Submission(),
		quoteCache,
		s.cfg.Cache.TTL,
	)
}

func (s *IntegrationTestSuite) TestSubmitAndGetQuote() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	m := mock_mailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	svc := s.newService(m)
	form := generateFakeForm()

	created, res, err := svc.Submit(ctx, form, "203.0.113.7")
	s.Require().NoError(err)
	s.Require().True(res.OK())
	s.Require().Positive(created.ID)

	repo := repository.NewQuoteRepository(s.db)
	stored, err := repo.GetByID(ctx, created.ID)
	s.Require().NoError(err)

	s.Require().Equal(form[intake.FieldName], stored.Name)
	s.Require().Equal(entity.StatusPending, stored.Status)
	s.Require().Equal("203.0.113.7", stored.ClientIP)
	s.Require().Equal(created.Phone, stored.Phone)
	s.Require().Equal(created.PostalCode, stored.PostalCode)
	s.Require().Empty(stored.Complement)
}

func (s *IntegrationTestSuite) TestSubmitSurvivesMailOutage() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	m := mock_mailer.NewMockMailer(ctrl)
	m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(2)

	svc := s.newService(m)

	created, res, err := svc.Submit(ctx, generateFakeForm(), "203.0.113.8")
	s.Require().NoError(err)
	s.Require().False(res.Customer)
	s.Require().False(res.Operator)

	got, err := svc.GetQuote(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().Equal(created.ID, got.ID)
}

func (s *IntegrationTestSuite) TestStoreRejectsInvalidStatus() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewQuoteRepository(s.db)
	q := &entity.QuoteRequest{
		Name: "Ana", Email: "ana@example.com", Phone: "(11) 98765-4321",
		Street: "Rua A", Number: "1", Neighborhood: "Centro", City: "São Paulo",
		State: "SP", PostalCode: "01001-000", Product: "caneca", Quantity: 1,
		Print: "logo", CreatedAt: time.Now().UTC(), Status: entity.Status("arquivado"),
	}

	err := repo.Create(ctx, s.db.Pool, q)
	s.Require().Error(err)
}

func TestIntegration(t *testing.T) {
	t.Parallel()
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration test; set INTEGRATION_TEST to run.")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func generateFakeForm() intake.Form {
	return intake.Form{
		intake.FieldName:         gofakeit.Name(),
		intake.FieldEmail:        gofakeit.Email(),
		intake.FieldPhone:        gofakeit.Numerify("119########"),
		intake.FieldStreet:       gofakeit.Street(),
		intake.FieldNumber:       strconv.Itoa(gofakeit.Number(1, 9999)),
		intake.FieldNeighborhood: gofakeit.Word(),
		intake.FieldCity:         gofakeit.City(),
		intake.FieldState:        gofakeit.RandomString(entity.States),
		intake.FieldPostalCode:   gofakeit.Numerify("########"),
		intake.FieldProduct:      "caneca",
		intake.FieldMugType:      "porcelana",
		intake.FieldMugColor:     gofakeit.Color(),
		intake.FieldQuantity:     strconv.Itoa(gofakeit.Number(1, 50)),
		intake.FieldPrint:        gofakeit.Word(),
		intake.FieldNotes:        gofakeit.Sentence(5),
	}
}
