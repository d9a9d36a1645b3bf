package storage

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	pq "github.com/lib/pq"
	"github.com/pricetrail/pricetrail/internal/domain/models"
)

func newMockPeriodRepo(t *testing.T) (*pricePeriodRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &pricePeriodRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

var periodCols = []string{"id", "product_id", "price", "start_date", "end_date", "created_at"}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func proposal(start, end time.Time) models.PricePeriod {
	return models.PricePeriod{
		ID:        "new-period",
		ProductID: "prod-1",
		Price:     70,
		StartDate: start,
		EndDate:   &end,
	}
}

func TestListByProduct_SQLMock(t *testing.T) {
	repo, mock, done := newMockPeriodRepo(t)
	defer done()

	rows := sqlmock.NewRows(periodCols).
		AddRow("per-1", "prod-1", 80.0, day(2025, 6, 5), day(2025, 6, 10), time.Now()).
		AddRow("per-2", "prod-1", 50.0, day(2025, 8, 1), nil, time.Now())
	mock.ExpectQuery(`SELECT .* FROM price_periods\s+WHERE product_id = \$1`).
		WithArgs("prod-1").WillReturnRows(rows)

	out, err := repo.ListByProduct("prod-1")
	if err != nil || len(out) != 2 {
		t.Fatalf("unexpected out=%v err=%v", out, err)
	}
	if out[0].EndDate == nil || !out[0].EndDate.Equal(day(2025, 6, 10)) {
		t.Fatalf("bounded period scanned wrong: %+v", out[0])
	}
	if out[1].EndDate != nil {
		t.Fatalf("open period should have nil end date: %+v", out[1])
	}
}

// expectAdmitScan sets up the begin/lock/scan prefix every Admit runs.
func expectAdmitScan(mock sqlmock.Sqlmock, existing *sqlmock.Rows) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("prod-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .* FROM price_periods\s+WHERE product_id = \$1`).
		WithArgs("prod-1").
		WillReturnRows(existing)
}

func TestAdmit_Success(t *testing.T) {
	repo, mock, done := newMockPeriodRepo(t)
	defer done()

	existing := sqlmock.NewRows(periodCols).
		AddRow("per-1", "prod-1", 80.0, day(2025, 6, 5), day(2025, 6, 10), time.Now())
	expectAdmitScan(mock, existing)
	mock.ExpectExec(`INSERT INTO price_periods`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	created, err := repo.Admit(proposal(day(2025, 7, 5), day(2025, 7, 20)))
	if err != nil || created == nil {
		t.Fatalf("unexpected created=%+v err=%v", created, err)
	}
	if !created.StartDate.Equal(day(2025, 7, 5)) || created.EndDate == nil || !created.EndDate.Equal(day(2025, 7, 20)) {
		t.Fatalf("dates not normalized: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdmit_OverlapRejected(t *testing.T) {
	repo, mock, done := newMockPeriodRepo(t)
	defer done()

	existing := sqlmock.NewRows(periodCols).
		AddRow("per-1", "prod-1", 80.0, day(2025, 6, 5), day(2025, 6, 10), time.Now())
	expectAdmitScan(mock, existing)
	// No insert: the scan finds the conflict and rolls back.
	mock.ExpectRollback()

	created, err := repo.Admit(proposal(day(2025, 6, 5), day(2025, 6, 20)))
	if !errors.Is(err, models.ErrPeriodOverlap) || created != nil {
		t.Fatalf("want ErrPeriodOverlap, got created=%+v err=%v", created, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdmit_OpenPeriodBlocksLaterProposal(t *testing.T) {
	repo, mock, done := newMockPeriodRepo(t)
	defer done()

	existing := sqlmock.NewRows(periodCols).
		AddRow("per-1", "prod-1", 50.0, day(2025, 6, 5), nil, time.Now())
	expectAdmitScan(mock, existing)
	mock.ExpectRollback()

	_, err := repo.Admit(proposal(day(2025, 12, 1), day(2025, 12, 31)))
	if !errors.Is(err, models.ErrPeriodOverlap) {
		t.Fatalf("want ErrPeriodOverlap against open period, got %v", err)
	}
}

func TestAdmit_ExclusionConstraintMapsToOverlap(t *testing.T) {
	repo, mock, done := newMockPeriodRepo(t)
	defer done()

	expectAdmitScan(mock, sqlmock.NewRows(periodCols))
	// The scan saw nothing, but a concurrent writer got there first and the
	// constraint fires at insert.
	mock.ExpectExec(`INSERT INTO price_periods`).
		WillReturnError(&pq.Error{Code: "23P01"})
	mock.ExpectRollback()

	_, err := repo.Admit(proposal(day(2025, 7, 5), day(2025, 7, 20)))
	if !errors.Is(err, models.ErrPeriodOverlap) {
		t.Fatalf("want ErrPeriodOverlap from constraint, got %v", err)
	}
}

func TestAdmit_LockError(t *testing.T) {
	repo, mock, done := newMockPeriodRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("prod-1").
		WillReturnError(dummyErr{})
	mock.ExpectRollback()

	if _, err := repo.Admit(proposal(day(2025, 7, 5), day(2025, 7, 20))); err == nil {
		t.Fatalf("expected lock error")
	}
}

func TestNewPricePeriodRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if NewPricePeriodRepository(db) == nil {
		t.Fatalf("expected non-nil repository")
	}
}
