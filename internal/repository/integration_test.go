package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/Kadacheahmedrami/EstinBib-sub000/database"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/config"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// RepositoryIntegrationTestSuite runs the borrow and SNDL repositories against
// a real PostgreSQL instance, since the locking and partial unique indexes they
// rely on cannot be exercised by mocks. Set TEST_DATABASE_URL to a scratch
// database to enable it.
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	db      *gorm.DB
	borrows BorrowRepository
	books   BookRepository
	demands SndlDemandRepository
}

// SetupSuite runs once before all tests
func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		s.T().Skip("TEST_DATABASE_URL not set, skipping integration tests")
		return
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{DatabaseURL: url, GoEnv: "development"}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		s.T().Skipf("database not available, skipping integration tests: %v", err)
		return
	}

	s.db = db
	s.borrows = NewBorrowRepository(db)
	s.books = NewBookRepository(db)
	s.demands = NewSndlDemandRepository(db)
}

// SetupTest runs before each test
func (s *RepositoryIntegrationTestSuite) SetupTest() {
	// Child tables first so the foreign keys do not object.
	for _, table := range []string{
		"borrows", "sndl_demands", "refresh_tokens", "book_categories",
		"books", "categories", "users",
	} {
		require.NoError(s.T(), s.db.Exec("DELETE FROM "+table).Error)
	}
}

// TearDownSuite runs once after all tests
func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.db == nil {
		return
	}
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (s *RepositoryIntegrationTestSuite) createUser(name string) *models.User {
	user := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@estin.dz", name),
		Password: "hashed",
	}
	require.NoError(s.T(), s.db.Create(user).Error)
	return user
}

func (s *RepositoryIntegrationTestSuite) createBook(title string) *models.Book {
	book := &models.Book{Title: title, Author: "Test Author", Size: 200}
	require.NoError(s.T(), s.db.Create(book).Error)
	return book
}

func (s *RepositoryIntegrationTestSuite) bookAvailable(id int64) bool {
	var book models.Book
	require.NoError(s.T(), s.db.First(&book, id).Error)
	return book.Available
}

func (s *RepositoryIntegrationTestSuite) openBorrowCount(bookID int64) int64 {
	var n int64
	require.NoError(s.T(), s.db.Model(&models.Borrow{}).
		Where("book_id = ? AND returned_at IS NULL", bookID).
		Count(&n).Error)
	return n
}

// Test 1: Concurrent creates for one book admit exactly one borrower
func (s *RepositoryIntegrationTestSuite) TestConcurrentBorrowSingleWinner() {
	t := s.T()
	ctx := context.Background()

	book := s.createBook("Operating System Concepts")
	due := time.Now().Add(models.BorrowPeriod)

	const numBorrowers = 8
	users := make([]*models.User, numBorrowers)
	for i := range users {
		users[i] = s.createUser(fmt.Sprintf("borrower_%d", i))
	}

	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numBorrowers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, err := s.borrows.Create(ctx, book.ID, users[idx].ID, due)
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, apperrors.ErrConflict):
				conflicts.Add(1)
			default:
				t.Errorf("borrower %d: unexpected error: %v", idx, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load(), "exactly one create should succeed")
	assert.Equal(t, int32(numBorrowers-1), conflicts.Load(), "all others should conflict")
	assert.Equal(t, int64(1), s.openBorrowCount(book.ID))
	assert.False(t, s.bookAvailable(book.ID), "borrowed book must be unavailable")
}

// Test 2: Full lifecycle keeps the availability flag in step with open borrows
func (s *RepositoryIntegrationTestSuite) TestBorrowLifecycle() {
	t := s.T()
	ctx := context.Background()

	book := s.createBook("The Go Programming Language")
	user := s.createUser("lifecycle_user")
	due := time.Now().Add(models.BorrowPeriod).Truncate(time.Second)

	borrow, err := s.borrows.Create(ctx, book.ID, user.ID, due)
	require.NoError(t, err)
	assert.False(t, s.bookAvailable(book.ID))
	assert.Equal(t, int64(1), s.openBorrowCount(book.ID))

	extended, err := s.borrows.Extend(ctx, borrow.ID, 2)
	require.NoError(t, err)
	assert.WithinDuration(t, due.Add(2*7*24*time.Hour), extended.DueDate, time.Second,
		"extension counts from the due date, not from now")

	returned, err := s.borrows.Return(ctx, borrow.ID, time.Now())
	require.NoError(t, err)
	require.NotNil(t, returned.ReturnedAt)
	assert.True(t, s.bookAvailable(book.ID), "returned book must be available again")
	assert.Equal(t, int64(0), s.openBorrowCount(book.ID))

	// Returning twice is a conflict, not a silent second close.
	_, err = s.borrows.Return(ctx, borrow.ID, time.Now())
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	// And the book can be borrowed again, by someone else.
	other := s.createUser("next_borrower")
	_, err = s.borrows.Create(ctx, book.ID, other.ID, due)
	require.NoError(t, err)
	assert.False(t, s.bookAvailable(book.ID))
}

// Test 3: A metadata edit never touches the availability flag
func (s *RepositoryIntegrationTestSuite) TestBookUpdatePreservesAvailability() {
	t := s.T()
	ctx := context.Background()

	book := s.createBook("Database System Concepts")
	user := s.createUser("editor_victim")

	// Snapshot the book before the borrow, the way a dashboard edit form does.
	snapshot, err := s.books.GetByID(ctx, book.ID)
	require.NoError(t, err)
	require.True(t, snapshot.Available)

	_, err = s.borrows.Create(ctx, book.ID, user.ID, time.Now().Add(models.BorrowPeriod))
	require.NoError(t, err)

	snapshot.Description = "Seventh edition"
	require.NoError(t, s.books.Update(ctx, book.ID, snapshot))

	reloaded, err := s.books.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seventh edition", reloaded.Description)
	assert.False(t, reloaded.Available, "stale snapshot must not resurrect availability")
}

// Test 4: The partial unique index rejects a second open SNDL demand
func (s *RepositoryIntegrationTestSuite) TestSndlSecondOpenDemandConflicts() {
	t := s.T()
	ctx := context.Background()

	user := s.createUser("sndl_user")
	librarian := s.createUser("sndl_librarian")

	first := &models.SndlDemand{UserID: user.ID, RequestReason: "thesis research"}
	require.NoError(t, s.demands.Create(ctx, first))

	// Straight to the index, bypassing the service-level check.
	second := &models.SndlDemand{UserID: user.ID, RequestReason: "again"}
	err := s.demands.Create(ctx, second)
	assert.True(t, errors.Is(err, apperrors.ErrConflict),
		"second open demand should conflict, got %v", err)

	// A rejected demand no longer blocks.
	require.NoError(t, first.Reject("no quota left", librarian.ID, time.Now()))
	require.NoError(t, s.demands.Save(ctx, first))

	third := &models.SndlDemand{UserID: user.ID, RequestReason: "second attempt"}
	assert.NoError(t, s.demands.Create(ctx, third))
}

// Run the integration test suite
func TestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
