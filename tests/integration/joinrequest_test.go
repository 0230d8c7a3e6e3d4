//go:build integration

package integration

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wuttipat/court-booking-service/internal/models"
	"github.com/wuttipat/court-booking-service/internal/notifier"
	"github.com/wuttipat/court-booking-service/internal/repository"
	"github.com/wuttipat/court-booking-service/internal/service"
)

func createTestMatch(t *testing.T, playersRequired int) *models.Match {
	t.Helper()
	match := &models.Match{
		CreatorID:       "creator-1",
		DateTime:        time.Now().Add(48 * time.Hour),
		Location:        "Downtown Arena",
		Level:           "intermediate",
		PlayersRequired: playersRequired,
		Status:          models.MatchUpcoming,
	}
	require.NoError(t, testDB.Create(match).Error)
	return match
}

func newMatchService() service.MatchService {
	matchRepo := repository.NewMatchRepository(testDB)
	requestRepo := repository.NewJoinRequestRepository(testDB)
	return service.NewMatchService(matchRepo, requestRepo, notifier.NewLogNotifier())
}

// Concurrent accepts on a match needing 3 players never exceed capacity.
func TestConcurrentAcceptsRespectCapacity(t *testing.T) {
	cleanTables()
	match := createTestMatch(t, 3)
	svc := newMatchService()

	totalRequests := 10
	requestIDs := make([]uint, 0, totalRequests)
	for i := 0; i < totalRequests; i++ {
		req, err := svc.SubmitJoinRequest(t.Context(), fmt.Sprintf("player-%02d", i), match.ID, "")
		require.NoError(t, err)
		requestIDs = append(requestIDs, req.ID)
	}

	var wg sync.WaitGroup
	outcomes := make(chan error, totalRequests)

	wg.Add(totalRequests)
	for _, id := range requestIDs {
		go func(requestID uint) {
			defer wg.Done()
			_, err := svc.DecideJoinRequest(t.Context(), "creator-1", requestID, true)
			outcomes <- err
		}(id)
	}
	wg.Wait()
	close(outcomes)

	var accepted, full int
	for err := range outcomes {
		switch {
		case err == nil:
			accepted++
		case assert.ErrorIs(t, err, service.ErrMatchFull):
			full++
		}
	}

	assert.Equal(t, 3, accepted, "accepts must stop at players required")
	assert.Equal(t, totalRequests-3, full)

	var dbAccepted int64
	testDB.Model(&models.JoinRequest{}).
		Where("match_id = ? AND status = ?", match.ID, models.RequestAccepted).
		Count(&dbAccepted)
	assert.Equal(t, int64(3), dbAccepted)
}

// A requester holds at most one active request per match.
func TestDuplicateJoinRequestRejected(t *testing.T) {
	cleanTables()
	match := createTestMatch(t, 3)
	svc := newMatchService()

	_, err := svc.SubmitJoinRequest(t.Context(), "player-1", match.ID, "")
	require.NoError(t, err)

	_, err = svc.SubmitJoinRequest(t.Context(), "player-1", match.ID, "")
	assert.ErrorIs(t, err, service.ErrDuplicateRequest)
}

// Concurrent duplicate submissions leave exactly one row.
func TestConcurrentDuplicateSubmissions(t *testing.T) {
	cleanTables()
	match := createTestMatch(t, 3)
	svc := newMatchService()

	attempts := 10
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.SubmitJoinRequest(t.Context(), "player-racer", match.ID, "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, service.ErrDuplicateRequest)
		}
	}
	assert.Equal(t, 1, succeeded)

	var rows int64
	testDB.Model(&models.JoinRequest{}).
		Where("match_id = ? AND requester_id = ?", match.ID, "player-racer").
		Count(&rows)
	assert.Equal(t, int64(1), rows)
}

// A declined requester may submit again; pending or accepted requesters may not.
func TestResubmitAfterDecline(t *testing.T) {
	cleanTables()
	match := createTestMatch(t, 3)
	svc := newMatchService()

	first, err := svc.SubmitJoinRequest(t.Context(), "player-1", match.ID, "")
	require.NoError(t, err)

	declined, err := svc.DecideJoinRequest(t.Context(), "creator-1", first.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.RequestDeclined, declined.Status)

	second, err := svc.SubmitJoinRequest(t.Context(), "player-1", match.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, second.Status)

	accepted, err := svc.DecideJoinRequest(t.Context(), "creator-1", second.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, accepted.Status)

	_, err = svc.SubmitJoinRequest(t.Context(), "player-1", match.ID, "")
	assert.ErrorIs(t, err, service.ErrDuplicateRequest)
}

// Only the creator decides, each request is decided once, and a full match
// stops accepting new submissions.
func TestDecisionRules(t *testing.T) {
	cleanTables()
	match := createTestMatch(t, 1)
	svc := newMatchService()

	req, err := svc.SubmitJoinRequest(t.Context(), "player-1", match.ID, "")
	require.NoError(t, err)

	_, err = svc.DecideJoinRequest(t.Context(), "not-the-creator", req.ID, true)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svc.DecideJoinRequest(t.Context(), "creator-1", req.ID, true)
	require.NoError(t, err)

	_, err = svc.DecideJoinRequest(t.Context(), "creator-1", req.ID, false)
	assert.ErrorIs(t, err, service.ErrRequestDecided)

	_, err = svc.SubmitJoinRequest(t.Context(), "player-2", match.ID, "")
	assert.ErrorIs(t, err, service.ErrMatchFull)

	capacity, err := svc.GetMatchCapacity(t.Context(), match.ID)
	require.NoError(t, err)
	assert.True(t, capacity.Full)
	assert.Equal(t, int64(1), capacity.Accepted)
}

// A cancelled match accepts no further submissions.
func TestCancelledMatchClosed(t *testing.T) {
	cleanTables()
	match := createTestMatch(t, 3)
	svc := newMatchService()

	cancelled, err := svc.CancelMatch(t.Context(), "creator-1", match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCancelled, cancelled.Status)

	_, err = svc.SubmitJoinRequest(t.Context(), "player-1", match.ID, "")
	assert.ErrorIs(t, err, service.ErrMatchNotOpen)

	_, err = svc.CancelMatch(t.Context(), "creator-1", match.ID)
	assert.ErrorIs(t, err, service.ErrMatchNotOpen)
}

// The creator cannot request to join their own match.
func TestCreatorCannotJoinOwnMatch(t *testing.T) {
	cleanTables()
	match := createTestMatch(t, 3)
	svc := newMatchService()

	_, err := svc.SubmitJoinRequest(t.Context(), "creator-1", match.ID, "")
	assert.ErrorIs(t, err, service.ErrOwnMatch)
}
