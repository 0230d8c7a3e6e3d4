package service

import (
	"context"
	"errors"
	"time"

	"github.com/wuttipat/court-booking-service/internal/models"
	"github.com/wuttipat/court-booking-service/internal/notifier"
	"github.com/wuttipat/court-booking-service/internal/repository"
	"gorm.io/gorm"
)

// MatchCapacity reports how many of the required extra players have been
// accepted so far. The creator is not counted.
type MatchCapacity struct {
	Accepted int64
	Required int
	Full     bool
}

type MatchService interface {
	CreateMatch(ctx context.Context, match *models.Match) error
	GetMatch(ctx context.Context, id uint) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	GetMatchCapacity(ctx context.Context, matchID uint) (*MatchCapacity, error)
	CancelMatch(ctx context.Context, creatorID string, id uint) (*models.Match, error)
	SubmitJoinRequest(ctx context.Context, requesterID string, matchID uint, message string) (*models.JoinRequest, error)
	DecideJoinRequest(ctx context.Context, creatorID string, requestID uint, accept bool) (*models.JoinRequest, error)
	ListJoinRequests(ctx context.Context, creatorID string, matchID uint) ([]models.JoinRequest, error)
}

type matchService struct {
	matchRepo   repository.MatchRepository
	requestRepo repository.JoinRequestRepository
	notify      notifier.Notifier
	now         func() time.Time
}

func NewMatchService(
	matchRepo repository.MatchRepository,
	requestRepo repository.JoinRequestRepository,
	notify notifier.Notifier,
) MatchService {
	return &matchService{
		matchRepo:   matchRepo,
		requestRepo: requestRepo,
		notify:      notify,
		now:         time.Now,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, match *models.Match) error {
	if match.PlayersRequired < 1 {
		return ErrInvalidWindow
	}
	if !match.DateTime.After(s.now()) {
		return ErrInvalidDate
	}
	match.Status = models.MatchUpcoming
	return s.matchRepo.Create(ctx, match)
}

func (s *matchService) GetMatch(ctx context.Context, id uint) (*models.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context) ([]models.Match, error) {
	return s.matchRepo.FindAll(ctx)
}

func (s *matchService) GetMatchCapacity(ctx context.Context, matchID uint) (*MatchCapacity, error) {
	match, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	accepted, err := s.requestRepo.CountAccepted(ctx, s.requestRepo.GetDB(), matchID)
	if err != nil {
		return nil, err
	}
	return &MatchCapacity{
		Accepted: accepted,
		Required: match.PlayersRequired,
		Full:     accepted >= int64(match.PlayersRequired),
	}, nil
}

// CancelMatch closes an upcoming match. Cancelled matches accept no further
// join requests; players already accepted are told the match is off.
func (s *matchService) CancelMatch(ctx context.Context, creatorID string, id uint) (*models.Match, error) {
	match, err := s.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if match.CreatorID != creatorID {
		return nil, ErrForbidden
	}
	if match.Status != models.MatchUpcoming {
		return nil, ErrMatchNotOpen
	}

	if err := s.matchRepo.UpdateStatus(ctx, id, models.MatchCancelled); err != nil {
		return nil, err
	}
	match.Status = models.MatchCancelled

	requests, err := s.requestRepo.FindByMatch(ctx, id)
	if err == nil {
		for _, r := range requests {
			if r.Status == models.RequestAccepted {
				_ = s.notify.Notify(r.RequesterID, "match.cancelled", map[string]any{
					"match_id": id,
				})
			}
		}
	}
	return match, nil
}

// SubmitJoinRequest records a pending request to join a match. A requester
// holds at most one non-declined request per match; the partial unique index
// on (match_id, requester_id) enforces that under concurrency, so a racing
// duplicate surfaces as a duplicate-key error.
func (s *matchService) SubmitJoinRequest(ctx context.Context, requesterID string, matchID uint, message string) (*models.JoinRequest, error) {
	var (
		request   *models.JoinRequest
		creatorID string
	)

	err := s.matchRepo.GetDB().Transaction(func(tx *gorm.DB) error {
		match, err := s.matchRepo.FindByIDForUpdate(ctx, tx, matchID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return err
		}
		if match.Status != models.MatchUpcoming || !match.DateTime.After(s.now()) {
			return ErrMatchNotOpen
		}
		if match.CreatorID == requesterID {
			return ErrOwnMatch
		}

		if _, err := s.requestRepo.FindActive(ctx, tx, matchID, requesterID); err == nil {
			return ErrDuplicateRequest
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		accepted, err := s.requestRepo.CountAccepted(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if accepted >= int64(match.PlayersRequired) {
			return ErrMatchFull
		}

		request = &models.JoinRequest{
			MatchID:     matchID,
			RequesterID: requesterID,
			Status:      models.RequestPending,
			Message:     message,
		}
		creatorID = match.CreatorID
		if err := s.requestRepo.Create(ctx, tx, request); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRequest
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.notify.Notify(creatorID, "match.join_requested", map[string]any{
		"match_id":     matchID,
		"requester_id": requesterID,
	})
	return request, nil
}

// DecideJoinRequest accepts or declines a pending request. The match row is
// locked before counting accepted requests, so concurrent accepts serialize
// and the accepted count never exceeds the players required.
func (s *matchService) DecideJoinRequest(ctx context.Context, creatorID string, requestID uint, accept bool) (*models.JoinRequest, error) {
	var request *models.JoinRequest

	err := s.matchRepo.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		request, err = s.requestRepo.FindByID(ctx, tx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		match, err := s.matchRepo.FindByIDForUpdate(ctx, tx, request.MatchID)
		if err != nil {
			return err
		}
		if match.CreatorID != creatorID {
			return ErrForbidden
		}
		if request.Status != models.RequestPending {
			return ErrRequestDecided
		}

		status := models.RequestDeclined
		if accept {
			accepted, err := s.requestRepo.CountAccepted(ctx, tx, request.MatchID)
			if err != nil {
				return err
			}
			if accepted >= int64(match.PlayersRequired) {
				return ErrMatchFull
			}
			status = models.RequestAccepted
		}

		if err := s.requestRepo.UpdateStatus(ctx, tx, requestID, status); err != nil {
			return err
		}
		request.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := "match.request_declined"
	if request.Status == models.RequestAccepted {
		event = "match.request_accepted"
	}
	_ = s.notify.Notify(request.RequesterID, event, map[string]any{
		"match_id":   request.MatchID,
		"request_id": request.ID,
	})
	return request, nil
}

func (s *matchService) ListJoinRequests(ctx context.Context, creatorID string, matchID uint) ([]models.JoinRequest, error) {
	match, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.CreatorID != creatorID {
		return nil, ErrForbidden
	}
	return s.requestRepo.FindByMatch(ctx, matchID)
}
