package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/proyectozoo/zoo-api/internal/domain"
	"github.com/proyectozoo/zoo-api/internal/platform/logger"
	"github.com/proyectozoo/zoo-api/internal/platform/metrics"
	"github.com/proyectozoo/zoo-api/internal/store"
)

// CommentService manages visitor comments on animals.
type CommentService interface {
	List(ctx context.Context) ([]domain.Comment, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]domain.Comment, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// Create stores a comment by userID on animalID.
	// Returns ErrCommentLimit when the user already commented the animal today.
	Create(ctx context.Context, animalID, userID uuid.UUID, text string) (*domain.Comment, error)

	// Delete removes a comment. Only its author or an admin may do so;
	// anyone else gets ErrForbidden.
	Delete(ctx context.Context, id, actorID uuid.UUID, actorIsAdmin bool) (*domain.Comment, error)
}

// CommentServiceImpl implements CommentService.
type CommentServiceImpl struct {
	db       store.TxBeginner
	comments store.CommentStore
	animals  store.AnimalStore
	now      func() time.Time
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

var _ CommentService = (*CommentServiceImpl)(nil)

// NewCommentService creates a CommentService.
func NewCommentService(
	db store.TxBeginner,
	comments store.CommentStore,
	animals store.AnimalStore,
	log *slog.Logger,
	opts ...Option,
) *CommentServiceImpl {
	o := buildOptions(opts)
	return &CommentServiceImpl{
		db:       db,
		comments: comments,
		animals:  animals,
		now:      o.now,
		metrics:  o.metrics,
		logger:   log.With(slog.String("component", "comment_service")),
	}
}

func (s *CommentServiceImpl) List(ctx context.Context) ([]domain.Comment, error) {
	comments, err := s.comments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *CommentServiceImpl) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]domain.Comment, error) {
	if _, err := s.animals.GetByID(ctx, animalID); err != nil {
		return nil, fmt.Errorf("failed to retrieve animal: %w", err)
	}
	comments, err := s.comments.ListByAnimal(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments of animal: %w", err)
	}
	return comments, nil
}

func (s *CommentServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve comment: %w", err)
	}
	return comment, nil
}

// Create enforces the one-comment-per-animal-per-day limit for the current day.
func (s *CommentServiceImpl) Create(ctx context.Context, animalID, userID uuid.UUID, text string) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	comment, err := domain.NewComment(animalID, userID, text, s.now())
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.animals.WithTx(tx).GetByID(ctx, animalID); err != nil {
			return err
		}

		txComments := s.comments.WithTx(tx)
		exists, err := txComments.ExistsForDay(ctx, userID, animalID, comment.CreatedOn)
		if err != nil {
			return err
		}
		if exists {
			return ErrCommentLimit
		}
		return txComments.Create(ctx, comment)
	})
	if errors.Is(err, store.ErrCommentForTheDay) {
		err = ErrCommentLimit
	}
	if err != nil {
		if errors.Is(err, ErrCommentLimit) {
			log.Debug("comment limit reached",
				slog.String("user_id", userID.String()),
				slog.String("animal_id", animalID.String()),
				slog.String("day", comment.CreatedOn.String()))
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.metrics.CommentCreated()
	log.Info("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("animal_id", animalID.String()))
	return comment, nil
}

// Delete removes a comment on behalf of actorID.
func (s *CommentServiceImpl) Delete(ctx context.Context, id, actorID uuid.UUID, actorIsAdmin bool) (*domain.Comment, error) {
	var deleted *domain.Comment
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.comments.WithTx(tx)
		comment, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if comment.UserID != actorID && !actorIsAdmin {
			return ErrForbidden
		}
		if err := txStore.Delete(ctx, id); err != nil {
			return err
		}
		deleted = comment
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}
	return deleted, nil
}
