package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
)

type ReviewService interface {
	Create(ctx context.Context, rv *model.Review) (*model.Review, error)
	// List returns reviews newest first; nil approved means no filter.
	List(ctx context.Context, approved *bool) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	rv.ID, rv.CreatedAt = newRecordStamp()
	// Reviews go live immediately; there is no moderation step in the API.
	rv.Approved = true
	if err := s.reviewRepo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *reviewService) List(ctx context.Context, approved *bool) ([]model.Review, error) {
	return s.reviewRepo.List(ctx, approved)
}
