package service

import (
	"context"
	"errors"

	"app/internal/model"
	"app/internal/repository"
)

var ErrNoticeNotFound = errors.New("notice not found")

type NoticeService interface {
	Create(ctx context.Context, n *model.Notice) (*model.Notice, error)
	// List returns notices newest first; nil active means no filter.
	List(ctx context.Context, active *bool) ([]model.Notice, error)
	Delete(ctx context.Context, id string) error
}

type noticeService struct {
	noticeRepo repository.NoticeRepository
}

func NewNoticeService(noticeRepo repository.NoticeRepository) NoticeService {
	return &noticeService{noticeRepo: noticeRepo}
}

func (s *noticeService) Create(ctx context.Context, n *model.Notice) (*model.Notice, error) {
	n.ID, n.CreatedAt = newRecordStamp()
	n.Active = true
	if err := s.noticeRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *noticeService) List(ctx context.Context, active *bool) ([]model.Notice, error) {
	return s.noticeRepo.List(ctx, active)
}

func (s *noticeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.noticeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoticeNotFound
	}
	return nil
}
