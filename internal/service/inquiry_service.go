package service

import (
	"context"
	"errors"

	"app/internal/model"
	"app/internal/notify"
	"app/internal/repository"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type InquiryService interface {
	Create(ctx context.Context, inq *model.Inquiry) (*model.Inquiry, error)
	List(ctx context.Context) ([]model.Inquiry, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	notifier    notify.Dispatcher
}

func NewInquiryService(inquiryRepo repository.InquiryRepository, notifier notify.Dispatcher) InquiryService {
	return &inquiryService{inquiryRepo: inquiryRepo, notifier: notifier}
}

func (s *inquiryService) Create(ctx context.Context, inq *model.Inquiry) (*model.Inquiry, error) {
	inq.ID, inq.CreatedAt = newRecordStamp()
	inq.Status = "new"
	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, err
	}
	// Best-effort alert to the institute; runs detached from the request so
	// a slow or failing collaborator never delays the response.
	go s.notifier.InquiryCreated(context.Background(), inq)
	return inq, nil
}

func (s *inquiryService) List(ctx context.Context) ([]model.Inquiry, error) {
	return s.inquiryRepo.List(ctx)
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id, status string) error {
	matched, err := s.inquiryRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !matched {
		return ErrInquiryNotFound
	}
	return nil
}
