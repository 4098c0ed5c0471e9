package service

import (
	"context"
	"errors"

	"app/internal/model"
	"app/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseService interface {
	Create(ctx context.Context, c *model.Course) (*model.Course, error)
	List(ctx context.Context, stream string) ([]model.Course, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	c.ID, c.CreatedAt = newRecordStamp()
	if err := s.courseRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) List(ctx context.Context, stream string) ([]model.Course, error) {
	return s.courseRepo.List(ctx, stream)
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	deleted, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCourseNotFound
	}
	return nil
}
