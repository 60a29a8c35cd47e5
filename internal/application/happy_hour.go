package application

import (
	"context"
	"fmt"
	"time"

	"clubhouse/internal/clock"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/input"
	"clubhouse/internal/ports/output"
)

var _ input.HappyHourUseCase = (*HappyHourService)(nil)

type HappyHourService struct {
	repo  output.HappyHourRepository
	clock clock.Clock
	loc   *time.Location
}

// NewHappyHourService reads wall-clock times in loc, the club's zone.
func NewHappyHourService(repo output.HappyHourRepository, clk clock.Clock, loc *time.Location) *HappyHourService {
	return &HappyHourService{repo: repo, clock: clk, loc: loc}
}

func (s *HappyHourService) CreateHappyHour(ctx context.Context, fields input.HappyHourFields) (*entities.HappyHour, error) {
	hh := &entities.HappyHour{StartTime: fields.StartTime, EndTime: fields.EndTime, Image: fields.Image}
	hh.Normalize()
	if err := hh.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, hh); err != nil {
		return nil, fmt.Errorf("create happy hour: %w", err)
	}
	return hh, nil
}

func (s *HappyHourService) UpdateHappyHour(ctx context.Context, id string, fields input.HappyHourFields) (*entities.HappyHour, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	hh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hh.StartTime, hh.EndTime, hh.Image = fields.StartTime, fields.EndTime, fields.Image
	hh.Normalize()
	if err := hh.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, hh); err != nil {
		return nil, fmt.Errorf("update happy hour: %w", err)
	}
	return hh, nil
}

func (s *HappyHourService) GetHappyHour(ctx context.Context) (*entities.HappyHour, error) {
	return s.repo.Current(ctx)
}

func (s *HappyHourService) Status(ctx context.Context) (*input.HappyHourStatus, error) {
	hh, err := s.repo.Current(ctx)
	if err != nil {
		if isNotFound(err) {
			return &input.HappyHourStatus{}, nil
		}
		return nil, fmt.Errorf("get happy hour: %w", err)
	}
	return &input.HappyHourStatus{
		Exists:    true,
		IsLive:    hh.LiveAt(s.clock.Now(), s.loc),
		HappyHour: hh,
	}, nil
}
