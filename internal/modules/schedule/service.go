package schedule

import (
	"context"

	"bookingapi/internal/repository"
)

// ScheduleRepository resolves location filters to ports and runs the
// composed schedule query.
type ScheduleRepository interface {
	ResolvePortID(ctx context.Context, locationID int16) (*int16, error)
	GetFiltered(ctx context.Context, originPortID, destinationPortID, vesselID *int16) ([]repository.ScheduleRow, error)
}

type Service struct {
	schedules ScheduleRepository
}

func NewService(schedules ScheduleRepository) *Service {
	return &Service{schedules: schedules}
}

// List returns schedules matching whichever filters are supplied. Location
// filters are resolved to ports first; a location with no port drops its
// filter rather than failing the request.
func (s *Service) List(ctx context.Context, originLocationID, destinationLocationID, vesselID *int16) ([]repository.ScheduleRow, error) {
	var originPortID, destinationPortID *int16

	if originLocationID != nil {
		portID, err := s.schedules.ResolvePortID(ctx, *originLocationID)
		if err != nil {
			return nil, err
		}
		originPortID = portID
	}
	if destinationLocationID != nil {
		portID, err := s.schedules.ResolvePortID(ctx, *destinationLocationID)
		if err != nil {
			return nil, err
		}
		destinationPortID = portID
	}

	return s.schedules.GetFiltered(ctx, originPortID, destinationPortID, vesselID)
}
