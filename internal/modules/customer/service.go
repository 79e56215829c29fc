package customer

import (
	"context"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

// PartyRepository lists customers registered under a booking party role.
type PartyRepository interface {
	GetPartiesByType(ctx context.Context, partyTypeID int16) ([]repository.CustomerPartyRow, error)
}

type Service struct {
	customers PartyRepository
}

func NewService(customers PartyRepository) *Service {
	return &Service{customers: customers}
}

func (s *Service) AgreementParties(ctx context.Context) ([]repository.CustomerPartyRow, error) {
	return s.customers.GetPartiesByType(ctx, domain.PartyTypeAgreement)
}

func (s *Service) ShipperParties(ctx context.Context) ([]repository.CustomerPartyRow, error) {
	return s.customers.GetPartiesByType(ctx, domain.PartyTypeShipper)
}

func (s *Service) ConsigneeParties(ctx context.Context) ([]repository.CustomerPartyRow, error) {
	return s.customers.GetPartiesByType(ctx, domain.PartyTypeConsignee)
}
