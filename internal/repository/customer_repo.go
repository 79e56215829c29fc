package repository

import (
	"context"

	"gorm.io/gorm"

	"bookingapi/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// GetInformationByCustomerIDs batch-fetches name rows for the given
// customer ids and returns them keyed by customer id. The booking read
// model fills party names from this map instead of widening the aggregate
// query.
func (r *CustomerRepository) GetInformationByCustomerIDs(ctx context.Context, ids []int32) (map[int32]domain.CustomerInformation, error) {
	out := make(map[int32]domain.CustomerInformation, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []domain.CustomerInformation
	tx := r.db.WithContext(ctx).
		Where("customer_id IN ?", ids).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	for _, row := range rows {
		if row.CustomerID != nil {
			out[*row.CustomerID] = row
		}
	}
	return out, nil
}

func (r *CustomerRepository) GetCustomerByID(ctx context.Context, id int32) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).
		Preload("CustomerInformation").
		Where("customer_id = ?", id).
		First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

type CustomerPartyRow struct {
	CustomerID    int32  `json:"customerId" gorm:"column:customer_id"`
	CustomerCd    string `json:"customerCd" gorm:"column:customer_cd"`
	FirstName     string `json:"firstName" gorm:"column:first_name"`
	MiddleName    string `json:"middleName" gorm:"column:middle_name"`
	LastName      string `json:"lastName" gorm:"column:last_name"`
	PartyTypeID   int16  `json:"partyTypeId" gorm:"column:party_type_id"`
	PartyTypeDesc string `json:"partyTypeDesc" gorm:"column:party_type_desc"`
}

// GetPartiesByType lists customers registered for a party role via the
// customer/customer_type/customer_information join.
func (r *CustomerRepository) GetPartiesByType(ctx context.Context, partyTypeID int16) ([]CustomerPartyRow, error) {
	var rows []CustomerPartyRow
	q := `
SELECT
  c.customer_id,
  c.customer_cd,
  COALESCE(ci.first_name, '') AS first_name,
  COALESCE(ci.middle_name, '') AS middle_name,
  COALESCE(ci.last_name, '') AS last_name,
  ct.party_type_id,
  CASE ct.party_type_id
    WHEN 10 THEN 'Agreement Party'
    WHEN 11 THEN 'Shipper Party'
    WHEN 12 THEN 'Consignee Party'
    ELSE 'Unknown'
  END AS party_type_desc
FROM customer c
INNER JOIN customer_type ct ON ct.customer_id = c.customer_id
INNER JOIN customer_information ci ON ci.customer_id = c.customer_id
WHERE ct.party_type_id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, partyTypeID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
