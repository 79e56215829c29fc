package booking

import (
	"bookingapi/internal/domain"
)

// The read model is assembled in two passes: the aggregate graph comes in
// with reference rows preloaded, then party customer names are filled from
// a single batch fetch keyed by customer id. Folding the names into the
// aggregate query would stack a one-to-one onto the party fan-out; a
// per-party lookup would be N+1. Keep the id-map fill.

func collectCustomerIDs(bookings []domain.Booking) []int32 {
	seen := make(map[int32]struct{})
	ids := make([]int32, 0)
	for i := range bookings {
		for _, p := range bookings[i].Parties {
			if p.CustomerID == nil {
				continue
			}
			if _, ok := seen[*p.CustomerID]; ok {
				continue
			}
			seen[*p.CustomerID] = struct{}{}
			ids = append(ids, *p.CustomerID)
		}
	}
	return ids
}

func assembleDTO(b *domain.Booking, names map[int32]domain.CustomerInformation) BookingDTO {
	dto := BookingDTO{
		BookingID:             b.BookingID,
		BookingNo:             b.BookingNo,
		StatusID:              b.StatusID,
		OriginLocationID:      b.OriginLocationID,
		DestinationLocationID: b.DestinationLocationID,
		VesselID:              b.VesselID,
		EquipmentID:           b.EquipmentID,
		CommodityID:           b.CommodityID,
		Weight:                b.Weight,
		DeclaredValue:         b.DeclaredValue,
		CargoDescription:      b.CargoDescription,
		ContainerID:           b.ContainerID,
		SealNumber:            b.SealNumber,
		PaymentModeID:         b.PaymentModeID,
		Trucker:               b.Trucker,
		PlateNumber:           b.PlateNumber,
		Driver:                b.Driver,
		CreateDttm:            b.CreateDttm,
		UpdateDttm:            b.UpdateDttm,
		CancelDttm:            b.CancelDttm,
		CancelRemarks:         b.CancelRemarks,
		BookingParties:        make([]BookingPartyDTO, 0, len(b.Parties)),
	}

	if b.Status != nil {
		dto.StatusDesc = b.Status.StatusDesc
	}
	if b.OriginLocation != nil {
		dto.OriginLocationDesc = b.OriginLocation.LocationDesc
	}
	if b.DestinationLocation != nil {
		dto.DestinationLocationDesc = b.DestinationLocation.LocationDesc
	}
	if b.Equipment != nil {
		dto.EquipmentDesc = b.Equipment.EquipmentDesc
	}
	if b.Commodity != nil {
		dto.CommodityDesc = b.Commodity.CommodityDesc
	}
	if b.PaymentMode != nil {
		dto.PaymentModeDesc = b.PaymentMode.PaymentModeDesc
	}
	if b.Container != nil {
		dto.ContainerNo = b.Container.ContainerNo
	}

	// The direct vessel reference wins over the schedule's vessel when both
	// are present.
	if b.Vessel != nil {
		dto.VesselDesc = b.Vessel.VesselDesc
	} else if b.VesselSchedule != nil && b.VesselSchedule.Vessel != nil {
		dto.VesselDesc = b.VesselSchedule.Vessel.VesselDesc
	}

	if vs := b.VesselSchedule; vs != nil {
		sched := &VesselScheduleDTO{
			VesselScheduleID: vs.VesselScheduleID,
			ETD:              vs.ETD,
			ETA:              vs.ETA,
		}
		if vs.Vessel != nil {
			sched.VesselDesc = vs.Vessel.VesselDesc
		}
		if vs.OriginPort != nil {
			sched.OriginPortDesc = vs.OriginPort.PortDesc
		}
		if vs.DestinationPort != nil {
			sched.DestinationPortDesc = vs.DestinationPort.PortDesc
		}
		dto.VesselSchedule = sched
	}

	for _, p := range b.Parties {
		partyDTO := BookingPartyDTO{
			BookingPartyID: p.BookingPartyID,
			PartyTypeID:    p.PartyTypeID,
		}
		if p.CustomerID != nil {
			customer := &CustomerDTO{CustomerID: *p.CustomerID}
			if p.Customer != nil {
				customer.CustomerCd = p.Customer.CustomerCd
			}
			if info, ok := names[*p.CustomerID]; ok {
				customer.FirstName = info.FirstName
				customer.MiddleName = info.MiddleName
				customer.LastName = info.LastName
			}
			partyDTO.Customer = customer
		}
		dto.BookingParties = append(dto.BookingParties, partyDTO)
	}

	return dto
}
