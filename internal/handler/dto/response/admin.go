package response

import (
	"court-booking/internal/usecase/commands"
)

type AdminReservationResponse struct {
	ReservationCode string `json:"reservation_code"`
	Price           int64  `json:"price"`
	Commission      int64  `json:"commission"`
	CommissionVAT   int64  `json:"commission_vat"`
	Notified        bool   `json:"notified"`
}

func FromAdminResult(r *commands.AdminReservationResult) *AdminReservationResponse {
	return &AdminReservationResponse{
		ReservationCode: r.ReservationCode,
		Price:           r.Price,
		Commission:      r.Commission,
		CommissionVAT:   r.CommissionVAT,
		Notified:        r.Notified,
	}
}
