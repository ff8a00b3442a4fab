package create_review

import "github.com/easybook/EB-BookingService/internal/domain"

// ReviewRequest HTTP request model
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

func fromDomain(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
