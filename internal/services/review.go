package services

import (
	"strings"

	"github.com/hustlehives/backend/internal/models"
	"github.com/hustlehives/backend/pkg/response"
	"gorm.io/gorm"
)

// Validation errors returned by Submit. The messages are part of the
// public API contract.
var (
	ErrFieldsRequired = response.NewValidation("Name, rating, and message are required")
	ErrRatingRange    = response.NewValidation("Rating must be between 1 and 5")
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// SubmitReviewRequest is the public review submission payload.
type SubmitReviewRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// List returns all reviews, most recent first. An empty store yields an
// empty slice, never nil, so the JSON encoding is always an array.
func (s *ReviewService) List() ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := s.db.Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Submit validates and stores a new review. Name and message are stored
// trimmed. Presence is checked before the rating range: a missing or
// zero rating reports the required-fields error, not the range error.
func (s *ReviewService) Submit(req *SubmitReviewRequest) error {
	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)

	if name == "" || message == "" || req.Rating == 0 {
		return ErrFieldsRequired
	}
	if req.Rating < 1 || req.Rating > 5 {
		return ErrRatingRange
	}

	review := models.Review{
		Name:    name,
		Rating:  req.Rating,
		Message: message,
	}
	return s.db.Create(&review).Error
}

// Delete removes the review with the given id. Deleting an id that does
// not exist is not an error; the bool reports whether a row actually
// went away so callers can audit the difference.
func (s *ReviewService) Delete(id uint) (bool, error) {
	result := s.db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
