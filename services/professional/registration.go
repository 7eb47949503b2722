package professional

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"handymatch/models"
	"handymatch/services/directory"
)

// RegistrationService turns an approved sign-up form into a directory
// record. The form is the whole flow: submit, confirm, done.
type RegistrationService struct {
	Directory *directory.Store
	Logger    *zap.Logger
}

func NewRegistrationService(dir *directory.Store, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{Directory: dir, Logger: logger}
}

// Register validates the application, builds the professional record and
// prepends it to the directory (most-recent-first). Required-field checks
// happen at binding time; this applies the semantic checks.
func (s *RegistrationService) Register(data models.RegistrationData) (models.Professional, error) {
	category, err := models.ParseCategory(data.Category)
	if err != nil {
		return models.Professional{}, ErrUnknownCategory
	}
	if data.HourlyRate < 0 {
		return models.Professional{}, ErrInvalidRate
	}

	pro := models.Professional{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(data.FirstName + " " + data.LastName),
		Category:    category,
		Rating:      5.0, // new professionals start at the top rating with no reviews
		Reviews:     0,
		HourlyRate:  data.HourlyRate,
		Distance:    registrationDistance(data.ServiceRadius),
		ImageURL:    "https://i.pravatar.cc/300?u=" + data.Email,
		Available:   true,
		PhoneNumber: data.PhoneNumber,
		Email:       data.Email,
	}

	s.Directory.Add(pro)
	s.Logger.Info("Professional registered",
		zap.String("id", pro.ID),
		zap.String("category", string(pro.Category)),
	)
	return pro, nil
}

// registrationDistance seeds the display distance for a fresh record. The
// sign-up form has a service radius but no position, so the radius stands
// in until a real geo lookup exists.
func registrationDistance(radiusKM float64) string {
	if radiusKM <= 0 {
		return "0.0 km"
	}
	return fmt.Sprintf("%.1f km", radiusKM)
}
