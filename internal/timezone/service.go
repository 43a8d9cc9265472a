package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"

	"outing-advisor/internal/types"
)

// Service resolves the IANA timezone at a coordinate. The forecast
// decision window is computed in the origin's local time, so sampling
// "noon" means noon where the caller actually is.
type Service interface {
	// GetLocation returns the time.Location for the given coordinate
	GetLocation(coords types.Coords) (*time.Location, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton timezone service
// Uses singleton pattern because tzf.Finder loads timezone data into memory (~50MB)
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// GetLocation returns the time.Location for the given coordinate,
// resolved through tzf names like "Asia/Tokyo" or "America/Denver".
func (s *service) GetLocation(coords types.Coords) (*time.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return nil, fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f",
			coords.Latitude, coords.Longitude)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone location %s: %w", name, err)
	}

	return loc, nil
}
