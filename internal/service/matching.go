package service

import (
	"errors"
	"sort"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/matching"
	"volunteer-hub-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// matchingPageSize is the page size used when walking the event store.
const matchingPageSize = 1000

// MatchingService fronts the matching engine: it loads the volunteer
// profile and the current event list, converts both into engine inputs and
// returns the filtered events. Every call re-reads the stores; results are
// never cached because the event list may change between calls.
type MatchingService struct {
	volunteerRepo repository.VolunteerRepositoryInterface
	eventRepo     repository.EventRepositoryInterface
	engine        *matching.Engine
}

// NewMatchingService creates a new matching service
func NewMatchingService(volunteerRepo repository.VolunteerRepositoryInterface, eventRepo repository.EventRepositoryInterface) *MatchingService {
	return &MatchingService{
		volunteerRepo: volunteerRepo,
		eventRepo:     eventRepo,
		engine:        matching.NewEngine(),
	}
}

// FindMatchingEvents returns the events whose required skills intersect the
// volunteer's skills AND whose date windows overlap the volunteer's
// availability, most urgent first. A volunteer with no skills or no
// availability gets an empty list, not an error.
func (s *MatchingService) FindMatchingEvents(volunteerID uuid.UUID) ([]EventResponse, error) {
	volunteer, err := s.volunteerRepo.GetByID(volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, apperrors.NewDependencyError("volunteer store", err)
	}

	profile, err := buildProfile(volunteer.Skills, volunteer.Availability)
	if err != nil {
		return nil, err
	}

	events, err := s.loadAllEvents()
	if err != nil {
		return nil, apperrors.NewDependencyError("event store", err)
	}

	matched := make([]EventResponse, 0)
	for i := range events {
		windows, err := matching.ParseRanges(events[i].Dates)
		if err != nil {
			// stored event dates are validated at creation; failing to
			// parse them back means corrupt data, not a bad request
			return nil, apperrors.NewDependencyError("event store", err)
		}
		candidate := matching.Candidate{
			RequiredSkills: matching.NewSkillSet(events[i].RequiredSkills...),
			Windows:        windows,
		}
		if s.engine.Matches(profile, candidate) {
			matched = append(matched, EventResponse{
				ID:             events[i].ID,
				Name:           events[i].Name,
				Description:    events[i].Description,
				Location:       events[i].Location,
				RequiredSkills: events[i].RequiredSkills,
				Urgency:        string(events[i].Urgency),
				Dates:          events[i].Dates,
				CreatedAt:      events[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				UpdatedAt:      events[i].UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return models.Urgency(matched[i].Urgency).Rank() > models.Urgency(matched[j].Urgency).Rank()
	})

	return matched, nil
}

// loadAllEvents pages through the event store until every event has been
// fetched, so matching never silently drops candidates past the first page.
func (s *MatchingService) loadAllEvents() ([]models.Event, error) {
	var events []models.Event
	for offset := 0; ; offset += matchingPageSize {
		page, total, err := s.eventRepo.GetAll(matchingPageSize, offset)
		if err != nil {
			return nil, err
		}
		events = append(events, page...)
		if len(page) < matchingPageSize || int64(len(events)) >= total {
			return events, nil
		}
	}
}

// buildProfile converts stored skill and availability strings into engine
// inputs. Stored availability was canonicalized on write, so a parse
// failure here means corrupt data, same as a corrupt stored event window.
func buildProfile(skills []string, availability []string) (matching.Profile, error) {
	ranges, err := matching.ParseRanges(availability)
	if err != nil {
		return matching.Profile{}, apperrors.NewDependencyError("volunteer store", err)
	}
	set, err := matching.NewAvailabilitySetFromRanges(ranges)
	if err != nil {
		return matching.Profile{}, apperrors.NewDependencyError("volunteer store", err)
	}
	return matching.Profile{
		Skills:       matching.NewSkillSet(skills...),
		Availability: set,
	}, nil
}
