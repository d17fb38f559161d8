package service_test

import (
	"testing"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MatchingServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockVolunteerRepo *mocks.MockVolunteerRepositoryInterface
	mockEventRepo     *mocks.MockEventRepositoryInterface
	matchingService   *service.MatchingService
}

func (suite *MatchingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVolunteerRepo = mocks.NewMockVolunteerRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.matchingService = service.NewMatchingService(suite.mockVolunteerRepo, suite.mockEventRepo)
}

func (suite *MatchingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MatchingServiceTestSuite) volunteer(skills, availability []string) *models.Volunteer {
	return &models.Volunteer{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "ada@example.com",
		Skills:       models.StringList(skills),
		Availability: models.StringList(availability),
	}
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_SkillAndDateMustBothMatch() {
	v := suite.volunteer(
		[]string{"First Aid", "Cooking"},
		[]string{"2026-09-01 to 2026-09-05"},
	)

	events := []models.Event{
		{
			// skill and date both match
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Health Fair",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyHigh,
			Dates:          models.StringList{"2026-09-03 to 2026-09-04"},
		},
		{
			// skill matches, dates do not
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Soup Kitchen",
			RequiredSkills: models.StringList{"Cooking"},
			Urgency:        models.UrgencyLow,
			Dates:          models.StringList{"2026-10-01 to 2026-10-02"},
		},
		{
			// dates match, skills do not
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Shed Build",
			RequiredSkills: models.StringList{"Carpentry"},
			Urgency:        models.UrgencyMedium,
			Dates:          models.StringList{"2026-09-02 to 2026-09-03"},
		},
	}

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 0).Return(events, int64(3), nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), matched, 1)
	assert.Equal(suite.T(), "Health Fair", matched[0].Name)
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_TouchingEndpointsOverlap() {
	v := suite.volunteer([]string{"First Aid"}, []string{"2026-09-01 to 2026-09-05"})

	events := []models.Event{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Health Fair",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyHigh,
			Dates:          models.StringList{"2026-09-05 to 2026-09-08"},
		},
	}

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 0).Return(events, int64(1), nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), matched, 1)
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_NoSkillsGivesEmptyList() {
	v := suite.volunteer(nil, []string{"2026-09-01 to 2026-09-05"})

	events := []models.Event{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Health Fair",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyHigh,
			Dates:          models.StringList{"2026-09-03 to 2026-09-04"},
		},
	}

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 0).Return(events, int64(1), nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), matched)
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_NoAvailabilityGivesEmptyList() {
	v := suite.volunteer([]string{"First Aid"}, nil)

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 0).Return([]models.Event{}, int64(0), nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), matched)
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_UnknownVolunteer() {
	id := uuid.New()
	suite.mockVolunteerRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	matched, err := suite.matchingService.FindMatchingEvents(id)

	assert.Nil(suite.T(), matched)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVolunteerNotFound)
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_CaseSensitiveSkills() {
	v := suite.volunteer([]string{"first aid"}, []string{"2026-09-01 to 2026-09-05"})

	events := []models.Event{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Health Fair",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyHigh,
			Dates:          models.StringList{"2026-09-03 to 2026-09-04"},
		},
	}

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 0).Return(events, int64(1), nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), matched)
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_WalksEveryEventPage() {
	v := suite.volunteer([]string{"First Aid"}, []string{"2026-09-01 to 2026-09-05"})

	firstPage := make([]models.Event, 1000)
	for i := range firstPage {
		firstPage[i] = models.Event{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Shed Build",
			RequiredSkills: models.StringList{"Carpentry"},
			Urgency:        models.UrgencyLow,
			Dates:          models.StringList{"2026-09-02 to 2026-09-03"},
		}
	}
	secondPage := []models.Event{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Health Fair",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyHigh,
			Dates:          models.StringList{"2026-09-03 to 2026-09-04"},
		},
	}

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 0).Return(firstPage, int64(1001), nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 1000).Return(secondPage, int64(1001), nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), matched, 1)
	assert.Equal(suite.T(), "Health Fair", matched[0].Name)
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_MostUrgentFirst() {
	v := suite.volunteer([]string{"First Aid"}, []string{"2026-09-01 to 2026-09-05"})

	events := []models.Event{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Supply Drive",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyLow,
			Dates:          models.StringList{"2026-09-02 to 2026-09-03"},
		},
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Flood Response",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyCritical,
			Dates:          models.StringList{"2026-09-03 to 2026-09-04"},
		},
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Health Fair",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyMedium,
			Dates:          models.StringList{"2026-09-04 to 2026-09-05"},
		},
	}

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 0).Return(events, int64(3), nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), matched, 3)
	assert.Equal(suite.T(), "Flood Response", matched[0].Name)
	assert.Equal(suite.T(), "Health Fair", matched[1].Name)
	assert.Equal(suite.T(), "Supply Drive", matched[2].Name)
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_CorruptVolunteerAvailability() {
	v := suite.volunteer([]string{"First Aid"}, []string{"garbage"})

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.Nil(suite.T(), matched)
	assert.True(suite.T(), apperrors.IsDependency(err))
}

func (suite *MatchingServiceTestSuite) TestFindMatchingEvents_CorruptEventDates() {
	v := suite.volunteer([]string{"First Aid"}, []string{"2026-09-01 to 2026-09-05"})

	events := []models.Event{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			Name:           "Health Fair",
			RequiredSkills: models.StringList{"First Aid"},
			Urgency:        models.UrgencyHigh,
			Dates:          models.StringList{"garbage"},
		},
	}

	suite.mockVolunteerRepo.EXPECT().GetByID(v.ID).Return(v, nil)
	suite.mockEventRepo.EXPECT().GetAll(gomock.Any(), 0).Return(events, int64(1), nil)

	matched, err := suite.matchingService.FindMatchingEvents(v.ID)

	assert.Nil(suite.T(), matched)
	assert.True(suite.T(), apperrors.IsDependency(err))
}

func TestMatchingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchingServiceTestSuite))
}
