package service_test

import (
	"testing"

	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockNotificationRepo *mocks.MockNotificationRepositoryInterface
	mockVolunteerRepo    *mocks.MockVolunteerRepositoryInterface
	notificationService  *service.NotificationService
	validator            *validator.Validate
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNotificationRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.mockVolunteerRepo = mocks.NewMockVolunteerRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.notificationService = service.NewNotificationService(suite.mockNotificationRepo, suite.mockVolunteerRepo, suite.validator)
}

func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationServiceTestSuite) TestSend_Success() {
	volunteer := &models.Volunteer{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockVolunteerRepo.EXPECT().GetByID(volunteer.ID).Return(volunteer, nil)
	suite.mockNotificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Equal(suite.T(), volunteer.ID, n.VolunteerID)
		assert.Equal(suite.T(), "Reminder: bring gloves", n.Message)
		assert.False(suite.T(), n.Read)
		n.ID = uuid.New()
		return nil
	})

	resp, err := suite.notificationService.Send(&service.SendNotificationRequest{
		VolunteerID: volunteer.ID,
		Message:     "Reminder: bring gloves",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Reminder: bring gloves", resp.Message)
	assert.False(suite.T(), resp.Read)
}

func (suite *NotificationServiceTestSuite) TestSend_UnknownVolunteer() {
	id := uuid.New()
	suite.mockVolunteerRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.notificationService.Send(&service.SendNotificationRequest{
		VolunteerID: id,
		Message:     "hello",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVolunteerNotFound)
}

func (suite *NotificationServiceTestSuite) TestSend_EmptyMessage() {
	resp, err := suite.notificationService.Send(&service.SendNotificationRequest{
		VolunteerID: uuid.New(),
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *NotificationServiceTestSuite) TestListForVolunteer_Success() {
	volunteer := &models.Volunteer{BaseModel: models.BaseModel{ID: uuid.New()}}
	notifications := []models.Notification{
		{BaseModel: models.BaseModel{ID: uuid.New()}, VolunteerID: volunteer.ID, Message: "newest"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, VolunteerID: volunteer.ID, Message: "older", Read: true},
	}

	suite.mockVolunteerRepo.EXPECT().GetByID(volunteer.ID).Return(volunteer, nil)
	suite.mockNotificationRepo.EXPECT().GetByVolunteerID(volunteer.ID).Return(notifications, nil)

	resp, err := suite.notificationService.ListForVolunteer(volunteer.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "newest", resp[0].Message)
	assert.True(suite.T(), resp[1].Read)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_NotFound() {
	id := uuid.New()
	suite.mockNotificationRepo.EXPECT().MarkRead(id).Return(gorm.ErrRecordNotFound)

	err := suite.notificationService.MarkRead(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotificationNotFound)
}

func (suite *NotificationServiceTestSuite) TestDismiss_Success() {
	id := uuid.New()
	suite.mockNotificationRepo.EXPECT().Delete(id).Return(nil)

	err := suite.notificationService.Dismiss(id)

	assert.NoError(suite.T(), err)
}

func (suite *NotificationServiceTestSuite) TestDismiss_NotFound() {
	id := uuid.New()
	suite.mockNotificationRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	err := suite.notificationService.Dismiss(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotificationNotFound)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
