//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite    *testutils.BaseTestSuite
	repo             *NotificationRepository
	volunteerRepo    *VolunteerRepository
	volunteerFactory *testutils.VolunteerFactory
	factory          *testutils.NotificationFactory
}

func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
	suite.volunteerRepo = NewVolunteerRepository(suite.baseTestSuite.DB)
	suite.volunteerFactory = testutils.NewVolunteerFactory()
	suite.factory = testutils.NewNotificationFactory()
}

func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) TestCreateAndList_NewestFirst() {
	volunteer := suite.volunteerFactory.Create()
	suite.NoError(suite.volunteerRepo.Create(volunteer))

	older := suite.factory.ForVolunteer(volunteer.ID, "older")
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Create(older))
	suite.NoError(suite.repo.Create(suite.factory.ForVolunteer(volunteer.ID, "newer")))

	notifications, err := suite.repo.GetByVolunteerID(volunteer.ID)
	suite.NoError(err)
	suite.Len(notifications, 2)
	suite.Equal("newer", notifications[0].Message)
	suite.Equal("older", notifications[1].Message)
}

func (suite *NotificationRepositoryTestSuite) TestCreateBatch() {
	a := suite.volunteerFactory.Create()
	b := suite.volunteerFactory.Create()
	suite.NoError(suite.volunteerRepo.Create(a))
	suite.NoError(suite.volunteerRepo.Create(b))

	batch := []models.Notification{
		*suite.factory.ForVolunteer(a.ID, "New event: River Cleanup"),
		*suite.factory.ForVolunteer(b.ID, "New event: River Cleanup"),
	}
	suite.NoError(suite.repo.CreateBatch(batch))

	forA, err := suite.repo.GetByVolunteerID(a.ID)
	suite.NoError(err)
	suite.Len(forA, 1)

	forB, err := suite.repo.GetByVolunteerID(b.ID)
	suite.NoError(err)
	suite.Len(forB, 1)
}

func (suite *NotificationRepositoryTestSuite) TestCreateBatch_EmptyIsNoop() {
	suite.NoError(suite.repo.CreateBatch(nil))
}

func (suite *NotificationRepositoryTestSuite) TestMarkRead() {
	volunteer := suite.volunteerFactory.Create()
	suite.NoError(suite.volunteerRepo.Create(volunteer))

	notification := suite.factory.ForVolunteer(volunteer.ID, "read me")
	suite.NoError(suite.repo.Create(notification))

	suite.NoError(suite.repo.MarkRead(notification.ID))

	notifications, err := suite.repo.GetByVolunteerID(volunteer.ID)
	suite.NoError(err)
	suite.True(notifications[0].Read)
}

func (suite *NotificationRepositoryTestSuite) TestMarkRead_NotFound() {
	err := suite.repo.MarkRead(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *NotificationRepositoryTestSuite) TestDelete() {
	volunteer := suite.volunteerFactory.Create()
	suite.NoError(suite.volunteerRepo.Create(volunteer))

	notification := suite.factory.ForVolunteer(volunteer.ID, "dismiss me")
	suite.NoError(suite.repo.Create(notification))

	suite.NoError(suite.repo.Delete(notification.ID))

	notifications, err := suite.repo.GetByVolunteerID(volunteer.ID)
	suite.NoError(err)
	suite.Empty(notifications)
}

func (suite *NotificationRepositoryTestSuite) TestDelete_NotFound() {
	err := suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
