package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"volunteer-hub-backend/internal/api/handlers"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/mocks"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VolunteerHandlerTestSuite defines the test suite for VolunteerHandler
type VolunteerHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockVolunteerSvc *mocks.MockVolunteerServiceInterface
	handler          *handlers.VolunteerHandler
	router           *gin.Engine
}

func (suite *VolunteerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVolunteerSvc = mocks.NewMockVolunteerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewVolunteerHandler(suite.mockVolunteerSvc)

	suite.router = gin.New()
	suite.router.POST("/register", suite.handler.Register)
	suite.router.POST("/login", suite.handler.Login)
	suite.router.GET("/profile/:id", suite.handler.GetProfile)
	suite.router.PUT("/profile/:id", suite.handler.UpdateProfile)
	suite.router.GET("/volunteers", suite.handler.ListVolunteers)
}

func (suite *VolunteerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VolunteerHandlerTestSuite) TestRegister_Success() {
	resp := &service.VolunteerResponse{
		ID:    uuid.New(),
		Email: "ada@example.com",
	}
	suite.mockVolunteerSvc.EXPECT().Register(gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(map[string]any{
		"email":    "ada@example.com",
		"password": "correct horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.VolunteerResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ada@example.com", got.Email)
}

func (suite *VolunteerHandlerTestSuite) TestRegister_DuplicateEmail_Conflict() {
	suite.mockVolunteerSvc.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrVolunteerExists)

	body, _ := json.Marshal(map[string]any{
		"email":    "ada@example.com",
		"password": "correct horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestRegister_ValidationError_BadRequest() {
	suite.mockVolunteerSvc.EXPECT().Register(gomock.Any()).Return(nil, apperrors.NewValidationError("password", "too short"))

	body, _ := json.Marshal(map[string]any{
		"email":    "ada@example.com",
		"password": "x",
	})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestRegister_MalformedJSON_BadRequest() {
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestLogin_Success() {
	volunteerID := uuid.New()
	suite.mockVolunteerSvc.EXPECT().Login(gomock.Any()).Return(&service.LoginResponse{
		VolunteerID: volunteerID,
		AccessToken: "token123",
	}, nil)

	body, _ := json.Marshal(map[string]any{
		"email":    "ada@example.com",
		"password": "correct horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), volunteerID, got.VolunteerID)
	assert.Equal(suite.T(), "token123", got.AccessToken)
}

func (suite *VolunteerHandlerTestSuite) TestLogin_BadCredentials_Unauthorized() {
	suite.mockVolunteerSvc.EXPECT().Login(gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	body, _ := json.Marshal(map[string]any{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestGetProfile_NotFound() {
	id := uuid.New()
	suite.mockVolunteerSvc.EXPECT().GetProfile(id).Return(nil, apperrors.ErrVolunteerNotFound)

	req := httptest.NewRequest(http.MethodGet, "/profile/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestGetProfile_BadID() {
	req := httptest.NewRequest(http.MethodGet, "/profile/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestUpdateProfile_Success() {
	id := uuid.New()
	suite.mockVolunteerSvc.EXPECT().UpdateProfile(id, gomock.Any()).Return(&service.VolunteerResponse{
		ID:       id,
		Email:    "ada@example.com",
		FullName: "Ada L.",
	}, nil)

	body, _ := json.Marshal(map[string]any{"full_name": "Ada L."})
	req := httptest.NewRequest(http.MethodPut, "/profile/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *VolunteerHandlerTestSuite) TestListVolunteers_Success() {
	suite.mockVolunteerSvc.EXPECT().ListVolunteers(50, 0).Return([]service.VolunteerResponse{
		{ID: uuid.New(), Email: "ada@example.com"},
	}, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/volunteers", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]json.RawMessage
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), got, "volunteers")
	assert.Contains(suite.T(), got, "total")
}

func TestVolunteerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VolunteerHandlerTestSuite))
}
