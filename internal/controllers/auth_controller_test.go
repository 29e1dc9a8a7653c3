package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"lagnasohalaa/internal/controllers"
	"lagnasohalaa/internal/mocks"
	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupAuthController() (*mocks.MockUserRepository, *gin.Engine) {
	mockRepo := new(mocks.MockUserRepository)
	controller := controllers.NewAuthController(mockRepo)

	router := setupTestRouter()
	router.POST("/auth/register", controller.Register)
	router.POST("/auth/login", controller.Login)
	router.GET("/auth/users", controller.ListUsers)
	router.GET("/auth/users/stats/overview", controller.GetUserStats)
	router.GET("/auth/users/:userId", controller.GetProfile)
	router.PUT("/auth/users/:userId", controller.UpdateProfile)
	router.PUT("/auth/users/:userId/password", controller.ChangePassword)
	router.DELETE("/auth/users/:userId", controller.DeleteUser)

	return mockRepo, router
}

func fixtureUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)
	return &models.User{
		ID:          1,
		FirstName:   "Priya",
		LastName:    "Sharma",
		Email:       "priya@example.com",
		Phone:       "+919876543210",
		Password:    hash,
		Gender:      "female",
		DateOfBirth: time.Date(1998, time.March, 12, 0, 0, 0, 0, time.UTC),
		Role:        "user",
		IsActive:    true,
	}
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":   "Priya",
		"lastName":    "Sharma",
		"email":       "priya@example.com",
		"phone":       "+919876543210",
		"password":    "secret123456",
		"gender":      "female",
		"dateOfBirth": "1998-03-12",
	}
}

func TestRegisterSuccess(t *testing.T) {
	mockRepo, router := setupAuthController()
	mockRepo.On("FindByEmail", "priya@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByPhone", "+919876543210").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	w := performRequest(router, http.MethodPost, "/auth/register", registerBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Registration successful! Welcome to Lagna Sohalaa.", body["message"])

	// The stored password is a bcrypt hash, and the response never echoes it.
	data := body["data"].(map[string]interface{})
	_, exposed := data["password"]
	assert.False(t, exposed)
	created := mockRepo.Calls[len(mockRepo.Calls)-1].Arguments.Get(0).(*models.User)
	assert.NotEqual(t, "secret123456", created.Password)
	assert.True(t, utils.CheckPassword(created.Password, "secret123456"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mockRepo, router := setupAuthController()
	mockRepo.On("FindByEmail", "priya@example.com").Return(fixtureUser(t, "whatever123"), nil)

	w := performRequest(router, http.MethodPost, "/auth/register", registerBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Email already registered", body["message"])
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	mockRepo, router := setupAuthController()
	mockRepo.On("FindByEmail", "priya@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByPhone", "+919876543210").Return(fixtureUser(t, "whatever123"), nil)

	w := performRequest(router, http.MethodPost, "/auth/register", registerBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Phone number already registered", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"short password", func(b map[string]interface{}) { b["password"] = "short" }},
		{"bad email", func(b map[string]interface{}) { b["email"] = "not-an-email" }},
		{"bad phone", func(b map[string]interface{}) { b["phone"] = "12" }},
		{"missing first name", func(b map[string]interface{}) { delete(b, "firstName") }},
		{"underage", func(b map[string]interface{}) { b["dateOfBirth"] = time.Now().AddDate(-16, 0, 0).Format("2006-01-02") }},
		{"unparsable date", func(b map[string]interface{}) { b["dateOfBirth"] = "March 12th" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, router := setupAuthController()

			body := registerBody()
			tt.mutate(body)

			w := performRequest(router, http.MethodPost, "/auth/register", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	mockRepo, router := setupAuthController()

	user := fixtureUser(t, "secret123456")
	mockRepo.On("FindByEmail", "priya@example.com").Return(user, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.User")).Return(nil)

	w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
		"email":    "priya@example.com",
		"password": "secret123456",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Login successful!", body["message"])
	assert.NotEmpty(t, body["token"])
	assert.NotNil(t, user.LastLogin)
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	tests := []struct {
		name      string
		setupMock func(*mocks.MockUserRepository, *testing.T)
		password  string
	}{
		{
			name: "unknown email",
			setupMock: func(m *mocks.MockUserRepository, t *testing.T) {
				m.On("FindByEmail", "priya@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			password: "secret123456",
		},
		{
			name: "wrong password",
			setupMock: func(m *mocks.MockUserRepository, t *testing.T) {
				m.On("FindByEmail", "priya@example.com").Return(fixtureUser(t, "secret123456"), nil)
			},
			password: "wrong-password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, router := setupAuthController()
			tt.setupMock(mockRepo, t)

			w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
				"email":    "priya@example.com",
				"password": tt.password,
			})

			// Unknown email and wrong password are indistinguishable.
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, "Invalid email or password", body["message"])
		})
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	mockRepo, router := setupAuthController()

	user := fixtureUser(t, "secret123456")
	user.IsActive = false
	mockRepo.On("FindByEmail", "priya@example.com").Return(user, nil)

	w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
		"email":    "priya@example.com",
		"password": "secret123456",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Your account has been deactivated. Please contact support.", body["message"])
}

func TestLoginMissingFields(t *testing.T) {
	_, router := setupAuthController()

	w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{"email": "priya@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Please provide email and password", body["message"])
}

func TestUpdateProfileCannotChangeEmailOrRole(t *testing.T) {
	mockRepo, router := setupAuthController()

	user := fixtureUser(t, "secret123456")
	mockRepo.On("FindByID", uint(1)).Return(user, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.User")).Return(nil)

	w := performRequest(router, http.MethodPut, "/auth/users/1", map[string]interface{}{
		"firstName": "Priyanka",
		"email":     "attacker@example.com",
		"role":      "admin",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Priyanka", user.FirstName)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
}

func TestChangePassword(t *testing.T) {
	mockRepo, router := setupAuthController()

	user := fixtureUser(t, "old-password-1")
	mockRepo.On("FindByID", uint(1)).Return(user, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.User")).Return(nil)

	w := performRequest(router, http.MethodPut, "/auth/users/1/password", map[string]string{
		"currentPassword": "old-password-1",
		"newPassword":     "new-password-1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Password changed successfully", body["message"])
	assert.True(t, utils.CheckPassword(user.Password, "new-password-1"))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	mockRepo, router := setupAuthController()

	user := fixtureUser(t, "old-password-1")
	mockRepo.On("FindByID", uint(1)).Return(user, nil)

	w := performRequest(router, http.MethodPut, "/auth/users/1/password", map[string]string{
		"currentPassword": "not-the-password",
		"newPassword":     "new-password-1",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Current password is incorrect", body["message"])
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestChangePasswordTooShort(t *testing.T) {
	_, router := setupAuthController()

	w := performRequest(router, http.MethodPut, "/auth/users/1/password", map[string]string{
		"currentPassword": "old-password-1",
		"newPassword":     "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "New password must be at least 8 characters", body["message"])
}

func TestListUsersEnvelope(t *testing.T) {
	mockRepo, router := setupAuthController()

	users := []models.User{*fixtureUser(t, "secret123456")}
	mockRepo.On("List", mock.Anything).Return(users, int64(45), nil)

	w := performRequest(router, http.MethodGet, "/auth/users?role=user", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(45), body["total"])
	assert.Equal(t, float64(3), body["pages"]) // 45 users, 20 per page
}

func TestGetUserStats(t *testing.T) {
	mockRepo, router := setupAuthController()

	// Order: total, active, verifiedEmails, verifiedPhones, male, female.
	for _, n := range []int64{10, 8, 5, 4, 6, 4} {
		mockRepo.On("Count", mock.Anything).Return(n, nil).Once()
	}

	w := performRequest(router, http.MethodGet, "/auth/users/stats/overview", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["total"])
	assert.Equal(t, float64(8), data["active"])
	assert.Equal(t, float64(2), data["inactive"])
	assert.Equal(t, float64(6), data["male"])
	assert.Equal(t, float64(4), data["female"])
}

func TestDeleteUser(t *testing.T) {
	mockRepo, router := setupAuthController()

	user := fixtureUser(t, "secret123456")
	mockRepo.On("FindByID", uint(1)).Return(user, nil)
	mockRepo.On("Delete", uint(1)).Return(nil)

	w := performRequest(router, http.MethodDelete, "/auth/users/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "User deleted successfully", body["message"])
}

func TestGetUserProfileNotFound(t *testing.T) {
	mockRepo, router := setupAuthController()
	mockRepo.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)

	w := performRequest(router, http.MethodGet, "/auth/users/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "User not found", body["message"])
}
