package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lagnasohalaa/internal/controllers"
	"lagnasohalaa/internal/mocks"
	"lagnasohalaa/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupProfileController() (*controllers.ProfileController, *mocks.MockResource[models.Profile], *gin.Engine) {
	mockRepo := new(mocks.MockResource[models.Profile])
	controller := controllers.NewProfileController(mockRepo)

	router := setupTestRouter()
	router.GET("/profiles", controller.List)
	router.POST("/profiles", controller.Create)
	router.GET("/profiles/stats", controller.Stats)
	router.GET("/profiles/:id", controller.Get)
	router.PUT("/profiles/:id", controller.Update)
	router.DELETE("/profiles/:id", controller.Delete)

	return controller, mockRepo, router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validProfile() models.Profile {
	return models.Profile{
		Name:       "Priya Sharma",
		Age:        26,
		Gender:     "female",
		Height:     "5'4\"",
		Religion:   "Hindu",
		Community:  "Brahmin",
		Location:   "Pune, Maharashtra",
		Education:  "MBA",
		Occupation: "Software Engineer",
		About:      "Family-oriented person who loves music and traveling.",
		Image:      "https://example.com/priya.jpg",
	}
}

func TestListProfilesEnvelope(t *testing.T) {
	_, mockRepo, router := setupProfileController()

	profiles := []models.Profile{validProfile(), validProfile()}
	mockRepo.On("List", mock.Anything).Return(profiles, int64(30), nil)

	w := performRequest(router, http.MethodGet, "/profiles?gender=female&minAge=25", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, float64(30), body["total"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(3), body["pages"]) // 30 rows, default limit 12
	assert.Len(t, body["data"], 2)
}

func TestListProfilesEmptyResult(t *testing.T) {
	_, mockRepo, router := setupProfileController()
	mockRepo.On("List", mock.Anything).Return([]models.Profile{}, int64(0), nil)

	w := performRequest(router, http.MethodGet, "/profiles?religion=Jain", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, float64(0), body["total"])
	assert.Len(t, body["data"], 0)
}

func TestListProfilesRepositoryError(t *testing.T) {
	_, mockRepo, router := setupProfileController()
	mockRepo.On("List", mock.Anything).Return(nil, int64(0), errors.New("connection refused"))

	w := performRequest(router, http.MethodGet, "/profiles", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestGetProfile(t *testing.T) {
	_, mockRepo, router := setupProfileController()

	profile := validProfile()
	profile.ID = 7
	mockRepo.On("FindByID", uint(7)).Return(&profile, nil)

	w := performRequest(router, http.MethodGet, "/profiles/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Priya Sharma", data["name"])
}

func TestGetProfileInvalidID(t *testing.T) {
	_, _, router := setupProfileController()

	w := performRequest(router, http.MethodGet, "/profiles/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invalid profile ID", body["message"])
}

func TestGetProfileNotFound(t *testing.T) {
	_, mockRepo, router := setupProfileController()
	mockRepo.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	w := performRequest(router, http.MethodGet, "/profiles/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Profile not found", body["message"])
}

func TestCreateProfile(t *testing.T) {
	_, mockRepo, router := setupProfileController()
	mockRepo.On("Create", mock.AnythingOfType("*models.Profile")).Return(nil)

	w := performRequest(router, http.MethodPost, "/profiles", validProfile())

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	mockRepo.AssertCalled(t, "Create", mock.AnythingOfType("*models.Profile"))
}

func TestCreateProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Profile)
		wantMsg string
	}{
		{"underage", func(p *models.Profile) { p.Age = 16 }, "age"},
		{"missing name", func(p *models.Profile) { p.Name = "" }, "name"},
		{"bad gender", func(p *models.Profile) { p.Gender = "unknown" }, "gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockRepo, router := setupProfileController()

			profile := validProfile()
			tt.mutate(&profile)

			w := performRequest(router, http.MethodPost, "/profiles", profile)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Contains(t, body["message"], tt.wantMsg)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreateProfileInvalidJSON(t *testing.T) {
	_, _, router := setupProfileController()

	w := performRequest(router, http.MethodPost, "/profiles", "not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invalid request data", body["message"])
}

func TestUpdateProfilePartial(t *testing.T) {
	_, mockRepo, router := setupProfileController()

	profile := validProfile()
	profile.ID = 3
	mockRepo.On("FindByID", uint(3)).Return(&profile, nil)
	mockRepo.On("Save", mock.AnythingOfType("*models.Profile")).Return(nil)

	w := performRequest(router, http.MethodPut, "/profiles/3", map[string]interface{}{
		"location": "Mumbai, Maharashtra",
		"premium":  true,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Mumbai, Maharashtra", data["location"])
	assert.Equal(t, true, data["premium"])
	// Untouched fields survive the patch.
	assert.Equal(t, "Priya Sharma", data["name"])
	assert.Equal(t, float64(26), data["age"])
}

func TestUpdateProfileInvalidPatch(t *testing.T) {
	_, mockRepo, router := setupProfileController()

	profile := validProfile()
	profile.ID = 3
	mockRepo.On("FindByID", uint(3)).Return(&profile, nil)

	w := performRequest(router, http.MethodPut, "/profiles/3", map[string]interface{}{"age": 16})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestDeleteProfile(t *testing.T) {
	_, mockRepo, router := setupProfileController()

	profile := validProfile()
	profile.ID = 4
	mockRepo.On("FindByID", uint(4)).Return(&profile, nil)
	mockRepo.On("Delete", uint(4)).Return(nil)

	w := performRequest(router, http.MethodDelete, "/profiles/4", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Profile deleted successfully", body["message"])
}

func TestDeleteProfileNotFound(t *testing.T) {
	_, mockRepo, router := setupProfileController()
	mockRepo.On("FindByID", uint(4)).Return(nil, gorm.ErrRecordNotFound)

	w := performRequest(router, http.MethodDelete, "/profiles/4", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestProfileStats(t *testing.T) {
	_, mockRepo, router := setupProfileController()

	// Counts are requested in a fixed order: total, verified, premium,
	// males, females.
	for _, n := range []int64{6, 4, 3, 3, 3} {
		mockRepo.On("Count", mock.Anything).Return(n, nil).Once()
	}

	w := performRequest(router, http.MethodGet, "/profiles/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(6), data["total"])
	assert.Equal(t, float64(4), data["verified"])
	assert.Equal(t, float64(3), data["premium"])
	assert.Equal(t, float64(3), data["males"])
	assert.Equal(t, float64(3), data["females"])
}

func TestProfileStatsError(t *testing.T) {
	_, mockRepo, router := setupProfileController()
	mockRepo.On("Count", mock.Anything).Return(int64(0), errors.New("timeout"))

	w := performRequest(router, http.MethodGet, "/profiles/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
