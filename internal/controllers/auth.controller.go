package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/query"
	"lagnasohalaa/internal/repository"
	"lagnasohalaa/internal/utils"
	"lagnasohalaa/internal/validation"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users repository.UserRepository
}

func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

type registerRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=50"`
	LastName    string `json:"lastName" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,phone"`
	Password    string `json:"password" validate:"required,min=8"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
}

// Register godoc
// @Summary Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Registration successful"
// @Failure 400 {object} map[string]interface{} "Validation or duplicate error"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validation.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "dateOfBirth must be a valid date"})
		return
	}
	if age := models.AgeAt(dob, time.Now()); age < 18 || age > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You must be between 18 and 100 years old"})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := ac.users.FindByEmail(ctx, email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already registered"})
		return
	}
	if _, err := ac.users.FindByPhone(ctx, req.Phone); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed. Please try again."})
		return
	}

	user := models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       email,
		Phone:       req.Phone,
		Password:    hash,
		Gender:      req.Gender,
		DateOfBirth: dob,
		Role:        "user",
		IsActive:    true,
	}

	if err := ac.users.Create(ctx, &user); err != nil {
		if repository.IsDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email or phone already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Registration failed. Please try again.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful! Welcome to Lagna Sohalaa.",
		"data":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 403 {object} map[string]interface{} "Account deactivated"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide email and password"})
		return
	}

	ctx := c.Request.Context()

	// The same message covers unknown email and wrong password so the
	// endpoint does not reveal which emails are registered.
	user, err := ac.users.FindByEmail(ctx, req.Email)
	if err != nil || !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Your account has been deactivated. Please contact support.",
		})
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := ac.users.Save(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed. Please try again."})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful!",
		"data":    user,
		"token":   token,
	})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user, ok := ac.fetchUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user, ok := ac.fetchUser(c)
	if !ok {
		return
	}

	// Email, password and role cannot be changed through this path; the
	// patch struct simply has no such fields.
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if err := validation.Struct(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	patch.Apply(user)

	if err := ac.users.Save(c.Request.Context(), user); err != nil {
		if repository.IsDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    user,
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide current and new password"})
		return
	}
	if len(req.NewPassword) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "New password must be at least 8 characters"})
		return
	}

	user, ok := ac.fetchUser(c)
	if !ok {
		return
	}

	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Current password is incorrect"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
		return
	}
	user.Password = hash

	if err := ac.users.Save(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}

// ListUsers is the admin user table: exact gender/role/isActive filters plus
// an OR-search over name, email and phone.
func (ac *AuthController) ListUsers(c *gin.Context) {
	q := query.Parse(c.Request.URL.Query(), query.UserSpec)

	users, total, err := ac.users.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"total":   total,
		"page":    q.Page,
		"pages":   query.Pages(total, q.Limit),
		"data":    users,
	})
}

func (ac *AuthController) DeleteUser(c *gin.Context) {
	user, ok := ac.fetchUser(c)
	if !ok {
		return
	}

	if err := ac.users.Delete(c.Request.Context(), user.ID); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

// GetUserStats reports aggregate account counts. Each figure is an
// independent count query, not a grouped aggregation.
func (ac *AuthController) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()

	counts := []struct {
		name  string
		conds map[string]interface{}
	}{
		{"total", nil},
		{"active", map[string]interface{}{"is_active": true}},
		{"verifiedEmails", map[string]interface{}{"is_email_verified": true}},
		{"verifiedPhones", map[string]interface{}{"is_phone_verified": true}},
		{"male", map[string]interface{}{"gender": "male"}},
		{"female", map[string]interface{}{"gender": "female"}},
	}

	data := gin.H{}
	for _, count := range counts {
		n, err := ac.users.Count(ctx, count.conds)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to fetch user statistics",
				"error":   err.Error(),
			})
			return
		}
		data[count.name] = n
	}
	data["inactive"] = data["total"].(int64) - data["active"].(int64)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (ac *AuthController) fetchUser(c *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	user, err := ac.users.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user profile"})
		}
		return nil, false
	}
	return user, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
