package controllers

import (
	"errors"
	"samvidhan-sarathi/backend/config"
	"samvidhan-sarathi/backend/models"
	"samvidhan-sarathi/backend/services"
	"samvidhan-sarathi/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB        *gorm.DB
	Cfg       *config.Config
	Dashboard *services.DashboardService
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg, Dashboard: services.NewDashboardService(db)}
}

type UpdateUserRequest struct {
	Name             string `json:"name"`
	PreferredCountry string `json:"preferredCountry"`
	OldPassword      string `json:"old_password"`
	NewPassword      string `json:"new_password"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's profile data
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID := utils.UserIDFromCtx(c)

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	var completedActivities int64
	uc.DB.Model(&models.Progress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completedActivities)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":                   user.ID,
		"username":             user.Username,
		"email":                user.Email,
		"name":                 user.Name,
		"preferredCountry":     user.PreferredCountry,
		"role":                 user.Role,
		"created_at":           user.CreatedAt,
		"last_login":           user.LastLogin,
		"completed_activities": completedActivities,
	})
}

// UpdateProfile updates display name, preferred country and optionally
// the password (old password required).
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID := utils.UserIDFromCtx(c)

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.PreferredCountry != "" {
		user.PreferredCountry = input.PreferredCountry
	}

	if input.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
			return utils.Unauthorized(c, "Old password is incorrect")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Could not hash password")
		}
		user.PasswordHash = string(hashed)
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":               user.ID,
		"username":         user.Username,
		"email":            user.Email,
		"name":             user.Name,
		"preferredCountry": user.PreferredCountry,
	})
}

// GetDashboard godoc
// @Summary Get user dashboard
// @Description Returns summary statistics, per-topic progress and recent activity
// @Tags users
// @Produce json
// @Success 200 {object} services.Dashboard
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/dashboard [get]
func (uc *UserController) GetDashboard(c *fiber.Ctx) error {
	userID := utils.UserIDFromCtx(c)

	dashboard, err := uc.Dashboard.BuildDashboard(userID)
	if err != nil {
		if errors.Is(err, services.ErrStorage) {
			return utils.InternalServerError(c, "Could not build dashboard")
		}
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(dashboard)
}
