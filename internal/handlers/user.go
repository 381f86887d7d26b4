package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vsxchangeza/backend/internal/database"
	"github.com/vsxchangeza/backend/internal/logger"
	"github.com/vsxchangeza/backend/internal/models"
	"github.com/vsxchangeza/backend/internal/util"
	"go.uber.org/zap"
)

// UpdateProfileRequest carries a partial profile update. Only fields present in
// the request body are applied; absent fields keep their stored values.
type UpdateProfileRequest struct {
	FirstName    *string            `json:"firstName"`
	LastName     *string            `json:"lastName"`
	Role         *string            `json:"role"`
	Location     *string            `json:"location"`
	Bio          *string            `json:"bio"`
	AvatarURL    *string            `json:"avatarUrl"`
	Skills       *models.StringList `json:"skills"`
	Portfolio    *models.StringList `json:"portfolio"`
	Photos       *models.StringList `json:"photos"`
	Companies    *models.StringList `json:"companies"`
	Rate         *float64           `json:"rate"`
	Availability *string            `json:"availability"`
	Discoverable *bool              `json:"discoverable"`
}

// UserCard is the public search-result shape. It carries only fields a
// directory listing needs; email and the rest of the private profile stay off
// the wire.
type UserCard struct {
	ID        uint              `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Role      string            `json:"role"`
	Location  string            `json:"location"`
	Skills    models.StringList `json:"skills"`
	AvatarURL string            `json:"avatarUrl"`
	Photos    models.StringList `json:"photos"`
	Companies models.StringList `json:"companies"`
}

func newUserCard(u *models.User) UserCard {
	return UserCard{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Location:  u.Location,
		Skills:    u.Skills,
		AvatarURL: u.AvatarURL,
		Photos:    u.Photos,
		Companies: u.Companies,
	}
}

// Me returns the authenticated user's own profile. GET /api/me
func (h *Handlers) Me(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe applies a partial update to the authenticated user's profile and
// returns the updated record. PUT /api/me
func (h *Handlers) UpdateMe(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondValidationError(c, "", "invalid request body")
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Portfolio != nil {
		user.Portfolio = *req.Portfolio
	}
	if req.Photos != nil {
		user.Photos = *req.Photos
	}
	if req.Companies != nil {
		user.Companies = *req.Companies
	}
	if req.Rate != nil {
		user.Rate = req.Rate
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	if req.Discoverable != nil {
		user.Discoverable = *req.Discoverable
	}

	if err := database.DB.Save(user).Error; err != nil {
		logger.Log.Error("Failed to update profile", logger.WithUserID(user.ID), zap.Error(err))
		util.RespondInternalError(c, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser returns another user's public profile. GET /api/users/:id
func (h *Handlers) GetUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		util.RespondNotFound(c, "user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// SearchUsers finds discoverable users by skill and/or location. Both filters
// are case-insensitive substring matches; when both are given a user matches if
// EITHER matches. With no filters every discoverable user is returned.
// GET /api/users
func (h *Handlers) SearchUsers(c *gin.Context) {
	skill := strings.TrimSpace(c.Query("skill"))
	location := strings.TrimSpace(c.Query("location"))
	page := util.ParsePage(c.Query("page"))
	limit := util.ParseLimit(c.Query("limit"), 20, 100)

	var users []models.User
	if err := database.DB.
		Where("discoverable = ?", true).
		Order("created_at DESC, id DESC").
		Find(&users).Error; err != nil {
		logger.Log.Error("User search failed", zap.Error(err))
		util.RespondInternalError(c, "failed to search users")
		return
	}

	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if matchesSearch(&u, skill, location) {
			matched = append(matched, u)
		}
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}
	pageResults := make([]UserCard, 0, end-start)
	for i := start; i < end; i++ {
		pageResults = append(pageResults, newUserCard(&matched[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"results": pageResults,
		"page":    page,
		"limit":   limit,
		"count":   len(matched),
	})
}

// matchesSearch applies OR semantics: with both filters present, matching
// either one is enough. No filters means everything matches.
func matchesSearch(u *models.User, skill, location string) bool {
	if skill == "" && location == "" {
		return true
	}

	if skill != "" {
		needle := strings.ToLower(skill)
		for _, s := range u.Skills {
			if strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
	}

	if location != "" {
		if strings.Contains(strings.ToLower(u.Location), strings.ToLower(location)) {
			return true
		}
	}

	return false
}
