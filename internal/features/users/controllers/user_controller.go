package users_controllers

import (
	"net/http"

	users_dto "taskboard-backend/internal/features/users/dto"
	users_middleware "taskboard-backend/internal/features/users/middleware"
	users_services "taskboard-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService *users_services.UserService
	limiter     *rate.Limiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	authRoutes := router.Group("/auth")

	authRoutes.POST("/register", c.Register)
	authRoutes.POST("/login", c.Login)
}

func (c *UserController) RegisterProtectedRoutes(router gin.IRoutes) {
	router.GET("/auth/me", c.GetProfile)
}

// Register
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.RegisterRequestDTO true "Registration data"
// @Success 201 {object} users_dto.RegisterResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	if !c.limiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		return
	}

	var request users_dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required"})
		return
	}

	response, err := c.userService.Register(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// Login
// @Summary Sign in
// @Description Authenticate with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} users_dto.LoginResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	if !c.limiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		return
	}

	var request users_dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	response, err := c.userService.Login(&request)
	if err != nil {
		if err.Error() == "invalid credentials" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProfile
// @Summary Get current user
// @Description Get the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.UserProfileDTO
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.UserProfileDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
