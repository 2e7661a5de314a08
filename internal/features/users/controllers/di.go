package users_controllers

import (
	users_services "taskboard-backend/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	users_services.GetUserService(),
	rate.NewLimiter(rate.Limit(3), 3), // 3 rps with 3 burst
}

func GetUserController() *UserController {
	return userController
}

// NewUserController builds a controller with a caller-supplied rate
// limiter. Tests use it to avoid tripping the auth limiter.
func NewUserController(
	userService *users_services.UserService,
	limiter *rate.Limiter,
) *UserController {
	return &UserController{userService, limiter}
}
