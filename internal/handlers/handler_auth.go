package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/traqbank/backoffice/internal/apperrors"
	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/middleware"
	"github.com/traqbank/backoffice/internal/platform/config"
	"github.com/traqbank/backoffice/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userLoginService portssvc.UserLoginSvcFacade
	jwtSecret        string
	jwtDuration      time.Duration
	jwtIssuer        string
	cookieName       string
	secureCookies    bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserLoginSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userLoginService: us,
		jwtSecret:        cfg.JWTSecret,
		jwtDuration:      cfg.JWTExpiryDuration,
		jwtIssuer:        cfg.JWTIssuer,
		cookieName:       cfg.SessionCookieName,
		secureCookies:    cfg.IsProduction,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, userLoginService portssvc.UserLoginSvcFacade) {
	h := NewAuthHandler(userLoginService, cfg)

	// Login attempts are limited to 5 per minute per client IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/signup", h.Signup)
		auth.POST("/logout", h.Logout)
		auth.GET("/access-denied", h.AccessDenied)
	}
}

// setSessionCookie stores the token in the session cookie so browser clients
// stay authenticated without resending credentials.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(h.jwtDuration.Seconds()), "/", "", h.secureCookies, true)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user, sets the session cookie and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userLoginService.GetUserLoginByUsername(c.Request.Context(), req.Username)
	if err != nil {
		// A missing user and a wrong password produce the same answer.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	token, err := utils.GenerateJWT(user.Username, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserLoginResponse(user),
	})
}

// Signup godoc
// @Summary Register a new login
// @Description Creates a login and signs the user in immediately.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup Details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			msgs := make([]string, len(valErrs))
			for i, fe := range valErrs {
				msgs[i] = signupFieldError(fe)
			}
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: strings.Join(msgs, "; ")})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userLoginService.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Username is already taken"})
		} else {
			logger.Error("Failed to sign up user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create login"})
		}
		return
	}

	token, err := utils.GenerateJWT(user.Username, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserLoginResponse(user),
	})
}

// signupFieldError renders one validation failure as a user-facing message.
func signupFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "eqfield":
		return "Passwords do not match"
	default:
		return fe.Field() + " is invalid"
	}
}

// Logout godoc
// @Summary User logout
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AccessDenied godoc
// @Summary Access denied
// @Description Target for rejected requests.
// @Tags auth
// @Produce json
// @Failure 403 {object} ErrorResponse
// @Router /auth/access-denied [get]
func (h *AuthHandler) AccessDenied(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access denied"})
}
