package users_module

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/guessquest/guessquest/internal/auth"
	"github.com/guessquest/guessquest/internal/stores/users"
	"github.com/guessquest/guessquest/pkg/sdk"
)

// Register handles POST requests to create a new user account
func Register(c *gin.Context) {
	// Parse request body
	var req sdk.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "username and password are required", err).AsGinResponse())
		return
	}

	// Hash the password before storing it
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to hash password", err).AsGinResponse())
		return
	}

	if _, err := GetStore().Create(c.Request.Context(), req.Username, string(hash)); err != nil {
		if errors.Is(err, users.ErrUsernameTaken) {
			c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Username already exists", err).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to register user", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewCreatedResponse("User registered successfully", (any)(nil)).AsGinResponse())
}

// Login handles POST requests to authenticate a user and issue a token
func Login(c *gin.Context) {
	// Parse request body
	var req sdk.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "username and password are required", err).AsGinResponse())
		return
	}

	// A missing user and a wrong password produce the same response so the
	// endpoint cannot be used to enumerate usernames
	user, err := GetStore().FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.JSON(sdk.NewErrorResponse(http.StatusUnauthorized, "Invalid username or password", nil).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to log in", err).AsGinResponse())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusUnauthorized, "Invalid username or password", nil).AsGinResponse())
		return
	}

	token, err := GetTokenService().Issue(user.ID)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to issue token", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Login successful", sdk.LoginResponse{Token: token}).AsGinResponse())
}

// Profile handles GET requests for the authenticated user's identity
func Profile(c *gin.Context) {
	userID := auth.UserID(c)

	c.JSON(sdk.NewSuccessResponse("This is a protected route", sdk.ProfileResponse{UserID: userID}).AsGinResponse())
}
