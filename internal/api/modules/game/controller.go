package game_module

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guessquest/guessquest/internal/factgame"
	"github.com/guessquest/guessquest/internal/stores/images"
	"github.com/guessquest/guessquest/pkg/sdk"
)

// GetRandomImage handles GET requests for one random image from the pool
func GetRandomImage(c *gin.Context) {
	image, err := GetStore().Random(c.Request.Context())
	if err != nil {
		if errors.Is(err, images.ErrNotFound) {
			c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "No images found", err).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch random image", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Image retrieved", sdk.RandomImageResponse{
		ImageID:  image.ID,
		ImageURL: image.ImageURL,
	}).AsGinResponse())
}

// ValidateAnswer handles POST requests to check an image guess
func ValidateAnswer(c *gin.Context) {
	// Parse request body
	var req sdk.ValidateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if req.ImageID == "" || req.UserAnswer == "" {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "imageId and userAnswer are required", nil).AsGinResponse())
		return
	}

	image, err := GetStore().FindByID(c.Request.Context(), req.ImageID)
	if err != nil {
		if errors.Is(err, images.ErrNotFound) {
			c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Image not found", err).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to validate answer", err).AsGinResponse())
		return
	}

	isCorrect := factgame.GuessMatches(req.UserAnswer, image.CorrectAnswer)

	c.JSON(sdk.NewSuccessResponse("Answer validated", sdk.ValidateAnswerResponse{IsCorrect: isCorrect}).AsGinResponse())
}
