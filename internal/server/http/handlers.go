package http

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/reactorml/reactorserve/internal/errors"
	"github.com/reactorml/reactorserve/internal/feature"
	"github.com/reactorml/reactorserve/internal/onnx"
	"github.com/reactorml/reactorserve/internal/schema"
)

func RegisterRoutes(router *gin.Engine, invoker *onnx.Invoker) {
	router.GET("/", handleHome)
	router.POST("/predict", handlePredict(invoker))
}

func handleHome(c *gin.Context) {
	c.String(http.StatusOK, "Hello, reactorserve!")
}

// handlePredict runs the request pipeline: validate the untyped payload,
// shape it into the model's feature vector, run one forward pass, render the
// result. Every failure class maps to a 400; nothing recoverable surfaces as
// a 500.
func handlePredict(invoker *onnx.Invoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}

		request, fieldErrors := schema.ValidatePredictInput(raw)
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors})
			return
		}

		vector, err := feature.Assemble(request)
		if err != nil {
			var prepErr *apperrors.PreparationError
			if goerrors.As(err, &prepErr) {
				log.Error().Err(err).Msgf("Input preparation failed on field %s", prepErr.Field)
			} else {
				log.Error().Err(err).Msg("Input preparation failed")
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Input preparation failed."})
			return
		}

		prediction, err := invoker.Infer(vector)
		if err != nil {
			var invErr *apperrors.InvocationError
			if goerrors.As(err, &invErr) {
				log.Error().Err(err).Msgf("Model invocation failed: %s", invErr.Details)
				c.JSON(http.StatusBadRequest, gin.H{"error": invErr.ErrorMsg, "details": invErr.Details})
				return
			}
			log.Error().Err(err).Msg("Model invocation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": onnx.UserFacingError, "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"prediction": prediction})
	}
}
