package api

import (
	"net/http"
	"strings"

	"resqcart/internal/handler/httperr"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20

var (
	errMissingImage  = errs.New("image file required")
	errNotAnImage    = errs.New("uploaded file is not an image")
	errImageTooLarge = errs.New("image exceeds 10 MiB")
)

type AIMLHandler struct {
	predictor usecase.SpoilagePredictor
}

func NewAIMLHandler(predictor usecase.SpoilagePredictor) *AIMLHandler {
	return &AIMLHandler{predictor: predictor}
}

type AIMLStatusResponse struct {
	Available bool   `json:"available"`
	Endpoint  string `json:"endpoint"`
}

// @Summary Spoilage model status
// @Tags aiml
// @Produce json
// @Success 200 {object} AIMLStatusResponse
// @Router /aiml/status [get]
func (h *AIMLHandler) Status(c *gin.Context) {
	err := h.predictor.Ping(c.Request.Context())
	c.JSON(http.StatusOK, AIMLStatusResponse{
		Available: err == nil,
		Endpoint:  h.predictor.Endpoint(),
	})
}

// @Summary Predict spoilage
// @Description Forwards an image to the spoilage model
// @Tags aiml
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Produce image"
// @Success 200 {object} usecase.SpoilagePrediction
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /aiml/predict [post]
func (h *AIMLHandler) Predict(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errMissingImage), "Image file required", nil)
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httperr.AbortWithError(c, http.StatusBadRequest, errNotAnImage, "Only image files are allowed", nil)
		return
	}
	if fh.Size > maxImageSize {
		httperr.AbortWithError(c, http.StatusBadRequest, errImageTooLarge, "Image exceeds 10 MiB", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errMissingImage), "Image file required", nil)
		return
	}
	defer f.Close()

	pred, err := h.predictor.Predict(c.Request.Context(), fh.Filename, contentType, f)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, pred)
}
