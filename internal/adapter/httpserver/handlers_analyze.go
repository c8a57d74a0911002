package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Toheedullah-K3/SentiScope/internal/domain"
	apperrors "github.com/Toheedullah-K3/SentiScope/internal/platform/errors"
	"github.com/labstack/echo/v4"
)

type analyzeRequest struct {
	Search   string `json:"search"`
	Platform string `json:"platform"`
	Model    string `json:"model"`
}

type sentimentDetail struct {
	Description    string  `json:"description"`
	SentimentScore float64 `json:"sentiment_score"`
	Date           *string `json:"date"`
}

type analyzeResponse struct {
	SearchQuery      string            `json:"search_query"`
	Platform         string            `json:"platform"`
	Model            string            `json:"model"`
	TotalPosts       int               `json:"total_posts"`
	AverageSentiment float64           `json:"average_sentiment"`
	SentimentDetails []sentimentDetail `json:"sentiment_details"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	ctx := c.Request().Context()

	if c.Request().ContentLength == 0 {
		return apperrors.ValidationError("Invalid JSON or empty request body")
	}

	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid JSON or empty request body")
	}

	if strings.TrimSpace(req.Search) == "" || req.Platform == "" || req.Model == "" {
		return apperrors.ValidationError("Missing required fields")
	}

	platform, err := domain.ParsePlatform(req.Platform)
	if err != nil {
		return apperrors.ValidationError("Invalid platform").WithField("platform", req.Platform)
	}

	model, err := domain.ParseModel(req.Model)
	if err != nil {
		return apperrors.ValidationError("Invalid sentiment analysis model").WithField("model", req.Model)
	}

	result, err := s.pipeline.Analyze(ctx, domain.Query{
		Search:   req.Search,
		Platform: platform,
		Model:    model,
	})
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusOK, assembleResponse(result)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// assembleResponse shapes an aggregate result into the response contract.
func assembleResponse(res *domain.AggregateResult) analyzeResponse {
	details := make([]sentimentDetail, 0, len(res.Items))
	for _, item := range res.Items {
		details = append(details, sentimentDetail{
			Description:    item.Text,
			SentimentScore: item.Score,
			Date:           item.Date,
		})
	}

	return analyzeResponse{
		SearchQuery:      res.Query.Search,
		Platform:         string(res.Query.Platform),
		Model:            string(res.Query.Model),
		TotalPosts:       res.TotalItems,
		AverageSentiment: res.AverageScore,
		SentimentDetails: details,
	}
}
