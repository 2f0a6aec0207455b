package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/utils"
)

// maxRequestBody caps recommendation request bodies.
const maxRequestBody = 64 << 10

// Recommender is the recommendation service the handler delegates to.
type Recommender interface {
	Recommend(ctx context.Context, user *models.UserConditions) (*models.RecommendationResult, error)
}

// RecommendHandler serves POST /api/recommendations.
type RecommendHandler struct {
	recommender Recommender
}

// NewRecommendHandler creates a recommendation handler.
func NewRecommendHandler(r Recommender) *RecommendHandler {
	return &RecommendHandler{recommender: r}
}

// Handle processes an API Gateway recommendation request.
func (h *RecommendHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Headers: corsHeaders()}, nil
	}

	requestID := request.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	status, resp := h.recommend(ctx, requestID, []byte(request.Body))
	return apiResponse(status, resp)
}

// ServeHTTP implements http.Handler for the local server.
func (h *RecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, requestID, "Use POST")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, requestID, "Request body too large")
		return
	}

	status, resp := h.recommend(r.Context(), requestID, body)
	writeJSON(w, status, resp)
}

func (h *RecommendHandler) recommend(ctx context.Context, requestID string, body []byte) (int, Response) {
	logger := utils.Logger.With(zap.String("request_id", requestID))

	var req RecommendationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return http.StatusBadRequest, Response{
			Error:     http.StatusText(http.StatusBadRequest),
			Message:   "Invalid JSON in request body",
			RequestID: requestID,
		}
	}

	user, err := req.ToUserConditions()
	if err != nil {
		logger.Debug("Rejected recommendation request", zap.Error(err))
		return http.StatusBadRequest, Response{
			Error:     http.StatusText(http.StatusBadRequest),
			Message:   err.Error(),
			RequestID: requestID,
		}
	}

	result, err := h.recommender.Recommend(ctx, user)
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		logger.Error("Recommendation failed", zap.String("user_id", user.UserID), zap.Error(err))
		return status, Response{
			Error:     http.StatusText(status),
			Message:   "Loan catalog is unavailable",
			RequestID: requestID,
		}
	}

	return http.StatusOK, Response{
		Success:   true,
		Data:      result,
		RequestID: requestID,
	}
}
