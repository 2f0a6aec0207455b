// Package handlers adapts the recommendation engine to API Gateway, S3 and
// net/http entry points.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"loan-recommendation-engine/internal/utils"
)

// Response is the envelope every JSON endpoint returns.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
		"Content-Type":                 "application/json",
	}
}

// apiResponse renders resp as an API Gateway proxy response.
func apiResponse(statusCode int, resp Response) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(resp)
	if err != nil {
		utils.Logger.Error("Failed to encode response", zap.Error(err))
		statusCode = http.StatusInternalServerError
		body = []byte(`{"success":false,"error":"Internal Server Error"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       string(body),
	}, nil
}

// errorResponse creates an API Gateway error response.
func errorResponse(statusCode int, requestID, message string) (events.APIGatewayProxyResponse, error) {
	return apiResponse(statusCode, Response{
		Error:     http.StatusText(statusCode),
		Message:   message,
		RequestID: requestID,
	})
}

// writeJSON renders resp on a net/http response writer. CORS is handled by
// the server's middleware.
func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		utils.Logger.Warn("Failed to write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, statusCode int, requestID, message string) {
	writeJSON(w, statusCode, Response{
		Error:     http.StatusText(statusCode),
		Message:   message,
		RequestID: requestID,
	})
}
