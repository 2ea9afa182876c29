package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linemk/siya-shop/internal/service"
)

// SuggestDesignRequest carries the customizer inputs. Both fields are
// required; an empty prompt is a boundary validation error, not a
// collaborator failure.
type SuggestDesignRequest struct {
	Name        string `json:"name" validate:"required"`
	StylePrompt string `json:"stylePrompt" validate:"required"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerateImageResponse carries the base64-encoded image payload.
type GenerateImageResponse struct {
	Image string `json:"image"`
}

// SuggestDesignHandler handles POST /api/design/suggest.
func SuggestDesignHandler(log *slog.Logger, designService service.DesignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.SuggestDesignHandler"
		logger := log.With(slog.String("op", op))

		var req SuggestDesignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "please enter both a name and a style description", http.StatusBadRequest)
			return
		}

		suggestion, err := designService.Suggest(r.Context(), req.Name, req.StylePrompt)
		if err != nil {
			// Collapsed upstream failure; the user re-triggers, no retry here.
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestion); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

// GenerateImageHandler handles POST /api/design/image.
func GenerateImageHandler(log *slog.Logger, designService service.DesignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.GenerateImageHandler"
		logger := log.With(slog.String("op", op))

		var req GenerateImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "please enter a prompt", http.StatusBadRequest)
			return
		}

		image, err := designService.GenerateImage(r.Context(), req.Prompt)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		resp := GenerateImageResponse{Image: image}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
