package cli

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/briangreenhill/ran/internal/sensor"
	"github.com/briangreenhill/ran/internal/training"
)

type workoutResponse struct {
	Message string               `json:"message"`
	Info    training.InfoMessage `json:"info"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewAPI(logger *slog.Logger, registry *training.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /workouts", handleCreateWorkout(logger, registry))
	mux.Handle("GET /workouts/samples", handleGetSamples(logger, registry))
	mux.Handle("GET /workouts/types", handleGetTypes(logger, registry))

	return mux
}

func handleCreateWorkout(logger *slog.Logger, registry *training.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pkg sensor.Package
		if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
			logger.Error("Error decoding package", slog.Any("error", err))
			writeJSON(logger, w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
			return
		}

		t, err := registry.Read(pkg.Code, pkg.Data)
		if err != nil {
			logger.Info("Rejected package", slog.String("code", pkg.Code), slog.Any("error", err))
			writeJSON(logger, w, statusFor(err), errorResponse{Error: err.Error()})
			return
		}

		info := t.Info()
		writeJSON(logger, w, http.StatusOK, workoutResponse{Message: info.Message(), Info: info})
	})
}

func handleGetSamples(logger *slog.Logger, registry *training.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		samples := sensor.Samples()
		resp := make([]workoutResponse, 0, len(samples))
		for _, p := range samples {
			t, err := registry.Read(p.Code, p.Data)
			if err != nil {
				logger.Error("Error reading sample", slog.String("code", p.Code), slog.Any("error", err))
				writeJSON(logger, w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
				return
			}
			info := t.Info()
			resp = append(resp, workoutResponse{Message: info.Message(), Info: info})
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func handleGetTypes(logger *slog.Logger, registry *training.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(logger, w, http.StatusOK, map[string][]string{"types": registry.Codes()})
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, training.ErrUnknownWorkoutType),
		errors.Is(err, training.ErrArityMismatch),
		errors.Is(err, training.ErrInvalidDuration),
		errors.Is(err, training.ErrInvalidHeight),
		errors.Is(err, training.ErrNotInteger):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", slog.Any("error", err))
	}
}
