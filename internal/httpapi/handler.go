package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/plantpal/plantpal-service/internal/careguide"
	"github.com/plantpal/plantpal-service/internal/challenge"
	"github.com/plantpal/plantpal-service/internal/dashboard"
	"github.com/plantpal/plantpal-service/internal/identify"
	"github.com/plantpal/plantpal-service/internal/journal"
	"github.com/plantpal/plantpal-service/internal/recipe"
	"github.com/plantpal/plantpal-service/internal/season"
	"github.com/plantpal/plantpal-service/internal/sighting"
	"github.com/plantpal/plantpal-service/pkg/auth"
	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
	"github.com/plantpal/plantpal-service/pkg/logging"
)

const (
	serviceTimeout = 8 * time.Second
	maxBodyBytes   = 64 * 1024
	maxLimit       = 100
)

// SeasonService serves seasonal catalog listings.
type SeasonService interface {
	Current(ctx context.Context) (season.Listing, error)
	ByMonth(ctx context.Context, month int) (season.Listing, error)
	BySeason(ctx context.Context, s season.Season) (season.Listing, error)
}

// ChallengeService serves challenge boards and leaderboards.
type ChallengeService interface {
	Board(ctx context.Context, userID string, limit int) (*challenge.Board, error)
	Leaderboard(ctx context.Context, limit int) ([]challenge.LeaderboardEntry, error)
}

// JournalService manages plant journals.
type JournalService interface {
	List(ctx context.Context, userID string, filter journal.Filter) (journal.Listing, error)
	Create(ctx context.Context, userID string, in journal.NewEntry) (*journal.Entry, error)
	ToggleFavorite(ctx context.Context, userID, id string) (*journal.Entry, error)
	Delete(ctx context.Context, userID, id string) error
}

// SightingService records invasive species sightings.
type SightingService interface {
	List(ctx context.Context) ([]sighting.Report, error)
	Submit(ctx context.Context, userID string, in sighting.NewReport) (*sighting.Report, error)
}

// RecipeService lists forager recipes.
type RecipeService interface {
	List(ctx context.Context) ([]recipe.Recipe, error)
}

// CareGuideService searches plant care guides.
type CareGuideService interface {
	Browse(ctx context.Context, query, plant string) (careguide.Browse, error)
}

// DashboardService reports the home screen counters.
type DashboardService interface {
	Stats(ctx context.Context, userID string) (dashboard.Stats, error)
}

// Classifier identifies plants from stored images.
type Classifier interface {
	Classify(ctx context.Context, imagePath string) (identify.Classification, error)
}

// Dependencies bundles the services exposed over HTTP.
type Dependencies struct {
	Season           SeasonService
	Challenges       ChallengeService
	Journal          JournalService
	Sightings        SightingService
	Recipes          RecipeService
	CareGuides       CareGuideService
	Dashboard        DashboardService
	Classifier       Classifier
	LeaderboardLimit int
	Logger           *slog.Logger
}

type handler struct {
	Dependencies
}

// RegisterRoutes registers every plantpal route on r. Authentication is applied by the caller.
func RegisterRoutes(r chi.Router, deps Dependencies) {
	if deps.LeaderboardLimit <= 0 {
		deps.LeaderboardLimit = challenge.DefaultLeaderboardLimit
	}
	h := &handler{Dependencies: deps}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/seasonal/plants", h.listSeasonalPlants)

		r.Get("/challenges/me", h.getChallengesMe)
		r.Get("/leaderboard", h.getLeaderboard)

		r.Route("/journal", func(r chi.Router) {
			r.Get("/", h.listJournal)
			r.Post("/", h.createJournalEntry)
			r.Post("/{id}/favorite", h.toggleFavorite)
			r.Delete("/{id}", h.deleteJournalEntry)
		})

		r.Route("/sightings", func(r chi.Router) {
			r.Get("/", h.listSightings)
			r.Post("/", h.submitSighting)
		})

		r.Get("/recipes", h.listRecipes)
		r.Get("/care-guides", h.browseCareGuides)
		r.Get("/dashboard", h.getDashboard)

		r.Post("/identify", h.classify)
	})
}

var validate = validator.New()

var errInvalidPayload = errors.New("invalid request body")

// decodeJSON reads exactly one JSON object into dst and validates it.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return errInvalidPayload
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errInvalidPayload
	}
	return validate.Struct(dst)
}

// writeDecodeError reports a decodeJSON failure.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		maxErr       *http.MaxBytesError
		validateErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &maxErr):
		writeError(w, r, http.StatusRequestEntityTooLarge, apperrors.CodeBadRequest, "payload too large")
	case errors.As(err, &validateErrs):
		writeError(w, r, http.StatusBadRequest, apperrors.CodeBadRequest, validationMessage(validateErrs))
	default:
		writeError(w, r, http.StatusBadRequest, apperrors.CodeBadRequest, errInvalidPayload.Error())
	}
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return errInvalidPayload.Error()
	}
	fe := errs[0]
	return "invalid field " + fe.Field() + ": failed " + fe.Tag()
}

// requireUser returns the authenticated user id, writing 401 when absent.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user.UserID == "" {
		writeError(w, r, http.StatusUnauthorized, apperrors.CodeUnauthorized, "missing user ID")
		return "", false
	}
	return user.UserID, true
}

// parseLimit reads ?limit=, falling back to def and capping at maxLimit.
func parseLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, challenge.ErrInvalidLimit
	}
	return min(n, maxLimit), nil
}

// fail maps err onto the error envelope. Unclassified errors are logged and hidden from the client.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, message string, err error, userID string) {
	code := apperrors.CodeOf(err)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logRequestError(r.Context(), h.Logger, message, err, userID)
		writeError(w, r, http.StatusGatewayTimeout, apperrors.CodeInternal, "request timed out")
	case code == apperrors.CodeInternal:
		logRequestError(r.Context(), h.Logger, message, err, userID)
		writeError(w, r, http.StatusInternalServerError, code, message)
	default:
		writeError(w, r, apperrors.ToStatusCode(code), code, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, apperrors.ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func logRequestError(ctx context.Context, logger *slog.Logger, message string, err error, userID string) {
	if logger == nil || err == nil {
		return
	}
	logging.FromRequest(ctx, logger).ErrorContext(ctx, message,
		slog.String("userId", userID),
		slog.Any("error", err),
	)
}
