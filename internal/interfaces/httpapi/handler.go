package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
	"github.com/riskibarqy/fpl-ledger/internal/platform/cache"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Extractor is the part of the extraction service the API needs.
type Extractor interface {
	Run(ctx context.Context, maxPeriod int, leagueID int64) (usecase.Result, error)
	RunAndStore(ctx context.Context, maxPeriod int, leagueID int64) (usecase.Result, error)
	LatestSnapshot(ctx context.Context, leagueID int64) (snapshot.Summary, error)
	MaxPeriodCap() int
}

type Handler struct {
	extraction Extractor
	results    *cache.Store[usecase.Result]
	logger     *logging.Logger
	validator  *validator.Validate
}

func NewHandler(extraction Extractor, results *cache.Store[usecase.Result], logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if results == nil {
		results = cache.NewDisabledStore[usecase.Result]()
	}

	return &Handler{
		extraction: extraction,
		results:    results,
		logger:     logger,
		validator:  newRequestValidator(extraction.MaxPeriodCap()),
	}
}

// newRequestValidator registers the periodcap tag, which bounds a period
// by the extraction service's configured cap.
func newRequestValidator(maxPeriod int) *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("periodcap", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(maxPeriod)
	})
	return v
}

type extractionQuery struct {
	LeagueID  int64 `validate:"required,gt=0"`
	MaxPeriod int   `validate:"gte=0,periodcap"`
}

type comparisonQuery struct {
	LeagueID int64 `validate:"required,gt=0"`
	Period   int   `validate:"required,gte=1,periodcap"`
	EntryA   int64 `validate:"required,gt=0"`
	EntryB   int64 `validate:"required,gt=0,nefield=EntryA"`
}

type createSnapshotRequest struct {
	MaxPeriod int `json:"max_period" validate:"gte=0,periodcap"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetExtraction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetExtraction")
	defer span.End()

	query, err := h.parseExtractionQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.loadExtraction(ctx, query.LeagueID, query.MaxPeriod)
	if err != nil {
		h.logger.WarnContext(ctx, "extraction failed", "league_id", query.LeagueID, "max_period", query.MaxPeriod, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, extractionToDTO(result))
}

func (h *Handler) GetConsistency(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetConsistency")
	defer span.End()

	query, err := h.parseExtractionQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.loadExtraction(ctx, query.LeagueID, query.MaxPeriod)
	if err != nil {
		h.logger.WarnContext(ctx, "consistency check failed", "league_id", query.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, consistencyToDTO(result.Consistency))
}

func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetComparison")
	defer span.End()

	leagueID, err := parseLeagueID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	values := r.URL.Query()
	query := comparisonQuery{LeagueID: leagueID}
	if query.Period, err = parseIntQuery(values.Get("period"), "period"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.EntryA, err = parseInt64Query(values.Get("entry_a"), "entry_a"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.EntryB, err = parseInt64Query(values.Get("entry_b"), "entry_b"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.loadExtraction(ctx, query.LeagueID, query.Period)
	if err != nil {
		h.logger.WarnContext(ctx, "comparison extraction failed", "league_id", query.LeagueID, "period", query.Period, "error", err)
		writeError(ctx, w, err)
		return
	}

	cmp, err := usecase.CompareSelections(result.Selections, query.Period, query.EntryA, query.EntryB)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(query.Period, query.EntryA, query.EntryB, cmp))
}

func (h *Handler) GetLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLatestSnapshot")
	defer span.End()

	leagueID, err := parseLeagueID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.extraction.LatestSnapshot(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(summary))
}

func (h *Handler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSnapshot")
	defer span.End()

	leagueID, err := parseLeagueID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createSnapshotRequest
	if r.ContentLength != 0 {
		if err := decodeJSONBody(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.extraction.RunAndStore(ctx, req.MaxPeriod, leagueID)
	if err != nil {
		h.logger.ErrorContext(ctx, "store snapshot failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	h.results.Set(ctx, cache.Key("extraction", leagueID, req.MaxPeriod), result)

	writeSuccess(ctx, w, http.StatusCreated, snapshotToDTO(result.Snapshot().Summary()))
}

func (h *Handler) loadExtraction(ctx context.Context, leagueID int64, maxPeriod int) (usecase.Result, error) {
	trace.SpanFromContext(ctx).SetAttributes(leagueAttr(leagueID), attribute.Int("fpl.max_period", maxPeriod))
	return h.results.GetOrLoad(ctx, cache.Key("extraction", leagueID, maxPeriod), func(ctx context.Context) (usecase.Result, error) {
		return h.extraction.Run(ctx, maxPeriod, leagueID)
	})
}

func (h *Handler) parseExtractionQuery(ctx context.Context, r *http.Request) (extractionQuery, error) {
	leagueID, err := parseLeagueID(r)
	if err != nil {
		return extractionQuery{}, err
	}
	query := extractionQuery{LeagueID: leagueID}
	if raw := r.URL.Query().Get("max_period"); strings.TrimSpace(raw) != "" {
		if query.MaxPeriod, err = parseIntQuery(raw, "max_period"); err != nil {
			return extractionQuery{}, err
		}
	}
	if err := h.validateRequest(ctx, query); err != nil {
		return extractionQuery{}, err
	}
	return query, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parseLeagueID(r *http.Request) (int64, error) {
	return parseInt64Query(r.PathValue("leagueID"), "leagueID")
}

func parseIntQuery(raw, name string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func parseInt64Query(raw, name string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func decodeJSONBody(r *http.Request, dst any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
