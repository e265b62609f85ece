package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/aggregates/tsr"
	"github.com/telvana/tsr-tracker/modules/tsr/domain/entities/timeline"
	"github.com/telvana/tsr-tracker/modules/tsr/presentation/mappers"
	"github.com/telvana/tsr-tracker/modules/tsr/presentation/viewmodels"
	"github.com/telvana/tsr-tracker/modules/tsr/services"
	"github.com/telvana/tsr-tracker/pkg/application"
	"github.com/telvana/tsr-tracker/pkg/composables"
	"github.com/telvana/tsr-tracker/pkg/httpapi"
	"github.com/telvana/tsr-tracker/pkg/intl"
	"github.com/telvana/tsr-tracker/pkg/middleware"
	"github.com/telvana/tsr-tracker/pkg/serrors"
	"github.com/telvana/tsr-tracker/pkg/shared"
)

type TSRAPIController struct {
	app      application.Application
	service  *services.TSRService
	basePath string
}

func NewTSRAPIController(app application.Application) application.Controller {
	return &TSRAPIController{
		app:      app,
		service:  app.Service(services.TSRService{}).(*services.TSRService),
		basePath: "/tsr/api",
	}
}

func (c *TSRAPIController) Key() string {
	return c.basePath
}

// Register wires the routes. Mutations deliberately run without a
// transaction wrapper: the record write and the timeline write are separate
// store calls whose partial outcomes are part of the contract.
func (c *TSRAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.ProvideLocalizer(c.app),
		middleware.RequireAuthenticated(),
	)
	router.HandleFunc("/tsrs", c.List).Methods(http.MethodGet)
	router.HandleFunc("/tsrs", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/tsrs/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/tsrs/{id}", c.Update).Methods(http.MethodPatch)
	router.HandleFunc("/tsrs/{id}/comments", c.Comment).Methods(http.MethodPost)
}

func (c *TSRAPIController) List(w http.ResponseWriter, r *http.Request) {
	params := tsr.FindParams{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	entities, err := c.service.GetAll(r.Context(), params)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	items := make([]*viewmodels.TSR, 0, len(entities))
	for _, entity := range entities {
		items = append(items, mappers.TSRToViewModel(entity))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"tsrs": items})
}

func (c *TSRAPIController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	entity, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	events, err := c.service.Timeline(r.Context(), id)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	timelineItems := make([]*viewmodels.TimelineEvent, 0, len(events))
	for _, event := range events {
		timelineItems = append(timelineItems, mappers.EventToViewModel(event))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"tsr":      mappers.TSRToViewModel(entity),
		"timeline": timelineItems,
	})
}

func (c *TSRAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto tsr.CreateDTO
	if err := httpapi.Decode(r, &dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "TSR_INVALID_JSON", "invalid json", httpapi.Meta(w, r))
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		_ = httpapi.WriteValidationError(w, errs, httpapi.Meta(w, r))
		return
	}

	created, err := c.service.Create(r.Context(), &dto)
	if err != nil {
		if errors.Is(err, services.ErrCreatedWithoutEvent) {
			// The record exists; report success together with the
			// timeline failure.
			_ = httpapi.WriteJSON(w, http.StatusCreated, map[string]any{
				"tsr": mappers.TSRToViewModel(created),
				"warning": map[string]string{
					"code":    services.ErrCreatedWithoutEvent.Code,
					"message": services.ErrCreatedWithoutEvent.Message,
				},
			})
			return
		}
		c.writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, map[string]any{
		"tsr": mappers.TSRToViewModel(created),
	})
}

func (c *TSRAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	var dto tsr.UpdateDTO
	if err := httpapi.Decode(r, &dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "TSR_INVALID_JSON", "invalid json", httpapi.Meta(w, r))
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		_ = httpapi.WriteValidationError(w, errs, httpapi.Meta(w, r))
		return
	}

	result, err := c.service.Update(r.Context(), id, &dto)
	if err != nil {
		if errors.Is(err, services.ErrUpdateLagsTimeline) {
			_ = httpapi.WriteError(
				w,
				http.StatusInternalServerError,
				services.ErrUpdateLagsTimeline.Code,
				services.ErrUpdateLagsTimeline.Message,
				httpapi.Meta(w, r),
			)
			return
		}
		c.writeServiceError(w, r, err)
		return
	}
	if result.NoChanges {
		_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
			"tsr":       mappers.TSRToViewModel(result.TSR),
			"noChanges": true,
			"message":   intl.MustT(r.Context(), "TSRs.NoChanges"),
		})
		return
	}
	changes := make([]*viewmodels.FieldChange, 0, len(result.Changes))
	for _, change := range result.Changes {
		changes = append(changes, mappers.ChangeToViewModel(change))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"tsr":     mappers.TSRToViewModel(result.TSR),
		"changes": changes,
	})
}

func (c *TSRAPIController) Comment(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	var dto tsr.CommentDTO
	if err := httpapi.Decode(r, &dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "TSR_INVALID_JSON", "invalid json", httpapi.Meta(w, r))
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		_ = httpapi.WriteValidationError(w, errs, httpapi.Meta(w, r))
		return
	}

	event, err := c.service.Comment(r.Context(), id, &dto)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, map[string]any{
		"event": mappers.EventToViewModel(event),
	})
}

// queryInt reads a non-negative integer query parameter, treating anything
// absent or malformed as zero.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (c *TSRAPIController) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(shared.ParseID(r, "id"))
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "TSR_INVALID_ID", "invalid tsr id", httpapi.Meta(w, r))
		return uuid.Nil, false
	}
	return id, true
}

func (c *TSRAPIController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, serrors.ErrUnauthorized):
		_ = httpapi.WriteError(w, http.StatusUnauthorized, serrors.ErrUnauthorized.Code, serrors.ErrUnauthorized.Message, httpapi.Meta(w, r))
	case errors.Is(err, tsr.ErrNotFound), errors.Is(err, timeline.ErrPostNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "TSR_NOT_FOUND", "tsr not found", httpapi.Meta(w, r))
	default:
		composables.UseLogger(r.Context()).WithError(err).Error("tsr request failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "TSR_INTERNAL", "internal error", httpapi.Meta(w, r))
	}
}
