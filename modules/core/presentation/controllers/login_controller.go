package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/telvana/tsr-tracker/modules/core/presentation/controllers/dtos"
	"github.com/telvana/tsr-tracker/modules/core/services"
	"github.com/telvana/tsr-tracker/pkg/application"
	"github.com/telvana/tsr-tracker/pkg/composables"
	"github.com/telvana/tsr-tracker/pkg/configuration"
	"github.com/telvana/tsr-tracker/pkg/httpapi"
	"github.com/telvana/tsr-tracker/pkg/middleware"
)

type LoginController struct {
	app      application.Application
	auth     *services.AuthService
	basePath string
}

func NewLoginController(app application.Application) application.Controller {
	return &LoginController{
		app:      app,
		auth:     app.Service(services.AuthService{}).(*services.AuthService),
		basePath: "/core/api",
	}
}

func (c *LoginController) Key() string {
	return c.basePath
}

func (c *LoginController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.ProvideLocalizer(c.app),
		middleware.WithTransaction(),
	)
	router.HandleFunc("/login", c.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout", c.Logout).Methods(http.MethodPost)
}

func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	var dto dtos.LoginDTO
	if err := httpapi.Decode(r, &dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "CORE_INVALID_JSON", "invalid json", httpapi.Meta(w, r))
		return
	}

	if errs, ok := dto.Ok(r.Context()); !ok {
		_ = httpapi.WriteValidationError(w, errs, httpapi.Meta(w, r))
		return
	}

	cookie, err := c.auth.CookieAuthenticate(r.Context(), dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			_ = httpapi.WriteError(w, http.StatusUnauthorized, "CORE_INVALID_CREDENTIALS", "invalid email or password", httpapi.Meta(w, r))
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("login failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "CORE_INTERNAL", "internal error", httpapi.Meta(w, r))
		return
	}

	http.SetCookie(w, cookie)
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (c *LoginController) Logout(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	cookie, err := r.Cookie(conf.SidCookieKey)
	if err == nil && cookie.Value != "" {
		if err := c.auth.Logout(r.Context(), cookie.Value); err != nil {
			composables.UseLogger(r.Context()).WithError(err).Error("logout failed")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:   conf.SidCookieKey,
		Value:  "",
		MaxAge: -1,
		Path:   "/",
	})
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}
