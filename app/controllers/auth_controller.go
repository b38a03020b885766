// Package controllers translates HTTP requests into service calls and
// maps service errors onto status codes.
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/auth"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/bind"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Signup registers a new account. 201 on success, 409 when the email is
// taken.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Signup(body.Name, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Conflict(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not create account")
		return
	}
	response.Created(w, user.Public())
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a bearer token. 401 on a bad
// email/password pair.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Login(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not log in")
		return
	}
	response.Success(w, map[string]any{"token": token, "user": user.Public()})
}

// Me reports the caller's identity. With a valid bearer token it resolves
// the token's user; otherwise it falls back to the stored session. Either
// way a missing identity is a 200 guest, never an error.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	if raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "); raw != "" && raw != r.Header.Get("Authorization") {
		if claims, err := auth.ValidateToken(raw); err == nil {
			if user, found, err := c.service.UserByID(claims.UserID); err == nil && found {
				response.Success(w, map[string]any{"status": "authenticated", "user": user.Public()})
				return
			}
		}
		response.Success(w, map[string]any{"status": "guest"})
		return
	}

	user, authenticated, err := c.service.CheckAuth()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not check session")
		return
	}
	if !authenticated {
		response.Success(w, map[string]any{"status": "guest"})
		return
	}
	response.Success(w, map[string]any{"status": "authenticated", "user": user.Public()})
}

// Logout clears the stored session. Always 204.
func (c *AuthController) Logout(w http.ResponseWriter, _ *http.Request) {
	if err := c.service.Logout(); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not log out")
		return
	}
	response.NoContent(w)
}
