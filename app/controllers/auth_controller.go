package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"coursehub/app/dto"
	"coursehub/app/models"
	"coursehub/app/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username, email, and password are required")
		return
	}
	if req.Role == "" {
		req.Role = string(models.RoleStudent)
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid role")
		return
	}
	u, err := c.Auth.Signup(req.Username, req.Email, req.Password, req.Phone, role)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			writeMessage(w, http.StatusBadRequest, "user already exists")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.SignupResponse{Message: "signup successful", UserID: u.UserID})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}
	u, token, err := c.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{Token: token, UserID: strconv.FormatInt(u.UserID, 10)})
}
