package handlers

import (
	"encoding/json"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func actionLogin(c *gin.Context, raw json.RawMessage) {
	var req loginRequest
	if !bindAction(c, raw, &req) {
		return
	}
	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	svc := services.AuthService{Secret: jwtSecret, RequestID: requestID(c)}
	token, user, err := svc.Login(identifier, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, gin.H{"token": token, "user": user})
}

func actionGetUserByID(c *gin.Context, raw json.RawMessage) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !bindAction(c, raw, &req) {
		return
	}

	svc := services.AuthService{Secret: jwtSecret, RequestID: requestID(c)}
	user, err := svc.GetUserByID(req.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, user)
}
