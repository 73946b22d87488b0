package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashidrk201111/badshahpizzahub/pkg/resp"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"github.com/rashidrk201111/badshahpizzahub/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionStore holds per-user state that ends with the session.
type SessionStore interface {
	Forget(userID uint)
}

type AuthController struct {
	Service  *services.AuthService
	Sessions SessionStore
}

func NewAuthController(s *services.AuthService, sessions SessionStore) *AuthController {
	return &AuthController{Service: s, Sessions: sessions}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "fullName": user.FullName, "role": user.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.GetProfile(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email, "fullName": user.FullName, "role": user.Role,
	})
}

// POST /auth/logout
// Tokens are stateless; logging out drops the user's screens and open forms.
func (a *AuthController) Logout(c *gin.Context) {
	if a.Sessions != nil {
		a.Sessions.Forget(utils.CurrentUserID(c))
	}
	resp.OK(c, gin.H{"loggedOut": true})
}
