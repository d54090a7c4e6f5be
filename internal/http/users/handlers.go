package users

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/http/auth"
	"grampanchayat/internal/http/common"
	"grampanchayat/internal/usecase"
)

type Handler struct {
	Service *usecase.UserService
	Tokens  *auth.TokenIssuer
}

func NewHandler(service *usecase.UserService, tokens *auth.TokenIssuer) *Handler {
	return &Handler{Service: service, Tokens: tokens}
}

type registerRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,e164"`
	Address         string `json:"address" validate:"max=200"`
	WardNumber      string `json:"wardNumber" validate:"max=20"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"required,e164"`
	Address    string `json:"address" validate:"max=200"`
	WardNumber string `json:"wardNumber" validate:"max=20"`
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type adminUpdateRequest struct {
	Role     string `json:"role" validate:"omitempty,oneof=citizen staff admin"`
	IsActive *bool  `json:"isActive"`
}

type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	WardNumber string `json:"wardNumber,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"isActive"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  string `json:"createdAt"`
}

func (h *Handler) HandleRegister(c *gin.Context) {
	var req registerRequest
	if !common.BindValidated(c, &req) {
		return
	}
	user, err := h.Service.Register(c.Request.Context(), usecase.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		WardNumber: req.WardNumber,
		Password:   req.Password,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	token, err := h.Tokens.Issue(user)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusCreated, "Registration successful", gin.H{
		"user":  toUserResponse(user),
		"token": token,
	})
}

func (h *Handler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if !common.BindValidated(c, &req) {
		return
	}
	user, err := h.Service.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		common.WriteError(c, err)
		return
	}
	token, err := h.Tokens.Issue(user)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Login successful", gin.H{
		"user":  toUserResponse(user),
		"token": token,
	})
}

func (h *Handler) HandleMe(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	user, err := h.Service.Get(c.Request.Context(), principal.ID)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Profile fetched", gin.H{"user": toUserResponse(user)})
}

func (h *Handler) HandleUpdateMe(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	var req profileRequest
	if !common.BindValidated(c, &req) {
		return
	}
	user, err := h.Service.UpdateProfile(c.Request.Context(), principal.ID, usecase.ProfileUpdateInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		WardNumber: req.WardNumber,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Profile updated", gin.H{"user": toUserResponse(user)})
}

func (h *Handler) HandleChangePassword(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	var req passwordRequest
	if !common.BindValidated(c, &req) {
		return
	}
	if err := h.Service.ChangePassword(c.Request.Context(), principal.ID, req.CurrentPassword, req.NewPassword); err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Password changed", nil)
}

func (h *Handler) HandleAdminList(c *gin.Context) {
	filter := usecase.UserListFilter{
		Role:   strings.TrimSpace(c.Query("role")),
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}
	if filter.Role != "" && !portal.ValidRole(filter.Role) {
		common.Fail(c, http.StatusBadRequest, "Unknown role")
		return
	}
	users, total, err := h.Service.ListUsers(c.Request.Context(), filter)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	items := make([]userResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toUserResponse(user))
	}
	common.OK(c, http.StatusOK, "Users fetched", gin.H{"users": items, "total": total})
}

func (h *Handler) HandleAdminUpdate(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	targetID, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req adminUpdateRequest
	if !common.BindValidated(c, &req) {
		return
	}
	user, err := h.Service.AdminUpdate(c.Request.Context(), principal, usecase.AdminUserUpdateInput{
		TargetID: targetID,
		Role:     req.Role,
		Active:   req.IsActive,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "User updated", gin.H{"user": toUserResponse(user)})
}

func (h *Handler) HandleVerify(c *gin.Context) {
	targetID, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.Service.Verify(c.Request.Context(), targetID)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "User verified", gin.H{"user": toUserResponse(user)})
}

func toUserResponse(user portal.User) userResponse {
	return userResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Address:    user.Address,
		WardNumber: user.WardNumber,
		Role:       string(user.Role),
		IsActive:   user.Active,
		IsVerified: user.Verified,
		CreatedAt:  user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func queryInt(c *gin.Context, name string) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
