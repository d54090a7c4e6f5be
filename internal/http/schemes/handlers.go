package schemes

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/http/common"
	"grampanchayat/internal/usecase"
)

type Handler struct {
	Service *usecase.SchemeService
}

func NewHandler(service *usecase.SchemeService) *Handler {
	return &Handler{Service: service}
}

type schemeRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,max=50"`
	Eligibility string `json:"eligibility" validate:"max=2000"`
	Benefits    string `json:"benefits" validate:"max=2000"`
	Documents   string `json:"documents" validate:"max=2000"`
}

type schemeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Eligibility string `json:"eligibility,omitempty"`
	Benefits    string `json:"benefits,omitempty"`
	Documents   string `json:"documents,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
}

// HandleList is public; elevated callers additionally see inactive schemes.
func (h *Handler) HandleList(c *gin.Context) {
	filter := usecase.SchemeListFilter{
		Query:      strings.TrimSpace(c.Query("q")),
		Category:   strings.TrimSpace(c.Query("category")),
		ActiveOnly: true,
		Limit:      queryInt(c, "limit"),
		Offset:     queryInt(c, "offset"),
	}
	if principal, ok := common.MaybePrincipal(c); ok && principal.Role.Elevated() {
		filter.ActiveOnly = false
	}
	items, total, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	resp := make([]schemeResponse, 0, len(items))
	for _, scheme := range items {
		resp = append(resp, toSchemeResponse(scheme))
	}
	common.OK(c, http.StatusOK, "Schemes fetched", gin.H{"schemes": resp, "total": total})
}

func (h *Handler) HandleGet(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	scheme, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	if !scheme.Active {
		principal, ok := common.MaybePrincipal(c)
		if !ok || !principal.Role.Elevated() {
			common.Fail(c, http.StatusNotFound, "Resource not found")
			return
		}
	}
	common.OK(c, http.StatusOK, "Scheme fetched", gin.H{"scheme": toSchemeResponse(scheme)})
}

func (h *Handler) HandleCreate(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	var req schemeRequest
	if !common.BindValidated(c, &req) {
		return
	}
	scheme, err := h.Service.Create(c.Request.Context(), principal.ID, schemeInput(req))
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusCreated, "Scheme created", gin.H{"scheme": toSchemeResponse(scheme)})
}

func (h *Handler) HandleUpdate(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req schemeRequest
	if !common.BindValidated(c, &req) {
		return
	}
	scheme, err := h.Service.Update(c.Request.Context(), id, schemeInput(req))
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Scheme updated", gin.H{"scheme": toSchemeResponse(scheme)})
}

func (h *Handler) HandleDelete(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Deactivate(c.Request.Context(), id); err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Scheme removed", nil)
}

func schemeInput(req schemeRequest) usecase.SchemeInput {
	return usecase.SchemeInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Eligibility: req.Eligibility,
		Benefits:    req.Benefits,
		Documents:   req.Documents,
	}
}

func toSchemeResponse(scheme portal.Scheme) schemeResponse {
	return schemeResponse{
		ID:          scheme.ID,
		Title:       scheme.Title,
		Description: scheme.Description,
		Category:    scheme.Category,
		Eligibility: scheme.Eligibility,
		Benefits:    scheme.Benefits,
		Documents:   scheme.Documents,
		IsActive:    scheme.Active,
		CreatedAt:   scheme.CreatedAt.UTC().Format(time.RFC3339),
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
