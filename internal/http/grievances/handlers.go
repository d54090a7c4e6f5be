package grievances

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
	Service *usecase.GrievanceService
}

func NewHandler(service *usecase.GrievanceService) *Handler {
	return &Handler{Service: service}
}

type submitRequest struct {
	Subject     string `json:"subject" validate:"required,min=5,max=200"`
	Description string `json:"description" validate:"required,min=10,max=5000"`
	Category    string `json:"category" validate:"max=50"`
}

type resolveRequest struct {
	Status   string `json:"status" validate:"required,oneof=in_progress resolved closed"`
	Response string `json:"response" validate:"max=2000"`
}

type assignRequest struct {
	AssigneeID string `json:"assigneeId" validate:"required,uuid4"`
}

type grievanceResponse struct {
	ID          string `json:"id"`
	SubmitterID string `json:"submitterId"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status"`
	Response    string `json:"response,omitempty"`
	AssigneeID  string `json:"assigneeId,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (h *Handler) HandleSubmit(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	var req submitRequest
	if !common.BindValidated(c, &req) {
		return
	}
	grievance, err := h.Service.Submit(c.Request.Context(), principal.ID, usecase.GrievanceSubmitInput{
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusCreated, "Grievance submitted", gin.H{"grievance": toGrievanceResponse(grievance)})
}

func (h *Handler) HandleList(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	filter := usecase.GrievanceListFilter{
		Status:   strings.TrimSpace(c.Query("status")),
		Category: strings.TrimSpace(c.Query("category")),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	}
	items, total, err := h.Service.ListFor(c.Request.Context(), principal, filter)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	resp := make([]grievanceResponse, 0, len(items))
	for _, grievance := range items {
		resp = append(resp, toGrievanceResponse(grievance))
	}
	common.OK(c, http.StatusOK, "Grievances fetched", gin.H{"grievances": resp, "total": total})
}

func (h *Handler) HandleGet(c *gin.Context) {
	resource, ok := common.ResourceFromContext(c)
	if !ok {
		return
	}
	grievance, ok := resource.(portal.Grievance)
	if !ok {
		common.Fail(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	common.OK(c, http.StatusOK, "Grievance fetched", gin.H{"grievance": toGrievanceResponse(grievance)})
}

func (h *Handler) HandleResolve(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req resolveRequest
	if !common.BindValidated(c, &req) {
		return
	}
	grievance, err := h.Service.Resolve(c.Request.Context(), id, usecase.GrievanceResolveInput{
		Status:   req.Status,
		Response: req.Response,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Grievance updated", gin.H{"grievance": toGrievanceResponse(grievance)})
}

func (h *Handler) HandleAssign(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req assignRequest
	if !common.BindValidated(c, &req) {
		return
	}
	grievance, err := h.Service.Assign(c.Request.Context(), id, req.AssigneeID)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Grievance assigned", gin.H{"grievance": toGrievanceResponse(grievance)})
}

func toGrievanceResponse(grievance portal.Grievance) grievanceResponse {
	return grievanceResponse{
		ID:          grievance.ID,
		SubmitterID: grievance.SubmitterID,
		Subject:     grievance.Subject,
		Description: grievance.Description,
		Category:    grievance.Category,
		Status:      string(grievance.Status),
		Response:    grievance.Response,
		AssigneeID:  grievance.AssigneeID,
		CreatedAt:   grievance.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   grievance.UpdatedAt.UTC().Format(time.RFC3339),
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
