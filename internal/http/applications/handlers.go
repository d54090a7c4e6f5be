package applications

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
	Service *usecase.ApplicationService
}

func NewHandler(service *usecase.ApplicationService) *Handler {
	return &Handler{Service: service}
}

type submitRequest struct {
	SchemeID string `json:"schemeId" validate:"required,uuid4"`
	Details  string `json:"details" validate:"max=2000"`
}

type reviewRequest struct {
	Status  string `json:"status" validate:"required,oneof=under_review approved rejected"`
	Remarks string `json:"remarks" validate:"max=1000"`
}

type applicationResponse struct {
	ID          string `json:"id"`
	SchemeID    string `json:"schemeId"`
	ApplicantID string `json:"applicantId"`
	Details     string `json:"details,omitempty"`
	Status      string `json:"status"`
	Remarks     string `json:"remarks,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// HandleSubmit runs behind the verification gate; only verified citizens
// reach it.
func (h *Handler) HandleSubmit(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	var req submitRequest
	if !common.BindValidated(c, &req) {
		return
	}
	application, err := h.Service.Submit(c.Request.Context(), principal.ID, usecase.ApplicationSubmitInput{
		SchemeID: req.SchemeID,
		Details:  req.Details,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusCreated, "Application submitted", gin.H{"application": toApplicationResponse(application)})
}

func (h *Handler) HandleList(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	filter := usecase.ApplicationListFilter{
		SchemeID: strings.TrimSpace(c.Query("scheme")),
		Status:   strings.TrimSpace(c.Query("status")),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	}
	items, total, err := h.Service.ListFor(c.Request.Context(), principal, filter)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	resp := make([]applicationResponse, 0, len(items))
	for _, application := range items {
		resp = append(resp, toApplicationResponse(application))
	}
	common.OK(c, http.StatusOK, "Applications fetched", gin.H{"applications": resp, "total": total})
}

// HandleGet reads the application the ownership guard already fetched.
func (h *Handler) HandleGet(c *gin.Context) {
	resource, ok := common.ResourceFromContext(c)
	if !ok {
		return
	}
	application, ok := resource.(portal.Application)
	if !ok {
		common.Fail(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	common.OK(c, http.StatusOK, "Application fetched", gin.H{"application": toApplicationResponse(application)})
}

func (h *Handler) HandleReview(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !common.BindValidated(c, &req) {
		return
	}
	application, err := h.Service.Review(c.Request.Context(), principal.ID, id, usecase.ApplicationReviewInput{
		Status:  req.Status,
		Remarks: req.Remarks,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Application reviewed", gin.H{"application": toApplicationResponse(application)})
}

func (h *Handler) HandleWithdraw(c *gin.Context) {
	resource, ok := common.ResourceFromContext(c)
	if !ok {
		return
	}
	application, ok := resource.(portal.Application)
	if !ok {
		common.Fail(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if err := h.Service.Withdraw(c.Request.Context(), application); err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Application withdrawn", nil)
}

func toApplicationResponse(application portal.Application) applicationResponse {
	return applicationResponse{
		ID:          application.ID,
		SchemeID:    application.SchemeID,
		ApplicantID: application.ApplicantID,
		Details:     application.Details,
		Status:      string(application.Status),
		Remarks:     application.Remarks,
		CreatedAt:   application.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   application.UpdatedAt.UTC().Format(time.RFC3339),
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
