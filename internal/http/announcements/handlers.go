package announcements

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
	Service *usecase.AnnouncementService
}

func NewHandler(service *usecase.AnnouncementService) *Handler {
	return &Handler{Service: service}
}

type announcementRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category" validate:"max=50"`
}

type announcementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Category  string `json:"category,omitempty"`
	Views     int64  `json:"views"`
	CreatedAt string `json:"createdAt"`
}

func (h *Handler) HandleList(c *gin.Context) {
	filter := usecase.AnnouncementListFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	}
	items, total, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	resp := make([]announcementResponse, 0, len(items))
	for _, announcement := range items {
		resp = append(resp, toAnnouncementResponse(announcement))
	}
	common.OK(c, http.StatusOK, "Announcements fetched", gin.H{"announcements": resp, "total": total})
}

// HandleGet counts the view unless the caller holds an elevated role, so
// staff reading their own notices do not inflate the tally.
func (h *Handler) HandleGet(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	elevated := false
	if principal, ok := common.MaybePrincipal(c); ok {
		elevated = principal.Role.Elevated()
	}
	announcement, err := h.Service.Get(c.Request.Context(), id, elevated)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Announcement fetched", gin.H{"announcement": toAnnouncementResponse(announcement)})
}

func (h *Handler) HandleCreate(c *gin.Context) {
	principal, ok := common.PrincipalFromContext(c)
	if !ok {
		return
	}
	var req announcementRequest
	if !common.BindValidated(c, &req) {
		return
	}
	announcement, err := h.Service.Create(c.Request.Context(), principal.ID, usecase.AnnouncementInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusCreated, "Announcement created", gin.H{"announcement": toAnnouncementResponse(announcement)})
}

func (h *Handler) HandleUpdate(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req announcementRequest
	if !common.BindValidated(c, &req) {
		return
	}
	announcement, err := h.Service.Update(c.Request.Context(), id, usecase.AnnouncementInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Announcement updated", gin.H{"announcement": toAnnouncementResponse(announcement)})
}

func (h *Handler) HandleDelete(c *gin.Context) {
	id, ok := common.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		common.WriteError(c, err)
		return
	}
	common.OK(c, http.StatusOK, "Announcement removed", nil)
}

func toAnnouncementResponse(announcement portal.Announcement) announcementResponse {
	return announcementResponse{
		ID:        announcement.ID,
		Title:     announcement.Title,
		Body:      announcement.Body,
		Category:  announcement.Category,
		Views:     announcement.Views,
		CreatedAt: announcement.CreatedAt.UTC().Format(time.RFC3339),
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
