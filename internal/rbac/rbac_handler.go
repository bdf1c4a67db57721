package rbac

import (
	"net/http"

	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	repo    Repository
}

func NewHandler(service Service, repo Repository) *Handler {
	return &Handler{service: service, repo: repo}
}

func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.repo.ListRoles()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	resp := make([]RoleResponse, len(roles))
	for i, r := range roles {
		resp[i] = RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description}
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListPermissions(c *gin.Context) {
	perms, err := h.repo.ListPermissions()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, mapPermissions(perms), nil)
}

func (h *Handler) GetRolePermissions(c *gin.Context) {
	roleID := c.Param("id")
	if _, err := h.repo.GetRoleByID(roleID); err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "role not found", nil)
		return
	}

	perms, err := h.repo.GetPermissionsByRoleID(roleID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, mapPermissions(perms), nil)
}

func (h *Handler) UpdateRolePermissions(c *gin.Context) {
	roleID := c.Param("id")

	var req UpdateRolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.repo.UpdateRolePermissions(roleID, req.PermissionIDs); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	if err := h.service.ReloadPolicy(); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true}, nil)
}

func mapPermissions(perms []PermissionRow) []PermissionResponse {
	resp := make([]PermissionResponse, len(perms))
	for i, p := range perms {
		resp[i] = PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}
	return resp
}
