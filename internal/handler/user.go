package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmaia/storefront-api/internal/dto"
	"github.com/dmaia/storefront-api/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	users, err := h.userService.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondList(c, users, len(users))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(c, http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name and email are required")
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(c, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(c, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.userService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(c, http.StatusOK, "User removed successfully", user)
}
