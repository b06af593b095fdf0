package controllers

import (
	"net/http"

	"github.com/elbarryamine/atikia-plugin-server/internal/services"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ----------------------------------------------------------------
// GET /me
// ----------------------------------------------------------------
func (c *UserController) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	profile, err := c.userService.GetProfile(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}
