package httpserver

import (
	"net/http"

	usersvc "shoemarket/internal/service/user"
	"github.com/gin-gonic/gin"
)

func getProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, "Profile retrieved successfully", currentUser(c))
	}
}

func updateProfileHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, err)
			return
		}
		user, err := svc.UpdateProfile(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Profile updated successfully", user)
	}
}
