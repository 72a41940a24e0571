package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(api *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := api.Group("/users")
	{
		users.POST("/register", handler.Register)
		users.GET("/:id", handler.GetDetails)
	}
}

// Register godoc
// @Summary      Register a user
// @Description  Usernames and emails are unique. The password is stored hashed and never returned.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterUserRequest  true  "Registration form"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  response.ErrorBody
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req domain.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidBody("Invalid user data", err))
		return
	}

	user, err := h.userUC.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// GetUser godoc
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [get]
func (h *UserHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userUC.GetUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
