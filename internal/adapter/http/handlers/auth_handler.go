package handlers

import (
	"log"
	"net/http"

	request "oficina_facil/internal/adapter/http/dto/request"
	response "oficina_facil/internal/adapter/http/dto/response"
	"oficina_facil/internal/usecase/interfaces"
	"oficina_facil/pkg"

	"github.com/gin-gonic/gin"

	"github.com/google/uuid"
)

// AuthHandler exposes the Google sign-in flow.

type AuthHandler struct {
	auth interfaces.IAuthService
}

func NewAuthHandler(auth interfaces.IAuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// AuthURL hands out the consent URL. The state parameter is opaque to the
// caller; it only has to come back unchanged on the redirect.
func (h *AuthHandler) AuthURL(c *gin.Context) {
	url := h.auth.AuthURL(uuid.NewString())
	c.JSON(http.StatusOK, response.AuthURLResponse{URL: url})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var payload request.SigninRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOficinaPayload.HTTPStatus, errInvalidOficinaPayload.ToHTTPError())
		return
	}

	if err := h.auth.Exchange(c.Request.Context(), payload.Code); err != nil {
		log.Printf("[auth][handler] signin failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("SIGNIN_FAILED", "Falha ao concluir o login Google", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.Status(c)
}

func (h *AuthHandler) Signout(c *gin.Context) {
	if err := h.auth.SignOut(); err != nil {
		appErr := pkg.NewDomainError("SIGNOUT_FAILED", "Falha ao encerrar a sessão", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Status(c *gin.Context) {
	if !h.auth.SignedIn() {
		c.JSON(http.StatusOK, response.AuthStatusResponse{SignedIn: false})
		return
	}

	out := response.AuthStatusResponse{SignedIn: true}
	if profile, err := h.auth.Profile(c.Request.Context()); err == nil {
		out.Profile = response.FromProfile(profile)
	} else {
		log.Printf("[auth][handler] profile fetch failed err=%v", err)
	}
	c.JSON(http.StatusOK, out)
}
