package api

import (
	"net/http"

	reqdto "foodshare-api/internal/handler/dto/request"
	resdto "foodshare-api/internal/handler/dto/response"
	"foodshare-api/internal/handler/httperr"
	"foodshare-api/internal/usecase/commands"
	"foodshare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	cmds commands.MatchCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.MatchCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Cancel a request
// @Description Withdraw the organization's request. Cancelling a reserved request reopens the donation.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelRequestRequest true "Request to cancel"
// @Success 200 {object} resdto.CancelRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/cancel [post]
func (h *RequestHandler) Cancel(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CancelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CancelRequest(c.Request.Context(), req.RequestID, requesterID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelRequestResult(result))
}

// @Summary My activity
// @Description The organization's requests with donation details; donor contact appears once approved
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param tab query string false "ongoing or completed"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.ActivityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /requests/my-activity [get]
func (h *RequestHandler) MyActivity(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	var q reqdto.ActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	page, err := h.q.MyActivity(c.Request.Context(), requesterID, q.ToFilter())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivityPage(page))
}
