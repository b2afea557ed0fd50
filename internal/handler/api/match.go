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

type MatchHandler struct {
	cmds commands.MatchCommands
	q    queries.MatchQueries
}

func NewMatchHandler(cmds commands.MatchCommands, q queries.MatchQueries) *MatchHandler {
	return &MatchHandler{cmds: cmds, q: q}
}

// @Summary Search donations
// @Description Find open donations near the organization. Requested items rank results by score.
// @Tags match
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SearchRequest true "Search parameters"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /match/search [post]
func (h *MatchHandler) Search(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.q.Search(c.Request.Context(), requesterID, req.ToParams())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}

// @Summary Request a donation
// @Description Register the organization's interest in a donation
// @Tags match
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestDonationRequest true "Donation and pickup deadline"
// @Success 201 {object} resdto.RequestDonationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /match/request [post]
func (h *MatchHandler) Request(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.RequestDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.RequestDonation(c.Request.Context(), req.DonationID, requesterID, req.RequiredBefore)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestDonationResult(result))
}

// @Summary Approve a request
// @Description Donor reserves the donation for one requesting organization
// @Tags match
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApproveDonationRequest true "Donation and organization"
// @Success 200 {object} resdto.ApproveDonationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /match/approve [post]
func (h *MatchHandler) Approve(c *gin.Context) {
	donorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.ApproveDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ApproveDonation(c.Request.Context(), req.DonationID, req.OrganizationID, donorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApproveDonationResult(result))
}

// @Summary Complete a match
// @Description Organization confirms pickup; competing requests are rejected
// @Tags match
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CompleteMatchRequest true "Reserved request"
// @Success 200 {object} resdto.CompleteMatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /match/complete [post]
func (h *MatchHandler) Complete(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CompleteMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CompleteMatch(c.Request.Context(), req.RequestID, requesterID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompleteMatchResult(result))
}
