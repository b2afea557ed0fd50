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

type DonationHandler struct {
	cmds commands.DonationCommands
	q    queries.DonationQueries
}

func NewDonationHandler(cmds commands.DonationCommands, q queries.DonationQueries) *DonationHandler {
	return &DonationHandler{cmds: cmds, q: q}
}

// @Summary Create donation
// @Description Offer surplus food. The donation starts available.
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDonationRequest true "Create donation request"
// @Success 201 {object} resdto.DonationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /donations [post]
func (h *DonationHandler) Create(c *gin.Context) {
	donorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateDonation(c.Request.Context(), donorID, in)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.DonationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load donation", nil)
		return
	}

	c.Header("Location", "/api/donations/"+result.DonationID.String())
	c.JSON(http.StatusCreated, resdto.FromDonationView(view))
}

// @Summary List my donations
// @Description List the donor's own donations, newest first
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param tab query string false "ongoing, completed or expired"
// @Param search query string false "Case-insensitive item name filter"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.DonationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /donations/my/all [get]
func (h *DonationHandler) ListMine(c *gin.Context) {
	donorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var q reqdto.ListDonationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	page, err := h.q.ListMine(c.Request.Context(), donorID, q.ToFilter())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDonationPage(page))
}

// @Summary Update donation
// @Description Patch a donation nobody has requested yet
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donation ID"
// @Param request body reqdto.UpdateDonationRequest true "Fields to change"
// @Success 200 {object} resdto.DonationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /donations/{id} [patch]
func (h *DonationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateDonation(c.Request.Context(), id, actorID, in); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load donation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDonationView(view))
}

// @Summary Delete donation
// @Description Delete a donation nobody has requested yet
// @Tags donations
// @Security BearerAuth
// @Param id path string true "Donation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /donations/{id} [delete]
func (h *DonationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteDonation(c.Request.Context(), id, actorID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List requests on a donation
// @Description Organizations that asked for the donation, oldest first
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donation ID"
// @Success 200 {array} resdto.DonationRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /donations/{id}/requests [get]
func (h *DonationHandler) ListRequests(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	donorID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.q.ListRequestsForDonation(c.Request.Context(), id, donorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": resdto.FromDonationRequestViews(views)})
}
