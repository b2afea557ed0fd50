//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"foodshare-api/internal/domain/donation"
	"foodshare-api/internal/handler/api"
	resdto "foodshare-api/internal/handler/dto/response"
	"foodshare-api/internal/usecase/commands"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/tests/common/builder"
	"foodshare-api/tests/common/httptest"
	"foodshare-api/tests/common/testutil"
	commandsmock "foodshare-api/tests/mock/commands"
	queriesmock "foodshare-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DonationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDonationCommands
	mockQueries  *queriesmock.MockDonationQueries
	handler      *api.DonationHandler
	donorID      uuid.UUID
}

func (s *DonationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDonationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDonationQueries(s.mockCtrl)
	s.handler = api.NewDonationHandler(s.mockCommands, s.mockQueries)
	s.donorID = uuid.New()

	// Mock middleware: a bearer token means an authenticated donor
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.donorID)
		}
		c.Next()
	})
	s.router.POST("/donations", s.handler.Create)
	s.router.GET("/donations/my/all", s.handler.ListMine)
	s.router.PATCH("/donations/:id", s.handler.Update)
	s.router.DELETE("/donations/:id", s.handler.Delete)
	s.router.GET("/donations/:id/requests", s.handler.ListRequests)
}

func (s *DonationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDonationHandlerSuite(t *testing.T) {
	suite.Run(t, new(DonationHandlerTestSuite))
}

func (s *DonationHandlerTestSuite) view(id uuid.UUID) *queries.DonationView {
	return &queries.DonationView{
		ID:         id,
		DonorID:    s.donorID,
		Items:      []queries.ItemView{{Name: "Rice", Quantity: 10, Unit: "kg"}},
		MealType:   "lunch",
		ExpiryTime: builder.FixedNow.Add(6 * time.Hour),
		Status:     "available",
		CreatedAt:  builder.FixedNow,
		UpdatedAt:  builder.FixedNow,
	}
}

type testCaseDonation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *DonationHandlerTestSuite) TestCreate() {
	url := "/donations"
	reqBody := builder.NewDonationBuilder().BuildCreateDTO()
	donationID := uuid.New()

	s.Run("success: returns 201 Created with Location header", func() {
		s.mockCommands.EXPECT().
			CreateDonation(gomock.Any(), s.donorID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.CreateDonationInput) (*commands.CreateDonationResult, error) {
				s.Len(in.Items, len(reqBody.Items))
				s.Equal(reqBody.MealType, in.MealType)
				return &commands.CreateDonationResult{DonationID: donationID}, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), donationID).Return(s.view(donationID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.DonationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/donations/" + donationID.String()})
		s.Equal(donationID, response.ID)
		s.Equal("available", response.Status)
		s.NotNil(response.RequestedBy)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseDonation{
			{name: "description boundary OK (1000 chars)", mutate: testutil.Field("description", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
			{name: "description boundary invalid (1001 chars)", mutate: testutil.Field("description", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
			{name: "unknown meal type", mutate: testutil.Field("mealType", "brunch"), expectCode: http.StatusBadRequest},
			{name: "zero quantity", mutate: testutil.Field("items", []map[string]any{{"name": "Rice", "quantity": 0}}), expectCode: http.StatusBadRequest},
			{name: "item without name", mutate: testutil.Field("items", []map[string]any{{"quantity": 3}}), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseDonation{
			{name: "missing field: items (required)", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: mealType (required)", mutate: testutil.Field("mealType", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: expiryTime (required)", mutate: testutil.Field("expiryTime", nil), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseDonation{
			{name: "empty items", mutate: testutil.Field("items", []any{}), expectCode: http.StatusBadRequest},
			{name: "empty mealType", mutate: testutil.Field("mealType", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseDonation{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateDonation(gomock.Any(), s.donorID, gomock.Any()).
							Return(&commands.CreateDonationResult{DonationID: donationID}, nil)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), donationID).Return(s.view(donationID), nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: domain validation surfaces as 400", func() {
		s.mockCommands.EXPECT().CreateDonation(gomock.Any(), s.donorID, gomock.Any()).
			Return(nil, donation.ErrExpiryNotInFuture).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation error")
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *DonationHandlerTestSuite) TestListMine() {
	s.Run("success: passes tab, search and paging through", func() {
		page := queries.NewPage([]*queries.DonationView{s.view(uuid.New())}, 21, queries.Pagination{Page: 2, Limit: 20})
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), s.donorID, queries.ListDonationsFilter{
				Tab:        "ongoing",
				Search:     "rice",
				Pagination: queries.Pagination{Page: 2, Limit: 20},
			}).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations/my/all?tab=ongoing&search=rice&page=2&limit=20", nil, "bearer-token")

		var response resdto.DonationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Donations, 1)
		s.Equal(21, response.Total)
		s.Equal(2, response.TotalPages)
	})

	s.Run("error: 400 on unknown tab", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations/my/all?tab=archived", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *DonationHandlerTestSuite) TestUpdate() {
	donationID := uuid.New()
	url := "/donations/" + donationID.String()

	s.Run("success: returns the updated donation", func() {
		s.mockCommands.EXPECT().
			UpdateDonation(gomock.Any(), donationID, s.donorID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, in commands.UpdateDonationInput) error {
				s.Require().NotNil(in.MealType)
				s.Equal("dinner", *in.MealType)
				s.Nil(in.Items)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), donationID).Return(s.view(donationID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"mealType": "dinner"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/donations/not-a-uuid", map[string]any{"mealType": "dinner"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", commandsError: donation.ErrDonationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "not found"},
			{name: "not owner", commandsError: donation.ErrNotDonationOwner, expectedStatus: http.StatusForbidden, expectedMsg: "not authorized"},
			{name: "locked", commandsError: donation.ErrDonationLocked, expectedStatus: http.StatusConflict, expectedMsg: "invalid state"},
			{name: "empty patch", commandsError: donation.ErrEmptyPatch, expectedStatus: http.StatusBadRequest, expectedMsg: "validation error"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateDonation(gomock.Any(), donationID, s.donorID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"description": "x"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *DonationHandlerTestSuite) TestDelete() {
	donationID := uuid.New()
	url := "/donations/" + donationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteDonation(gomock.Any(), donationID, s.donorID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 once requested", func() {
		s.mockCommands.EXPECT().DeleteDonation(gomock.Any(), donationID, s.donorID).
			Return(donation.ErrDonationLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "invalid state")
	})
}

func (s *DonationHandlerTestSuite) TestListRequests() {
	donationID := uuid.New()
	url := "/donations/" + donationID.String() + "/requests"

	s.Run("success: wraps requests in an object", func() {
		views := []*queries.DonationRequestView{{
			RequestID:        uuid.New(),
			OrganizationID:   uuid.New(),
			OrganizationName: "City Shelter",
			Status:           "requested",
			RequiredBefore:   builder.FixedNow.Add(2 * time.Hour),
			CreatedAt:        builder.FixedNow,
		}}
		s.mockQueries.EXPECT().ListRequestsForDonation(gomock.Any(), donationID, s.donorID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			Requests []resdto.DonationRequestResponse `json:"requests"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Requests, 1)
		s.Equal("City Shelter", response.Requests[0].OrganizationName)
	})

	s.Run("error: 403 for another donor's donation", func() {
		s.mockQueries.EXPECT().ListRequestsForDonation(gomock.Any(), donationID, s.donorID).
			Return(nil, donation.ErrNotDonationOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not authorized")
	})
}
