package integrationtests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthAndMetrics(t *testing.T) {
	m := SetupTestMarket(t)

	resp, w := m.Do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", data(resp)["status"])

	w = m.ExecuteRequest(http.MethodGet, "/metrics", "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "dalal_market_http_requests_total")
}

func TestAccountFlow(t *testing.T) {
	m := SetupTestMarket(t)

	register := map[string]any{
		"username":  "newseller",
		"email":     "newseller@example.com",
		"password":  "long-enough",
		"is_seller": true,
	}
	resp, w := m.Do(http.MethodPost, "/auth/register", "", register)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(t, "newseller", data(resp)["username"])
	require.NotContains(t, w.Body.String(), "password")

	_, w = m.Do(http.MethodPost, "/auth/register", "", register)
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = m.Do(http.MethodPost, "/auth/login", "", map[string]any{"login": "newseller@example.com", "password": "wrong-password"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid username or password", resp["message"])

	token := m.Login("NewSeller", "long-enough")

	resp, w = m.Do(http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := data(resp)["stats"].(map[string]any)
	require.Equal(t, 0.0, stats["total_listings"])

	resp, w = m.Do(http.MethodPatch, "/users/me", token, map[string]any{"phone_number": "+966511111111"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "+966511111111", data(resp)["phone_number"])

	_, w = m.Do(http.MethodGet, "/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListingModerationFlow(t *testing.T) {
	m := SetupTestMarket(t)
	adminToken := m.Login("admin", adminPassword)
	sellerToken := m.Login("seller1", userPassword)
	buyerToken := m.Login("buyer1", userPassword)

	resp, w := m.Do(http.MethodGet, "/categories/cars", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Vehicles > Cars", data(resp)["full_path"])
	carsID := data(resp)["category_id"].(string)

	resp, w = m.Do(http.MethodPost, "/listings", sellerToken, map[string]any{
		"title":       "Hyundai Elantra 2019",
		"description": "Clean title",
		"price":       "42000",
		"category_id": carsID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	listing := data(resp)
	require.Equal(t, "pending_approval", listing["status"])
	listingID := listing["listing_id"].(string)

	_, w = m.Do(http.MethodGet, "/listings/"+listingID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	_, w = m.Do(http.MethodGet, "/listings/"+listingID, sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = m.Do(http.MethodPost, "/orders", buyerToken, map[string]any{"listing_id": listingID})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "listing is not available", resp["message"])

	_, w = m.Do(http.MethodGet, "/admin/listings/pending", buyerToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w = m.Do(http.MethodGet, "/admin/listings/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 1)

	resp, w = m.Do(http.MethodPost, "/admin/listings/"+listingID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "active", data(resp)["status"])

	resp, w = m.Do(http.MethodGet, "/listings?q=elantra", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := data(resp)["listings"].([]any)
	require.Len(t, found, 1)
	require.Equal(t, listingID, found[0].(map[string]any)["listing_id"])

	resp, w = m.Do(http.MethodPut, "/listings/"+listingID+"/details", sellerToken, map[string]any{
		"car": map[string]any{
			"make": "Hyundai", "model": "Elantra", "year": 2019, "mileage": 90000,
			"transmission": "automatic", "fuel_type": "gasoline",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, w = m.Do(http.MethodPut, "/listings/"+listingID+"/details", sellerToken, map[string]any{
		"real_estate": map[string]any{"property_type": "villa", "area_sqm": "300"},
	})
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = m.Do(http.MethodGet, "/listings/"+listingID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := data(resp)
	require.Equal(t, "Hyundai", view["details"].(map[string]any)["car"].(map[string]any)["make"])
	require.Equal(t, "Vehicles > Cars", view["category_path"])

	resp, w = m.Do(http.MethodGet, "/admin/listings/"+listingID+"/history", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := dataList(resp)
	require.Len(t, history, 1)
	require.Equal(t, "active", history[0].(map[string]any)["to"])

	resp, w = m.Do(http.MethodPost, "/admin/listings/bulk", adminToken, map[string]any{"action": "hide", "listing_ids": []string{listingID}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 1.0, data(resp)["updated"])

	_, w = m.Do(http.MethodGet, "/listings/"+listingID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderFlow(t *testing.T) {
	m := SetupTestMarket(t)
	sellerToken := m.Login("seller1", userPassword)
	buyerToken := m.Login("buyer1", userPassword)
	listingID := m.SellerListing("Toyota Camry 2021 GLE").ListingID

	resp, w := m.Do(http.MethodPost, "/orders", sellerToken, map[string]any{"listing_id": listingID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "cannot perform this action on yourself", resp["message"])

	resp, w = m.Do(http.MethodPost, "/orders", buyerToken, map[string]any{"listing_id": listingID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := data(resp)
	require.Equal(t, "pending", order["status"])
	require.Equal(t, "178000", order["total_amount"])
	orderID := order["order_id"].(string)

	resp, w = m.Do(http.MethodGet, "/orders", sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, data(resp)["selling"], 1)

	_, w = m.Do(http.MethodPatch, "/orders/"+orderID+"/status", buyerToken, map[string]any{"status": "confirmed"})
	require.Equal(t, http.StatusForbidden, w.Code)

	_, w = m.Do(http.MethodPatch, "/orders/"+orderID+"/status", sellerToken, map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	for _, status := range []string{"confirmed", "completed"} {
		resp, w = m.Do(http.MethodPatch, "/orders/"+orderID+"/status", sellerToken, map[string]any{"status": status})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, status, data(resp)["status"])
	}

	// completing the order sold the listing
	_, w = m.Do(http.MethodGet, "/listings/"+listingID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = m.Do(http.MethodPost, "/orders/"+orderID+"/cancel", buyerToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = m.Do(http.MethodGet, "/orders/history", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 1)
}

func TestReviewsAndMessaging(t *testing.T) {
	m := SetupTestMarket(t)
	adminToken := m.Login("admin", adminPassword)
	sellerToken := m.Login("seller1", userPassword)
	buyerToken := m.Login("buyer1", userPassword)
	listingID := m.SellerListing("LiftMaster 8500W chain drive opener").ListingID
	sellerID := m.User("seller1").UserID

	reviewURL := "/listings/" + listingID + "/reviews"
	resp, w := m.Do(http.MethodPost, reviewURL, buyerToken, map[string]any{"rating": 5, "comment": "Works great"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reviewID := data(resp)["review_id"].(string)

	resp, w = m.Do(http.MethodPost, reviewURL, buyerToken, map[string]any{"rating": 4})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "listing already reviewed", resp["message"])

	_, w = m.Do(http.MethodPost, reviewURL, sellerToken, map[string]any{"rating": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = m.Do(http.MethodPost, reviewURL, buyerToken, map[string]any{"rating": 6})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = m.Do(http.MethodGet, reviewURL, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 5.0, data(resp)["average_rating"])
	require.Equal(t, 1.0, data(resp)["total_reviews"])

	_, w = m.Do(http.MethodPost, "/reviews/sellers/"+sellerID, buyerToken, map[string]any{"rating": 4, "comment": "Quick replies"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp, w = m.Do(http.MethodGet, "/reviews/sellers/"+sellerID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, data(resp)["total_reviews"])

	_, w = m.Do(http.MethodPatch, "/reviews/"+reviewID, sellerToken, map[string]any{"rating": 1})
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w = m.Do(http.MethodPatch, "/reviews/"+reviewID, buyerToken, map[string]any{"rating": 3, "comment": "Louder than expected"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 3.0, data(resp)["rating"])

	resp, w = m.Do(http.MethodGet, "/reviews/mine", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 2)

	_, w = m.Do(http.MethodDelete, "/reviews/"+reviewID, buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// messaging
	resp, w = m.Do(http.MethodPost, "/conversations", buyerToken, map[string]any{"listing_id": listingID, "message": "Is it still available?"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	conversationID := data(resp)["conversation_id"].(string)

	resp, w = m.Do(http.MethodPost, "/conversations", buyerToken, map[string]any{"listing_id": listingID})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, conversationID, data(resp)["conversation_id"])

	resp, w = m.Do(http.MethodGet, "/conversations", sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	inbox := dataList(resp)
	require.Len(t, inbox, 1)
	require.Equal(t, 1.0, inbox[0].(map[string]any)["unread_count"])

	resp, w = m.Do(http.MethodGet, "/conversations/"+conversationID, sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, data(resp)["messages"], 1)

	_, w = m.Do(http.MethodGet, "/conversations/"+conversationID, adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = m.Do(http.MethodPost, "/conversations/"+conversationID+"/messages", sellerToken, map[string]any{"content": "Yes, it is"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp, w = m.Do(http.MethodPost, "/conversations/"+conversationID+"/read", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, data(resp)["updated"])

	_, w = m.Do(http.MethodPost, "/admin/conversations/"+conversationID+"/read-all", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLocationsAndMap(t *testing.T) {
	m := SetupTestMarket(t)
	buyerToken := m.Login("buyer1", userPassword)
	adminToken := m.Login("admin", adminPassword)

	resp, w := m.Do(http.MethodGet, "/locations?level=city", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 3)

	resp, w = m.Do(http.MethodGet, "/locations/search?q=jeddah", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := dataList(resp)
	require.Len(t, found, 1)
	require.Equal(t, "Jeddah", found[0].(map[string]any)["name_en"])
	require.True(t, strings.HasSuffix(found[0].(map[string]any)["full_path"].(string), "جدة"))

	_, w = m.Do(http.MethodPost, "/admin/locations", adminToken, map[string]any{
		"name": "Khobar", "latitude": 26.2172, "longitude": 50.1971, "level": "planet",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = m.Do(http.MethodGet, "/locations/map?category=villas", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 1)

	villaID := m.SellerListing("Villa with garden in Al Rawdah").ListingID
	resp, w = m.Do(http.MethodGet, "/listings/"+villaID+"/nearby", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	nearby := dataList(resp)
	require.Len(t, nearby, 1)
	require.Equal(t, "Corniche hotel suite, two nights", nearby[0].(map[string]any)["title"])

	resp, w = m.Do(http.MethodPost, "/locations/saved", buyerToken, map[string]any{
		"name": "Home", "latitude": 21.5, "longitude": 39.2, "is_default": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	savedID := data(resp)["saved_location_id"].(string)

	resp, w = m.Do(http.MethodGet, "/locations/saved", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 1)

	_, w = m.Do(http.MethodDelete, "/locations/saved/"+savedID, buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestInquiriesAndDashboard(t *testing.T) {
	m := SetupTestMarket(t)
	adminToken := m.Login("admin", adminPassword)
	buyerToken := m.Login("buyer1", userPassword)

	resp, w := m.DoWithHeaders(http.MethodPost, "/inquiries", "", map[string]any{
		"name":         "Khalid",
		"phone":        "+966533333333",
		"inquiry_type": "free_estimate",
		"message":      "Need a garage door installed",
	}, map[string]string{"User-Agent": "integration-test"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	inquiry := data(resp)
	require.Equal(t, "new", inquiry["status"])
	require.Equal(t, "integration-test", inquiry["user_agent"])
	inquiryID := inquiry["inquiry_id"].(string)

	_, w = m.Do(http.MethodPost, "/inquiries", "", map[string]any{"name": "X", "phone": "1", "message": "hi", "inquiry_type": "spam"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = m.Do(http.MethodGet, "/admin/inquiries", buyerToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w = m.Do(http.MethodGet, "/admin/inquiries?status=new", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 1)

	resp, w = m.Do(http.MethodPatch, "/admin/inquiries/"+inquiryID, adminToken, map[string]any{"status": "contacted", "admin_notes": "called back"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "contacted", data(resp)["status"])

	resp, w = m.Do(http.MethodGet, "/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	dashboard := data(resp)
	require.Equal(t, 6.0, dashboard["total_listings"])
	require.Equal(t, 3.0, dashboard["total_users"])
	require.Equal(t, 0.0, dashboard["pending_listings"])

	_, w = m.Do(http.MethodGet, "/admin/reports", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = m.Do(http.MethodGet, "/admin/users?type=sellers", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(resp), 1)

	buyerID := m.User("buyer1").UserID
	resp, w = m.Do(http.MethodPost, "/admin/users/"+buyerID+"/suspend", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, data(resp)["is_active"])

	resp, w = m.Do(http.MethodGet, "/users/me", buyerToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "user account is suspended", resp["message"])
}
