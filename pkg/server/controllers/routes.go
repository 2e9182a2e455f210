/* Copyright 2025 Airavoto Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controllers

import (
	"net/http"

	"github.com/airavoto/gamingpos/pkg/server/app"
	mw "github.com/airavoto/gamingpos/pkg/server/middleware"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Route represents a single route
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	RateLimit bool
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	APIRoutes   []Route
}

// NewAPIRoutes returns the api routes
func NewAPIRoutes(a *app.App, c *Controllers) []Route {
	return []Route{
		{"GET", "/health", c.Health.Index, true},
		{"GET", "/server-time", c.Health.ServerTime, true},

		{"POST", "/auth/login", c.Users.Login, true},
		{"POST", "/auth/logout", c.Users.Logout, true},
		{"GET", "/auth/me", mw.Auth(a, c.Users.Me), true},
		{"POST", "/auth/register", c.Users.Register, true},
		{"GET", "/users", mw.AdminOnly(a, c.Users.Index), true},

		{"GET", "/bookings", mw.Auth(a, c.Bookings.Index), true},
		{"GET", "/bookings/active", mw.Auth(a, c.Bookings.Active), true},
		{"GET", "/bookings/available-seats", mw.Auth(a, c.Bookings.AvailableSeats), true},
		{"POST", "/bookings", mw.Auth(a, c.Bookings.Create), true},
		{"POST", "/bookings/archive", mw.Auth(a, c.Bookings.Archive), true},
		{"POST", "/bookings/payment-method", mw.Auth(a, c.Bookings.PaymentMethod), true},
		{"POST", "/bookings/payment-status", mw.Auth(a, c.Bookings.PaymentStatus), true},
		{"POST", "/bookings/split-payment", mw.Auth(a, c.Bookings.SplitPayment), true},
		{"PATCH", "/bookings/{bookingID}", mw.Auth(a, c.Bookings.Update), true},
		{"PATCH", "/bookings/{bookingID}/change-seat", mw.Auth(a, c.Bookings.ChangeSeat), true},
		{"DELETE", "/bookings/{bookingID}", mw.Auth(a, c.Bookings.Delete), true},
		{"GET", "/booking-history", mw.Auth(a, c.Bookings.History), true},

		{"GET", "/reports/stats", mw.Auth(a, c.Reports.Stats), true},
		{"GET", "/reports/history", mw.Auth(a, c.Reports.History), true},
		{"GET", "/reports/retention-metrics", mw.Auth(a, c.Reports.RetentionMetrics), true},
		{"GET", "/analytics/usage", mw.Auth(a, c.Reports.Usage), true},
		{"GET", "/ai/maintenance/predictions", mw.Auth(a, c.Reports.MaintenancePredictions), true},
		{"GET", "/ai/traffic/predictions", mw.Auth(a, c.Reports.TrafficPredictions), true},

		{"GET", "/food-items", mw.Auth(a, c.Inventory.FoodItems), true},
		{"POST", "/food-items", mw.Auth(a, c.Inventory.CreateFoodItem), true},
		{"PATCH", "/food-items/{itemID}", mw.Auth(a, c.Inventory.UpdateFoodItem), true},
		{"DELETE", "/food-items/{itemID}", mw.Auth(a, c.Inventory.DeleteFoodItem), true},
		{"POST", "/food-items/{itemID}/adjust-stock", mw.Auth(a, c.Inventory.AdjustStock), true},

		{"GET", "/expenses", mw.Auth(a, c.Inventory.Expenses), true},
		{"POST", "/expenses", mw.Auth(a, c.Inventory.CreateExpense), true},
		{"PATCH", "/expenses/{expenseID}", mw.Auth(a, c.Inventory.UpdateExpense), true},
		{"DELETE", "/expenses/{expenseID}", mw.Auth(a, c.Inventory.DeleteExpense), true},

		{"GET", "/device-config", mw.Auth(a, c.Configs.DeviceConfigs), true},
		{"POST", "/device-config", mw.AdminOnly(a, c.Configs.SaveDeviceConfig), true},
		{"DELETE", "/device-config/{category}", mw.AdminOnly(a, c.Configs.DeleteDeviceConfig), true},
		{"GET", "/pricing-config", mw.Auth(a, c.Configs.PricingConfigs), true},
		{"POST", "/pricing-config", mw.AdminOnly(a, c.Configs.SavePricingConfigs), true},
		{"DELETE", "/pricing-config/{category}", mw.AdminOnly(a, c.Configs.DeletePricingConfigs), true},
		{"GET", "/happy-hours-config", mw.Auth(a, c.Configs.HappyHoursConfigs), true},
		{"POST", "/happy-hours-config", mw.AdminOnly(a, c.Configs.SaveHappyHoursConfigs), true},
		{"DELETE", "/happy-hours-config/{category}", mw.AdminOnly(a, c.Configs.DeleteHappyHoursConfigs), true},
		{"GET", "/happy-hours-pricing", mw.Auth(a, c.Configs.HappyHoursPricing), true},
		{"POST", "/happy-hours-pricing", mw.AdminOnly(a, c.Configs.SaveHappyHoursPricing), true},
		{"DELETE", "/happy-hours-pricing/{category}", mw.AdminOnly(a, c.Configs.DeleteHappyHoursPricing), true},
		{"GET", "/happy-hours-active/{category}", c.Configs.HappyHoursActive, true},

		{"GET", "/activity-logs", mw.Auth(a, c.Misc.ActivityLogs), true},
		{"GET", "/notifications", mw.Auth(a, c.Misc.Notifications), true},
		{"PATCH", "/notifications/{notificationID}/read", mw.Auth(a, c.Misc.MarkNotificationRead), true},
		{"POST", "/notifications/mark-all-read", mw.Auth(a, c.Misc.MarkAllNotificationsRead), true},
		{"GET", "/payment-logs", mw.Auth(a, c.Misc.PaymentLogs), true},
		{"GET", "/device-maintenance", mw.Auth(a, c.Misc.DeviceMaintenance), true},
		{"GET", "/gaming-center-info", c.Misc.CenterInfo, true},
		{"POST", "/gaming-center-info", mw.AdminOnly(a, c.Misc.SaveCenterInfo), true},
		{"GET", "/retention/config", mw.AdminOnly(a, c.Misc.RetentionConfig), true},
		{"GET", "/public/status", c.Misc.PublicStatus, true},
	}
}

func registerRoutes(router *mux.Router, routes []Route) {
	for _, route := range routes {
		wrappedHandler := mw.ApplyLimit(route.Handler, route.RateLimit)

		router.
			Handle(route.Pattern, wrappedHandler).
			Methods(route.Method)
	}
}

// NewRouter creates and returns a new router
func NewRouter(app *app.App, rc RouteConfig) (http.Handler, error) {
	if err := app.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)

	apiRouter := router.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter, rc.APIRoutes)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusNotFound, "Not found")
	})

	return mw.Logging(router), nil
}
