package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
	"github.com/studio-click-house/schl-web-sub004/internal/tracking"
)

// Health check
func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// serviceUnavailable logs the underlying cause and answers with a generic
// body; the cause never reaches the client.
func serviceUnavailable(c echo.Context, err error) error {
	c.Logger().Error("read failure: ", err)
	return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
		"success": false,
		"message": "service unavailable",
	})
}

func invalidInput(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": "invalid input",
	})
}

// Job list handlers
func listJobs(c echo.Context) error {
	orders, err := orderRepo.ListActive(c.Request().Context())
	if err != nil {
		return serviceUnavailable(c, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"jobs":    orders,
	})
}

// File search handlers
func searchFiles(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return invalidInput(c)
	}
	clientCode := strings.TrimSpace(c.QueryParam("clientCode"))

	batches, err := workLogRepo.QueryWorkLogs(c.Request().Context(), tracking.Filter{
		ClientCode: clientCode,
	})
	if err != nil {
		return serviceUnavailable(c, err)
	}

	results, err := tracking.SearchFiles(batches, query, clientCode)
	if err != nil {
		if errors.Is(err, tracking.ErrInvalidInput) {
			return invalidInput(c)
		}
		return serviceUnavailable(c, err)
	}
	if results == nil {
		results = []tracking.SearchResult{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"results": results,
	})
}

// Dashboard handlers
func todayDashboard(c echo.Context) error {
	username := strings.TrimSpace(c.QueryParam("username"))
	date := c.QueryParam("date")

	view, err := composer.Today(c.Request().Context(), username, date)
	if err != nil {
		return serviceUnavailable(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"usedDate": view.UsedDate,
			"totals":   view.Totals,
			"byClient": view.ByClient,
		},
		"workLogs": view.WorkLogs,
		"sessions": view.Sessions,
	})
}

func liveTracking(c echo.Context) error {
	q := tracking.LiveQuery{
		Username: strings.TrimSpace(c.QueryParam("username")),
		Date:     c.QueryParam("date"),
		DateFrom: c.QueryParam("dateFrom"),
		DateTo:   c.QueryParam("dateTo"),
	}
	// A non-numeric or non-positive hours value means no window.
	if hs := c.QueryParam("hours"); hs != "" {
		if n, err := strconv.Atoi(hs); err == nil && n > 0 {
			q.Hours = n
		}
	}

	view, err := composer.Live(c.Request().Context(), q)
	if err != nil {
		return serviceUnavailable(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"data":     view.WorkLogs,
		"sessions": view.Sessions,
	})
}
