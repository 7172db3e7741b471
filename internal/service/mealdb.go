package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ExternalError carries the local HTTP status and message an upstream
// failure translates to. The handler writes it into the envelope verbatim.
type ExternalError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *ExternalError) Error() string {
	return e.Message
}

// MealList is TheMealDB's list/lookup payload, passed through to clients
// as-is.
type MealList struct {
	Meals []map[string]any `json:"meals"`
}

// MealDBClient proxies TheMealDB. Calls share a fixed timeout budget and
// are never retried; failure modes are translated into the local status
// taxonomy here so handlers only deal with ExternalError.
type MealDBClient struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewMealDBClient(baseURL string, timeout time.Duration, logger *zap.Logger) *MealDBClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "RestaurantApp/1.0").
		SetHeader("Accept", "application/json")

	return &MealDBClient{
		http:   client,
		logger: logger,
	}
}

// FoodList returns the default browsing list (Seafood filter, matching the
// frontend's landing view).
func (c *MealDBClient) FoodList(ctx context.Context) (*MealList, error) {
	return c.get(ctx, "/filter.php", map[string]string{"c": "Seafood"})
}

// FoodDetails looks one meal up by its numeric id. An empty result is
// returned as-is; the handler decides it is a 404.
func (c *MealDBClient) FoodDetails(ctx context.Context, id string) (*MealList, error) {
	return c.get(ctx, "/lookup.php", map[string]string{"i": id})
}

// FoodsByCategory filters meals by category name.
func (c *MealDBClient) FoodsByCategory(ctx context.Context, category string) (*MealList, error) {
	return c.get(ctx, "/filter.php", map[string]string{"c": category})
}

// SearchMeals runs a free-text meal search.
func (c *MealDBClient) SearchMeals(ctx context.Context, term string) (*MealList, error) {
	return c.get(ctx, "/search.php", map[string]string{"s": term})
}

func (c *MealDBClient) get(ctx context.Context, path string, params map[string]string) (*MealList, error) {
	var out MealList
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get(path)

	if err != nil {
		c.logger.Error("external API call failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, translateTransportError(err)
	}

	if resp.IsError() {
		code := resp.StatusCode()
		c.logger.Error("external API returned error status",
			zap.String("path", path),
			zap.Int("status", code),
		)
		local := code
		if code >= 500 {
			local = 502
		}
		return nil, &ExternalError{
			StatusCode: local,
			Message:    fmt.Sprintf("External service error: %d", code),
		}
	}

	if out.Meals == nil {
		out.Meals = []map[string]any{}
	}
	return &out, nil
}

// translateTransportError maps connection-level failures: timeouts to 504,
// everything else (DNS, refused connection) to 503.
func translateTransportError(err error) *ExternalError {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return &ExternalError{
			StatusCode: 504,
			Message:    "Request timeout - external service is slow",
			Detail:     err.Error(),
		}
	}
	return &ExternalError{
		StatusCode: 503,
		Message:    "External service unavailable",
		Detail:     err.Error(),
	}
}
