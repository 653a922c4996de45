package httpapi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/solarchallenge/climate-explorer/internal/climate"
	"github.com/solarchallenge/climate-explorer/internal/export"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *climate.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/metrics", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"metrics": climate.Metrics()})
	})

	v1.Get("/countries", func(c *fiber.Ctx) error {
		countries, err := service.Countries(c.Context())
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(fiber.Map{"countries": countries})
	})

	v1.Get("/records", func(c *fiber.Ctx) error {
		var req recordsQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records, err := service.Records(c.Context(), req.toQuery())
		if err != nil {
			return mapServiceError(err)
		}

		total := len(records)
		if req.Limit > 0 && req.Limit < len(records) {
			records = records[:req.Limit]
		}

		// Zero matches is a valid, empty view, not an error.
		return c.JSON(fiber.Map{
			"total":   total,
			"records": records,
		})
	})

	v1.Get("/summary", func(c *fiber.Ctx) error {
		var req summaryQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rows, overview, err := service.Summary(c.Context(), req.Metric, req.toQuery())
		if err != nil {
			return mapServiceError(err)
		}

		desc, _ := climate.LookupMetric(req.Metric)
		return c.JSON(fiber.Map{
			"metric":   desc,
			"overview": overview,
			"summary":  rows,
		})
	})

	v1.Get("/top", func(c *fiber.Ctx) error {
		var req topQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records, err := service.Extremes(c.Context(), req.Metric, req.N, req.Order == "asc", req.toQuery())
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(fiber.Map{
			"metric":  req.Metric,
			"n":       req.N,
			"order":   req.Order,
			"records": records,
		})
	})

	v1.Get("/export", func(c *fiber.Ctx) error {
		var req recordsQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records, err := service.Records(c.Context(), req.toQuery())
		if err != nil {
			return mapServiceError(err)
		}

		filename := fmt.Sprintf("climate_data_%s.csv", time.Now().Format("20060102_150405"))
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

		if err := export.CSV(c.Response().BodyWriter(), records, climate.Metrics()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to export dataset")
		}
		return nil
	})
}

// mapServiceError translates pipeline errors to HTTP status codes.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, climate.ErrUnknownMetric):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, climate.ErrEmptyDataset):
		return fiber.NewError(fiber.StatusServiceUnavailable, "no country data could be loaded")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to query climate data")
	}
}

// recordsQuery holds the shared filter parameters: country subset, date
// range, optional row limit. All are optional; absent means "everything".
type recordsQuery struct {
	Countries []string
	From      time.Time
	To        time.Time
	Limit     int `validate:"gte=0"`
}

func (q *recordsQuery) bind(c *fiber.Ctx) error {
	if raw := c.Query("countries"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				q.Countries = append(q.Countries, name)
			}
		}
	}

	var err error
	if q.From, err = parseDate(c.Query("from")); err != nil {
		return err
	}
	if q.To, err = parseDate(c.Query("to")); err != nil {
		return err
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return errors.New("to must not be before from")
	}

	q.Limit = c.QueryInt("limit", 0)
	return validate.Struct(q)
}

func (q *recordsQuery) toQuery() climate.Query {
	return climate.Query{Countries: q.Countries, From: q.From, To: q.To}
}

// summaryQuery adds the metric selection to the shared filter parameters.
type summaryQuery struct {
	recordsQuery
	Metric string `validate:"required"`
}

func (q *summaryQuery) bind(c *fiber.Ctx) error {
	if err := q.recordsQuery.bind(c); err != nil {
		return err
	}
	q.Metric = c.Query("metric")
	return validate.Struct(q)
}

// topQuery holds parameters for the extremes endpoint. The UI constrains
// n to 5-50, enforced here; the core tolerates any n.
type topQuery struct {
	recordsQuery
	Metric string `validate:"required"`
	N      int    `validate:"min=5,max=50"`
	Order  string `validate:"oneof=asc desc"`
}

func (q *topQuery) bind(c *fiber.Ctx) error {
	if err := q.recordsQuery.bind(c); err != nil {
		return err
	}
	q.Metric = c.Query("metric")
	q.N = c.QueryInt("n", 10)
	q.Order = c.Query("order", "desc")
	return validate.Struct(q)
}

// parseDate parses an ISO calendar date, mapping it to UTC midnight like
// the dataset's own dates. Empty input is a zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q; use YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}
