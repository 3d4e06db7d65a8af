package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"

	"github.com/forest-management-gis/internal/pkg/metrics"
)

// Metrics - счётчики и гистограммы запросов в Prometheus.
// В метку route идёт шаблон маршрута, а не фактический путь.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "/" {
			route = r.Path
		} else if c.Path() == "/" {
			route = "/"
		}

		// c.Method() ссылается на буфер fasthttp, который переиспользуется следующим запросом,
		// а prometheus хранит значения меток, поэтому копируем
		metrics.RecordAPIRequest(fiberutils.CopyString(c.Method()), fiberutils.CopyString(route), strconv.Itoa(status), time.Since(start))
		return err
	}
}
