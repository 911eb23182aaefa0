package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/incident-ops/rcad/pkg/models"
)

// pageParams reads limit and offset query parameters. The returned limit is
// the requested value; the service layer clamps it to the page-size cap.
func pageParams(c *gin.Context) (limit, offset int, err error) {
	limit = models.DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, fmt.Errorf("invalid limit %q", raw)
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset %q", raw)
		}
	}
	return limit, offset, nil
}

// timeParam reads an optional RFC 3339 query parameter.
func timeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q, expected RFC 3339", name, raw)
	}
	return &t, nil
}

// enumParam reads an optional query parameter restricted to a value set.
func enumParam(c *gin.Context, name string, allowed ...string) (string, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", nil
	}
	for _, v := range allowed {
		if raw == v {
			return raw, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q", name, raw)
}
