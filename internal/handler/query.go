package handler

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	raw := c.Query(name)

	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", raw, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryDays(c *gin.Context, defaultValue int) int {
	const maxDays = 90

	days := getQueryInt("days", defaultValue, c)
	if days < 1 {
		slog.Warn("invalid query parameter, using default", "param", "days", "value", days, "default", defaultValue)
		return defaultValue
	}

	if days > maxDays {
		slog.Warn("query parameter exceeds max, clamping", "param", "days", "value", days, "max", maxDays)
		return maxDays
	}

	return days
}
