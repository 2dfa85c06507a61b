package middleware

import (
	"bytes"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

// LoggerConfig controls what the request logger records
type LoggerConfig struct {
	EnableColors   bool
	LogRequestBody bool
	MaxBodySize    int64
	SkipPaths      []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors:   true,
		LogRequestBody: true,
		MaxBodySize:    2048, // 2KB limit
		SkipPaths:      []string{"/health", "/swagger"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		// Skip logging for noisy paths
		for _, skipPath := range config.SkipPaths {
			if strings.HasPrefix(path, skipPath) {
				c.Next()
				return
			}
		}

		method := c.Request.Method
		ip := c.ClientIP()

		// Read and restore the request body with a size limit
		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[Request body too large to log]"
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = truncateString(string(bodyBytes), 200)
				}
			}
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		size := c.Writer.Size()

		var methodColor, statusColor, resetColor string
		if config.EnableColors {
			methodColor = getMethodColor(method)
			statusColor = getStatusColor(status)
			resetColor = colorReset
		}

		log.Printf("%s%s%s %s%s%s %s[%d]%s %s%v%s %s%db from %s%s",
			methodColor, method, resetColor,
			colorBlue, path, resetColor,
			statusColor, status, resetColor,
			colorGray, latency, resetColor,
			colorGray, size, ip, resetColor)

		if requestBody != "" && status >= 400 {
			log.Printf("%s    body:%s %s", colorGray, resetColor, requestBody)
		}
	}
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return colorGreen
	case "POST":
		return colorBlue
	case "PUT":
		return colorYellow
	case "DELETE":
		return colorRed
	case "PATCH":
		return colorPurple
	default:
		return colorWhite
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return colorGreen
	case status >= 300 && status < 400:
		return colorCyan
	case status >= 400 && status < 500:
		return colorYellow
	case status >= 500:
		return colorRed
	default:
		return colorWhite
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
