// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	logf "github.com/Falcom4000/logF"
	"github.com/Falcom4000/logF/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	logger, err := logf.NewBuilder().
		Directory("/var/log/fasthttp").
		Capacity(2048).
		FileSizeBytes(4 << 20).
		MinLevel(logf.LevelInfo).
		Build()
	if err != nil {
		panic(err)
	}
	logger.Start()
	defer logger.Stop()

	adapter := compat.NewFastHTTPLogger(
		logger,
		compat.WithDefaultLevel(logf.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  adapter,

		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

// customLevelDetector layers fasthttp-specific phrasing on top of the
// adapter's default content-based detection.
func customLevelDetector(msg string) int64 {
	switch {
	case strings.Contains(msg, "connection cannot be served"):
		return logf.LevelWarning
	case strings.Contains(msg, "error when serving connection"):
		return logf.LevelError
	default:
		return compat.DetectLogLevel(msg)
	}
}
