package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"trivia-api/internal/cli"
	"trivia-api/internal/client"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "trivia service base URL")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	api := client.NewHTTPClient(*server, &http.Client{Timeout: *timeout})
	if err := cli.Run(context.Background(), os.Stdin, os.Stdout, api); err != nil {
		if errors.Is(err, client.ErrServiceUnavailable) {
			err = fmt.Errorf("trivia service unavailable at %s", *server)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
