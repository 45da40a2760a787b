package common

import (
	"fmt"
	"log/slog"
	"os"

	gohedera "github.com/blackoak-io/gohedera"
)

func CreateClient(f *GlobalFlags) *gohedera.Client {
	options := []gohedera.ClientOptionFunc{
		gohedera.WithLogger(createLogger(f)),
	}
	if f.Address != "" {
		options = append(options, gohedera.WithAddress(f.Address))
	} else {
		network := gohedera.NetworkByName(f.Network)
		if network == gohedera.NetworkInvalid {
			fmt.Printf("Invalid network specified: %s\n", f.Network)
			os.Exit(1)
		}
		options = append(options, gohedera.WithNetwork(network))
	}
	if f.NodeAccount != nil {
		options = append(options, gohedera.WithNode(*f.NodeAccount))
	}
	if f.OperatorAccount != nil {
		options = append(
			options,
			gohedera.WithOperator(*f.OperatorAccount, f.OperatorKey),
		)
	}
	client, err := gohedera.NewClient(options...)
	if err != nil {
		fmt.Printf("Connection failed: %s\n", err)
		os.Exit(1)
	}
	return client
}

func createLogger(f *GlobalFlags) *slog.Logger {
	var level slog.Level
	switch f.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		fmt.Printf("Invalid log level specified: %s\n", f.LogLevel)
		os.Exit(1)
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}
