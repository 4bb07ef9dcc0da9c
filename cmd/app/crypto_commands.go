package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/encrypt/cmd/app/commands"
	"github.com/allisson/encrypt/internal/app"
	"github.com/allisson/encrypt/internal/config"
	"github.com/allisson/encrypt/internal/credential"
	cryptoUseCase "github.com/allisson/encrypt/internal/crypto/usecase"
)

func cryptoFlags(base64Usage string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Value:   "",
			Usage:   "Password to derive keys from (defaults to ENCRYPT_PASSWORD)",
		},
		&cli.BoolFlag{
			Name:  "prompt",
			Value: false,
			Usage: "Prompt for the password on the terminal",
		},
		&cli.BoolFlag{
			Name:    "base64",
			Aliases: []string{"b"},
			Value:   false,
			Usage:   base64Usage,
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Value: false,
			Usage: "Write Prometheus metrics to stderr afterwards (requires METRICS_ENABLED=true)",
		},
	}
}

type cryptoRunner func(
	ctx context.Context,
	useCase cryptoUseCase.EncryptionUseCase,
	logger *slog.Logger,
	ioTuple commands.IOTuple,
	base64 bool,
) error

// runCrypto builds the container for one encrypt or decrypt invocation and
// tears it down afterwards.
func runCrypto(ctx context.Context, cmd *cli.Command, confirm bool, run cryptoRunner) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer commands.CloseContainer(container, logger)

	password, err := resolvePassword(cmd, cfg, confirm)
	if err != nil {
		return err
	}

	useCase, err := container.EncryptionUseCase(password)
	if err != nil {
		return err
	}

	if err := run(ctx, useCase, logger, commands.DefaultIO(), cmd.Bool("base64")); err != nil {
		return err
	}

	if !cmd.Bool("metrics") {
		return nil
	}
	if !cfg.MetricsEnabled {
		logger.Warn("--metrics ignored because METRICS_ENABLED is false")
		return nil
	}

	provider, err := container.MetricsProvider()
	if err != nil {
		return err
	}
	return commands.RunWriteMetrics(provider, logger, os.Stderr)
}

// resolvePassword picks the password from --password, --prompt or
// ENCRYPT_PASSWORD, in that order. The terminal is only opened for --prompt.
func resolvePassword(cmd *cli.Command, cfg *config.Config, confirm bool) (string, error) {
	opts := credential.Options{
		Flag:    cmd.String("password"),
		Prompt:  cmd.Bool("prompt"),
		Confirm: confirm,
		Env:     cfg.Password,
	}

	var reader credential.PasswordReader
	if opts.Flag == "" && opts.Prompt {
		tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return "", fmt.Errorf("%w: %w", credential.ErrNoTerminal, err)
		}
		defer func() { _ = tty.Close() }()
		reader = credential.NewPrompter(tty)
	}

	return credential.Resolve(opts, reader)
}

func getCryptoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Encrypt stdin and write the authenticated blob to stdout",
			Flags: cryptoFlags("Write the blob as standard base64"),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runCrypto(ctx, cmd, true, commands.RunEncrypt)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Verify and decrypt a blob from stdin and write the plaintext to stdout",
			Flags: cryptoFlags("Read the blob as standard base64"),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runCrypto(ctx, cmd, false, commands.RunDecrypt)
			},
		},
	}
}
