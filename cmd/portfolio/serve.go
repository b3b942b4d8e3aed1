package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	portfolio "github.com/arignang/portfolio"
	"github.com/arignang/portfolio/internal/config"
	"github.com/arignang/portfolio/internal/mailer"
	"github.com/arignang/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("Starting portfolio", "version", version)

		site, err := loadSite(cfg)
		if err != nil {
			return err
		}

		themes, err := config.LoadThemes(cfg.Themes.Path, portfolio.ThemesYAML)
		if err != nil {
			return fmt.Errorf("load themes: %w", err)
		}
		slog.Info("Loaded themes", "count", len(themes))

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		mail := mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host: cfg.Contact.SMTPHost,
			Port: cfg.Contact.SMTPPort,
			User: cfg.Contact.SMTPUser,
			Pass: cfg.Contact.SMTPPass,
			From: cfg.Contact.From,
			To:   cfg.Contact.To,
		})
		if !mail.Configured() {
			slog.Warn("Contact mail is not configured; the contact form will show an error")
		}

		srv := server.New(cfg, site, gen, mail, themes, version, buildTime)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		slog.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
