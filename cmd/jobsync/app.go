package main

import (
	"context"
	"fmt"
	"io"

	"github.com/minhyannv/jobsync-ai/pkg/chat"
	configpkg "github.com/minhyannv/jobsync-ai/pkg/config"
	loggerpkg "github.com/minhyannv/jobsync-ai/pkg/logger"
	"github.com/minhyannv/jobsync-ai/pkg/persona"
)

// senderFactory opens the remote session for one run.
type senderFactory func(ctx context.Context, cfg configpkg.Config, systemPrompt string) (chat.Sender, error)

// runDeps carries the process boundary into run so tests can replace it.
type runDeps struct {
	newSender senderFactory
	render    renderFunc
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
}

// run validates cfg, opens the remote session and enters the chat loop.
// Nothing is written to out before the credential check passes.
func run(ctx context.Context, cfg configpkg.Config, deps runDeps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg = configpkg.Normalize(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if deps.newSender == nil {
		deps.newSender = chat.NewSender
	}

	appLogger := loggerpkg.NewWriterLogger(deps.errOut, cfg.Verbose)

	p, err := persona.Load(cfg.PersonaFile)
	if err != nil {
		return fmt.Errorf("load persona: %w", err)
	}

	sender, err := deps.newSender(ctx, cfg, p.Prompt)
	if err != nil {
		return err
	}
	assistant, err := chat.New(sender, chat.WithLogger(appLogger), chat.WithVerbose(cfg.Verbose))
	if err != nil {
		return err
	}

	loggerpkg.Debug(cfg.Verbose, appLogger, "session ready", map[string]any{
		"provider":   cfg.Provider,
		"model":      cfg.Model,
		"base_url":   cfg.BaseURL,
		"persona":    p.Name,
		"session_id": assistant.SessionID(),
	})

	return runREPL(ctx, assistant, replOptions{
		User:          cfg.User,
		AssistantName: p.Name,
		JSON:          cfg.JSON,
		Render:        deps.render,
		Verbose:       cfg.Verbose,
		Logger:        appLogger,
	}, deps.in, deps.out)
}
