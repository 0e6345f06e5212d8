package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minhyannv/jobsync-ai/pkg/chat"
	loggerpkg "github.com/minhyannv/jobsync-ai/pkg/logger"
	"github.com/minhyannv/jobsync-ai/pkg/persona"
)

// defaultUser labels turns when the user enters an empty name.
const defaultUser = "You"

// maxLineBytes caps a single input line; pasted resumes easily exceed the
// scanner's 64 KiB default.
const maxLineBytes = 1 << 20

// replOptions configures REPL behavior.
type replOptions struct {
	User          string
	AssistantName string
	JSON          bool
	Render        renderFunc
	Verbose       bool
	Logger        loggerpkg.Logger
}

// runREPL reads lines from in until exit, quit or end of input. A failed
// turn ends the loop and its error is returned.
func runREPL(ctx context.Context, assistant *chat.Assistant, opts replOptions, in io.Reader, out io.Writer) error {
	if assistant == nil {
		return fmt.Errorf("assistant is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if strings.TrimSpace(opts.AssistantName) == "" {
		opts.AssistantName = persona.DefaultName
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	user := strings.TrimSpace(opts.User)
	if user == "" {
		_, _ = fmt.Fprint(out, "Enter your name: ")
		if !scanner.Scan() {
			return scanErr(scanner)
		}
		user = strings.TrimSpace(scanner.Text())
		if user == "" {
			user = defaultUser
		}
	}
	printWelcome(out, opts.AssistantName)

	for {
		_, _ = fmt.Fprintf(out, "%s: ", user)
		if !scanner.Scan() {
			break
		}

		message := scanner.Text()
		if strings.TrimSpace(message) == "" {
			continue
		}
		if isExitCommand(message) {
			_, _ = fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		record, err := assistant.SendAndFormat(ctx, user, message)
		if err != nil {
			loggerpkg.Error(opts.Logger, "turn failed", map[string]any{
				"session_id": assistant.SessionID(),
				"error":      err.Error(),
			})
			return err
		}
		if err := printRecord(out, record, opts); err != nil {
			return err
		}
	}

	return scanErr(scanner)
}

// isExitCommand reports whether input is "exit" or "quit" in any letter case.
func isExitCommand(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit", "quit":
		return true
	default:
		return false
	}
}

func printWelcome(out io.Writer, name string) {
	_, _ = fmt.Fprintf(out, "Welcome to %s! How can I help you today?\n", name)
}

func printRecord(out io.Writer, record chat.Record, opts replOptions) error {
	if opts.JSON {
		raw, err := record.JSON()
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		_, _ = fmt.Fprintf(out, "%s\n", raw)
		return nil
	}

	text := record.Response
	if opts.Render != nil {
		rendered, err := opts.Render(text)
		if err != nil {
			loggerpkg.Warn(opts.Logger, "markdown render failed", err)
		} else {
			text = strings.TrimRight(rendered, "\n")
		}
	}
	_, _ = fmt.Fprintf(out, "%s: %s\n", opts.AssistantName, text)
	return nil
}

func scanErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
