package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/minhyannv/jobsync-ai/pkg/chat"
	loggerpkg "github.com/minhyannv/jobsync-ai/pkg/logger"
)

const stubReply = "Try highlighting your Python projects."

type stubSender struct {
	reply    string
	err      error
	messages []string
}

func (s *stubSender) Send(_ context.Context, message string) (string, error) {
	s.messages = append(s.messages, message)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestAssistant(t *testing.T, sender chat.Sender) *chat.Assistant {
	t.Helper()
	a, err := chat.New(sender)
	if err != nil {
		t.Fatalf("chat.New: %v", err)
	}
	return a
}

func TestRunREPLPrintsReplyAndReprompts(t *testing.T) {
	sender := &stubSender{reply: stubReply}
	var out bytes.Buffer

	in := strings.NewReader("Ada\nHow do I stand out?\nWhat about my GitHub?\nexit\n")
	if err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{}, in, &out); err != nil {
		t.Fatalf("runREPL: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "Enter your name: Welcome to JobSync AI! How can I help you today?\n") {
		t.Fatalf("unexpected greeting: %q", got)
	}
	if strings.Count(got, "JobSync AI: "+stubReply+"\n") != 2 {
		t.Fatalf("expected reply printed twice unmodified, got: %q", got)
	}
	if strings.Count(got, "Ada: ") != 3 {
		t.Fatalf("expected a prompt before each turn, got: %q", got)
	}
	if !strings.HasSuffix(got, "Goodbye!\n") {
		t.Fatalf("expected farewell, got: %q", got)
	}
	if len(sender.messages) != 2 {
		t.Fatalf("expected 2 remote calls, got %d", len(sender.messages))
	}
}

func TestRunREPLExitKeywordsSkipRemoteCall(t *testing.T) {
	for _, keyword := range []string{"exit", "EXIT", "Quit", "qUiT", "  exit  "} {
		sender := &stubSender{reply: stubReply}
		var out bytes.Buffer

		err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{User: "Ada"}, strings.NewReader(keyword+"\n"), &out)
		if err != nil {
			t.Fatalf("%q: runREPL: %v", keyword, err)
		}
		if len(sender.messages) != 0 {
			t.Fatalf("%q: expected no remote call, got %d", keyword, len(sender.messages))
		}
		if !strings.HasSuffix(out.String(), "Goodbye!\n") {
			t.Fatalf("%q: expected farewell, got: %q", keyword, out.String())
		}
	}
}

func TestRunREPLExitIsWholeLineOnly(t *testing.T) {
	sender := &stubSender{reply: stubReply}
	var out bytes.Buffer

	err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{User: "Ada"}, strings.NewReader("exit interview tips\n"), &out)
	if err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if len(sender.messages) != 1 || sender.messages[0] != "exit interview tips" {
		t.Fatalf("expected message to be sent, got %#v", sender.messages)
	}
}

func TestRunREPLSkipsBlankLines(t *testing.T) {
	sender := &stubSender{reply: stubReply}
	var out bytes.Buffer

	err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{User: "Ada"}, strings.NewReader("\n   \nquit\n"), &out)
	if err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if len(sender.messages) != 0 {
		t.Fatalf("expected no remote call, got %d", len(sender.messages))
	}
}

func TestRunREPLStopsOnRemoteError(t *testing.T) {
	remoteErr := errors.New("503 service unavailable")
	sender := &stubSender{err: remoteErr}
	var out bytes.Buffer

	in := strings.NewReader("first\nsecond\n")
	err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{User: "Ada"}, in, &out)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error, got: %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected loop to stop after first failure, got %d calls", len(sender.messages))
	}
	if strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("did not expect farewell on failure: %q", out.String())
	}
}

func TestRunREPLAcceptsLongLine(t *testing.T) {
	sender := &stubSender{reply: stubReply}
	var out bytes.Buffer
	resume := strings.Repeat("a", 70*1024)

	in := strings.NewReader(resume + "\nquit\n")
	if err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{User: "Ada"}, in, &out); err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if len(sender.messages) != 1 || sender.messages[0] != resume {
		t.Fatalf("expected the long line to be sent once, got %d call(s)", len(sender.messages))
	}
	if !strings.HasSuffix(out.String(), "Goodbye!\n") {
		t.Fatalf("expected farewell after long line, got suffix: %q", out.String()[max(0, out.Len()-40):])
	}
}

func TestRunREPLLogsFailedTurn(t *testing.T) {
	var logs bytes.Buffer
	sender := &stubSender{err: errors.New("deadline exceeded")}
	opts := replOptions{User: "Ada", Logger: loggerpkg.NewWriterLogger(&logs, false)}

	err := runREPL(context.Background(), newTestAssistant(t, sender), opts, strings.NewReader("hello\n"), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected remote error")
	}
	if !strings.Contains(logs.String(), "turn failed") || !strings.Contains(logs.String(), "deadline exceeded") {
		t.Fatalf("expected failed turn in logs, got: %s", logs.String())
	}
}

func TestRunREPLEndOfInput(t *testing.T) {
	var out bytes.Buffer
	err := runREPL(context.Background(), newTestAssistant(t, &stubSender{}), replOptions{}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if out.String() != "Enter your name: " {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunREPLEmptyNameUsesDefault(t *testing.T) {
	var out bytes.Buffer
	err := runREPL(context.Background(), newTestAssistant(t, &stubSender{}), replOptions{}, strings.NewReader("\nquit\n"), &out)
	if err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if !strings.Contains(out.String(), defaultUser+": ") {
		t.Fatalf("expected default user prompt, got: %q", out.String())
	}
}

func TestRunREPLJSONRecords(t *testing.T) {
	sender := &stubSender{reply: stubReply}
	var out bytes.Buffer

	err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{User: "Ada", JSON: true}, strings.NewReader("Resume tips?\n"), &out)
	if err != nil {
		t.Fatalf("runREPL: %v", err)
	}

	var line string
	for _, l := range strings.Split(out.String(), "\n") {
		if idx := strings.Index(l, "{"); idx >= 0 {
			line = l[idx:]
			break
		}
	}
	var record map[string]string
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("decode %q: %v", line, err)
	}
	if len(record) != 3 || record["user"] != "Ada" || record["message"] != "Resume tips?" || record["response"] != stubReply {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestRunREPLUsesRenderer(t *testing.T) {
	sender := &stubSender{reply: "**bold**"}
	var out bytes.Buffer
	render := func(s string) (string, error) {
		return "<" + s + ">\n\n", nil
	}

	err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{User: "Ada", Render: render}, strings.NewReader("hi\n"), &out)
	if err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if !strings.Contains(out.String(), "JobSync AI: <**bold**>\n") {
		t.Fatalf("expected rendered reply, got: %q", out.String())
	}
}

func TestRunREPLRendererFailureFallsBack(t *testing.T) {
	sender := &stubSender{reply: stubReply}
	var out bytes.Buffer
	render := func(string) (string, error) {
		return "", errors.New("no style")
	}

	err := runREPL(context.Background(), newTestAssistant(t, sender), replOptions{User: "Ada", Render: render}, strings.NewReader("hi\n"), &out)
	if err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if !strings.Contains(out.String(), "JobSync AI: "+stubReply+"\n") {
		t.Fatalf("expected raw reply, got: %q", out.String())
	}
}

func TestRunREPLRequiresAssistant(t *testing.T) {
	if err := runREPL(context.Background(), nil, replOptions{}, strings.NewReader(""), nil); err == nil {
		t.Fatal("expected error for nil assistant")
	}
}
