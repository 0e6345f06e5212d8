// Package persona loads the system preamble sent with every conversation.
package persona

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultName is the display name of the built-in career assistant.
const DefaultName = "JobSync AI"

const defaultPrompt = `You are JobSync AI, an expert career assistant. You help users with job search, resume tips, interview preparation, career advice, and job market insights. Always provide clear, actionable, and friendly responses. If a user asks for a job recommendation, ask for their skills, experience, and preferences. If they ask for resume help, offer suggestions to improve their resume. For interview prep, give common questions and tips. For career advice, be supportive and data-driven. Keep answers concise and relevant to jobs and careers.`

// Persona is a named system preamble.
type Persona struct {
	Name        string
	Description string
	Prompt      string
	Path        string
}

// frontMatter mirrors the YAML front matter of a persona file.
type frontMatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Default returns the built-in JobSync career assistant.
func Default() *Persona {
	return &Persona{
		Name:        DefaultName,
		Description: "Career assistant for job search, resumes and interviews.",
		Prompt:      defaultPrompt,
	}
}

// Load reads a persona file. An empty path yields the default persona.
func Load(path string) (*Persona, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	p.Path = path
	return p, nil
}

// Parse extracts the front matter and the markdown body of a persona file.
// The body becomes the prompt.
func Parse(content []byte) (*Persona, error) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return nil, errors.New("missing YAML front matter")
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, errors.New("unterminated YAML front matter")
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &fm); err != nil {
		return nil, err
	}
	if strings.TrimSpace(fm.Name) == "" {
		return nil, errors.New("missing front matter name")
	}

	prompt := strings.TrimSpace(strings.Join(lines[end+1:], "\n"))
	if prompt == "" {
		return nil, errors.New("persona prompt is empty")
	}

	return &Persona{
		Name:        strings.TrimSpace(fm.Name),
		Description: strings.TrimSpace(fm.Description),
		Prompt:      prompt,
	}, nil
}
