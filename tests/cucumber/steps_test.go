package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tokenwise/internal/cli"
	"tokenwise/internal/history"

	"github.com/cucumber/godog"
)

type featureState struct {
	workDir      string
	previousWD   string
	firstContent string
	stdout       bytes.Buffer
	stderr       bytes.Buffer
	exitCode     int
	initialized  bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a workspace with a valid tokenwise configuration$`, state.aWorkspaceWithValidConfig)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^a transcript with (\d+) messages of (\d+) characters each$`, state.aTranscriptWithMessages)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the trimmed transcript has (\d+) messages$`, state.theTrimmedTranscriptHasMessages)
	ctx.Step(`^the first message of the transcript is preserved$`, state.theFirstMessageIsPreserved)
	ctx.Step(`^stdout contains "([^"]+)"$`, state.stdoutContains)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.firstContent = ""
	s.initialized = false
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
		s.workDir = ""
	}
}

// enterWorkspace creates a temp directory and chdirs into it so commands
// resolve relative paths the way a user would.
func (s *featureState) enterWorkspace() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "tokenwise-feature-*")
	if err != nil {
		return fmt.Errorf("create temp workspace: %w", err)
	}
	s.workDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *featureState) aWorkspaceWithValidConfig() error {
	if err := s.enterWorkspace(); err != nil {
		return err
	}
	return s.writeConfig(validConfigYAML())
}

func (s *featureState) theConfigIsInvalid() error {
	if err := s.aWorkspaceWithValidConfig(); err != nil {
		return err
	}
	return s.writeConfig(invalidConfigYAML())
}

func (s *featureState) aTranscriptWithMessages(count, chars int) error {
	if err := s.enterWorkspace(); err != nil {
		return err
	}
	messages := make([]history.Message, 0, count)
	for i := 0; i < count; i++ {
		role := history.RoleUser
		if i == 0 {
			role = history.RoleSystem
		} else if i%2 == 0 {
			role = history.RoleAssistant
		}
		content := strings.Repeat("x", chars)
		if i == 0 {
			s.firstContent = content
		}
		messages = append(messages, history.Message{Role: role, Content: history.Text{Text: content}})
	}
	payload, err := history.EncodeTranscript(messages)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	path := filepath.Join(s.workDir, "transcript.json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "tokenwise" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theTrimmedTranscriptHasMessages(count int) error {
	messages, err := s.parseTrimmed()
	if err != nil {
		return err
	}
	if len(messages) != count {
		return fmt.Errorf("expected %d messages, got %d", count, len(messages))
	}
	return nil
}

func (s *featureState) theFirstMessageIsPreserved() error {
	messages, err := s.parseTrimmed()
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return fmt.Errorf("trimmed transcript is empty")
	}
	if messages[0].Role != history.RoleSystem {
		return fmt.Errorf("expected system role first, got %q", messages[0].Role)
	}
	if history.ContentString(messages[0].Content) != s.firstContent {
		return fmt.Errorf("first message content changed")
	}
	return nil
}

func (s *featureState) stdoutContains(want string) error {
	if !strings.Contains(s.stdout.String(), want) {
		return fmt.Errorf("expected %q in stdout, got %q", want, s.stdout.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "version") {
		return fmt.Errorf("expected error to mention version, got %q", errOutput)
	}
	return nil
}

func (s *featureState) parseTrimmed() ([]history.Message, error) {
	messages, err := history.ParseTranscript(s.stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("stdout is not a transcript: %w (%q)", err, s.stdout.String())
	}
	return messages, nil
}

func (s *featureState) writeConfig(contents string) error {
	if s.workDir == "" {
		return fmt.Errorf("workspace is not set")
	}
	path := filepath.Join(s.workDir, "tokenwise.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func validConfigYAML() string {
	return `version: 1
provider: anthropic
model: claude-2

trim:
  max_tokens: 100000
  keep_messages: 2
`
}

func invalidConfigYAML() string {
	return `version: 2
provider: anthropic
model: claude-2

trim:
  max_tokens: 100000
  keep_messages: 2
`
}
