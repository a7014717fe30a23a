package main

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/transport"
	"github.com/baditaflorin/go_typography_normalizer/internal/config"
)

const replHelp = `Type text to normalize it.
  :stages a,b,c   run only these stages (empty resets to all)
  :quotes         run only the quotation normalizer
  :help           show this help
  :quit           leave`

// session holds the REPL state
type session struct {
	service *transport.Service
	stages  []string
	quotes  bool
}

// runREPL starts interactive mode
func runREPL(service *transport.Service) error {
	rl, err := readline.New("typo > ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Typography normalizer. Quit with <ctrl>D or :quit")
	s := &session{service: service}
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}

		out, quit := s.execute(line)
		if out != "" {
			pterm.Println(out)
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

// execute runs one REPL line and returns what to print
func (s *session) execute(line string) (string, bool) {
	cmd, arg := parseCommand(line)
	switch cmd {
	case "":
		return s.normalize(arg), false
	case "quit", "q", "exit":
		return "", true
	case "help", "h":
		return replHelp, false
	case "quotes":
		s.quotes, s.stages = true, nil
		return "Running the quotation normalizer only", false
	case "stages":
		s.quotes = false
		s.stages = transport.SplitList(arg)
		if _, err := s.service.NormalizeText("", s.stages); err != nil {
			s.stages = nil
			pterm.Error.Println(err)
			return "", false
		}
		if len(s.stages) == 0 {
			return "Running all stages: " + strings.Join(s.service.Pipeline().Stages(), ", "), false
		}
		return "Running stages: " + strings.Join(s.stages, ", "), false
	default:
		pterm.Error.Printf("Unknown command %q, try :help\n", cmd)
		return "", false
	}
}

func (s *session) normalize(text string) string {
	var (
		resp transport.Response
		err  error
	)
	if s.quotes {
		resp, err = s.service.NormalizeQuotes(text, config.SymbolsConfig{})
	} else {
		resp, err = s.service.NormalizeText(text, s.stages)
	}
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}
	printDiagnostics(resp.Warnings, resp.Errors)
	return resp.Text
}
