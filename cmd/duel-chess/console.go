package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lgbarn/duel-chess/internal/config"
	"github.com/lgbarn/duel-chess/internal/game"
	"github.com/lgbarn/duel-chess/internal/output"
	"github.com/lgbarn/duel-chess/internal/parser"
)

// console plays one or more games over cfg.Input and cfg.Output, one line
// per command.
type console struct {
	cfg     *config.Config
	session *game.Session
	writer  output.SnapshotWriter
	history *output.JSONWriter // nil unless cfg.History is set
}

func newConsole(cfg *config.Config) (*console, error) {
	start, err := cfg.Start.Board()
	if err != nil {
		return nil, err
	}
	c := &console{
		cfg:     cfg,
		session: game.NewSessionFromBoard(start, cfg.Rules.Engine(), cfg.Start.Turn),
		writer:  output.NewWriter(cfg.Output, cfg.Display),
	}
	if cfg.History != nil {
		c.history = output.NewJSONWriter(cfg.History)
	}
	return c, nil
}

// run reads commands until quit or end of input.
func (c *console) run() (err error) {
	defer c.writer.Close() //nolint:errcheck // text and single-line JSON writers never buffer
	if c.history != nil {
		defer func() {
			if cerr := c.history.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	c.cfg.Logf(1, "new game (rules: %s)", c.cfg.Rules.Describe())
	if err := c.record(); err != nil {
		return err
	}
	if err := c.draw(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(c.cfg.Input)
	for {
		c.prompt()
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, err := parser.ParseCommand(line)
		if err != nil {
			c.say(output.DescribeError(err))
			c.cfg.Logf(2, "rejected input %q: %v", line, err)
			continue
		}

		switch command.Kind {
		case parser.QuitCommand:
			return nil
		case parser.NewGameCommand:
			c.session.Reset()
			c.cfg.Logf(1, "new game (rules: %s)", c.cfg.Rules.Describe())
			if err := c.record(); err != nil {
				return err
			}
			if err := c.draw(); err != nil {
				return err
			}
		case parser.BoardCommand:
			if err := c.draw(); err != nil {
				return err
			}
		case parser.HelpCommand:
			c.say(parser.HelpText)
		case parser.MoveCommand:
			if err := c.move(command.Move); err != nil {
				return err
			}
		}
	}
}

// move plays one move. Rejected moves are reported to the player; only
// output failures are returned.
func (c *console) move(m parser.Move) error {
	turn := c.session.Turn()
	report, err := c.session.Move(m.From, m.To)
	if err != nil {
		c.say(output.DescribeError(err))
		c.cfg.Logf(2, "%v", err)
		return nil
	}

	c.cfg.Logf(2, "ply %d: %s %s -> %s", report.Ply, turn, report.Move, report.Outcome.Kind)
	if err := c.record(); err != nil {
		return err
	}
	if err := c.draw(); err != nil {
		return err
	}
	if msg := output.DescribeOutcome(report.Outcome); msg != "" {
		c.say(msg)
	}
	if c.session.Status() == game.Concluded {
		c.cfg.Logf(1, "game over after %d plies: %s", report.Ply, output.DescribeOutcome(report.Outcome))
	}
	return nil
}

// record adds the current position to the history, if one is kept.
func (c *console) record() error {
	if c.history == nil {
		return nil
	}
	return c.history.WriteSnapshot(c.session.Snapshot())
}

func (c *console) draw() error {
	return c.writer.WriteSnapshot(c.session.Snapshot())
}

func (c *console) prompt() {
	if c.cfg.Display.JSON {
		return
	}
	if c.session.Status() == game.Concluded {
		fmt.Fprint(c.cfg.Output, `Type "new" to play again or "quit": `)
		return
	}
	fmt.Fprint(c.cfg.Output, output.Prompt(c.session.Turn()))
}

// say prints a message for the player, as a JSON object in JSON mode.
func (c *console) say(msg string) {
	if c.cfg.Display.JSON {
		json.NewEncoder(c.cfg.Output).Encode(map[string]string{"message": msg}) //nolint:errcheck,gosec // best effort
		return
	}
	fmt.Fprintln(c.cfg.Output, msg)
}
