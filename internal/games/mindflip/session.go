// Package mindflip drives a MindFlip level with text commands and keeps the
// counters that end up in the run log.
package mindflip

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
	"github.com/vovakirdan/mindflip/internal/storage"
)

// Op is a session command verb.
type Op string

const (
	OpMove Op = "move" // walk the hero to a cell
	OpMark Op = "mark" // move only the destination marker
	OpFlip Op = "flip" // apply a board-wide flip
)

// Command is one parsed session instruction.
type Command struct {
	Op     Op
	Target core.Coord // move, mark
	Flip   core.Flip  // flip
}

// String returns the command in script syntax.
func (c Command) String() string {
	switch c.Op {
	case OpFlip:
		return fmt.Sprintf("%s %s", c.Op, c.Flip)
	default:
		return fmt.Sprintf("%s %d %d", c.Op, c.Target.X, c.Target.Y)
	}
}

// ParseCommand parses "move X Y", "mark X Y" or "flip DIR".
// Coordinates may also be written "X,Y".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	op := Op(strings.ToLower(fields[0]))
	switch op {
	case OpMove, OpMark:
		target, err := coordFromFields(fields[1:])
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", op, err)
		}
		return Command{Op: op, Target: target}, nil

	case OpFlip:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("flip: want flip DIR, got %q", line)
		}
		f, err := core.ParseFlip(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("flip: %w", err)
		}
		return Command{Op: op, Flip: f}, nil

	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

// ParseCoord parses a board coordinate written "X Y" or "X,Y".
func ParseCoord(s string) (core.Coord, error) {
	return coordFromFields(strings.Fields(strings.ReplaceAll(s, ",", " ")))
}

func coordFromFields(fields []string) (core.Coord, error) {
	if len(fields) != 2 {
		return core.Coord{}, fmt.Errorf("want X Y, got %q", strings.Join(fields, " "))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Coord{}, fmt.Errorf("bad column %q", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Coord{}, fmt.Errorf("bad row %q", fields[1])
	}
	return core.C(x, y), nil
}

// ReadScript reads one command per line, skipping blank lines and '#' comments.
func ReadScript(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return lines, nil
}

// Outcome describes what a single command did.
type Outcome struct {
	Command Command
	Path    []core.Coord // move only; empty when unreachable
	Hero    core.Coord
	Marker  core.Coord
}

// Reached reports whether a move found a route.
func (o Outcome) Reached() bool {
	return o.Command.Op != OpMove || len(o.Path) > 0
}

// Session plays one level.
type Session struct {
	levelID string
	level   *core.Level
	logger  *log.Logger

	moves       int
	flips       int
	steps       int
	failedMoves int
}

// NewSession wraps a freshly built level. A nil logger discards output.
func NewSession(levelID string, lv *core.Level, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		levelID: levelID,
		level:   lv,
		logger:  logger.With("level", levelID),
	}
}

// Level returns the level being played.
func (s *Session) Level() *core.Level {
	return s.level
}

// Exec parses and executes one command.
func (s *Session) Exec(line string) (Outcome, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return Outcome{}, err
	}
	return s.Apply(cmd)
}

// Apply executes an already parsed command.
func (s *Session) Apply(cmd Command) (Outcome, error) {
	out := Outcome{Command: cmd}

	switch cmd.Op {
	case OpMove:
		path, err := s.level.RequestMove(cmd.Target)
		if err != nil {
			return out, err
		}
		out.Path = path
		s.moves++
		if len(path) == 0 {
			s.failedMoves++
			s.logger.Info("no path", "to", cmd.Target, "hero", s.level.HeroPosition())
		} else {
			s.steps += len(path) - 1
			s.logger.Info("moved", "to", cmd.Target, "steps", len(path)-1)
		}

	case OpMark:
		if err := s.level.MoveDestinationMarker(cmd.Target); err != nil {
			return out, err
		}
		s.logger.Debug("marker moved", "to", cmd.Target)

	case OpFlip:
		if err := s.level.RequestFlip(cmd.Flip); err != nil {
			return out, err
		}
		s.flips++
		s.logger.Info("flipped", "dir", cmd.Flip)

	default:
		return out, fmt.Errorf("unknown op %q", cmd.Op)
	}

	out.Hero = s.level.HeroPosition()
	out.Marker = s.level.DestinationMarkerPosition()
	return out, nil
}

// Run executes commands in order and stops at the first error.
// The outcomes of every command that ran are returned either way.
func (s *Session) Run(lines []string) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(lines))
	for i, line := range lines {
		out, err := s.Exec(line)
		if err != nil {
			return outcomes, fmt.Errorf("command %d %q: %w", i+1, line, err)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// Summary returns the session counters as a run record.
func (s *Session) Summary() storage.Run {
	return storage.Run{
		LevelID:     s.levelID,
		Moves:       s.moves,
		Flips:       s.flips,
		Steps:       s.steps,
		FailedMoves: s.failedMoves,
	}
}
