package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsf/vis"
	"github.com/nsf/vis/internal/logging"
	"github.com/nsf/vis/internal/metrics"
)

func openEditor(path string) (*vis.Editor, error) {
	opts := []vis.Option{
		vis.WithLogger(logging.New(nil)),
		vis.WithBufferMin(viper.GetInt("buffer.min")),
	}
	if mode, err := saveModeFromConfig(); err == nil {
		opts = append(opts, vis.WithSaveMode(mode))
	} else {
		return nil, fmt.Errorf("save-mode: %w", err)
	}
	if metricsAddr != "" {
		opts = append(opts, vis.WithMetrics(metrics.New(prometheus.DefaultRegisterer)))
	}
	return vis.Load(path, opts...)
}

// saveModeFromConfig parses the "save.mode" viper key (flag --save-mode,
// env VIS_SAVE_MODE, or config file) as an octal file mode.
func saveModeFromConfig() (os.FileMode, error) {
	s := viper.GetString("save.mode")
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal mode %q: %w", s, err)
	}
	return os.FileMode(n), nil
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "load a file and report its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(args[0])
			if err != nil {
				return err
			}
			defer e.Close()
			fmt.Printf("%d bytes\n", e.Size())
			return nil
		},
	}
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <file> <pos> <text>",
		Short: "insert text at pos and save",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("pos: %w", err)
			}
			e, err := openEditor(args[0])
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.Insert(pos, []byte(args[2])); err != nil {
				return err
			}
			return e.Save(args[0])
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <file> <pos> <len>",
		Short: "delete len bytes at pos and save",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("pos: %w", err)
			}
			n, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("len: %w", err)
			}
			e, err := openEditor(args[0])
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.Delete(pos, n); err != nil {
				return err
			}
			return e.Save(args[0])
		},
	}
}

func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <file> <pos> <text>",
		Short: "replace len(text) bytes at pos with text and save",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("pos: %w", err)
			}
			e, err := openEditor(args[0])
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.Replace(pos, []byte(args[2])); err != nil {
				return err
			}
			return e.Save(args[0])
		},
	}
}

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <file>",
		Short: "undo the last action (meaningful only within a script run)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(args[0])
			if err != nil {
				return err
			}
			defer e.Close()
			if !e.Undo() {
				fmt.Println("nothing to undo")
			}
			return e.Save(args[0])
		},
	}
}

func newRedoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redo <file>",
		Short: "redo the last undone action (meaningful only within a script run)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(args[0])
			if err != nil {
				return err
			}
			defer e.Close()
			if !e.Redo() {
				fmt.Println("nothing to redo")
			}
			return e.Save(args[0])
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "print the current document contents to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(args[0])
			if err != nil {
				return err
			}
			defer e.Close()
			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()
			return e.Iterate(0, func(pos int64, b []byte) bool {
				w.Write(b)
				return true
			})
		},
	}
}

// newScriptCmd applies a sequence of edit commands, one per line, read
// from a script file, as a single Editor session — the only place undo
// and redo are meaningful across more than one operation, since every
// other subcommand here opens a fresh, empty-history Editor per process.
//
// Script line grammar, one command per line, blank lines and lines
// starting with '#' ignored:
//
//	insert <pos> <text>
//	delete <pos> <len>
//	replace <pos> <text>
//	undo
//	redo
//	snapshot
func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script <file> <script-file>",
		Short: "apply a sequence of edits from a script file, then save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(args[0])
			if err != nil {
				return err
			}
			defer e.Close()

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			sc := bufio.NewScanner(f)
			lineNo := 0
			for sc.Scan() {
				lineNo++
				if err := runScriptLine(e, sc.Text()); err != nil {
					return fmt.Errorf("script line %d: %w", lineNo, err)
				}
			}
			if err := sc.Err(); err != nil {
				return err
			}
			return e.Save(args[0])
		},
	}
}

func runScriptLine(e *vis.Editor, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.SplitN(line, " ", 3)
	switch fields[0] {
	case "insert":
		if len(fields) != 3 {
			return fmt.Errorf("insert needs <pos> <text>")
		}
		pos, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return err
		}
		return e.Insert(pos, []byte(fields[2]))

	case "delete":
		rest := strings.Fields(line)
		if len(rest) != 3 {
			return fmt.Errorf("delete needs <pos> <len>")
		}
		pos, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(rest[2], 10, 64)
		if err != nil {
			return err
		}
		return e.Delete(pos, n)

	case "replace":
		if len(fields) != 3 {
			return fmt.Errorf("replace needs <pos> <text>")
		}
		pos, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return err
		}
		return e.Replace(pos, []byte(fields[2]))

	case "undo":
		e.Undo()
		return nil

	case "redo":
		e.Redo()
		return nil

	case "snapshot":
		e.Snapshot()
		return nil

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}
