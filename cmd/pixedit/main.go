// Command pixedit is an interactive editor for character-pixel images.
// It reads one command per line from stdin; type "help" for the list.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/pixgrid/editor"
	"github.com/katalvlaran/pixgrid/internal/config"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("env", "", "dotenv file with PIXEDIT_* settings (default: ./.env if present)")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(cfg.LogLevel)

	if err := run(os.Stdin, os.Stdout, cfg, log); err != nil {
		log.WithError(err).Fatal("session aborted")
	}
}

// run drives one editor session until X, EOF, or a read error.
func run(in io.Reader, out io.Writer, cfg config.Config, log logrus.FieldLogger) error {
	ed := editor.New(editor.WithLogger(log), editor.WithMaxSize(cfg.MaxSize))
	fmt.Fprint(out, ed.Banner())

	rd := bufio.NewReader(in)
	for {
		fmt.Fprint(out, cfg.Prompt)
		line, rerr := rd.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return fmt.Errorf("pixedit: read input: %w", rerr)
		}
		if rerr != nil && line == "" {
			break
		}
		res, err := ed.Do(strings.TrimRight(line, "\r\n"))
		switch {
		case errors.Is(err, editor.ErrQuit):
			log.Debug("quit")
			return nil
		case err != nil:
			fmt.Fprintln(out, err)
		default:
			fmt.Fprint(out, res)
		}
		if rerr != nil {
			break
		}
	}
	fmt.Fprintln(out)
	return nil
}
