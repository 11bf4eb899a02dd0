package main

import (
	"bufio"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/g-m-twostay/go-bst/Records"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"
)

type options struct {
	Kind  string   `arg:"env:BST_KIND" default:"int" help:"record kind: int, float, word or entry"`
	Shape bool     `help:"draw the node structure after the sorted listing"`
	Debug bool     `arg:"env:BST_DEBUG" help:"log every dropped record"`
	Files []string `arg:"positional" help:"record files, stdin when none is given"`
}

func (options) Description() string {
	return "bstree loads records into an unbalanced binary search tree and lists them in order."
}

func main() {
	var opts options
	arg.MustParse(&opts)
	log := newLogger(os.Stderr, opts.Debug)
	if err := mainErr(opts, os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("bstree failed")
	}
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

func mainErr(opts options, stdin io.Reader, stdout io.Writer, log logrus.FieldLogger) error {
	switch opts.Kind {
	case "int":
		return run[Records.Number[int]](opts, stdin, stdout, log)
	case "float":
		return run[Records.Number[float64]](opts, stdin, stdout, log)
	case "word":
		return run[Records.Word](opts, stdin, stdout, log)
	case "entry":
		return run[Records.Entry](opts, stdin, stdout, log)
	}
	return errors.Errorf("unknown record kind %q", opts.Kind)
}

func run[T any, P Trees.Record[T]](opts options, stdin io.Reader, stdout io.Writer, log logrus.FieldLogger) error {
	tree := Trees.New[T, P](Trees.WithLogger(log))
	if len(opts.Files) == 0 {
		if err := load(tree, stdin, "stdin", log); err != nil {
			return err
		}
	}
	for _, name := range opts.Files {
		if err := loadFile(tree, name, log); err != nil {
			return err
		}
	}
	w := bufio.NewWriter(stdout)
	tree.Display(w)
	_ = w.WriteByte('\n')
	if opts.Shape && !tree.IsEmpty() {
		s, err := render(tree)
		if err != nil {
			return errors.Wrap(err, "rendering shape")
		}
		_, _ = w.WriteString(s)
	}
	return errors.Wrap(w.Flush(), "writing output")
}

func loadFile[T any, P Trees.Record[T]](tree *Trees.OrderedTree[T, P], name string, log logrus.FieldLogger) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "opening record file")
	}
	defer f.Close()
	return load(tree, f, name, log)
}

func load[T any, P Trees.Record[T]](tree *Trees.OrderedTree[T, P], r io.Reader, name string, log logrus.FieldLogger) error {
	before := tree.Size()
	s := Trees.NewStream(r)
	tree.BuildTree(s)
	if err := s.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	log.WithFields(logrus.Fields{"source": name, "added": tree.Size() - before}).Info("records loaded")
	return nil
}

// render draws the tree top down, every node tagged with the side it hangs from.
func render[T any, P Trees.Record[T]](tree *Trees.OrderedTree[T, P]) (string, error) {
	var list pterm.LeveledList
	tree.Shape(func(v P, depth uint, side Trees.Side) {
		list = append(list, pterm.LeveledListItem{Level: int(depth), Text: side.String() + " " + v.String()})
	})
	return pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(list)).Srender()
}
