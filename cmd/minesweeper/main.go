package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/AviKupinsky/minesweeper/internal/board"
	"github.com/AviKupinsky/minesweeper/internal/config"
	"github.com/AviKupinsky/minesweeper/internal/game"
)

var (
	log = logrus.New()

	sizeFlag   string
	customFlag string
)

func init() {
	flag.StringVar(&sizeFlag, "size", "",
		"board preset: small, medium or large")
	flag.StringVar(&customFlag, "custom", "",
		`custom board params, e.g. "width=30&height=16&mine_count=99"`)
}

func setupLogging(cfg *config.Config) error {
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if cfg.LogFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      cfg.LogLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func newGame(cfg *config.Config) (*game.Game, error) {
	rnd := createRand()
	logger := log.WithField("component", "game")

	if customFlag != "" {
		params, err := decodeCustomParams(customFlag)
		if err != nil {
			return nil, err
		}
		return game.NewCustom(
			params.Width, params.Height, params.MineCount, rnd, logger,
		), nil
	}

	label := sizeFlag
	if label == "" {
		label = cfg.BoardSize
	}
	size := board.SizeSmall
	if label != "" {
		var err error
		if size, err = board.ParseSize(label); err != nil {
			return nil, err
		}
	}
	return game.New(size, rnd, logger), nil
}

func repl(ctx context.Context, g *game.Game) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := executeCommand(g, line); err != nil {
			if errors.Is(err, errQuit) {
				return errQuit
			}
			fmt.Println("error:", err)
			continue
		}
		printGame(g)
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return errQuit
}

func printGame(g *game.Game) {
	fmt.Print(g.Board())
	switch g.Status() {
	case game.StatusWon:
		fmt.Printf("you won in %s\n", g.Elapsed().Round(time.Second))
	case game.StatusLost:
		fmt.Printf("you lost after %s\n", g.Elapsed().Round(time.Second))
	default:
		fmt.Printf("%s | %d/%d flags\n",
			g.Status(), g.FlagCount(), g.Board().MineCount())
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	gm, err := newGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("minesweeper: %s board (%dx%d, %d mines)\n",
		strings.ToLower(gm.Size().Label()),
		gm.Board().Width(), gm.Board().Height(), gm.Board().MineCount())
	fmt.Println(`commands: "o row col" open, "f row col" flag, ` +
		`"n" new game, "s size" switch preset, "q" quit`)
	printGame(gm)

	grp, gCtx := errgroup.WithContext(mainCtx)
	grp.Go(func() error {
		return repl(gCtx, gm)
	})
	grp.Go(func() error {
		<-gCtx.Done()
		// unblocks the scanner stuck in a read on shutdown
		return os.Stdin.Close()
	})

	err = grp.Wait()
	if err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Debug("bye")
}
