package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/automoto/throwrange/assets"
	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/config"
	"github.com/automoto/throwrange/logging"
	"github.com/automoto/throwrange/scenes"
	"github.com/automoto/throwrange/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	flagConfig     = "config"
	flagLogLevel   = "log-level"
	flagLevel      = "level"
	flagNoPersist  = "no-persist"
	flagDebugBoxes = "debug-boxes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	app := &cli.App{
		Name:  "throwrange",
		Usage: "grab, swing and throw things at targets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "Load configuration overrides from `FILE`",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  flagLevel,
				Usage: "embedded range map to play, defaults to the configured one",
			},
			&cli.BoolFlag{
				Name:  flagNoPersist,
				Usage: "do not load or save the high score",
			},
			&cli.BoolFlag{
				Name:  flagDebugBoxes,
				Usage: "outline collision boxes",
			},
		},
		Before: func(c *cli.Context) error {
			logger, err := logging.New(c.String(flagLogLevel))
			if err != nil {
				return err
			}
			logging.Set(logger)

			if path := c.String(flagConfig); path != "" {
				if err := config.Load(path); err != nil {
					return err
				}
			}
			if c.Bool(flagDebugBoxes) {
				config.Debug.DrawBoxes = true
			}
			if c.Bool(flagNoPersist) {
				config.Range.Persist = false
			}
			return nil
		},
		After: func(c *cli.Context) error {
			_ = logging.L().Sync()
			return nil
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:  "ranges",
				Usage: "list the embedded range maps",
				Action: func(c *cli.Context) error {
					paths, err := assets.ListRanges()
					if err != nil {
						return err
					}
					for _, p := range paths {
						fmt.Fprintln(c.App.Writer, p)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	path := config.Range.MapPath
	if p := c.String(flagLevel); p != "" {
		path = p
	}
	level, err := assets.LoadRange(path)
	if err != nil {
		return err
	}

	var store components.ScoreStore
	if config.Range.Persist {
		s, err := systems.OpenScoreStore(config.Range.AppName)
		if err != nil {
			logging.L().Warn("playing without a saved high score", zap.Error(err))
		} else {
			store = s
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Throw Range")
	ebiten.SetTPS(config.Physics.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewRangeScene(level, store))); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
