package ui

import (
	"context"
	"fmt"
	"os"

	"jigcam/src/logx"
	"jigcam/src/puzzle"
	"jigcam/ui/gui"
	"jigcam/ui/gui/gbase/gconf"
	"jigcam/ui/gui/gframe"
	"jigcam/ui/gui/ghelper/gdialog"

	"github.com/urfave/cli/v3"
)

const logfile string = "jigcam.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	return logx.New(file, logx.Options{
		Level:   c.String("level"),
		Dev:     c.Bool("debug"),
		Console: c.Bool("console"),
	})
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cfg *gconf.Config, c *cli.Command) error {
	if c.IsSet("difficulty") {
		d, err := puzzle.ParseDifficulty(c.String("difficulty"))
		if err != nil {
			return err
		}
		cfg.Difficulty = d.String()
	}
	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}
	if c.IsSet("image") {
		cfg.Image = c.String("image")
		if !c.IsSet("source") {
			cfg.Source = gframe.KindImage
		}
	}
	if c.IsSet("mirror") {
		cfg.Mirror = c.Bool("mirror")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	return nil
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	logger := GetLogger(file, c)

	cw, err := gconf.NewGUIConfig(".")
	if err != nil {
		logger.Errorf("error load config: %v", err)
		return fmt.Errorf("error load config: %w", err)
	}
	if err := applyFlags(cw.Config, c); err != nil {
		return err
	}

	opts := gui.SourceOptions(cw.Config)
	if c.Bool("pick") {
		res, err := gdialog.OpenImage("Choose an image")
		if err != nil {
			logger.Warnf("error pick image: %v", err)
		} else {
			opts.Kind = gframe.KindImage
			opts.Path = res.Path
			opts.Data = res.Data
		}
	}

	g, err := gui.NewGUI(cw, opts, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	return g.Run()
}

func RunJigCam() error {
	diff := &cli.StringFlag{
		Name:  "difficulty",
		Usage: "easy, medium, hard or insane",
	}
	sf := &cli.StringFlag{
		Name:  "source",
		Usage: "frame source: pattern, image or camera",
	}
	imf := &cli.StringFlag{
		Name:  "image",
		Usage: "path to an image or animated GIF",
	}
	pf := &cli.BoolFlag{
		Name:  "pick",
		Usage: "choose the image with a file dialog",
	}
	mf := &cli.BoolFlag{
		Name:  "mirror",
		Usage: "flip frames horizontally",
	}
	seedf := &cli.Uint64Flag{
		Name:  "seed",
		Usage: "scramble seed, 0 is time based",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}

	return (&cli.Command{
		Name:  "jigcam",
		Usage: "camera jigsaw puzzle",
		Flags: []cli.Flag{diff, sf, imf, pf, mf, seedf, df, lf, cf},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
