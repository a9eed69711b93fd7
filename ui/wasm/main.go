package main

import (
	"fmt"

	"jigcam/src/logx"
	"jigcam/ui/gui"
	"jigcam/ui/gui/gbase/gconf"
	"jigcam/ui/gui/gframe"
)

func GetLogger() *logx.Logx {
	return logx.New(nil, logx.Options{
		Level:   "debug",
		Console: true,
	})
}

func RunGUI() error {
	logger := GetLogger()
	cw := gconf.Default()
	cw.Config.Source = gframe.KindCamera
	cw.Config.Mirror = true

	g, err := gui.NewGUI(cw, gui.SourceOptions(cw.Config), logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func main() {
	RunGUI()
}
