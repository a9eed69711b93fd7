package main

import (
	"fmt"
	"os"

	"jigcam/ui"
)

func main() {
	if err := ui.RunJigCam(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
