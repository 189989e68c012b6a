package main

import (
	"os"

	"sorttrace/src/cmd"
	"sorttrace/src/utils"
)

var logger = utils.GetLogger("sorttrace")

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
