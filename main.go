package main

import (
	"github.com/haguru/userdirectory/config"
	"github.com/haguru/userdirectory/internal/app"
)

func main() {

	// create and initialize the app
	app, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		panic(err)
	}

	// run the app until the listener fails
	err = app.Run()
	if err != nil {
		panic(err)
	}
}
