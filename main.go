package main

import (
	"mingpan.dev/backend/cmd/app"
)

func main() {
	app.Run()
}
