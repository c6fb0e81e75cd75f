//go:build tinygo

package main

import (
	"fiftyeight/app"
	"fiftyeight/hal"
)

func main() {
	app.Run(hal.New())
}
