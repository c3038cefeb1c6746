// Command vaelstrom-url-handlerw is the windowed entry point of the URL
// handler. It opens no console window when the OS launches it; build it with
//
//	go build -ldflags=-H=windowsgui ./cmd/vaelstrom-url-handlerw
package main

import (
	"os"

	"vaelstrom-url-handler/forwarder"
)

func main() {
	os.Exit(forwarder.Main(forwarder.Windowed))
}
