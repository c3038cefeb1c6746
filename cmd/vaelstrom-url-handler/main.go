// Command vaelstrom-url-handler is the console entry point of the URL handler.
//
//	vaelstrom-url-handler <url>
package main

import (
	"os"

	"vaelstrom-url-handler/forwarder"
)

func main() {
	os.Exit(forwarder.Main(forwarder.Console))
}
