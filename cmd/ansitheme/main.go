// Command ansitheme derives UI color schemes from terminal palettes.
package main

import "github.com/opencode-ai/ansitheme/internal/cli"

func main() {
	cli.Main()
}
