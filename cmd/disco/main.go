// Command disco reads conic programs, canonicalizes them and resolves cut
// schedules.
package main

import "github.com/katalvlaran/disco/internal/cli"

func main() {
	cli.Execute()
}
