package main

import (
	"flag"
	"fmt"
	"grid-locator-service/internal/services"
	"io"
	"os"
)

// locate prints the south-west corner of each Maidenhead locator given on the command line.
func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s LOCATOR [LOCATOR...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(flag.Args(), os.Stdout, os.Stderr))
}

// run converts each locator and returns the process exit code.
func run(locators []string, stdout, stderr io.Writer) int {
	code := 0
	for _, c := range services.ConvertLocators(locators) {
		if c.Err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", c.Err)
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "%s Latitude: %v, Longitude: %v\n", c.Locator, c.Coordinates.Lat, c.Coordinates.Lon)
	}
	return code
}
