// Scrollable file viewer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmigpin/scrollview/app"
)

func main() {
	log.SetFlags(log.Llongfile)
	if err := main2(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main2() error {
	configFlag := flag.String("config", "", "toml config file")
	snapshotFlag := flag.String("snapshot", "", "paint offscreen into this png file and exit")
	sizeFlag := flag.String("size", "640x480", "window size, WxH")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <filename>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	cfg, err := app.LoadConfig(*configFlag)
	if err != nil {
		return err
	}
	size, err := app.ParseSize(*sizeFlag)
	if err != nil {
		return err
	}

	if *snapshotFlag != "" {
		return app.Snapshot(cfg, filename, size, *snapshotFlag)
	}
	return app.Run(cfg, filename, size)
}
