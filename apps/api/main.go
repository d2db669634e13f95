package main

import (
	"flag"
	"log"
)

func main() {
	useDig := flag.Bool("dig", true, "wire dependencies with the dig container instead of by hand")
	flag.Parse()

	if *useDig {
		startWithDig()
		return
	}
	startManual()
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
