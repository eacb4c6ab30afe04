package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/natulte/go-dinocity/pkg/snesrom"
)

var (
	verboseFlag = flag.Bool("l", false, "show low-level header details")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-l] rom.smc [rom2.smc ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		rom, err := snesrom.Parse(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "エラー: %s: %v\n", path, err)
			exitCode = 1
			continue
		}
		printRom(rom)
	}

	os.Exit(exitCode)
}

// printRom はROMのヘッダー情報を表示します
func printRom(rom *snesrom.Rom) {
	fmt.Printf("%s: %s (%s)\n", rom.Path, rom.Title, rom.Info())

	if !*verboseFlag {
		return
	}

	fmt.Printf("  file size:     %d bytes\n", rom.FileSize)
	fmt.Printf("  header offset: 0x%x\n", rom.HeaderOffset)
	if rom.HasSMCHeader {
		fmt.Printf("  smc header:    present (dump size %d bytes, flags 0x%02x)\n", rom.SMCDumpSize, rom.SMCFlags)
	} else {
		fmt.Printf("  smc header:    none\n")
	}
}
