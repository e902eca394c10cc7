// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/headache/config"
	"github.com/ezrec/headache/emulator"
	"github.com/ezrec/headache/machine"
	"github.com/ezrec/headache/translate"
)

func main() {
	var debug bool
	var conf string
	var trace string
	var eof string

	flag.BoolVar(&debug, "d", false, "Enables debug trace output")
	flag.StringVar(&conf, "c", "", ".star or .cue config file to use")
	flag.StringVar(&trace, "t", "", "Also write the trace as JSON to this file")
	flag.StringVar(&eof, "e", "", "End of input policy: fault, zero or keep")

	flag.Usage = func() {
		translate.Fprintf(flag.CommandLine.Output(), "usage: %v [-d] [-c config] [-t trace] [-e eof] program.b\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	source := flag.Arg(0)

	emu := emulator.NewEmulator()

	cfg := config.Default()
	if len(conf) != 0 {
		var err error
		cfg, err = config.Load(conf, emu.Defines())
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	// Explicit flags override the config file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			cfg.Trace = debug
		case "t":
			cfg.TraceFile = trace
		case "e":
			policy, err := machine.ParseEofPolicy(eof)
			if err != nil {
				log.Fatalf("%v: -e: %v", os.Args[0], err)
			}
			cfg.Eof = policy
		}
	})

	var terminal io.Writer
	if cfg.Trace {
		terminal = os.Stderr
	}

	var traceFile io.Writer
	if len(cfg.TraceFile) != 0 {
		ouf, err := os.Create(cfg.TraceFile)
		if err != nil {
			log.Fatalf("%v: %v", cfg.TraceFile, err)
		}
		defer ouf.Close()
		traceFile = ouf
		cfg.Trace = true
	}

	emu.Configure(cfg)
	emu.Logger = emulator.NewLogger(terminal, traceFile)
	emu.Console.Input = os.Stdin
	emu.Console.Output = os.Stdout

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	err = emu.Load(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	_, err = emu.Run()
	if err != nil {
		if emu.Verbose {
			log.Print(emu.Engine.String())
		}
		log.Fatalf("%v: %v", source, err)
	}
}
