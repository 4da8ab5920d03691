// Command armdis disassembles a raw binary file of ARM or Thumb
// instructions, printing a listing, browsing it in a TUI, or serving
// decode-as-a-service over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lookbusy1344/arm-disassembler/api"
	"github.com/lookbusy1344/arm-disassembler/config"
	"github.com/lookbusy1344/arm-disassembler/debugger"
	"github.com/lookbusy1344/arm-disassembler/isa"
	"github.com/lookbusy1344/arm-disassembler/listing"
	"github.com/lookbusy1344/arm-disassembler/loader"
	"github.com/lookbusy1344/arm-disassembler/service"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		mode        = flag.String("mode", cfg.Decode.Mode, "Decode mode: arm or thumb")
		profileFlag = flag.String("profile", cfg.Decode.Profile, "Architecture profile: v4t, v5te, v6")
		base        = flag.Uint64("base", cfg.Decode.BaseAddress, "Base address of the first byte")
		rangeFlag   = flag.String("range", "", "Byte range to decode, e.g. 0x0:0x40 or 0x0:+64 (default: whole file)")
		style       = flag.String("style", "default", "Listing style: default, compact, expanded")
		tuiMode     = flag.Bool("tui", false, "Browse the decoded listing in a TUI")
		apiServer   = flag.Bool("api-server", false, "Start HTTP+WebSocket decode-as-a-service")
		apiPort     = flag.Int("port", 8734, "API server port (used with -api-server)")
		dumpThumb   = flag.Bool("dump-thumb", false, "Dump every 16-bit Thumb opcode (0x0000-0xFFFF) and its rendering, then exit")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("armdis %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if *apiServer {
		runAPIServer(*apiPort)
		return
	}

	if *dumpThumb {
		profile, err := isa.ParseProfile(*profileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dumpThumbOpcodeSpace(os.Stdout, profile)
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	path := flag.Arg(0)

	profile, err := isa.ParseProfile(*profileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var byteRange loader.Range
	if *rangeFlag != "" {
		byteRange, err = loader.ParseRange(*rangeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -range: %v\n", err)
			os.Exit(1)
		}
	}

	data, baseAddr, err := loader.Load(path, byteRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *rangeFlag == "" {
		baseAddr = *base
	}

	if *tuiMode {
		tui := debugger.NewTUI(data, baseAddr, profile, *mode)
		if err := tui.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	r := loader.NewWordReader(data, baseAddr)
	var d isa.Decoder
	var entries []service.Entry
	if *mode == "thumb" {
		entries = service.DisassembleThumb(r, &d, profile)
	} else {
		entries = service.DisassembleARM(r, &d, profile)
	}

	opts := listingOptionsForStyle(*style)
	if err := listing.Write(os.Stdout, entries, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
		os.Exit(1)
	}

	if d.NotRecognized() > 0 {
		fmt.Fprintf(os.Stderr, "%d instruction(s) not recognized\n", d.NotRecognized())
	}
}

// dumpThumbOpcodeSpace renders every 16-bit Thumb opcode, one per line,
// with a zero lookahead half-word -- a full enumeration of the decode
// table rather than a disassembly of a real binary.
func dumpThumbOpcodeSpace(w *os.File, profile isa.Profile) {
	var d isa.Decoder
	for word := 0; word <= 0xFFFF; word++ {
		text, _ := d.DecodeThumb(uint32(word), profile)
		fmt.Fprintf(w, "%04X: %s\n", word, text)
	}
}

func listingOptionsForStyle(style string) *listing.Options {
	switch style {
	case "compact":
		return listing.CompactOptions()
	case "expanded":
		return listing.ExpandedOptions()
	default:
		return listing.DefaultOptions()
	}
}

func runAPIServer(port int) {
	server := api.NewServer(port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	performShutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nShutting down API server...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
				os.Exit(1)
			}

			fmt.Println("API server stopped")
			os.Exit(0)
		})
	}

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	performShutdown()
}

func printHelp() {
	fmt.Printf(`armdis %s

Usage: armdis [options] <binary-file>
       armdis -api-server [-port N]
       armdis -tui [options] <binary-file>

Options:
  -help              Show this help message
  -version           Show version information
  -mode MODE         Decode mode: arm or thumb (default: arm)
  -profile PROFILE   Architecture profile: v4t, v5te, v6 (default: v5te)
  -base ADDR         Base address of the first byte (default: 0x8000), ignored if -range is set
  -range R           Byte range to decode, e.g. 0x0:0x40 or 0x0:+64 (default: whole file)
  -style STYLE       Listing style: default, compact, expanded
  -tui               Browse the decoded listing in a TUI
  -api-server        Start HTTP+WebSocket decode-as-a-service (no file required)
  -port N            API server port (default: 8734, used with -api-server)
  -dump-thumb        Dump every 16-bit Thumb opcode and its rendering, then exit

Examples:
  armdis firmware.bin
  armdis -mode thumb -base 0x8000 firmware.bin
  armdis -range 0x100:+256 -style expanded firmware.bin
  armdis -tui firmware.bin
  armdis -api-server -port 9000
`, Version)
}
