package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"portsniffer/config"
	"portsniffer/netutil"
	"portsniffer/output"
	"portsniffer/port"
	"portsniffer/scanner"
)

// resultDir holds report files written with -f.
const resultDir = "result"

func main() {
	var (
		addr       string
		start      = port.Number(config.DefaultStart)
		end        = port.Number(config.DefaultEnd)
		rangeSpec  string
		configPath string
		fileOut    string
		verbose    bool
		dialLimit  int
	)
	flag.StringVar(&addr, "i", config.DefaultAddress, "IPv4 address to scan")
	flag.StringVar(&addr, "ipaddr", config.DefaultAddress, "IPv4 address to scan (alias for -i)")
	flag.Var(&start, "s", "start port, must be > 0")
	flag.Var(&start, "start", "start port (alias for -s)")
	flag.Var(&end, "e", "end port, exclusive, must be <= 65535")
	flag.Var(&end, "end", "end port (alias for -e)")
	flag.StringVar(&rangeSpec, "p", "", "port range start-end, end exclusive (overrides -s/-e)")
	flag.StringVar(&configPath, "config", "", "YAML config file; explicit flags take precedence")
	flag.StringVar(&fileOut, "f", "", "also write the report to result/<file> (overwrite, atomic)")
	flag.BoolVar(&verbose, "v", false, "verbose logging to stderr")
	flag.IntVar(&dialLimit, "c", 0, "max sockets open at once (0 = derived from the open-file limit)")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			fail(2, "invalid config: %v", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i", "ipaddr":
			cfg.Address = addr
		case "s", "start":
			cfg.Start = int(start)
		case "e", "end":
			cfg.End = int(end)
		case "f":
			cfg.Output = fileOut
		case "v":
			cfg.Verbose = verbose
		case "c":
			cfg.DialLimit = dialLimit
		}
	})
	if rangeSpec != "" {
		s, e, err := port.ParseRange(rangeSpec)
		if err != nil {
			fail(2, "invalid port range: %v", err)
		}
		cfg.Start, cfg.End = int(s), int(e)
	}
	if err := cfg.Validate(); err != nil {
		flag.Usage()
		fail(2, "invalid ports: %v", err)
	}

	ip, err := netutil.ResolveTargetToIPv4(cfg.Address)
	if err != nil {
		fail(4, "failed to resolve target: %v", err)
	}
	req, err := port.NewScanRequest(ip, uint16(cfg.Start), uint16(cfg.End))
	if err != nil {
		fail(2, "invalid scan request: %v", err)
	}

	logger := output.NewLogger(os.Stderr, cfg.Verbose)
	logger.Printf("target %s -> %s", cfg.Address, ip)

	s := scanner.New(scanner.Config{
		Request:   req,
		Progress:  os.Stdout,
		Logger:    logger,
		DialLimit: int64(cfg.DialLimit),
	})
	report, err := s.Run(context.Background())
	if err != nil {
		fail(4, "scan failed: %v", err)
	}

	if err := output.PrintReport(os.Stdout, report); err != nil {
		fail(4, "failed to write to stdout: %v", err)
	}

	if cfg.Output != "" {
		outPath := filepath.Join(resultDir, cfg.Output)
		if err := output.WriteReportFile(outPath, report); err != nil {
			fail(4, "failed to write output file: %v", err)
		}
		logger.Printf("report written to %s", outPath)
	}
}

func fail(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
