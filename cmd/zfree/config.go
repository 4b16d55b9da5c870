// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/businessperformancetuning/zfree/report"
	"github.com/decred/dcrd/dcrutil"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "zfree.log"
	defaultConfigName  = "zfree.conf"
	defaultWidth       = report.DefaultWidth
)

var (
	defaultHomeDir    = dcrutil.AppDataDir("zfree", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigName)
)

// config defines the configuration options for zfree.
//
// See loadConfig for details on the configuration load process.
type config struct {
	HomeDir     string `short:"A" long:"appdata" description:"Path to application home directory"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir      string `long:"logdir" description:"Directory to log output, logging to a file is disabled when unset"`

	Output string `short:"o" long:"output" description:"Comma-separated list of output columns {total, used, available, bufcache, free, compdata, comptotal, compratio}"`
	Kibi   bool   `short:"k" long:"kibi" description:"Show output in kibibytes"`
	Kilo   bool   `short:"K" long:"kilo" description:"Show output in kilobytes"`
	Mebi   bool   `short:"m" long:"mebi" description:"Show output in mebibytes (default)"`
	Mega   bool   `short:"M" long:"mega" description:"Show output in megabytes"`
	Gibi   bool   `short:"g" long:"gibi" description:"Show output in gibibytes"`
	Giga   bool   `short:"G" long:"giga" description:"Show output in gigabytes"`
	NoUnit bool   `short:"n" long:"no-unit" description:"Omit unit suffixes from displayed values"`
	Human  bool   `short:"H" long:"human" description:"Autorange each value (human readable)"`
	SI     bool   `long:"si" description:"(-H only) use powers of 1000 not 1024"`
	NoSwap bool   `short:"S" long:"no-swap" description:"Do not display disk swap stats"`
	NoZram bool   `short:"Z" long:"no-zram" description:"Do not display zram swap stats"`
	NoPSI  bool   `short:"P" long:"no-psi" description:"Do not display memory pressure"`
	Width  int    `short:"w" long:"width" description:"Output width of each column"`

	unit    report.Unit
	columns []report.Column // nil selects the default column set
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace":
		fallthrough
	case "debug":
		fallthrough
	case "info":
		fallthrough
	case "warn":
		fallthrough
	case "error":
		fallthrough
	case "critical":
		return true
	}
	return false
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	// Convert the subsystemLoggers map keys to a slice.
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsytems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "The specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "The specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "The specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "The specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// selectUnit resolves the unit flags to a single display unit. At most
// one unit flag may be given; none selects the default.
func selectUnit(cfg *config) (report.Unit, error) {
	units := map[report.Unit]bool{
		report.UnitKibi: cfg.Kibi,
		report.UnitKilo: cfg.Kilo,
		report.UnitMebi: cfg.Mebi,
		report.UnitMega: cfg.Mega,
		report.UnitGibi: cfg.Gibi,
		report.UnitGiga: cfg.Giga,
	}
	selected := report.DefaultUnit
	enabled := 0
	for u, on := range units {
		if on {
			selected = u
			enabled++
		}
	}
	if enabled > 1 {
		return "", fmt.Errorf("cannot specify more than 1 unit")
	}
	if cfg.Human && enabled != 0 {
		return "", fmt.Errorf("cannot combine a unit flag with --human")
	}
	return selected, nil
}

// validateDisplay checks the display options that interact with each
// other after the unit flags have already been resolved.
func validateDisplay(cfg *config) error {
	if cfg.SI && !cfg.Human {
		return fmt.Errorf("--si only has effect in combination " +
			"with --human")
	}
	if cfg.NoUnit && cfg.Human {
		return fmt.Errorf("cannot combine --no-unit with --human")
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("width must be positive: %v", cfg.Width)
	}
	return nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// The above results in functioning properly without any config settings
// while still allowing the user to override settings with config files and
// command line options.  Command line options always take precedence.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		HomeDir:    defaultHomeDir,
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultLogLevel,
		Width:      defaultWidth,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		// Note that the usage message is printed to stderr and the
		// process exits non-zero even for an explicit help request.
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s --help to show usage", appName)
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

	// Update the home directory if specified. Since the home directory
	// is updated, other variables need to be updated to reflect the new
	// changes.
	if preCfg.HomeDir != "" {
		cfg.HomeDir, _ = filepath.Abs(preCfg.HomeDir)

		if preCfg.ConfigFile == defaultConfigFile {
			cfg.ConfigFile = filepath.Join(cfg.HomeDir,
				defaultConfigName)
		} else {
			cfg.ConfigFile = preCfg.ConfigFile
		}
	}

	// Load additional config from file when one exists.
	parser := newConfigParser(&cfg, flags.Default)
	if fileExists(cfg.ConfigFile) {
		err = flags.NewIniParser(parser).ParseFile(cfg.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing config "+
				"file: %v\n", err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Initialize log rotation when a log directory was requested.  After
	// log rotation has been initialized, the logger variables may be
	// used.
	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("loadConfig: %v", err.Error())
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Resolve the display unit.
	cfg.unit, err = selectUnit(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}
	if err := validateDisplay(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Resolve the column selection. An empty -o keeps the default set,
	// which depends on whether a zram device turns up and is therefore
	// resolved later.
	if cfg.Output != "" {
		cfg.columns, err = report.ParseColumns(cfg.Output)
		if err != nil {
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
	}

	return &cfg, remainingArgs, nil
}
