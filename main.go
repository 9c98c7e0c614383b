package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

const version = "1.0.0"

var interrupted atomic.Bool

// installInterruptHandler is swapped out in tests.
var installInterruptHandler = setupSignalHandler

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		templateMode bool
		translate    bool
		fastMode     bool
		quiet        bool
		sourceLang   string
		targetLang   string
		showHelp     bool
		showVer      bool
	)

	fs := flag.NewFlagSet("poxls", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&templateMode, "template", false, "Leave the translation column empty when converting PO to XLSX")
	fs.BoolVar(&translate, "translate", false, "Machine translate empty entries when converting PO to XLSX")
	fs.BoolVar(&fastMode, "fast", false, "Use 0.1 second delay between translations (default: 1 second)")
	fs.BoolVar(&quiet, "quiet", false, "Do not display progress bars")
	fs.StringVar(&sourceLang, "source-lang", "en", "Source language code used with --translate")
	fs.StringVar(&targetLang, "target-lang", "", "Target language code used with --translate (default: Language header of the PO file)")
	fs.BoolVar(&showHelp, "help", false, "Display usage information")
	fs.BoolVar(&showVer, "version", false, "Display version information")
	fs.Usage = func() { printHelp(fs, stdout) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	if showVer {
		fmt.Fprintf(stdout, "poxls version %s\n", version)
		return 0
	}

	if showHelp {
		printHelp(fs, stdout)
		return 0
	}

	positional := fs.Args()
	var source, output string
	if len(positional) > 0 {
		source = positional[0]
	}
	if len(positional) > 1 {
		output = positional[1]
	}

	if source == "" || output == "" {
		fmt.Fprintln(stdout, "You need to specify two paths")
		return 1
	}

	opts := convertOptions{
		Template: templateMode,
		Log:      stdout,
	}
	if !quiet {
		opts.Progress = stderr
	}
	if translate && !templateMode {
		delay := time.Second
		if fastMode {
			delay = 100 * time.Millisecond
		}
		opts.Prefill = &prefillOptions{
			SourceLang: sourceLang,
			TargetLang: targetLang,
			Delay:      delay,
			Progress:   opts.Progress,
			Warnings:   stderr,
		}
		// Only the translation loop checks the flag; a plain conversion keeps
		// the default Ctrl-C behaviour.
		stop := installInterruptHandler()
		defer stop()
	}

	switch {
	case isPoFile(source) && isExcelFile(output):
		fmt.Fprintln(stdout, "Converting PO-file to XLSX...")
		if err := poToXls(source, output, opts); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	case isPoFile(output) && isExcelFile(source):
		fmt.Fprintln(stdout, "Converting XLSX to PO...")
		if err := xlsToPo(source, output, opts); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	default:
		fmt.Fprintln(stdout, "unknown file extensions!")
		return 1
	}

	fmt.Fprintln(stdout, "Done")
	return 0
}

// setupSignalHandler sets interrupted on Ctrl-C or SIGTERM until the
// returned func is called.
func setupSignalHandler() func() {
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			interrupted.Store(true)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}

func printHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "poxls - Convert PO files to XLSX spreadsheets and back")
	fmt.Fprintf(w, "\nUsage: poxls [options] <source> <output>\n\n")
	fmt.Fprintln(w, "The direction is chosen from the file extensions:")
	fmt.Fprintln(w, "  .po -> .xls/.xlsx/.xlsm/.xlsb   export entries to a spreadsheet")
	fmt.Fprintln(w, "  .xls/.xlsx/.xlsm/.xlsb -> .po   import a spreadsheet into a PO file")
	fmt.Fprintln(w, "\nOptions:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w, "\nExamples:")
	fmt.Fprintln(w, "  poxls messages_de.po messages_de.xlsx")
	fmt.Fprintln(w, "  poxls --template messages.po handoff.xlsx")
	fmt.Fprintln(w, "  poxls --translate --fast messages_fr.po messages_fr.xlsx")
	fmt.Fprintln(w, "  poxls messages_de.xlsx messages_de.po")
}
