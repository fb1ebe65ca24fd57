// Package cli implements the gfret command-line interface.
//
// The CLI computes fretboard layouts and writes them to disk. It is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PDF, PNG, DXF or JSON fretboard templates
//   - info: Print the derived factors and a table of fret distances
//   - open: Recover the measurements embedded in a rendered SVG
//   - template: Save and show measurement templates
//   - config: Manage the rendering preferences file
//   - cache: Manage the rendered artifact cache
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli
