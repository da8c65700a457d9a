package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xform/internal/adapters/report"
	"go.trai.ch/xform/internal/app"
	"go.trai.ch/xform/internal/ui/output"
	"go.trai.ch/xform/internal/ui/style"
)

// resultJSON is the --json form of one resolved entity. Matrix holds the 16
// values in column-major order.
type resultJSON struct {
	Name   string      `json:"name"`
	Matrix [16]float32 `json:"matrix"`
}

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [entities...]",
		Short: "Resolve entity transforms and print the matrices",
		Long: "Resolve the transform property of the named entities, or of every entity " +
			"carrying one when no names are given, and print the resulting matrices.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			lenient, _ := cmd.Flags().GetBool("lenient")
			traced, _ := cmd.Flags().GetBool("trace")
			asJSON, _ := cmd.Flags().GetBool("json")

			results, err := c.app.Resolve(cmd.Context(), file, args, app.ResolveOptions{
				Lenient: lenient,
				Trace:   traced,
			})

			var printErr error
			if asJSON {
				printErr = printJSON(cmd.OutOrStdout(), results)
			} else {
				printText(cmd.OutOrStdout(), results)
			}
			if err != nil {
				return err
			}
			return printErr
		},
	}
	addSceneFlags(cmd)
	cmd.Flags().Bool("json", false, "Print the matrices as JSON")
	return cmd
}

func printText(w io.Writer, results []app.Result) {
	out := output.New(w)
	for _, r := range results {
		name := output.Paint(out, r.Name, string(style.Accent))
		_, _ = fmt.Fprintf(out, "%s %s\n", name, report.FormatMatrix(r.Matrix))
	}
}

func printJSON(w io.Writer, results []app.Result) error {
	doc := make([]resultJSON, len(results))
	for i, r := range results {
		doc[i] = resultJSON{Name: r.Name, Matrix: r.Matrix}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
