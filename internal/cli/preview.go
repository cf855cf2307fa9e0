package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/storygraph/storygraph/pkg/render"
)

// newPreviewCmd creates the preview command: render a DOT document straight
// to SVG without contacting the backend. Useful for iterating on graph
// styling with the dot output of the render command.
func newPreviewCmd() *cobra.Command {
	var (
		output string
		engine string
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a DOT document to SVG",
		Long:  `Preview renders a Graphviz DOT document to SVG using the same post-processing as the render command. Reads from stdin when no file is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dot, err := readDOT(args)
			if err != nil {
				return err
			}
			eng := render.EngineNeato
			if engine != "" {
				eng, err = render.ParseEngine(engine)
				if err != nil {
					return err
				}
			}
			res, err := render.Render(cmd.Context(), string(dot), eng)
			if err != nil {
				return err
			}
			return writeOutput(output, res.SVG)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&engine, "engine", "neato", "layout engine: neato or dot")

	return cmd
}

func readDOT(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}
