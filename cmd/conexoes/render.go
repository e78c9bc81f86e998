package main

import (
	"fmt"
	"io"
	"strings"

	"Conexoes/pkg/content"
	"Conexoes/pkg/dom"
	"Conexoes/pkg/render"
	"Conexoes/pkg/state"
	"Conexoes/pkg/tui"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

var (
	renderScreen string
	renderView   string
	renderAuth   bool
	renderFormat string
	renderWidth  int
	renderSelect string
)

// renderCmd renders one screen to stdout and exits
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single screen as text or HTML",
	Long: `Builds the UI state through the same SetState transitions the
interactive UI uses, renders once and prints the result.

Examples:
  conexoes render --auth --screen community
  conexoes render --auth --screen messages --view checklist --format html
  conexoes render --auth --format html --select "nav.bottom-nav .active"`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderScreen, "screen", "s", "", "Screen to show (discover, community, messages, profile)")
	renderCmd.Flags().StringVar(&renderView, "view", "", "Messages sub-view (main, checklist)")
	renderCmd.Flags().BoolVarP(&renderAuth, "auth", "a", false, "Render as a signed-in user")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "text", "Output format: text or html")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Text width (default: ui.max_width)")
	renderCmd.Flags().StringVar(&renderSelect, "select", "", "CSS selector filtering the output")
}

func runRender(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(renderFormat)
	if format != "text" && format != "html" {
		return fmt.Errorf("unknown format %q (want text or html)", renderFormat)
	}

	catalog, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	log := appLog.Sugar()
	app := render.NewApp(cfg.InitialState(), catalog, log)
	for _, p := range renderPatches() {
		app.Store.SetState(p)
	}
	appLog.Debug("render command: state=%+v format=%s", app.Store.State(), format)

	out := cmd.OutOrStdout()
	if renderSelect != "" {
		return writeSelection(out, app.Root(), renderSelect, format)
	}
	if format == "html" {
		if err := dom.RenderHTML(out, app.Root()); err != nil {
			return fmt.Errorf("failed to write html: %w", err)
		}
		fmt.Fprintln(out)
		return nil
	}

	width := renderWidth
	if width <= 0 {
		width = cfg.UI.MaxWidth
	}
	if width <= 0 {
		width = 72
	}
	fmt.Fprintln(out, tui.Snapshot(app, cfg.UI.Theme, width))
	return nil
}

// renderPatches turns the flags into the transitions a user would make.
func renderPatches() []state.Patch {
	var patches []state.Patch
	if renderAuth {
		patches = append(patches, state.SignIn())
	}
	if renderScreen != "" {
		patches = append(patches, state.Navigate(state.ParseScreen(renderScreen)))
	}
	if renderView != "" {
		patches = append(patches, state.ShowView(state.ParseView(renderView)))
	}
	return patches
}

// writeSelection prints the nodes matching selector, as HTML or as text.
func writeSelection(w io.Writer, root *dom.Node, selector, format string) error {
	page, err := dom.HTML(root)
	if err != nil {
		return fmt.Errorf("failed to export html: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return fmt.Errorf("failed to parse html: %w", err)
	}

	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return fmt.Errorf("no element matches %q", selector)
	}

	var writeErr error
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if format == "html" {
			h, err := goquery.OuterHtml(s)
			if err != nil {
				writeErr = err
				return false
			}
			fmt.Fprintln(w, h)
			return true
		}
		fmt.Fprintln(w, strings.Join(strings.Fields(s.Text()), " "))
		return true
	})
	return writeErr
}
