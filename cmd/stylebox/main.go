/*
Command stylebox styles an HTML document and prints its box tree.

Usage:

    stylebox [flags] document.html

Stylesheets embedded in the document with <style> elements are applied
first, followed by stylesheets given with flag --css. The result is printed
as an outline (--format tree) or as a GraphViz diagram (--format dot).
With --styled, the styled tree is printed instead of the box tree.

Every flag may be set by an environment variable as well, prefixed with
STYLEBOX_, e.g. STYLEBOX_MAX_DEPTH=200.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/stylebox/dom/domdbg"
	"github.com/npillmayer/stylebox/dom/htmladapter"
	"github.com/npillmayer/stylebox/dom/style/css"
	"github.com/npillmayer/stylebox/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/stylebox/frame"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracer traces with key 'stylebox.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("stylebox.cmd")
}

// traceKeys are the tracing keys of all packages involved in a run.
var traceKeys = []string{
	"stylebox.cmd",
	"stylebox.dom",
	"stylebox.style",
	"stylebox.cssom",
	"stylebox.cascade",
	"stylebox.frame",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// config collects the settings for a run.
type config struct {
	CSSFiles []string
	Format   string // tree | dot
	Styled   bool   // print styled tree instead of box tree
	MaxDepth int
	Workers  int
	Trace    string // error | info | debug
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "stylebox [flags] document.html",
		Short:        "Style an HTML document and print its box tree",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config{
				CSSFiles: v.GetStringSlice("css"),
				Format:   v.GetString("format"),
				Styled:   v.GetBool("styled"),
				MaxDepth: v.GetInt("max-depth"),
				Workers:  v.GetInt("workers"),
				Trace:    v.GetString("trace"),
			}
			if err := setTraceLevel(cfg.Trace); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), args[0], cfg)
		},
	}
	flags := cmd.Flags()
	flags.StringSlice("css", nil, "stylesheet file to apply after embedded styles (repeatable)")
	flags.StringP("format", "f", "tree", "output format: tree | dot")
	flags.Bool("styled", false, "print the styled tree instead of the box tree")
	flags.Int("max-depth", 0, "maximum nesting depth of the document, 0 for unlimited")
	flags.Int("workers", 1, "number of goroutines for styling")
	flags.String("trace", "error", "trace level: error | info | debug")
	//
	v.SetEnvPrefix("STYLEBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

var installTracer sync.Once

// setTraceLevel installs a tracer logging to stderr, shared by all
// trace keys, and sets its level.
func setTraceLevel(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "", "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	installTracer.Do(func() {
		tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	})
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// run reads an HTML document, styles it and writes the result to w.
func run(w io.Writer, htmlFile string, cfg config) error {
	if cfg.Format != "tree" && cfg.Format != "dot" {
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
	f, err := os.Open(htmlFile)
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := htmladapter.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", htmlFile, err)
	}
	sheet, err := douceuradapter.ExtractStyleSheet(doc)
	if err != nil {
		return fmt.Errorf("%s: embedded style: %w", htmlFile, err)
	}
	for _, cssFile := range cfg.CSSFiles {
		text, err := os.ReadFile(cssFile)
		if err != nil {
			return err
		}
		s, err := douceuradapter.Parse(string(text))
		if err != nil {
			return fmt.Errorf("%s: %w", cssFile, err)
		}
		sheet.AppendRules(s)
	}
	tracer().Infof("styling %s with %d rules", htmlFile, len(sheet.Rules()))
	resolver := css.NewResolver(sheet, css.MaxDepth(cfg.MaxDepth), css.Workers(cfg.Workers))
	styled, err := resolver.Resolve(doc)
	if err != nil {
		return err
	}
	if cfg.Styled {
		if cfg.Format == "dot" {
			return domdbg.StyledTreeToGraphViz(styled, w)
		}
		_, err = io.WriteString(w, domdbg.PrintStyledTree(styled))
		return err
	}
	boxes, err := frame.NewBuilder(frame.MaxDepth(cfg.MaxDepth)).Build(styled)
	if err != nil {
		return err
	}
	if cfg.Format == "dot" {
		return domdbg.BoxTreeToGraphViz(boxes, w)
	}
	_, err = io.WriteString(w, domdbg.PrintBoxTree(boxes))
	return err
}
