// Command layergen scaffolds the full artifact stack for one entity of
// a layered application. The command layer only assembles options,
// loads project defaults, and renders the returned manifest; all
// generation logic lives in compiler/gen.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/layergen/compiler/gen"
	"github.com/syssam/layergen/compiler/gen/csharp"
	"github.com/syssam/layergen/compiler/load"
	"github.com/syssam/layergen/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "layergen",
		Short:         "Scaffold layered-application entities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	opts := &load.Options{}
	cmd := &cobra.Command{
		Use:   "generate <entity>",
		Short: "Generate the artifact stack for one entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			defs, err := config.LoadDir(opts.OutputRoot)
			if err != nil {
				return err
			}
			return run(cmd, opts, defs)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Create, "create", false, "generate the create operation")
	f.BoolVar(&opts.Read, "read", false, "generate the read operations")
	f.BoolVar(&opts.Update, "update", false, "generate the update operation")
	f.BoolVar(&opts.Delete, "delete", false, "generate the delete operation")
	f.BoolVar(&opts.All, "all", false, "generate all four operations")
	f.StringVar(&opts.EntityType, "entity-type", "", "entity tier: basic, audited, or fullyaudited")
	f.BoolVar(&opts.SkipTests, "skip-tests", false, "skip test artifacts for this run")
	f.BoolVar(&opts.SkipPermissions, "skip-permissions", false, "skip access-control artifacts for this run")
	f.StringVar(&opts.Template, "template", "", "template set to render with")
	f.StringVarP(&opts.OutputRoot, "output", "o", ".", "output root directory")
	f.BoolVar(&opts.DryRun, "dry-run", false, "plan and render everything without writing files")
	return cmd
}

func run(cmd *cobra.Command, opts *load.Options, defs *load.Defaults) error {
	plan, err := gen.ResolvePlan(opts, defs)
	if err != nil {
		return err
	}
	g, err := gen.New(plan, gen.WithTemplateSet(csharp.Lookup(plan.Template)))
	if err != nil {
		return err
	}

	if opts.DryRun {
		tree, manifest, err := g.DryRun()
		if err != nil {
			return err
		}
		printPreview(cmd, plan, tree)
		printManifest(cmd, manifest)
		return nil
	}

	manifest, err := g.Generate()
	if manifest != nil {
		printManifest(cmd, manifest)
	}
	return err
}

func printPreview(cmd *cobra.Command, plan *gen.Plan, tree *gen.PreviewTree) {
	bold := color.New(color.Bold).SprintFunc()
	cmd.Printf("%s (%d artifacts, nothing written)\n", bold(plan.Entity.Singular), tree.Len())
	for _, c := range gen.Categories {
		group := tree.Group(c)
		if len(group) == 0 {
			continue
		}
		cmd.Printf("  %s\n", bold(string(c)))
		for _, a := range group {
			cmd.Printf("    %s\n", a.Path)
		}
	}
}

func printManifest(cmd *cobra.Command, m *gen.Manifest) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	for _, e := range m.Entries {
		switch e.Status {
		case gen.StatusWritten:
			cmd.Printf("%s %s\n", green("write"), e.RelativePath)
		case gen.StatusFailed:
			cmd.Printf("%s %s\n", red("fail "), e.RelativePath)
		case gen.StatusPending:
			cmd.Printf("%s %s\n", yellow("skip "), e.RelativePath)
		default:
			cmd.Printf("%s %s\n", yellow("plan "), e.RelativePath)
		}
	}
}
