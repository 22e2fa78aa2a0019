package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"goherit/adapters/report"
	"goherit/app"
	"goherit/domain/core"
	"goherit/domain/genetics"
	"goherit/internal/config"
	"goherit/internal/container"
	"goherit/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "goherit",
		Short: "Exact posterior inference over family pedigrees",
		Long: `goherit computes, for every person in a family pedigree, the posterior
probability of carrying 0, 1, or 2 copies of a gene and of exhibiting the
associated trait, given partial trait observations.

Input is a name,mother,father,trait table: CSV, xlsx workbook, or SQLite
database (people table keyed by family).`,
	}

	rootCmd.AddCommand(
		newPredictCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPredictCmd() *cobra.Command {
	var format string
	var workers int
	var summary bool
	var sheet string
	var family string

	cmd := &cobra.Command{
		Use:   "predict [pedigree-file]",
		Short: "Compute gene and trait posteriors for every person",
		Long: `Run exact inference over one pedigree file and print each person's
posterior distributions.

Enumeration is exhaustive, so runtime grows exponentially with family size;
--workers splits the sweep across goroutines for larger pedigrees.

Example: goherit predict data/family0.csv --format json --summary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Report.Format = format
			}
			if cmd.Flags().Changed("workers") {
				cfg.Engine.Workers = workers
			}
			if cmd.Flags().Changed("summary") {
				cfg.Report.Summary = summary
			}
			if cmd.Flags().Changed("sheet") {
				cfg.Input.Sheet = sheet
			}
			if cmd.Flags().Changed("family") {
				cfg.Input.Family = family
			}
			return runPredict(cmd.Context(), cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatText, "Output format: text|json")
	cmd.Flags().IntVar(&workers, "workers", 1, "Enumeration workers (-1 for one per CPU)")
	cmd.Flags().BoolVar(&summary, "summary", false, "Append cohort summary statistics")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for xlsx input")
	cmd.Flags().StringVar(&family, "family", "", "Family key for sqlite input")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var sheet string
	var family string

	cmd := &cobra.Command{
		Use:   "validate [pedigree-file]",
		Short: "Check a pedigree file without running inference",
		Long: `Load a pedigree file and run structural validation: resolvable parents,
both parents or neither, no duplicate names, no ancestry cycles, parseable
trait observations.

Example: goherit validate data/family0.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sheet") {
				cfg.Input.Sheet = sheet
			}
			if cmd.Flags().Changed("family") {
				cfg.Input.Family = family
			}
			return runValidate(cmd.Context(), cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for xlsx input")
	cmd.Flags().StringVar(&family, "family", "", "Family key for sqlite input")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and probability model constants",
		Run: func(cmd *cobra.Command, args []string) {
			model := genetics.DefaultModel()
			fmt.Printf("goherit %s\n", app.Version)
			fmt.Printf("  Gene prior:     P(2)=%.2f P(1)=%.2f P(0)=%.2f\n",
				model.GenePrior[2], model.GenePrior[1], model.GenePrior[0])
			fmt.Printf("  Trait emission: P(t|2)=%.2f P(t|1)=%.2f P(t|0)=%.2f\n",
				model.TraitGivenGene[2], model.TraitGivenGene[1], model.TraitGivenGene[0])
			fmt.Printf("  Mutation:       %.2f\n", model.Mutation)
			fmt.Printf("  Model hash:     %s\n", model.Hash())
		},
	}
}

func runPredict(ctx context.Context, cfg *config.Config, path string) error {
	if err := config.ValidateFormat(cfg.Report.Format); err != nil {
		return err
	}

	c, err := container.New(cfg)
	if err != nil {
		return err
	}
	if err := c.InitForPath(path); err != nil {
		return errors.WithCode(errors.CodeInvalidInput, err)
	}

	result, err := c.Service.Run(ctx, app.RunRequest{})
	if err != nil {
		if core.IsInputError(err) {
			return errors.WithCode(errors.CodeInvalidInput, err)
		}
		return errors.InferenceFailed(err)
	}

	writer, err := report.ForFormat(cfg.Report.Format, cfg.Report.Summary)
	if err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	if err := writer.Write(os.Stdout, result); err != nil {
		return errors.ReportFailed(err)
	}
	return nil
}

func runValidate(ctx context.Context, cfg *config.Config, path string) error {
	c, err := container.New(cfg)
	if err != nil {
		return err
	}
	if err := c.InitForPath(path); err != nil {
		return errors.WithCode(errors.CodeInvalidInput, err)
	}

	reg, err := c.Service.ValidateSource(ctx)
	if err != nil {
		return errors.WithCode(errors.CodeInvalidInput, err)
	}

	fmt.Printf("%s: valid pedigree\n", path)
	fmt.Printf("  People: %d\n", reg.Size())
	fmt.Printf("  Founders: %d\n", reg.Founders())
	fmt.Printf("  Observed traits: %d\n", reg.Observations())
	return nil
}
