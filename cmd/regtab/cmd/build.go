package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/regtab/regtab"
	"github.com/regtab/regtab/internal/cmd/globals"
	"github.com/regtab/regtab/internal/cmd/output"
	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/extract"
	"github.com/regtab/regtab/pkg/labels"
	"github.com/regtab/regtab/pkg/logging"
	"github.com/regtab/regtab/pkg/reconcile"
)

// buildFlags holds the flags of the build command.
type buildFlags struct {
	labelList    []string
	labelMap     map[string]string
	headerList   []string
	headerMap    map[string]string
	keep         []string
	remove       []string
	transform    string
	collapseCI   bool
	collapseSE   bool
	showStdError bool
	showStd      bool
	showStat     bool
	showDF       bool
	hideCI       bool
	hideP        bool
	kindHeaders  map[string]string
	metadataFile string
	outFile      string
}

var buildArgs buildFlags

// buildCmd turns model summary files into a unified table.
var buildCmd = &cobra.Command{
	Use:   "build <model.yaml> [model.yaml...]",
	Short: "Build a unified summary table from model summaries",
	Long: `Build reads one or more serialized fitted-model summaries and emits
the unified coefficient table. Models whose summaries carry no
recognizable coefficient table are omitted with a warning; the
remaining models still render.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()

	f.StringSliceVar(&buildArgs.labelList, "labels", nil,
		"Positional predictor labels; length must match the displayed rows")
	f.StringToStringVar(&buildArgs.labelMap, "label", nil,
		"Keyed predictor label override, term=label (repeatable)")
	f.StringSliceVar(&buildArgs.headerList, "headers", nil,
		"Positional model column headers")
	f.StringToStringVar(&buildArgs.headerMap, "header", nil,
		"Keyed model header override, model=label (repeatable)")
	f.StringSliceVar(&buildArgs.keep, "keep", nil,
		"Keep only these coefficient terms")
	f.StringSliceVar(&buildArgs.remove, "remove", nil,
		"Remove these coefficient terms")
	f.StringVar(&buildArgs.transform, "transform", "auto",
		"Estimate scale: auto, exp, or linear")
	f.BoolVar(&buildArgs.collapseCI, "collapse-ci", false,
		"Fold the CI into the estimate column")
	f.BoolVar(&buildArgs.collapseSE, "collapse-se", false,
		"Fold the standard error into the estimate column")
	f.BoolVar(&buildArgs.showStdError, "std-error", false,
		"Show the standard error column")
	f.BoolVar(&buildArgs.showStd, "std", false,
		"Show standardized estimate columns")
	f.BoolVar(&buildArgs.showStat, "statistic", false,
		"Show the test statistic column")
	f.BoolVar(&buildArgs.showDF, "df", false,
		"Show degrees of freedom for model families that report them")
	f.BoolVar(&buildArgs.hideCI, "no-ci", false,
		"Hide the confidence interval column")
	f.BoolVar(&buildArgs.hideP, "no-p", false,
		"Hide the p-value column")
	f.StringToStringVar(&buildArgs.kindHeaders, "kind-header", nil,
		"Custom header per column kind, kind=header (repeatable)")
	f.StringVar(&buildArgs.metadataFile, "metadata", "",
		"Variable/level metadata file enabling automatic labelling")
	f.StringVar(&buildArgs.outFile, "out", "",
		"Write output to file instead of stdout")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	builder, err := regtab.New(opts...)
	if err != nil {
		return err
	}

	result, err := builder.BuildFiles(ctx, args...)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		logging.FromContext(ctx).Warn().Msg(warning)
	}

	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}

	w := os.Stdout
	if buildArgs.outFile != "" {
		file, err := os.Create(buildArgs.outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	data := output.TableToData(result.Table)
	return output.NewFormatter(format).Format(w, data)
}

// buildOptions assembles builder options from the command flags.
func buildOptions() ([]regtab.Option, error) {
	var opts []regtab.Option

	switch buildArgs.transform {
	case "auto", "":
	case "exp":
		opts = append(opts, regtab.WithTransform(extract.TransformExponentiate))
	case "linear":
		opts = append(opts, regtab.WithTransform(extract.TransformLinear))
	default:
		return nil, fmt.Errorf("invalid transform %q: must be one of: auto, exp, linear", buildArgs.transform)
	}

	if len(buildArgs.labelList) > 0 {
		opts = append(opts, regtab.WithPredictorLabels(coefficients.Positional(buildArgs.labelList...)))
	} else if len(buildArgs.labelMap) > 0 {
		opts = append(opts, regtab.WithPredictorLabels(coefficients.Keyed(buildArgs.labelMap)))
	}

	if len(buildArgs.headerList) > 0 {
		opts = append(opts, regtab.WithModelHeaders(coefficients.Positional(buildArgs.headerList...)))
	} else if len(buildArgs.headerMap) > 0 {
		opts = append(opts, regtab.WithModelHeaders(coefficients.Keyed(buildArgs.headerMap)))
	}

	// Both sets pass through so the reconciler rejects the
	// combination itself; choosing one here would hide the error.
	if len(buildArgs.keep) > 0 || len(buildArgs.remove) > 0 {
		filter := &coefficients.TermFilter{}
		if len(buildArgs.keep) > 0 {
			filter.WithKeep(buildArgs.keep...)
		}
		if len(buildArgs.remove) > 0 {
			filter.WithRemove(buildArgs.remove...)
		}
		opts = append(opts, regtab.WithTermFilter(filter))
	}

	columns := reconcile.DefaultColumns()
	columns.StdError = buildArgs.showStdError
	columns.Standardized = buildArgs.showStd
	columns.Statistic = buildArgs.showStat
	columns.DF = buildArgs.showDF
	columns.CI = !buildArgs.hideCI
	columns.PValue = !buildArgs.hideP
	columns.CollapseCI = buildArgs.collapseCI
	columns.CollapseSE = buildArgs.collapseSE
	opts = append(opts, regtab.WithColumns(columns))

	if len(buildArgs.kindHeaders) > 0 {
		headers := make(map[coefficients.ColumnKind]string, len(buildArgs.kindHeaders))
		for kind, header := range buildArgs.kindHeaders {
			headers[coefficients.ColumnKind(kind)] = header
		}
		opts = append(opts, regtab.WithColumnHeaders(headers))
	}

	if buildArgs.metadataFile != "" {
		provider, err := labels.LoadFile(buildArgs.metadataFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, regtab.WithLabelProvider(provider))
	}

	return opts, nil
}
