package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/sparse-knn/classifier"
	"github.com/viant/sparse-knn/dataset"
	"github.com/viant/sparse-knn/dataset/store"
	"github.com/viant/sparse-knn/engine"
	"github.com/viant/sparse-knn/vector"
)

type globalFlags struct {
	dbPath    string
	logLevel  string
	logFormat string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "knnclassify",
		Short:         "1-NN classification over sparse binary datasets",
		Long:          `Import labeled sparse binary datasets into SQLite and measure 1-nearest-neighbor classification accuracy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&flags.dbPath, "db", "datasets.sqlite", "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(newImportCmd(flags), newExportCmd(flags), newInfoCmd(flags), newRemoveCmd(flags), newEvaluateCmd(flags))
	return rootCmd
}

func (f *globalFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", f.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(f.logFormat) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", f.logFormat)
	}
}

func (f *globalFlags) openStore(ctx context.Context) (*store.Store, *sql.DB, error) {
	// Register functions before any connection work.
	if err := engine.RegisterFunctions(); err != nil {
		return nil, nil, err
	}
	db, err := engine.Open(f.dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	s, err := store.New(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return s, db, nil
}

func newImportCmd(flags *globalFlags) *cobra.Command {
	var numClasses, inputSize int
	cmd := &cobra.Command{
		Use:   "import <name> <file>",
		Short: "Import a text dataset (one '<class> <index>...' line per example)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			ds, err := dataset.ReadText(f, numClasses, inputSize)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			ctx := cmd.Context()
			s, db, err := flags.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			id, err := s.Save(ctx, name, ds)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported dataset %s (%s): %d examples in %d classes\n", name, id, ds.NumExamples(), len(ds))
			return nil
		},
	}
	cmd.Flags().IntVar(&numClasses, "classes", 10, "number of classes")
	cmd.Flags().IntVar(&inputSize, "input-size", 784, "feature vector length")
	return cmd
}

func newExportCmd(flags *globalFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a stored dataset in the text import format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, db, err := flags.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			ds, err := s.Load(ctx, args[0])
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return dataset.WriteText(cmd.OutOrStdout(), ds)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := dataset.WriteText(f, ds); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file ('-' for stdout)")
	return cmd
}

func newRemoveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a stored dataset and its examples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, db, err := flags.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := s.Remove(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed dataset %s\n", args[0])
			return nil
		},
	}
}

func newInfoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info [name]",
		Short: "List datasets or show per-class statistics of one dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, db, err := flags.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				infos, err := s.List(ctx)
				if err != nil {
					return err
				}
				for _, info := range infos {
					fmt.Fprintf(out, "%s\t%s\tclasses=%d\tinput=%d\n", info.Name, info.ID, info.NumClasses, info.InputSize)
				}
				return nil
			}

			stats, err := s.Stats(ctx, args[0])
			if err != nil {
				return err
			}
			for _, st := range stats {
				fmt.Fprintf(out, "Category=%d, num examples=%d, mean active=%.2f\n", st.Class, st.Examples, st.MeanActive)
			}
			return nil
		},
	}
}

func newEvaluateCmd(flags *globalFlags) *cobra.Command {
	var (
		trainName  string
		testName   string
		numClasses int
		k          int
		distance   string
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Train on one dataset and report accuracy on another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := flags.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			metric, err := vector.ParseDistanceFunction(distance)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, db, err := flags.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			train, err := s.Load(ctx, trainName)
			if err != nil {
				return err
			}
			test := train
			if testName != "" && testName != trainName {
				if test, err = s.Load(ctx, testName); err != nil {
					return err
				}
			}
			if numClasses <= 0 {
				numClasses = len(train)
			}

			c, err := classifier.New(numClasses, train.InputSize(),
				classifier.WithLogger(logger),
				classifier.WithDistance(metric))
			if err != nil {
				return err
			}
			if err := c.TrainDataset(train); err != nil {
				return err
			}
			report, err := c.EvaluateDataset(k, test)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&trainName, "train", "", "training dataset name")
	cmd.Flags().StringVar(&testName, "test", "", "test dataset name (defaults to the training dataset)")
	cmd.Flags().IntVar(&numClasses, "classes", 0, "number of classes to train (defaults to the training dataset's class count)")
	cmd.Flags().IntVar(&k, "k", 1, "number of neighbors (accepted, classification is always 1-NN)")
	cmd.Flags().StringVar(&distance, "distance", string(vector.DistanceFunctionSquaredL2), "distance function (squared_l2, l2)")
	_ = cmd.MarkFlagRequired("train")
	return cmd
}
