package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/hitfilter/internal/domain/entity"
	"github.com/kailas-cloud/hitfilter/internal/domain/filter"
	"github.com/kailas-cloud/hitfilter/internal/usecase/evaluate"
)

func evalCmd(a *app) *cobra.Command {
	var (
		filterText string
		formIDs    []string
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a keyword filter against forms in the world",
		Long: `Evaluate a keyword filter against forms in the world.

Conditions are separated by commas or semicolons. Prefix a condition with
'!' or '-' to negate it, and with actor:, armor:, magic: or editorid: to set
its scope. Unprefixed conditions are classified by the configured patterns.`,
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE: a.run(func(cmd *cobra.Command) error {
			world, err := a.loadWorld()
			if err != nil {
				return err
			}

			list, err := filter.Parse(filterText, a.cfg.Patterns.SplitDelimiter, a.patterns)
			if err != nil {
				return fmt.Errorf("parse filter: %w", err)
			}

			forms := world.Forms()
			if len(formIDs) > 0 {
				forms = make([]entity.Form, 0, len(formIDs))
				for _, id := range formIDs {
					f, err := world.Form(id)
					if err != nil {
						return err
					}
					forms = append(forms, f)
				}
			}

			outcomes, err := evaluate.New().EvaluateAll(cmd.Context(), list, forms)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, o := range outcomes {
				fmt.Fprintf(out, "%s\t%t\n", o.Form.EditorID(), o.Matched)
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&filterText, "filter", "f", "", "filter conditions, e.g. \"ActorTypeNPC, !ArmorHeavy\"")
	cmd.Flags().StringSliceVar(&formIDs, "form", nil, "editor IDs to evaluate (default: every form)")
	return cmd
}
