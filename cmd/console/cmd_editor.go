package main

import (
	"fmt"

	"survey-console/internal/domain"
	"survey-console/internal/dto"

	"github.com/spf13/cobra"
)

func (c *console) editorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Drive the structuring editor session of a survey",
	}

	show := &cobra.Command{
		Use:   "show <survey-id>",
		Short: "Show the current editor session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.client.GetEditor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderEditor(cmd.OutOrStdout(), state)
			return nil
		},
	}

	var (
		actionType   string
		index        int
		name         string
		description  string
		questionType string
		options      []string
	)
	apply := &cobra.Command{
		Use:   "apply <survey-id>",
		Short: "Apply one editor action",
		Long: `Apply one editor action to the session.

Actions: addSection, beginRename, renameSection, cancelRename, deleteSection,
confirmDelete, cancelDelete, next, previous, select, addQuestion,
deleteQuestion, moveUp, moveDown.`,
		Example: `  survey-console editor apply 01HX... --type addQuestion --description "Age" --question-type text
  survey-console editor apply 01HX... --type select --index 2
  survey-console editor apply 01HX... --type renameSection --name "Profile"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.EditorActionRequest{Type: actionType, Name: name}
			if cmd.Flags().Changed("index") {
				i := index
				req.Index = &i
			}
			if description != "" || questionType != "" || len(options) > 0 {
				req.Question = &domain.Question{
					Description: description,
					Type:        domain.QuestionType(questionType),
					Options:     options,
				}
			}

			state, err := c.client.ApplyEditorAction(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			renderEditor(cmd.OutOrStdout(), state)
			return nil
		},
	}
	apply.Flags().StringVarP(&actionType, "type", "t", "", "Action type")
	apply.Flags().IntVarP(&index, "index", "i", 0, "Section or question index")
	apply.Flags().StringVar(&name, "name", "", "Section name for renameSection")
	apply.Flags().StringVar(&description, "description", "", "Question text for addQuestion")
	apply.Flags().StringVar(&questionType, "question-type", "", "Question type name or code for addQuestion")
	apply.Flags().StringSliceVar(&options, "option", nil, "Answer option for choice questions (repeatable)")
	_ = apply.MarkFlagRequired("type")

	save := &cobra.Command{
		Use:   "save <survey-id>",
		Short: "Validate and persist the session structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			survey, err := c.client.SaveEditor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "survey %s saved (%d sections, %d questions)\n",
				survey.ID, survey.SectionCount, survey.QuestionCount)
			return nil
		},
	}

	discard := &cobra.Command{
		Use:   "discard <survey-id>",
		Short: "Drop the session; the next show starts from the saved structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.DiscardEditor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.AddCommand(show, apply, save, discard)
	return cmd
}
