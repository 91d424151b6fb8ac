package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *console) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List, toggle and delete users",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List users, optionally filtered by name, identification or role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.client.ListUsers(cmd.Context(), search)
			if err != nil {
				return err
			}
			renderUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "Filter text")

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a user between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.ToggleUserState(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s is now %s\n", resp.ID, stateLabel(resp.State))
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.DeleteUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s deleted\n", resp.ID)
			return nil
		},
	}

	cmd.AddCommand(list, toggle, del)
	return cmd
}

func (c *console) rolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List, toggle and delete roles",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List roles with their permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, err := c.client.ListRoles(cmd.Context(), search)
			if err != nil {
				return err
			}
			renderRoles(cmd.OutOrStdout(), roles)
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "Filter text")

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a role between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.ToggleRoleState(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "role %s is now %s\n", resp.ID, stateLabel(resp.State))
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.DeleteRole(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "role %s deleted\n", resp.ID)
			return nil
		},
	}

	permissions := &cobra.Command{
		Use:   "permissions",
		Short: "List the permission catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perms, err := c.client.ListPermissions(cmd.Context())
			if err != nil {
				return err
			}
			renderPermissions(cmd.OutOrStdout(), perms)
			return nil
		},
	}

	cmd.AddCommand(list, toggle, del, permissions)
	return cmd
}

func (c *console) surveysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surveys",
		Short: "List, inspect and toggle surveys",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List surveys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			surveys, err := c.client.ListSurveys(cmd.Context(), search)
			if err != nil {
				return err
			}
			renderSurveys(cmd.OutOrStdout(), surveys)
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "Filter text")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a survey and its persisted structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			survey, err := c.client.GetSurvey(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderSurvey(cmd.OutOrStdout(), survey)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a survey between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.ToggleSurveyState(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "survey %s is now %s\n", resp.ID, stateLabel(resp.State))
			return nil
		},
	}

	cmd.AddCommand(list, show, toggle)
	return cmd
}

func (c *console) questionTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "question-types",
		Short: "List the supported question types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.ListQuestionTypes(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(resp.Types))
			for _, qt := range resp.Types {
				options := "no"
				if qt.NeedOptions {
					options = "yes"
				}
				rows = append(rows, []string{qt.ID, string(qt.Type), qt.Label, options})
			}
			renderTable(cmd.OutOrStdout(), []string{"CODE", "TYPE", "LABEL", "OPTIONS"}, rows)
			return nil
		},
	}
}

func (c *console) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the API and its dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.Health(cmd.Context())
			if err != nil {
				return err
			}
			renderTable(cmd.OutOrStdout(), []string{"STATUS", "DATABASE", "CACHE"},
				[][]string{{resp.Status, resp.Database, resp.Cache}})
			return nil
		},
	}
}
