package main

import (
	"strconv"

	"survey-console/internal/domain"
	"survey-console/internal/dto"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type stateCount struct {
	total, active int
}

func (s *stateCount) add(state int) {
	s.total++
	if state == domain.StateActive {
		s.active++
	}
}

func (s stateCount) row(entity string) []string {
	return []string{entity, strconv.Itoa(s.total), strconv.Itoa(s.active), strconv.Itoa(s.total - s.active)}
}

func (c *console) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summarise users, roles and surveys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				users   *dto.UserListResponse
				roles   *dto.RoleListResponse
				surveys *dto.SurveyListResponse
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				users, err = c.client.ListUsers(ctx, "")
				return err
			})
			g.Go(func() error {
				var err error
				roles, err = c.client.ListRoles(ctx, "")
				return err
			})
			g.Go(func() error {
				var err error
				surveys, err = c.client.ListSurveys(ctx, "")
				return err
			})
			c.log.Debug("Dashboard requests started", zap.Int64("in_flight", c.client.Loader().InFlight()))
			if err := g.Wait(); err != nil {
				return err
			}

			var userCount, roleCount, surveyCount stateCount
			for _, u := range users.Users {
				userCount.add(u.State)
			}
			for _, r := range roles.Roles {
				roleCount.add(r.State)
			}
			for _, s := range surveys.Surveys {
				surveyCount.add(s.State)
			}

			renderTable(cmd.OutOrStdout(), []string{"", "TOTAL", "ACTIVE", "INACTIVE"}, [][]string{
				userCount.row("users"),
				roleCount.row("roles"),
				surveyCount.row("surveys"),
			})
			return nil
		},
	}
}
