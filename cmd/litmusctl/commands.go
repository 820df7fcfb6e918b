package main

import (
	"github.com/spf13/cobra"

	"github.com/saturnines/litmus-go/pkg/litmus/model"
)

func newCapabilitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "Show optional server features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caps, err := a.client.Capabilities(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(caps)
		},
	}
}

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "user", Short: "Inspect users"}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <userID>",
			Short: "Show one user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				user, err := a.client.GetUser(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(user)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all users",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				users, err := a.client.GetUsers(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(users)
			},
		},
	)
	return cmd
}

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "project", Short: "Inspect projects"}

	var req model.ListProjectRequest
	var all bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects visible to the caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				projects, err := a.client.ListAllProjects(cmd.Context(), req, req.Limit)
				if err != nil {
					return err
				}
				return a.print(projects)
			}
			projects, err := a.client.ListProjects(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(projects)
		},
	}
	list.Flags().IntVar(&req.Page, "page", 0, "page number, starting at 0")
	list.Flags().IntVar(&req.Limit, "limit", 15, "projects per page")
	list.Flags().StringVar(&req.SortField, "sort-field", "", "field to sort by, e.g. name or time")
	list.Flags().BoolVar(&req.CreatedByMe, "created-by-me", false, "only projects the caller created")
	list.Flags().BoolVar(&all, "all", false, "fetch every page; --limit sets the page size")

	get := &cobra.Command{
		Use:   "get <projectID>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.client.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(project)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

// projectFlag adds the required --project flag shared by GraphQL commands.
func projectFlag(cmd *cobra.Command, projectID *string) {
	cmd.PersistentFlags().StringVarP(projectID, "project", "p", "", "project ID")
	_ = cmd.MarkPersistentFlagRequired("project")
}

func newEnvCmd(a *app) *cobra.Command {
	var projectID string
	cmd := &cobra.Command{Use: "env", Short: "Manage environments"}
	projectFlag(cmd, &projectID)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List environments in a project",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				envs, err := a.client.ListAllEnvironments(cmd.Context(), projectID, nil, 0, nil)
				if err != nil {
					return err
				}
				return a.print(envs)
			},
		},
		&cobra.Command{
			Use:   "delete <environmentID>",
			Short: "Delete an environment",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				msg, err := a.client.DeleteEnvironment(cmd.Context(), projectID, args[0])
				if err != nil {
					return err
				}
				return a.print(msg)
			},
		},
	)
	return cmd
}

func newInfraCmd(a *app) *cobra.Command {
	var projectID string
	cmd := &cobra.Command{Use: "infra", Short: "Manage chaos infrastructures"}
	projectFlag(cmd, &projectID)

	var upgrade bool
	manifest := &cobra.Command{
		Use:   "manifest <infraID>",
		Short: "Print the agent install manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.client.GetInfraManifest(cmd.Context(), projectID, args[0], upgrade)
			if err != nil {
				return err
			}
			return a.print(m)
		},
	}
	manifest.Flags().BoolVar(&upgrade, "upgrade", false, "print the upgrade manifest instead")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List chaos infrastructures in a project",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				infras, err := a.client.ListAllInfras(cmd.Context(), projectID, nil, 0, nil)
				if err != nil {
					return err
				}
				return a.print(infras)
			},
		},
		manifest,
		&cobra.Command{
			Use:   "delete <infraID>",
			Short: "Delete a chaos infrastructure",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				msg, err := a.client.DeleteInfra(cmd.Context(), projectID, args[0])
				if err != nil {
					return err
				}
				return a.print(msg)
			},
		},
	)
	return cmd
}

func newHubCmd(a *app) *cobra.Command {
	var projectID string
	cmd := &cobra.Command{Use: "hub", Short: "Manage chaos hubs"}
	projectFlag(cmd, &projectID)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List chaos hubs in a project",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				hubs, err := a.client.ListChaosHub(cmd.Context(), projectID, nil, nil)
				if err != nil {
					return err
				}
				return a.print(hubs)
			},
		},
		&cobra.Command{
			Use:   "get <hubID>",
			Short: "Show one chaos hub",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				hub, err := a.client.GetChaosHub(cmd.Context(), projectID, args[0], nil)
				if err != nil {
					return err
				}
				return a.print(hub)
			},
		},
		&cobra.Command{
			Use:   "sync <hubID>",
			Short: "Pull the latest faults into a chaos hub",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				msg, err := a.client.SyncChaosHub(cmd.Context(), projectID, args[0])
				if err != nil {
					return err
				}
				return a.print(msg)
			},
		},
	)
	return cmd
}
