package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aalemi-dev/azure-rest-lab/locks"
)

func newLocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locks",
		Short: "Manage Azure Resource Manager locks",
		Long: "Manage management locks of a subscription, a resource group, a resource " +
			"or any scope. The most specific of --scope, --resource-name, " +
			"--resource-group and --subscription selects the level.",
	}
	cmd.AddCommand(
		newLocksListCmd(),
		newLocksGetCmd(),
		newLocksCreateCmd(),
		newLocksDeleteCmd(),
		newLocksOperationsCmd(),
	)
	return cmd
}

// lockTarget is the level a locks command applies to.
type lockTarget struct {
	scope    string
	resource locks.ResourceID
}

func addLockTargetFlags(flags *pflag.FlagSet) *lockTarget {
	t := &lockTarget{}
	flags.StringVar(&t.resource.SubscriptionID, "subscription", "", "Subscription ID")
	flags.StringVar(&t.resource.ResourceGroupName, "resource-group", "", "Resource group name")
	flags.StringVar(&t.resource.ResourceProviderNamespace, "provider", "", "Resource provider namespace, e.g. Microsoft.Storage")
	flags.StringVar(&t.resource.ParentResourcePath, "parent-path", "", "Parent resource path of nested resources")
	flags.StringVar(&t.resource.ResourceType, "resource-type", "", "Resource type, e.g. storageAccounts")
	flags.StringVar(&t.resource.ResourceName, "resource-name", "", "Resource name")
	flags.StringVar(&t.scope, "scope", "", "Full scope, e.g. /subscriptions/{id}/resourceGroups/{rg}")
	return t
}

type lockLevel int

const (
	levelScope lockLevel = iota
	levelResource
	levelResourceGroup
	levelSubscription
)

func (t *lockTarget) level() (lockLevel, error) {
	switch {
	case t.scope != "":
		return levelScope, nil
	case t.resource.ResourceName != "":
		return levelResource, nil
	case t.resource.ResourceGroupName != "":
		return levelResourceGroup, nil
	case t.resource.SubscriptionID != "":
		return levelSubscription, nil
	default:
		return 0, newUsageError("locks: one of --scope, --resource-name, --resource-group or --subscription is required")
	}
}

func (t *lockTarget) get(ml *locks.ManagementLocksClient, name string) (*locks.GetLockRequest, error) {
	lvl, err := t.level()
	if err != nil {
		return nil, err
	}
	r := t.resource
	switch lvl {
	case levelScope:
		return ml.GetByScope(t.scope, name), nil
	case levelResource:
		return ml.GetAtResourceLevel(r, name), nil
	case levelResourceGroup:
		return ml.GetAtResourceGroupLevel(r.SubscriptionID, r.ResourceGroupName, name), nil
	default:
		return ml.GetAtSubscriptionLevel(r.SubscriptionID, name), nil
	}
}

func (t *lockTarget) createOrUpdate(ml *locks.ManagementLocksClient, name string, params locks.ManagementLockObject) (*locks.CreateOrUpdateLockRequest, error) {
	lvl, err := t.level()
	if err != nil {
		return nil, err
	}
	r := t.resource
	switch lvl {
	case levelScope:
		return ml.CreateOrUpdateByScope(t.scope, name, params), nil
	case levelResource:
		return ml.CreateOrUpdateAtResourceLevel(r, name, params), nil
	case levelResourceGroup:
		return ml.CreateOrUpdateAtResourceGroupLevel(r.SubscriptionID, r.ResourceGroupName, name, params), nil
	default:
		return ml.CreateOrUpdateAtSubscriptionLevel(r.SubscriptionID, name, params), nil
	}
}

func (t *lockTarget) delete(ml *locks.ManagementLocksClient, name string) (*locks.DeleteLockRequest, error) {
	lvl, err := t.level()
	if err != nil {
		return nil, err
	}
	r := t.resource
	switch lvl {
	case levelScope:
		return ml.DeleteByScope(t.scope, name), nil
	case levelResource:
		return ml.DeleteAtResourceLevel(r, name), nil
	case levelResourceGroup:
		return ml.DeleteAtResourceGroupLevel(r.SubscriptionID, r.ResourceGroupName, name), nil
	default:
		return ml.DeleteAtSubscriptionLevel(r.SubscriptionID, name), nil
	}
}

func (t *lockTarget) list(ml *locks.ManagementLocksClient) (*locks.ListLocksRequest, error) {
	lvl, err := t.level()
	if err != nil {
		return nil, err
	}
	r := t.resource
	switch lvl {
	case levelScope:
		return ml.ListByScope(t.scope), nil
	case levelResource:
		return ml.ListAtResourceLevel(r), nil
	case levelResourceGroup:
		return ml.ListAtResourceGroupLevel(r.SubscriptionID, r.ResourceGroupName), nil
	default:
		return ml.ListAtSubscriptionLevel(r.SubscriptionID), nil
	}
}

func newLocksListCmd() *cobra.Command {
	var (
		target *lockTarget
		filter string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List locks at and below a level",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := target.level(); err != nil {
				return err
			}
			return withLocks(cmd, func(ctx context.Context, c locks.Locks) error {
				req, err := target.list(c.ManagementLocks())
				if err != nil {
					return err
				}
				items, err := collect(req.Filter(filter).Pager().Items(ctx), limit)
				if err != nil {
					return err
				}
				return printResult(cmd, items)
			})
		},
	}
	target = addLockTargetFlags(cmd.Flags())
	cmd.Flags().StringVar(&filter, "filter", "", `OData filter, e.g. "atScope()"`)
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many locks (0 for all)")
	return cmd
}

func newLocksGetCmd() *cobra.Command {
	var target *lockTarget
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Show a lock",
		Args:  exactArgs(1, "NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := target.level(); err != nil {
				return err
			}
			return withLocks(cmd, func(ctx context.Context, c locks.Locks) error {
				req, err := target.get(c.ManagementLocks(), args[0])
				if err != nil {
					return err
				}
				resp, err := req.Send(ctx)
				if err != nil {
					return err
				}
				return printResult(cmd, resp.ManagementLockObject)
			})
		},
	}
	target = addLockTargetFlags(cmd.Flags())
	return cmd
}

func newLocksCreateCmd() *cobra.Command {
	var (
		target *lockTarget
		level  string
		notes  string
		owners []string
	)
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create or update a lock",
		Args:  exactArgs(1, "NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := target.level(); err != nil {
				return err
			}

			params := locks.ManagementLockObject{Properties: locks.ManagementLockProperties{
				Level: locks.LockLevel(level),
			}}
			if notes != "" {
				params.Properties.Notes = &notes
			}
			for i := range owners {
				params.Properties.Owners = append(params.Properties.Owners, locks.ManagementLockOwner{ApplicationID: &owners[i]})
			}
			if err := locks.ValidateLock(params); err != nil {
				return newUsageError(fmt.Sprintf("locks create: %v", err))
			}

			return withLocks(cmd, func(ctx context.Context, c locks.Locks) error {
				req, err := target.createOrUpdate(c.ManagementLocks(), args[0], params)
				if err != nil {
					return err
				}
				resp, err := req.Send(ctx)
				if err != nil {
					return err
				}
				return printResult(cmd, resp.ManagementLockObject)
			})
		},
	}
	target = addLockTargetFlags(cmd.Flags())
	cmd.Flags().StringVar(&level, "level", string(locks.LockLevelCanNotDelete), "Lock level (CanNotDelete|ReadOnly|NotSpecified)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes, at most 512 characters")
	cmd.Flags().StringSliceVar(&owners, "owner", nil, "Owner application IDs")
	return cmd
}

func newLocksDeleteCmd() *cobra.Command {
	var target *lockTarget
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a lock",
		Args:  exactArgs(1, "NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := target.level(); err != nil {
				return err
			}
			return withLocks(cmd, func(ctx context.Context, c locks.Locks) error {
				req, err := target.delete(c.ManagementLocks(), args[0])
				if err != nil {
					return err
				}
				resp, err := req.Send(ctx)
				if err != nil {
					return err
				}
				if resp.NoContent {
					fmt.Fprintf(cmd.ErrOrStderr(), "lock %s did not exist\n", args[0])
				}
				return nil
			})
		},
	}
	target = addLockTargetFlags(cmd.Flags())
	return cmd
}

func newLocksOperationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the Microsoft.Authorization operations",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLocks(cmd, func(ctx context.Context, c locks.Locks) error {
				items, err := c.AuthorizationOperations().List().Pager().Collect(ctx)
				if err != nil {
					return err
				}
				return printResult(cmd, items)
			})
		},
	}
}
