package cli

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aalemi-dev/azure-rest-lab/appconfiguration"
)

func newKVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Read and write App Configuration key-values",
	}
	cmd.AddCommand(
		newKVListCmd(),
		newKVGetCmd(),
		newKVSetCmd(),
		newKVDeleteCmd(),
		newKVLockCmd(true),
		newKVLockCmd(false),
		newKVWatchCmd(),
	)
	return cmd
}

// listFlags are shared by the list commands.
type listFlags struct {
	key    string
	label  string
	name   string
	after  string
	fields []string
	limit  int
}

func addListFlags(flags *pflag.FlagSet, withKey, withName bool) *listFlags {
	lf := &listFlags{}
	if withKey {
		flags.StringVar(&lf.key, "key", "", `Key filter, "*" as wildcard`)
		flags.StringVar(&lf.label, "label", "", `Label filter, "\0" for no label`)
	}
	if withName {
		flags.StringVar(&lf.name, "name", "", `Name filter, "*" as wildcard`)
	}
	flags.StringVar(&lf.after, "after", "", "Start after this item")
	flags.StringSliceVar(&lf.fields, "select", nil, "Fields to return")
	flags.IntVar(&lf.limit, "limit", 0, "Stop after this many items (0 for all)")
	return lf
}

func keyValueFields(names []string) ([]appconfiguration.KeyValueFields, error) {
	allowed := appconfiguration.PossibleKeyValueFieldsValues()
	out := make([]appconfiguration.KeyValueFields, 0, len(names))
	for _, name := range names {
		f := appconfiguration.KeyValueFields(strings.TrimSpace(name))
		if !contains(allowed, f) {
			return nil, newUsageError(fmt.Sprintf("unsupported --select field %q", name))
		}
		out = append(out, f)
	}
	return out, nil
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// collect drains items, stopping after limit items when limit > 0.
func collect[I any](items iter.Seq2[I, error], limit int) ([]I, error) {
	out := []I{}
	for item, err := range items {
		if err != nil {
			return out, err
		}
		out = append(out, item)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func newKVListCmd() *cobra.Command {
	var lf *listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List key-values",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := keyValueFields(lf.fields)
			if err != nil {
				return err
			}
			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				pager := c.GetKeyValues().Key(lf.key).Label(lf.label).After(lf.after).Select(fields...).Pager()
				items, err := collect(pager.Items(ctx), lf.limit)
				if err != nil {
					return err
				}
				return printResult(cmd, items)
			})
		},
	}
	lf = addListFlags(cmd.Flags(), true, false)
	return cmd
}

func newKVGetCmd() *cobra.Command {
	var label, ifNoneMatch string
	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Show one key-value",
		Args:  exactArgs(1, "KEY"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				resp, err := c.GetKeyValue(args[0]).Label(label).IfNoneMatch(ifNoneMatch).Send(ctx)
				if err != nil {
					return err
				}
				if resp.NotModified {
					fmt.Fprintln(cmd.ErrOrStderr(), "not modified")
					return nil
				}
				return printResult(cmd, resp.KeyValue)
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Label of the key-value")
	cmd.Flags().StringVar(&ifNoneMatch, "if-none-match", "", "Only print when the ETag differs")
	return cmd
}

func newKVSetCmd() *cobra.Command {
	var (
		label, contentType, ifMatch string
		onlyIfNew                   bool
		tags                        map[string]string
	)
	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Create or replace a key-value",
		Args:  exactArgs(2, "KEY VALUE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if onlyIfNew && ifMatch != "" {
				return newUsageError("kv set: --if-match and --only-if-new are mutually exclusive")
			}
			entity := &appconfiguration.KeyValue{Value: &args[1], Tags: tags}
			if contentType != "" {
				entity.ContentType = &contentType
			}

			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				req := c.PutKeyValue(args[0]).Label(label).Entity(entity).IfMatch(ifMatch)
				if onlyIfNew {
					req.IfNoneMatch("*")
				}
				resp, err := req.Send(ctx)
				if err != nil {
					return err
				}
				return printResult(cmd, resp.KeyValue)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&label, "label", "", "Label of the key-value")
	flags.StringVar(&contentType, "content-type", "", "Content type of the value")
	flags.StringToStringVar(&tags, "tag", nil, "Tags as key=value, repeatable")
	flags.StringVar(&ifMatch, "if-match", "", "Only replace the key-value with this ETag")
	flags.BoolVar(&onlyIfNew, "only-if-new", false, "Fail if the key-value already exists")
	return cmd
}

func newKVDeleteCmd() *cobra.Command {
	var label, ifMatch string
	cmd := &cobra.Command{
		Use:   "delete KEY",
		Short: "Delete a key-value",
		Args:  exactArgs(1, "KEY"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				resp, err := c.DeleteKeyValue(args[0]).Label(label).IfMatch(ifMatch).Send(ctx)
				if err != nil {
					return err
				}
				if resp.KeyValue == nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s did not exist\n", args[0])
					return nil
				}
				return printResult(cmd, resp.KeyValue)
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Label of the key-value")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only delete the key-value with this ETag")
	return cmd
}

// newKVLockCmd builds "kv lock" when lock is set and "kv unlock" otherwise.
func newKVLockCmd(lock bool) *cobra.Command {
	use, short := "unlock KEY", "Make a key-value writable"
	if lock {
		use, short = "lock KEY", "Make a key-value read-only"
	}

	var label string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArgs(1, "KEY"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				var (
					resp *appconfiguration.KeyValueResponse
					err  error
				)
				if lock {
					resp, err = c.PutLock(args[0]).Label(label).Send(ctx)
				} else {
					resp, err = c.DeleteLock(args[0]).Label(label).Send(ctx)
				}
				if err != nil {
					return err
				}
				return printResult(cmd, resp.KeyValue)
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Label of the key-value")
	return cmd
}

func newKVWatchCmd() *cobra.Command {
	var (
		label    string
		interval time.Duration
		changes  int
	)
	cmd := &cobra.Command{
		Use:   "watch KEY",
		Short: "Print a key-value every time it changes",
		Long: "Polls the key-value with If-None-Match and prints it whenever its " +
			"ETag changes. Operation metrics are served while watching.",
		Args: exactArgs(1, "KEY"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return newUsageError("kv watch: --interval must be positive")
			}
			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				return watch(ctx, cmd, c, args[0], label, interval, changes)
			}, metricsModule)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&label, "label", "", "Label of the key-value")
	flags.DurationVar(&interval, "interval", 5*time.Second, "Polling interval")
	flags.IntVar(&changes, "changes", 0, "Exit after this many changes (0 to watch until interrupted)")
	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, c appconfiguration.AppConfiguration, key, label string, interval time.Duration, changes int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		etag      string
		seen      int
		syncToken string
	)
	for {
		resp, err := c.GetKeyValue(key).Label(label).IfNoneMatch(etag).SyncToken(syncToken).Send(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if resp.SyncToken != "" {
			syncToken = resp.SyncToken
		}
		if !resp.NotModified {
			etag = resp.ETag
			if resp.KeyValue != nil && resp.KeyValue.ETag != nil {
				etag = *resp.KeyValue.ETag
			}
			if err := printResult(cmd, resp.KeyValue); err != nil {
				return err
			}
			seen++
			if changes > 0 && seen >= changes {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "keys", Short: "App Configuration key names"}

	var lf *listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List key names",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				items, err := collect(c.GetKeys().Name(lf.name).After(lf.after).Pager().Items(ctx), lf.limit)
				if err != nil {
					return err
				}
				return printResult(cmd, items)
			})
		},
	}
	lf = addListFlags(list.Flags(), false, true)
	cmd.AddCommand(list)
	return cmd
}

func newLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "labels", Short: "App Configuration labels"}

	var lf *listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := make([]appconfiguration.LabelFields, 0, len(lf.fields))
			for _, f := range lf.fields {
				field := appconfiguration.LabelFields(strings.TrimSpace(f))
				if !contains(appconfiguration.PossibleLabelFieldsValues(), field) {
					return newUsageError(fmt.Sprintf("unsupported --select field %q", f))
				}
				fields = append(fields, field)
			}
			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				pager := c.GetLabels().Name(lf.name).After(lf.after).Select(fields...).Pager()
				items, err := collect(pager.Items(ctx), lf.limit)
				if err != nil {
					return err
				}
				return printResult(cmd, items)
			})
		},
	}
	lf = addListFlags(list.Flags(), false, true)
	cmd.AddCommand(list)
	return cmd
}

func newRevisionsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "revisions", Short: "App Configuration change history"}

	var lf *listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List key-value revisions, newest first",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := keyValueFields(lf.fields)
			if err != nil {
				return err
			}
			return withAppConfig(cmd, func(ctx context.Context, c appconfiguration.AppConfiguration) error {
				pager := c.GetRevisions().Key(lf.key).Label(lf.label).After(lf.after).Select(fields...).Pager()
				items, err := collect(pager.Items(ctx), lf.limit)
				if err != nil {
					return err
				}
				return printResult(cmd, items)
			})
		},
	}
	lf = addListFlags(list.Flags(), true, false)
	cmd.AddCommand(list)
	return cmd
}
