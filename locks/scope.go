package locks

import (
	"fmt"
	"strings"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

const locksProvider = "/providers/Microsoft.Authorization/locks"

// level is where a lock operation applies. It yields the ARM path of the
// scope and the name used in operation names ("get_at_resource_level").
type level struct {
	suffix string
	scope  string
	err    error
}

func (l level) collectionPath() string {
	return l.scope + locksProvider
}

func (l level) lockPath(name string) string {
	return l.collectionPath() + "/" + pipeline.PathEscape(name)
}

// resourceName is what observers see as the resource of a lock operation.
func (l level) resourceName() string {
	return strings.TrimPrefix(l.scope, "/")
}

func required(params ...string) error {
	for i := 0; i < len(params); i += 2 {
		if params[i+1] == "" {
			return fmt.Errorf("%w: %s", ErrMissingParameter, params[i])
		}
	}
	return nil
}

func subscriptionLevel(subscriptionID string) level {
	return level{
		suffix: "at_subscription_level",
		scope:  "/subscriptions/" + pipeline.PathEscape(subscriptionID),
		err:    required("subscription_id", subscriptionID),
	}
}

func resourceGroupLevel(subscriptionID, resourceGroup string) level {
	return level{
		suffix: "at_resource_group_level",
		scope: "/subscriptions/" + pipeline.PathEscape(subscriptionID) +
			"/resourceGroups/" + pipeline.PathEscape(resourceGroup),
		err: required("subscription_id", subscriptionID, "resource_group_name", resourceGroup),
	}
}

// ResourceID identifies a resource below a resource group.
// ParentResourcePath is empty for top-level resources and is used as given,
// slashes included ("servers/mysrv").
type ResourceID struct {
	SubscriptionID            string
	ResourceGroupName         string
	ResourceProviderNamespace string
	ParentResourcePath        string
	ResourceType              string
	ResourceName              string
}

func resourceLevel(id ResourceID) level {
	segments := []string{
		"/subscriptions", pipeline.PathEscape(id.SubscriptionID),
		"resourcegroups", pipeline.PathEscape(id.ResourceGroupName),
		"providers", pipeline.PathEscape(id.ResourceProviderNamespace),
	}
	if parent := strings.Trim(id.ParentResourcePath, "/"); parent != "" {
		segments = append(segments, parent)
	}
	// ResourceType may be nested ("databases/schemas") as well.
	segments = append(segments, strings.Trim(id.ResourceType, "/"), pipeline.PathEscape(id.ResourceName))

	return level{
		suffix: "at_resource_level",
		scope:  strings.Join(segments, "/"),
		err: required(
			"subscription_id", id.SubscriptionID,
			"resource_group_name", id.ResourceGroupName,
			"resource_provider_namespace", id.ResourceProviderNamespace,
			"resource_type", id.ResourceType,
			"resource_name", id.ResourceName,
		),
	}
}

// scopeLevel takes a full scope, either "/subscriptions/{id}",
// "/subscriptions/{id}/resourceGroups/{rg}" or a resource ID.
func scopeLevel(scope string) level {
	trimmed := strings.Trim(scope, "/")
	return level{
		suffix: "by_scope",
		scope:  "/" + trimmed,
		err:    required("scope", trimmed),
	}
}
