// Package locks maps Microsoft.Authorization management locks (API version
// 2020-05-01) of Azure Resource Manager.
//
// A lock stops users from deleting (CanNotDelete) or modifying (ReadOnly)
// a subscription, a resource group or a resource. Locks on a parent scope
// are inherited by everything below it.
//
//	client, err := locks.NewClient(locks.Config{}, cred, locks.Options{})
//	if err != nil {
//	    return err
//	}
//	notes := "protects production data"
//	_, err = client.ManagementLocks().
//	    CreateOrUpdateAtResourceGroupLevel(subID, "prod-rg", "no-delete", locks.ManagementLockObject{
//	        Properties: locks.ManagementLockProperties{Level: locks.LockLevelCanNotDelete, Notes: &notes},
//	    }).
//	    Send(ctx)
//
// Lock bodies and lock names are validated before anything is sent; those
// failures wrap ErrInvalidLock.
package locks
