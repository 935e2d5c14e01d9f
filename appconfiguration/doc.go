/*
Package appconfiguration maps the Azure App Configuration data-plane API
(version 1.0) onto request builders.

Every operation is created from a Client with its required parameters,
takes optional parameters through chainable setters and is sent with
Send, or walked with Pager for the list operations:

	resp, err := client.GetKeyValue("app:color").
	    Label("prod").
	    IfNoneMatch(etag).
	    Send(ctx)
	if err != nil {
	    return err
	}
	if resp.NotModified {
	    return nil
	}
	fmt.Println(*resp.KeyValue.Value)

	for kv, err := range client.GetKeyValues().Key("app:*").Pager().Items(ctx) {
	    if err != nil {
	        return err
	    }
	    fmt.Println(kv.Key)
	}

# Consistency

Responses carry a Sync-Token header, exposed as ResponseHeaders.SyncToken
and on every list page. Pass it to later requests with SyncToken to read
your own writes when the store has replicas.

# Errors

Unexpected statuses come back as *pipeline.ResponseError, which matches
pipeline.ErrNotFound, pipeline.ErrPreconditionFailed and the other
sentinels with errors.Is. Problem-details bodies are decoded into the
error code and message.

# Locks

PutLock and DeleteLock toggle the read-only flag of a key-value. They are
unrelated to the management-plane locks of package locks.
*/
package appconfiguration
