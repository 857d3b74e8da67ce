package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no transport
// address is provided in the server configuration. This is treated as a
// fatal misconfiguration and causes the application to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
