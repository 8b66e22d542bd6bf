package repository

import "errors"

// ErrNotFound is returned when an operation targets a chat that does not
// exist. The service layer translates it into a domain-level error, which
// keeps sql.ErrNoRows and driver details out of the business logic.
var ErrNotFound = errors.New("repository: not found")
