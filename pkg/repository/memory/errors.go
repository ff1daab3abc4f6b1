package memory

import "github.com/vantis-uk/vantis/pkg/domain/interfaces"

// ErrNotFound is the repository-wide not found error
var ErrNotFound = interfaces.ErrNotFound
