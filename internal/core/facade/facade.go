// Package facade holds the authorization and orchestration layer: it turns
// transport inputs into domain rows, decides whether the acting user may
// perform the operation, and shapes the read projections.
//
// Update and delete flows run in a fixed order: existence and identity
// checks, then authorization, then the write.
package facade

import (
	"errors"
	"time"

	"github.com/newsdesk/newsroom/internal/core/domain"
)

// Clock returns the creation timestamp for new rows.
type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// absent turns a not-found error into the "no result" reply of FindByID.
func absent(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
