package listener

import (
	"fmt"

	"github.com/atinylittleshell/strpath/internal/host"
)

// InvariantError reports a listener state that can only result from a logic
// error, such as a view being active while path completion is disabled.
type InvariantError struct {
	View    host.ViewID
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("path completion invariant violated in view %d: %s", e.View, e.Message)
}
