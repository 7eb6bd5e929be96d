package mailer

import "fmt"

type ErrInvalidMessage struct {
	Reason string
}

func (e ErrInvalidMessage) Error() string {
	return fmt.Sprintf("mailer: invalid message: %s", e.Reason)
}
