package memory

import (
	"net/url"

	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/setup"
)

func init() {
	setup.TaskStore.Register("memory", func(u *url.URL) (port.TaskStore, error) {
		return NewTaskStore(), nil
	})
}
