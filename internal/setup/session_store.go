package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/procuradoria/internal/config"
	"github.com/bornholm/procuradoria/internal/crypto"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	key, err := crypto.SessionKey(conf.HTTP.SessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "could not retrieve cookie signing key")
	}

	sessionStore := sessions.NewCookieStore(key)

	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})
