package gworkspace

import (
	"context"
	"net/http"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/BruksfildServices01/inshape-booking/internal/config"
)

var scopes = []string{
	calendar.CalendarScope,
	sheets.SpreadsheetsScope,
}

// HTTPClient returns a client that signs requests as the service account.
// Tokens are fetched lazily and refreshed by the oauth2 transport.
func HTTPClient(ctx context.Context, sa *config.GoogleServiceAccount) *http.Client {
	conf := &jwt.Config{
		Email:      sa.ClientEmail,
		PrivateKey: []byte(sa.PrivateKey),
		Scopes:     scopes,
		TokenURL:   google.JWTTokenURL,
	}
	return conf.Client(ctx)
}
