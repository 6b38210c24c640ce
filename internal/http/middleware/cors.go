package middleware

import (
	"net/http"
	"regexp"

	"github.com/rs/cors"
)

// CORS allows cross-origin requests whose Origin matches allowed; a nil
// pattern allows none. Other origins get no Access-Control-Allow-Origin
// header. This is a development convenience and not an access control.
func CORS(allowed *regexp.Regexp) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return allowed != nil && allowed.MatchString(origin)
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusOK,
	})

	return c.Handler
}
