// Package ping serves the GP Connect ping endpoint: it decodes the bearer
// token on any path below the base route and reports how it fares against
// the requested specification version.
package ping

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jrschumacher/gpc-ping/internal/config"
	"github.com/jrschumacher/gpc-ping/internal/httputil"
	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
	"github.com/jrschumacher/gpc-ping/internal/logger"
	"github.com/jrschumacher/gpc-ping/internal/middleware"
	"github.com/jrschumacher/gpc-ping/internal/svrlib"
	"github.com/jrschumacher/gpc-ping/internal/validation"
)

const (
	msgNoToken       = "Ping successful, but no JWT token provided"
	msgDecoded       = "Ping successful, JWT token decoded and logged"
	msgInvalidFormat = "Invalid JWT token format"
	msgBadQuery      = "Invalid query parameters"
)

// Router serves the ping endpoint.
type Router struct {
	*svrlib.Router
	validate *validator.Validate
}

// Query holds the accepted query parameters.
type Query struct {
	Version string `validate:"required"`
}

// Response is the body returned for a decoded token. The verdict is carried
// in Valid; the status code is 200 whether or not the token conforms.
type Response struct {
	Message       string             `json:"message"`
	RequestID     string             `json:"requestId,omitempty"`
	Path          string             `json:"path"`
	Version       validation.Version `json:"version"`
	Header        jwtutil.Header     `json:"header"`
	Issuer        string             `json:"issuer,omitempty"`
	IssuedAt      *time.Time         `json:"issuedAt,omitempty"`
	ValidFrom     *time.Time         `json:"validFrom,omitempty"`
	ValidTo       *time.Time         `json:"validTo,omitempty"`
	Claims        map[string]string  `json:"claims,omitempty"`
	MissingClaims []string           `json:"missingClaims"`
	Valid         bool               `json:"valid"`
	Messages      []string           `json:"messages"`
}

// RegisterRoutes registers the ping route on mux below baseRoute.
func RegisterRoutes(mux *http.ServeMux, baseRoute string, cfg *config.Config) *Router {
	router := &Router{
		Router:   svrlib.NewRouter(mux, baseRoute, cfg),
		validate: validator.New(),
	}

	chain := middleware.NewChain(
		middleware.RequestContextMiddleware,
		middleware.AccessLog,
		middleware.TokenSizeLimit(cfg.MaxTokenBytes),
	)
	router.Handle(http.MethodGet, "{path...}", chain.ThenFunc(router.PingHandler))
	return router
}

// PingHandler decodes and validates the bearer token, if any.
func (rt *Router) PingHandler(w http.ResponseWriter, r *http.Request) {
	rc, ok := middleware.GetRequestContext(r.Context())
	if !ok {
		rc = &middleware.RequestContext{}
	}
	path := r.PathValue("path")
	log := logger.With("request_id", rc.ID, "path", path)
	log.Info("Ping received", "url", r.URL.String())

	if !rc.HasToken {
		log.Warn("No Authorization header found in the request")
		httputil.WriteMessage(w, msgNoToken)
		return
	}

	q := Query{Version: r.URL.Query().Get("version")}
	if q.Version == "" {
		q.Version = rt.Config.DefaultSpecVersion
	}
	if err := rt.validate.Struct(q); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, msgBadQuery, err, "request_id", rc.ID)
		return
	}

	version, err := validation.ParseVersion(q.Version)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error(), nil, "request_id", rc.ID)
		return
	}

	tok, err := jwtutil.Decode(rc.Token)
	if err != nil {
		var fe *jwtutil.FormatError
		if errors.As(err, &fe) {
			err = errors.New(fe.Msg)
		}
		httputil.WriteError(w, http.StatusBadRequest, msgInvalidFormat, err, "request_id", rc.ID)
		return
	}

	res, err := validation.Validate(version, tok)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "Validator misconfigured", err, "request_id", rc.ID)
		return
	}

	log.Info("Token validated", "version", version, "valid", res.Valid, "messages", res.String())
	httputil.WriteSuccess(w, rt.response(rc, path, version, tok, res))
}

func (rt *Router) response(rc *middleware.RequestContext, path string, version validation.Version, tok *jwtutil.Token, res validation.Result) Response {
	out := Response{
		Message:       msgDecoded,
		RequestID:     rc.ID,
		Path:          path,
		Version:       version,
		Header:        tok.Header(),
		Issuer:        tok.Issuer(),
		IssuedAt:      timePtr(tok.IssuedAt()),
		ValidFrom:     timePtr(tok.NotBefore()),
		ValidTo:       timePtr(tok.Expiry()),
		MissingClaims: validation.MissingClaims(tok),
		Valid:         res.Valid,
		Messages:      res.Messages,
	}
	if out.MissingClaims == nil {
		out.MissingClaims = []string{}
	}
	if rt.Config.ExposeClaims {
		out.Claims = tok.ClaimMap()
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
