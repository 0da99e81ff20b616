// Package httpport wires the HTTP handlers onto a chi router.
package httpport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	authapp "github.com/kkuglocal/campus-backend/internal/application/auth"
	verificationapp "github.com/kkuglocal/campus-backend/internal/application/verification"
	authhttp "github.com/kkuglocal/campus-backend/internal/ports/http/auth"
	verificationhttp "github.com/kkuglocal/campus-backend/internal/ports/http/verification"
	"github.com/kkuglocal/campus-backend/pkg/httpx"
)

type Port struct {
	verification *verificationhttp.HTTP
	auth         *authhttp.HTTP
}

type Args struct {
	VerificationApp *verificationapp.App
	AuthApp         *authapp.App
	Errhandler      *httpx.ErrorHandler
}

func NewPort(args Args) *Port {
	if args.Errhandler == nil {
		args.Errhandler = httpx.NewErrorHandler()
	}

	return &Port{
		verification: verificationhttp.NewHTTP(verificationhttp.Args{
			App:        args.VerificationApp,
			Errhandler: args.Errhandler,
		}),
		auth: authhttp.NewHTTP(authhttp.Args{
			App:        args.AuthApp,
			Errhandler: args.Errhandler,
		}),
	}
}

func (p *Port) Route(r chi.Router) chi.Router {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.Success(w, r, http.StatusOK, httpx.Envelope{"status": "ok"})
	})

	p.verification.Route(r)
	p.auth.Route(r)

	return r
}
