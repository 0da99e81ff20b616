// Package verification wires the registration and email verification
// use cases.
package verification

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kkuglocal/campus-backend/internal/application/verification/cmd"
	"github.com/kkuglocal/campus-backend/internal/application/verification/query"
)

type App struct {
	CMD   Command
	Query Query
}

type Command struct {
	Register   *cmd.RegisterHandler
	ResendCode *cmd.ResendCodeHandler
	Verify     *cmd.VerifyHandler
}

type Query struct {
	GetVerificationCode *query.GetVerificationCodeHandler
}

type Args struct {
	Repo cmd.Repo
	Pool *pgxpool.Pool
}

func NewApp(args Args) *App {
	app := &App{
		CMD: Command{
			Register: cmd.NewRegisterHandler(cmd.RegisterHandlerArgs{
				Repo: args.Repo,
			}),
			ResendCode: cmd.NewResendCodeHandler(cmd.ResendCodeHandlerArgs{
				Repo: args.Repo,
			}),
			Verify: cmd.NewVerifyHandler(cmd.VerifyHandlerArgs{
				Repo: args.Repo,
			}),
		},
	}

	if args.Pool != nil {
		app.Query = Query{
			GetVerificationCode: query.NewGetVerificationCodeHandler(args.Pool),
		}
	}

	return app
}
