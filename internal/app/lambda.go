package app

import (
	"github.com/aws/aws-lambda-go/lambda"

	"loan-recommendation-engine/internal/utils"
)

// ShutdownHook drains pending write-backs and notifications before the
// runtime freezes the sandbox for good. lambda.Start never returns, so a
// deferred Close in main does not run.
func (a *App) ShutdownHook() func() {
	return func() {
		utils.Logger.Info("Received SIGTERM, draining background work")
		a.Close()
		utils.Sync()
	}
}

// LambdaOptions registers ShutdownHook with the Lambda runtime.
func (a *App) LambdaOptions() []lambda.Option {
	return []lambda.Option{lambda.WithEnableSIGTERM(a.ShutdownHook())}
}
