package graphql

import (
	"context"

	"github.com/saturnines/litmus-go/pkg/errors"
)

// Execute serializes req, runs it and decodes the operation's result into T.
func Execute[T any](ctx context.Context, ex *Executor, req Request) (T, error) {
	var zero T
	env, err := run(ctx, ex, req)
	if err != nil {
		return zero, err
	}
	return ExtractAs[T](env, req.Operation.ResultPath())
}

// ExecuteValue runs req and returns its scalar result as a string.
func ExecuteValue(ctx context.Context, ex *Executor, req Request) (string, error) {
	env, err := run(ctx, ex, req)
	if err != nil {
		return "", err
	}
	return env.ExtractValue(req.Operation.ResultPath())
}

func run(ctx context.Context, ex *Executor, req Request) (*Envelope, error) {
	document, err := req.Serialize()
	if err != nil {
		return nil, &errors.ClientError{Kind: errors.ErrEncode, URL: ex.Endpoint(), Err: err}
	}
	return ex.Query(ctx, document)
}
