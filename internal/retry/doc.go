// Package retry provides retry logic with exponential backoff for
// transient repository request failures.
//
// The package supports pluggable error classification and backoff strategies.
// metsgen queries the repository once per URL unless retries are enabled
// with --retries, so the default strategy has zero attempts.
//
// # Example Usage
//
//	classifier := retry.NewHTTPErrorClassifier()
//	strategy := retry.NewExponentialBackoff(3)
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return fetch(ctx)
//	})
//
// # Error Classification
//
// HTTPErrorClassifier treats network failures and the 408, 429, 500, 502,
// 503 and 504 statuses as transient. Any other status, including 404 from a
// missing taxonomy term, is fatal and returned immediately.
package retry
