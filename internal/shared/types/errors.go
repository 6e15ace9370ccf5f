package types

import "errors"

var (
	ErrNoProjectResolved       = errors.New("no GCP project specified and no active project found in gcloud configuration")
	ErrExchangeRateUnavailable = errors.New("could not fetch the USD exchange rate; currency figures would be misleading")
)
