package resolver

import (
	"context"

	"github.com/MKhiriev/go-conf-resolver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/resolver_mock.go -package=mock

// LocalLoader reads a [models.Conf] from environment variables carrying
// prefix. [LocalEnvStrategy] is the production implementation.
type LocalLoader interface {
	// Load decodes every field of the record from <prefix><FIELD>. A missing,
	// empty, or malformed variable yields a [ConfigParseError].
	Load(prefix string) (models.Conf, error)
}

// RemoteFetcher fetches a [models.Conf] for appName from the configuration
// authority. [RemoteFetchStrategy] is the production implementation.
type RemoteFetcher interface {
	// Fetch performs exactly one request. Transport failures and non-200
	// statuses yield a [TransportError]; a body that does not match the
	// schema yields a [DecodeError].
	Fetch(ctx context.Context, appName string) (models.Conf, error)
}
