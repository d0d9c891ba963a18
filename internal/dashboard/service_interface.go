package dashboard

import "context"

type ServiceInterface interface {
	Stats(ctx context.Context) (*Stats, error)
}

var _ ServiceInterface = (*Service)(nil)
