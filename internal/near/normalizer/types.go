package normalizer

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Resolver interface {
		Resolve(ctx context.Context, ids []string) (map[string]string, error)
	}
)
